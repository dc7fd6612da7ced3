package services

import (
	"context"
	"net/url"

	"github.com/tanvir/campushub/internal/app/models"
	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/pkg/apperrors"
	"github.com/tanvir/campushub/internal/pkg/query"
)

// FacultyStore is the persistence surface the faculty service needs
type FacultyStore interface {
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	List(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error)
	Update(ctx context.Context, id int64, req *dto.UpdateFacultyRequest) (*models.Faculty, error)
	SoftDelete(ctx context.Context, id int64) error
}

// FacultyService defines the interface for faculty profile operations
type FacultyService interface {
	GetAll(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error)
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	Update(ctx context.Context, id int64, req *dto.UpdateFacultyRequest) (*models.Faculty, error)
	Delete(ctx context.Context, id int64) error
}

type facultyServiceImpl struct {
	faculties   FacultyStore
	departments AcademicDepartmentReader
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(faculties FacultyStore, departments AcademicDepartmentReader) FacultyService {
	return &facultyServiceImpl{faculties: faculties, departments: departments}
}

// GetAll lists non-deleted faculty members through the generic query pipeline
func (s *facultyServiceImpl) GetAll(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error) {
	return s.faculties.List(ctx, values)
}

// GetByID retrieves a single non-deleted faculty member
func (s *facultyServiceImpl) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	faculty, err := s.faculties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if faculty == nil {
		return nil, apperrors.NewNotFoundError("Faculty not found")
	}
	return faculty, nil
}

// Update applies a partial profile update, re-validating a changed department
func (s *facultyServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateFacultyRequest) (*models.Faculty, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if req.AcademicDepartmentID != nil {
		dept, err := s.departments.GetByID(ctx, *req.AcademicDepartmentID)
		if err != nil {
			return nil, err
		}
		if dept == nil {
			return nil, apperrors.NewNotFoundError("Academic department not found")
		}
	}

	return s.faculties.Update(ctx, id, req)
}

// Delete soft-deletes the faculty profile and its user account together
func (s *facultyServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.faculties.SoftDelete(ctx, id)
}
