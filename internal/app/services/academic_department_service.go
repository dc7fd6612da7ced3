package services

import (
	"context"
	"net/url"

	"github.com/tanvir/campushub/internal/app/models"
	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/pkg/apperrors"
	"github.com/tanvir/campushub/internal/pkg/dberrors"
	"github.com/tanvir/campushub/internal/pkg/query"
)

// AcademicDepartmentStore is the persistence surface the department service needs
type AcademicDepartmentStore interface {
	Create(ctx context.Context, dept *models.AcademicDepartment) error
	GetByID(ctx context.Context, id int64) (*models.AcademicDepartment, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error)
	Update(ctx context.Context, dept *models.AcademicDepartment) error
}

// AcademicDepartmentService defines the interface for academic department operations
type AcademicDepartmentService interface {
	Create(ctx context.Context, req *dto.CreateAcademicDepartmentRequest) (*models.AcademicDepartment, error)
	GetAll(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error)
	GetByID(ctx context.Context, id int64) (*models.AcademicDepartment, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAcademicDepartmentRequest) (*models.AcademicDepartment, error)
}

type academicDepartmentServiceImpl struct {
	departments AcademicDepartmentStore
	faculties   AcademicFacultyReader
}

// NewAcademicDepartmentService creates a new academic department service instance
func NewAcademicDepartmentService(departments AcademicDepartmentStore, faculties AcademicFacultyReader) AcademicDepartmentService {
	return &academicDepartmentServiceImpl{departments: departments, faculties: faculties}
}

// Create requires the parent academic faculty to exist and refuses
// duplicate department names.
func (s *academicDepartmentServiceImpl) Create(ctx context.Context, req *dto.CreateAcademicDepartmentRequest) (*models.AcademicDepartment, error) {
	faculty, err := s.faculties.GetByID(ctx, req.AcademicFacultyID)
	if err != nil {
		return nil, err
	}
	if faculty == nil {
		return nil, apperrors.NewNotFoundError("Academic faculty not found")
	}

	exists, err := s.departments.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("Academic department with this name already exists")
	}

	dept := &models.AcademicDepartment{
		Name:              req.Name,
		AcademicFacultyID: req.AcademicFacultyID,
	}
	if err := s.departments.Create(ctx, dept); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Academic department with this name already exists")
		}
		return nil, err
	}
	return dept, nil
}

// GetAll lists academic departments through the generic query pipeline
func (s *academicDepartmentServiceImpl) GetAll(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error) {
	return s.departments.List(ctx, values)
}

// GetByID retrieves a department with its parent faculty populated
func (s *academicDepartmentServiceImpl) GetByID(ctx context.Context, id int64) (*models.AcademicDepartment, error) {
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, apperrors.NewNotFoundError("Academic department not found")
	}
	return dept, nil
}

// Update applies a partial update, re-validating a changed parent faculty
func (s *academicDepartmentServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateAcademicDepartmentRequest) (*models.AcademicDepartment, error) {
	dept, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.AcademicFacultyID != nil {
		faculty, err := s.faculties.GetByID(ctx, *req.AcademicFacultyID)
		if err != nil {
			return nil, err
		}
		if faculty == nil {
			return nil, apperrors.NewNotFoundError("Academic faculty not found")
		}
		dept.AcademicFacultyID = *req.AcademicFacultyID
		dept.AcademicFaculty = faculty
	}
	if req.Name != nil {
		dept.Name = *req.Name
	}

	if err := s.departments.Update(ctx, dept); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Academic department with this name already exists")
		}
		return nil, err
	}
	return dept, nil
}
