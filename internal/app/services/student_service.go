package services

import (
	"context"
	"net/url"

	"github.com/tanvir/campushub/internal/app/models"
	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/pkg/apperrors"
	"github.com/tanvir/campushub/internal/pkg/query"
)

// StudentStore is the persistence surface the student service needs
type StudentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	SoftDelete(ctx context.Context, id int64) error
}

// StudentService defines the interface for student profile operations
type StudentService interface {
	GetAll(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

type studentServiceImpl struct {
	students    StudentStore
	departments AcademicDepartmentReader
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore, departments AcademicDepartmentReader) StudentService {
	return &studentServiceImpl{students: students, departments: departments}
}

// GetAll lists non-deleted students through the generic query pipeline
func (s *studentServiceImpl) GetAll(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error) {
	return s.students.List(ctx, values)
}

// GetByID retrieves a single non-deleted student
func (s *studentServiceImpl) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewNotFoundError("Student not found")
	}
	return student, nil
}

// Update applies a partial profile update, re-validating a changed department
func (s *studentServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
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

	return s.students.Update(ctx, id, req)
}

// Delete soft-deletes the student profile and its user account together
func (s *studentServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.students.SoftDelete(ctx, id)
}
