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

// AcademicFacultyStore is the persistence surface the academic faculty service needs
type AcademicFacultyStore interface {
	Create(ctx context.Context, faculty *models.AcademicFaculty) error
	GetByID(ctx context.Context, id int64) (*models.AcademicFaculty, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error)
	Update(ctx context.Context, faculty *models.AcademicFaculty) error
}

// AcademicFacultyService defines the interface for academic faculty operations
type AcademicFacultyService interface {
	Create(ctx context.Context, req *dto.CreateAcademicFacultyRequest) (*models.AcademicFaculty, error)
	GetAll(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error)
	GetByID(ctx context.Context, id int64) (*models.AcademicFaculty, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAcademicFacultyRequest) (*models.AcademicFaculty, error)
}

type academicFacultyServiceImpl struct {
	faculties AcademicFacultyStore
}

// NewAcademicFacultyService creates a new academic faculty service instance
func NewAcademicFacultyService(faculties AcademicFacultyStore) AcademicFacultyService {
	return &academicFacultyServiceImpl{faculties: faculties}
}

// Create refuses duplicate faculty names
func (s *academicFacultyServiceImpl) Create(ctx context.Context, req *dto.CreateAcademicFacultyRequest) (*models.AcademicFaculty, error) {
	exists, err := s.faculties.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("Academic faculty with this name already exists")
	}

	faculty := &models.AcademicFaculty{Name: req.Name}
	if err := s.faculties.Create(ctx, faculty); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Academic faculty with this name already exists")
		}
		return nil, err
	}
	return faculty, nil
}

// GetAll lists academic faculties through the generic query pipeline
func (s *academicFacultyServiceImpl) GetAll(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error) {
	return s.faculties.List(ctx, values)
}

// GetByID retrieves a single academic faculty
func (s *academicFacultyServiceImpl) GetByID(ctx context.Context, id int64) (*models.AcademicFaculty, error) {
	faculty, err := s.faculties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if faculty == nil {
		return nil, apperrors.NewNotFoundError("Academic faculty not found")
	}
	return faculty, nil
}

// Update renames an academic faculty
func (s *academicFacultyServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateAcademicFacultyRequest) (*models.AcademicFaculty, error) {
	faculty, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	faculty.Name = req.Name
	if err := s.faculties.Update(ctx, faculty); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Academic faculty with this name already exists")
		}
		return nil, err
	}
	return faculty, nil
}
