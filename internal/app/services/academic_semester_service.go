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

// AcademicSemesterStore is the persistence surface the semester service needs
type AcademicSemesterStore interface {
	Create(ctx context.Context, semester *models.AcademicSemester) error
	GetByID(ctx context.Context, id int64) (*models.AcademicSemester, error)
	ExistsByYearAndName(ctx context.Context, year string, name models.SemesterName) (bool, error)
	List(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error)
	Update(ctx context.Context, semester *models.AcademicSemester) error
}

// AcademicSemesterService defines the interface for academic semester operations
type AcademicSemesterService interface {
	Create(ctx context.Context, req *dto.CreateAcademicSemesterRequest) (*models.AcademicSemester, error)
	GetAll(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error)
	GetByID(ctx context.Context, id int64) (*models.AcademicSemester, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAcademicSemesterRequest) (*models.AcademicSemester, error)
}

type academicSemesterServiceImpl struct {
	semesters AcademicSemesterStore
}

// NewAcademicSemesterService creates a new academic semester service instance
func NewAcademicSemesterService(semesters AcademicSemesterStore) AcademicSemesterService {
	return &academicSemesterServiceImpl{semesters: semesters}
}

// Create rejects a code that does not match the semester name and refuses a
// second semester for the same year and name.
func (s *academicSemesterServiceImpl) Create(ctx context.Context, req *dto.CreateAcademicSemesterRequest) (*models.AcademicSemester, error) {
	if models.SemesterCodes[req.Name] != req.Code {
		return nil, apperrors.ErrInvalidSemesterCode
	}

	exists, err := s.semesters.ExistsByYearAndName(ctx, req.Year, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("Academic semester already exists for this year")
	}

	semester := &models.AcademicSemester{
		Name:       req.Name,
		Year:       req.Year,
		Code:       req.Code,
		StartMonth: req.StartMonth,
		EndMonth:   req.EndMonth,
	}
	if err := s.semesters.Create(ctx, semester); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Academic semester already exists for this year")
		}
		return nil, err
	}
	return semester, nil
}

// GetAll lists academic semesters through the generic query pipeline
func (s *academicSemesterServiceImpl) GetAll(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error) {
	return s.semesters.List(ctx, values)
}

// GetByID retrieves a single academic semester
func (s *academicSemesterServiceImpl) GetByID(ctx context.Context, id int64) (*models.AcademicSemester, error) {
	semester, err := s.semesters.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if semester == nil {
		return nil, apperrors.NewNotFoundError("Academic semester not found")
	}
	return semester, nil
}

// Update applies a partial update. The name/code pairing is re-validated
// against the values the record would hold after the update.
func (s *academicSemesterServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateAcademicSemesterRequest) (*models.AcademicSemester, error) {
	semester, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		semester.Name = *req.Name
	}
	if req.Code != nil {
		semester.Code = *req.Code
	}
	if req.Year != nil {
		semester.Year = *req.Year
	}
	if req.StartMonth != nil {
		semester.StartMonth = *req.StartMonth
	}
	if req.EndMonth != nil {
		semester.EndMonth = *req.EndMonth
	}

	if models.SemesterCodes[semester.Name] != semester.Code {
		return nil, apperrors.ErrInvalidSemesterCode
	}

	if err := s.semesters.Update(ctx, semester); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Academic semester already exists for this year")
		}
		return nil, err
	}
	return semester, nil
}
