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

// CourseStore is the persistence surface the course service needs
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error)
	Update(ctx context.Context, course *models.Course) error
	SoftDelete(ctx context.Context, id int64) error
}

// CourseService defines the interface for catalog course operations
type CourseService interface {
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetAll(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, id int64) error
}

type courseServiceImpl struct {
	courses CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore) CourseService {
	return &courseServiceImpl{courses: courses}
}

// Create adds a catalog course. Prefix+code uniqueness is enforced by the
// database index.
func (s *courseServiceImpl) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Title:   req.Title,
		Prefix:  req.Prefix,
		Code:    req.Code,
		Credits: req.Credits,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Course with this prefix and code already exists")
		}
		return nil, err
	}
	return course, nil
}

// GetAll lists non-deleted courses through the generic query pipeline
func (s *courseServiceImpl) GetAll(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error) {
	return s.courses.List(ctx, values)
}

// GetByID retrieves a single non-deleted course
func (s *courseServiceImpl) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperrors.NewNotFoundError("Course not found")
	}
	return course, nil
}

// Update applies a partial catalog course update
func (s *courseServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Prefix != nil {
		course.Prefix = *req.Prefix
	}
	if req.Code != nil {
		course.Code = *req.Code
	}
	if req.Credits != nil {
		course.Credits = *req.Credits
	}

	if err := s.courses.Update(ctx, course); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Course with this prefix and code already exists")
		}
		return nil, err
	}
	return course, nil
}

// Delete soft-deletes a course; existing offered courses keep referencing it
func (s *courseServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.courses.SoftDelete(ctx, id)
}
