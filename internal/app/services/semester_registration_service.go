package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tanvir/campushub/internal/app/models"
	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/pkg/apperrors"
	"github.com/tanvir/campushub/internal/pkg/dberrors"
	"github.com/tanvir/campushub/internal/pkg/query"
)

// SemesterRegistrationStore is the persistence surface the registration service needs
type SemesterRegistrationStore interface {
	Create(ctx context.Context, reg *models.SemesterRegistration) error
	GetByID(ctx context.Context, id int64) (*models.SemesterRegistration, error)
	ExistsBySemester(ctx context.Context, semesterID int64) (bool, error)
	AnyWithStatus(ctx context.Context, statuses ...models.RegistrationStatus) (bool, error)
	List(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error)
	Update(ctx context.Context, reg *models.SemesterRegistration) error
}

// SemesterRegistrationService defines the interface for registration operations
type SemesterRegistrationService interface {
	Create(ctx context.Context, req *dto.CreateSemesterRegistrationRequest) (*models.SemesterRegistration, error)
	GetAll(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error)
	GetByID(ctx context.Context, id int64) (*models.SemesterRegistration, error)
	Update(ctx context.Context, id int64, req *dto.UpdateSemesterRegistrationRequest) (*models.SemesterRegistration, error)
}

type semesterRegistrationServiceImpl struct {
	registrations SemesterRegistrationStore
	semesters     AcademicSemesterStore
}

// NewSemesterRegistrationService creates a new semester registration service instance
func NewSemesterRegistrationService(registrations SemesterRegistrationStore, semesters AcademicSemesterStore) SemesterRegistrationService {
	return &semesterRegistrationServiceImpl{registrations: registrations, semesters: semesters}
}

// Create opens registration for a semester. At most one registration may be
// UPCOMING or ONGOING at a time, and a semester gets at most one registration.
func (s *semesterRegistrationServiceImpl) Create(ctx context.Context, req *dto.CreateSemesterRegistrationRequest) (*models.SemesterRegistration, error) {
	open, err := s.registrations.AnyWithStatus(ctx, models.RegistrationUpcoming, models.RegistrationOngoing)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, apperrors.NewConflictError("There is already an UPCOMING or ONGOING semester registration")
	}

	semester, err := s.semesters.GetByID(ctx, req.AcademicSemesterID)
	if err != nil {
		return nil, err
	}
	if semester == nil {
		return nil, apperrors.NewNotFoundError("Academic semester not found")
	}

	exists, err := s.registrations.ExistsBySemester(ctx, req.AcademicSemesterID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("This semester is already registered")
	}

	reg := &models.SemesterRegistration{
		AcademicSemesterID: req.AcademicSemesterID,
		Status:             req.Status,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		MinCredit:          req.MinCredit,
		MaxCredit:          req.MaxCredit,
	}
	if err := s.registrations.Create(ctx, reg); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("This semester is already registered")
		}
		return nil, err
	}
	reg.AcademicSemester = semester
	return reg, nil
}

// GetAll lists semester registrations through the generic query pipeline
func (s *semesterRegistrationServiceImpl) GetAll(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error) {
	return s.registrations.List(ctx, values)
}

// GetByID retrieves a registration with its semester populated
func (s *semesterRegistrationServiceImpl) GetByID(ctx context.Context, id int64) (*models.SemesterRegistration, error) {
	reg, err := s.registrations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, apperrors.NewNotFoundError("Semester registration not found")
	}
	return reg, nil
}

// Update applies a partial update. ENDED registrations are frozen and the
// status may only move forward: UPCOMING -> ONGOING -> ENDED.
func (s *semesterRegistrationServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateSemesterRegistrationRequest) (*models.SemesterRegistration, error) {
	reg, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if reg.Status == models.RegistrationEnded {
		return nil, apperrors.NewStateError("This semester registration has already ENDED")
	}

	if req.Status != nil && *req.Status != reg.Status {
		if !validStatusTransition(reg.Status, *req.Status) {
			return nil, apperrors.NewStateError(
				fmt.Sprintf("Cannot move registration status from %s to %s", reg.Status, *req.Status))
		}
		reg.Status = *req.Status
	}
	if req.StartDate != nil {
		reg.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		reg.EndDate = *req.EndDate
	}
	if req.MinCredit != nil {
		reg.MinCredit = *req.MinCredit
	}
	if req.MaxCredit != nil {
		reg.MaxCredit = *req.MaxCredit
	}

	if err := s.registrations.Update(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func validStatusTransition(from, to models.RegistrationStatus) bool {
	switch from {
	case models.RegistrationUpcoming:
		return to == models.RegistrationOngoing
	case models.RegistrationOngoing:
		return to == models.RegistrationEnded
	default:
		return false
	}
}
