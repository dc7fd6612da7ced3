package services

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/tanvir/campushub/internal/app/models"
	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/pkg/apperrors"
	"github.com/tanvir/campushub/internal/pkg/query"
)

type mockRegistrationStore struct {
	byID       map[int64]*models.SemesterRegistration
	hasOpen    bool
	registered bool
	updated    *models.SemesterRegistration
}

func (m *mockRegistrationStore) Create(_ context.Context, reg *models.SemesterRegistration) error {
	reg.ID = 1
	return nil
}

func (m *mockRegistrationStore) GetByID(_ context.Context, id int64) (*models.SemesterRegistration, error) {
	return m.byID[id], nil
}

func (m *mockRegistrationStore) ExistsBySemester(_ context.Context, _ int64) (bool, error) {
	return m.registered, nil
}

func (m *mockRegistrationStore) AnyWithStatus(_ context.Context, _ ...models.RegistrationStatus) (bool, error) {
	return m.hasOpen, nil
}

func (m *mockRegistrationStore) List(_ context.Context, _ url.Values) ([]map[string]interface{}, query.Meta, error) {
	return nil, query.Meta{}, nil
}

func (m *mockRegistrationStore) Update(_ context.Context, reg *models.SemesterRegistration) error {
	m.updated = reg
	return nil
}

func registrationRequest() *dto.CreateSemesterRegistrationRequest {
	return &dto.CreateSemesterRegistrationRequest{
		AcademicSemesterID: 1,
		Status:             models.RegistrationUpcoming,
		StartDate:          time.Now(),
		EndDate:            time.Now().AddDate(0, 1, 0),
		MinCredit:          3,
		MaxCredit:          15,
	}
}

func newRegistrationService(store *mockRegistrationStore) SemesterRegistrationService {
	return NewSemesterRegistrationService(store, &mockSemesterStore{byID: map[int64]*models.AcademicSemester{
		1: {ID: 1, Name: models.SemesterAutumn, Year: "2025", Code: "01"},
	}})
}

func TestCreateSemesterRegistration(t *testing.T) {
	service := newRegistrationService(&mockRegistrationStore{})

	reg, err := service.Create(context.Background(), registrationRequest())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if reg.AcademicSemester == nil || reg.AcademicSemester.ID != 1 {
		t.Error("expected the semester relation to be populated")
	}
}

func TestCreateSemesterRegistrationAlreadyOpen(t *testing.T) {
	service := newRegistrationService(&mockRegistrationStore{hasOpen: true})

	_, err := service.Create(context.Background(), registrationRequest())
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected conflict error, got %v", err)
	}
}

func TestCreateSemesterRegistrationDuplicateSemester(t *testing.T) {
	service := newRegistrationService(&mockRegistrationStore{registered: true})

	_, err := service.Create(context.Background(), registrationRequest())
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected conflict error, got %v", err)
	}
}

func TestUpdateSemesterRegistrationStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    models.RegistrationStatus
		to      models.RegistrationStatus
		wantErr bool
	}{
		{"upcoming to ongoing", models.RegistrationUpcoming, models.RegistrationOngoing, false},
		{"ongoing to ended", models.RegistrationOngoing, models.RegistrationEnded, false},
		{"upcoming cannot skip to ended", models.RegistrationUpcoming, models.RegistrationEnded, true},
		{"ongoing cannot revert", models.RegistrationOngoing, models.RegistrationUpcoming, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockRegistrationStore{byID: map[int64]*models.SemesterRegistration{
				1: {ID: 1, Status: tt.from},
			}}
			service := newRegistrationService(store)

			_, err := service.Update(context.Background(), 1, &dto.UpdateSemesterRegistrationRequest{Status: &tt.to})
			if tt.wantErr && !errors.Is(err, apperrors.ErrInvalidState) {
				t.Errorf("expected state error, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestUpdateSemesterRegistrationEndedIsFrozen(t *testing.T) {
	store := &mockRegistrationStore{byID: map[int64]*models.SemesterRegistration{
		1: {ID: 1, Status: models.RegistrationEnded},
	}}
	service := newRegistrationService(store)

	minCredit := 6
	_, err := service.Update(context.Background(), 1, &dto.UpdateSemesterRegistrationRequest{MinCredit: &minCredit})
	if !errors.Is(err, apperrors.ErrInvalidState) {
		t.Errorf("expected state error for ENDED registration, got %v", err)
	}
}
