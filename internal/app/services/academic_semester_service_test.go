package services

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/tanvir/campushub/internal/app/models"
	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/pkg/apperrors"
	"github.com/tanvir/campushub/internal/pkg/query"
)

type mockSemesterStore struct {
	byID    map[int64]*models.AcademicSemester
	exists  bool
	created *models.AcademicSemester
	updated *models.AcademicSemester
}

func (m *mockSemesterStore) Create(_ context.Context, semester *models.AcademicSemester) error {
	semester.ID = 1
	m.created = semester
	return nil
}

func (m *mockSemesterStore) GetByID(_ context.Context, id int64) (*models.AcademicSemester, error) {
	return m.byID[id], nil
}

func (m *mockSemesterStore) ExistsByYearAndName(_ context.Context, _ string, _ models.SemesterName) (bool, error) {
	return m.exists, nil
}

func (m *mockSemesterStore) List(_ context.Context, _ url.Values) ([]map[string]interface{}, query.Meta, error) {
	return nil, query.Meta{}, nil
}

func (m *mockSemesterStore) Update(_ context.Context, semester *models.AcademicSemester) error {
	m.updated = semester
	return nil
}

func validSemesterRequest() *dto.CreateAcademicSemesterRequest {
	return &dto.CreateAcademicSemesterRequest{
		Name:       models.SemesterAutumn,
		Year:       "2025",
		Code:       "01",
		StartMonth: models.MonthJanuary,
		EndMonth:   models.MonthApril,
	}
}

func TestCreateAcademicSemester(t *testing.T) {
	store := &mockSemesterStore{byID: map[int64]*models.AcademicSemester{}}
	service := NewAcademicSemesterService(store)

	semester, err := service.Create(context.Background(), validSemesterRequest())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if semester.Name != models.SemesterAutumn || semester.Code != "01" {
		t.Errorf("unexpected semester %+v", semester)
	}
}

func TestCreateAcademicSemesterCodeMismatch(t *testing.T) {
	service := NewAcademicSemesterService(&mockSemesterStore{})

	for _, tc := range []struct {
		name models.SemesterName
		code string
	}{
		{models.SemesterAutumn, "02"},
		{models.SemesterSummer, "01"},
		{models.SemesterFall, "02"},
	} {
		req := validSemesterRequest()
		req.Name = tc.name
		req.Code = tc.code
		_, err := service.Create(context.Background(), req)
		if !errors.Is(err, apperrors.ErrInvalidSemesterCode) {
			t.Errorf("Create(%s, %s): expected invalid semester code error, got %v", tc.name, tc.code, err)
		}
	}
}

func TestCreateAcademicSemesterDuplicate(t *testing.T) {
	service := NewAcademicSemesterService(&mockSemesterStore{exists: true})

	_, err := service.Create(context.Background(), validSemesterRequest())
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected conflict error, got %v", err)
	}
}

func TestUpdateAcademicSemesterRevalidatesPairing(t *testing.T) {
	store := &mockSemesterStore{byID: map[int64]*models.AcademicSemester{
		1: {ID: 1, Name: models.SemesterAutumn, Year: "2025", Code: "01"},
	}}
	service := NewAcademicSemesterService(store)

	// Changing only the name leaves the stored code stale
	name := models.SemesterSummer
	_, err := service.Update(context.Background(), 1, &dto.UpdateAcademicSemesterRequest{Name: &name})
	if !errors.Is(err, apperrors.ErrInvalidSemesterCode) {
		t.Errorf("expected invalid semester code error, got %v", err)
	}

	// Changing name and code together is accepted
	store.byID[1].Code = "01"
	store.byID[1].Name = models.SemesterAutumn
	code := "02"
	updated, err := service.Update(context.Background(), 1, &dto.UpdateAcademicSemesterRequest{Name: &name, Code: &code})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated.Name != models.SemesterSummer || updated.Code != "02" {
		t.Errorf("unexpected update result %+v", updated)
	}
}

func TestUpdateAcademicSemesterNotFound(t *testing.T) {
	service := NewAcademicSemesterService(&mockSemesterStore{byID: map[int64]*models.AcademicSemester{}})

	_, err := service.Update(context.Background(), 5, &dto.UpdateAcademicSemesterRequest{})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
