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
	"github.com/tanvir/campushub/internal/pkg/schedule"
)

type mockOfferedCourseStore struct {
	byID          map[int64]*models.OfferedCourse
	sectionTaken  bool
	schedules     []schedule.Slot
	created       *models.OfferedCourse
	lastExcludeID int64
	updated       *models.OfferedCourse
	deletedID     int64
}

func (m *mockOfferedCourseStore) Create(_ context.Context, oc *models.OfferedCourse) error {
	oc.ID = 99
	m.created = oc
	return nil
}

func (m *mockOfferedCourseStore) GetByID(_ context.Context, id int64) (*models.OfferedCourse, error) {
	return m.byID[id], nil
}

func (m *mockOfferedCourseStore) ExistsBySection(_ context.Context, _, _ int64, _ int) (bool, error) {
	return m.sectionTaken, nil
}

func (m *mockOfferedCourseStore) SchedulesForFaculty(_ context.Context, _, _, excludeID int64) ([]schedule.Slot, error) {
	m.lastExcludeID = excludeID
	return m.schedules, nil
}

func (m *mockOfferedCourseStore) List(_ context.Context, _ url.Values) ([]map[string]interface{}, query.Meta, error) {
	return nil, query.Meta{}, nil
}

func (m *mockOfferedCourseStore) UpdateSchedule(_ context.Context, id, facultyID int64, days []models.WeekDay, startTime, endTime string) (*models.OfferedCourse, error) {
	oc := *m.byID[id]
	oc.FacultyID = facultyID
	oc.Days = days
	oc.StartTime = startTime
	oc.EndTime = endTime
	m.updated = &oc
	return &oc, nil
}

func (m *mockOfferedCourseStore) Delete(_ context.Context, id int64) error {
	m.deletedID = id
	return nil
}

type mockRegistrationReader struct {
	regs map[int64]*models.SemesterRegistration
}

func (m *mockRegistrationReader) GetByID(_ context.Context, id int64) (*models.SemesterRegistration, error) {
	return m.regs[id], nil
}

func (m *mockRegistrationReader) GetStatus(_ context.Context, id int64) (models.RegistrationStatus, error) {
	if reg := m.regs[id]; reg != nil {
		return reg.Status, nil
	}
	return "", errors.New("registration missing")
}

type mockAcademicFacultyReader struct {
	byID map[int64]*models.AcademicFaculty
}

func (m *mockAcademicFacultyReader) GetByID(_ context.Context, id int64) (*models.AcademicFaculty, error) {
	return m.byID[id], nil
}

type mockAcademicDepartmentReader struct {
	byID    map[int64]*models.AcademicDepartment
	belongs bool
}

func (m *mockAcademicDepartmentReader) GetByID(_ context.Context, id int64) (*models.AcademicDepartment, error) {
	return m.byID[id], nil
}

func (m *mockAcademicDepartmentReader) BelongsToFaculty(_ context.Context, _, _ int64) (bool, error) {
	return m.belongs, nil
}

type mockFacultyProfileReader struct {
	byID map[int64]*models.Faculty
}

func (m *mockFacultyProfileReader) GetByID(_ context.Context, id int64) (*models.Faculty, error) {
	return m.byID[id], nil
}

type mockCourseReader struct {
	byID map[int64]*models.Course
}

func (m *mockCourseReader) GetByID(_ context.Context, id int64) (*models.Course, error) {
	return m.byID[id], nil
}

type offeredCourseFixture struct {
	store     *mockOfferedCourseStore
	regs      *mockRegistrationReader
	service   OfferedCourseService
	createReq *dto.CreateOfferedCourseRequest
}

func newOfferedCourseFixture() *offeredCourseFixture {
	store := &mockOfferedCourseStore{byID: map[int64]*models.OfferedCourse{}}
	regs := &mockRegistrationReader{regs: map[int64]*models.SemesterRegistration{
		1: {ID: 1, AcademicSemesterID: 7, Status: models.RegistrationUpcoming},
	}}
	service := NewOfferedCourseService(
		store,
		regs,
		&mockAcademicFacultyReader{byID: map[int64]*models.AcademicFaculty{2: {ID: 2, Name: "Faculty of Engineering"}}},
		&mockAcademicDepartmentReader{
			byID:    map[int64]*models.AcademicDepartment{3: {ID: 3, Name: "Computer Science"}},
			belongs: true,
		},
		&mockFacultyProfileReader{byID: map[int64]*models.Faculty{4: {ID: 4}}},
		&mockCourseReader{byID: map[int64]*models.Course{5: {ID: 5}}},
	)
	return &offeredCourseFixture{
		store:   store,
		regs:    regs,
		service: service,
		createReq: &dto.CreateOfferedCourseRequest{
			SemesterRegistrationID: 1,
			AcademicFacultyID:      2,
			AcademicDepartmentID:   3,
			CourseID:               5,
			FacultyID:              4,
			Section:                1,
			MaxCapacity:            40,
			Days:                   []models.WeekDay{models.DayMonday},
			StartTime:              "10:00",
			EndTime:                "11:30",
		},
	}
}

func TestCreateOfferedCourse(t *testing.T) {
	f := newOfferedCourseFixture()

	oc, err := f.service.Create(context.Background(), f.createReq)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if oc.AcademicSemesterID != 7 {
		t.Errorf("academic semester not denormalized from registration, got %d", oc.AcademicSemesterID)
	}
	if f.store.lastExcludeID != 0 {
		t.Errorf("create must not exclude any record from conflict check, got %d", f.store.lastExcludeID)
	}
}

func TestCreateOfferedCourseRegistrationMissing(t *testing.T) {
	f := newOfferedCourseFixture()
	f.createReq.SemesterRegistrationID = 42

	_, err := f.service.Create(context.Background(), f.createReq)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestCreateOfferedCourseRegistrationNotUpcoming(t *testing.T) {
	f := newOfferedCourseFixture()
	f.regs.regs[1].Status = models.RegistrationOngoing

	_, err := f.service.Create(context.Background(), f.createReq)
	if !errors.Is(err, apperrors.ErrInvalidState) {
		t.Errorf("expected state error, got %v", err)
	}
}

func TestCreateOfferedCourseDepartmentMismatch(t *testing.T) {
	f := newOfferedCourseFixture()
	service := NewOfferedCourseService(
		f.store,
		f.regs,
		&mockAcademicFacultyReader{byID: map[int64]*models.AcademicFaculty{2: {ID: 2, Name: "Faculty of Engineering"}}},
		&mockAcademicDepartmentReader{
			byID:    map[int64]*models.AcademicDepartment{3: {ID: 3, Name: "Fine Arts"}},
			belongs: false,
		},
		&mockFacultyProfileReader{byID: map[int64]*models.Faculty{4: {ID: 4}}},
		&mockCourseReader{byID: map[int64]*models.Course{5: {ID: 5}}},
	)

	_, err := service.Create(context.Background(), f.createReq)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreateOfferedCourseDuplicateSection(t *testing.T) {
	f := newOfferedCourseFixture()
	f.store.sectionTaken = true

	_, err := f.service.Create(context.Background(), f.createReq)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected conflict error, got %v", err)
	}
}

func TestCreateOfferedCourseScheduleConflict(t *testing.T) {
	f := newOfferedCourseFixture()
	f.store.schedules = []schedule.Slot{
		{Days: []models.WeekDay{models.DayMonday}, StartTime: "11:00", EndTime: "12:30"},
	}

	_, err := f.service.Create(context.Background(), f.createReq)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected conflict error, got %v", err)
	}
}

func TestUpdateOfferedCourseExcludesSelfFromConflictCheck(t *testing.T) {
	f := newOfferedCourseFixture()
	f.store.byID[9] = &models.OfferedCourse{
		ID:                     9,
		SemesterRegistrationID: 1,
		FacultyID:              4,
		Days:                   []models.WeekDay{models.DayMonday},
		StartTime:              "10:00",
		EndTime:                "11:30",
	}

	req := &dto.UpdateOfferedCourseRequest{
		FacultyID: 4,
		Days:      []models.WeekDay{models.DayMonday},
		StartTime: "10:30",
		EndTime:   "12:00",
	}
	if _, err := f.service.Update(context.Background(), 9, req); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if f.store.lastExcludeID != 9 {
		t.Errorf("update conflict check must exclude the updated record, got excludeID %d", f.store.lastExcludeID)
	}
}

func TestUpdateOfferedCourseRegistrationNotUpcoming(t *testing.T) {
	f := newOfferedCourseFixture()
	f.store.byID[9] = &models.OfferedCourse{ID: 9, SemesterRegistrationID: 1, FacultyID: 4}
	f.regs.regs[1].Status = models.RegistrationEnded

	req := &dto.UpdateOfferedCourseRequest{
		FacultyID: 4,
		Days:      []models.WeekDay{models.DayMonday},
		StartTime: "10:00",
		EndTime:   "11:00",
	}
	_, err := f.service.Update(context.Background(), 9, req)
	if !errors.Is(err, apperrors.ErrInvalidState) {
		t.Errorf("expected state error, got %v", err)
	}
}

func TestDeleteOfferedCourse(t *testing.T) {
	f := newOfferedCourseFixture()
	f.store.byID[9] = &models.OfferedCourse{ID: 9, SemesterRegistrationID: 1}

	if err := f.service.Delete(context.Background(), 9); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if f.store.deletedID != 9 {
		t.Errorf("expected record 9 deleted, got %d", f.store.deletedID)
	}

	f.regs.regs[1].Status = models.RegistrationOngoing
	if err := f.service.Delete(context.Background(), 9); !errors.Is(err, apperrors.ErrInvalidState) {
		t.Errorf("expected state error once registration is ONGOING, got %v", err)
	}
}

func TestGetOfferedCourseByIDMissing(t *testing.T) {
	f := newOfferedCourseFixture()
	_, err := f.service.GetByID(context.Background(), 123)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
