package services

import (
	"context"
	"errors"
	"testing"

	"github.com/tanvir/campushub/internal/app/models"
	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/pkg/apperrors"
	"github.com/tanvir/campushub/internal/pkg/auth"
)

type mockUserStore struct {
	lastCodes map[models.Role]string
	byID      map[int64]*models.User
	statuses  map[int64]models.UserStatus
}

func (m *mockUserStore) LastCodeByRole(_ context.Context, role models.Role) (string, error) {
	return m.lastCodes[role], nil
}

func (m *mockUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	return m.byID[id], nil
}

func (m *mockUserStore) CreateWithStudent(_ context.Context, user *models.User, student *models.Student) error {
	user.ID = 10
	student.ID = 20
	student.UserID = user.ID
	student.Code = user.Code
	return nil
}

func (m *mockUserStore) CreateWithFaculty(_ context.Context, user *models.User, faculty *models.Faculty) error {
	user.ID = 11
	faculty.ID = 21
	faculty.UserID = user.ID
	faculty.Code = user.Code
	return nil
}

func (m *mockUserStore) UpdateStatus(_ context.Context, userID int64, status models.UserStatus) error {
	if m.statuses == nil {
		m.statuses = map[int64]models.UserStatus{}
	}
	m.statuses[userID] = status
	return nil
}

type mockStudentProfileReader struct {
	byUserID map[int64]*models.Student
}

func (m *mockStudentProfileReader) GetByUserID(_ context.Context, userID int64) (*models.Student, error) {
	return m.byUserID[userID], nil
}

type mockFacultyByUserReader struct {
	byUserID map[int64]*models.Faculty
}

func (m *mockFacultyByUserReader) GetByUserID(_ context.Context, userID int64) (*models.Faculty, error) {
	return m.byUserID[userID], nil
}

type userFixture struct {
	users   *mockUserStore
	service UserService
}

func newUserFixture(lastStudentCode, lastFacultyCode string) *userFixture {
	users := &mockUserStore{
		lastCodes: map[models.Role]string{
			models.RoleStudent: lastStudentCode,
			models.RoleFaculty: lastFacultyCode,
		},
		byID: map[int64]*models.User{},
	}
	service := NewUserService(
		users,
		&mockStudentProfileReader{byUserID: map[int64]*models.Student{}},
		&mockFacultyByUserReader{byUserID: map[int64]*models.Faculty{}},
		&mockSemesterStore{byID: map[int64]*models.AcademicSemester{
			1: {ID: 1, Name: models.SemesterAutumn, Year: "2025", Code: "01"},
		}},
		&mockAcademicDepartmentReader{byID: map[int64]*models.AcademicDepartment{
			3: {ID: 3, Name: "Computer Science"},
		}},
		"campus#2025",
	)
	return &userFixture{users: users, service: service}
}

func createStudentRequest() *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		Student: dto.StudentPayload{
			Name:                 dto.NameRequest{FirstName: "Jesmin", LastName: "Akter"},
			Email:                "jesmin@campushub.edu",
			ContactNo:            "01700000000",
			AdmissionSemesterID:  1,
			AcademicDepartmentID: 3,
		},
	}
}

func TestCreateStudentGeneratesSequentialCode(t *testing.T) {
	f := newUserFixture("2025010007", "")

	student, err := f.service.CreateStudent(context.Background(), createStudentRequest())
	if err != nil {
		t.Fatalf("CreateStudent() error: %v", err)
	}
	if student.Code != "2025010008" {
		t.Errorf("expected code 2025010008, got %s", student.Code)
	}
	if student.User == nil || !student.User.NeedsPasswordChange {
		t.Error("default-password account must be flagged for password change")
	}
	if !auth.CheckPassword(student.User.Password, "campus#2025") {
		t.Error("stored hash does not match the default password")
	}
}

func TestCreateStudentFirstOfSemester(t *testing.T) {
	f := newUserFixture("", "")

	student, err := f.service.CreateStudent(context.Background(), createStudentRequest())
	if err != nil {
		t.Fatalf("CreateStudent() error: %v", err)
	}
	if student.Code != "2025010001" {
		t.Errorf("expected code 2025010001, got %s", student.Code)
	}
}

func TestCreateStudentWithExplicitPassword(t *testing.T) {
	f := newUserFixture("", "")
	req := createStudentRequest()
	password := "chosen-secret"
	req.Password = &password

	student, err := f.service.CreateStudent(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateStudent() error: %v", err)
	}
	if student.User.NeedsPasswordChange {
		t.Error("explicit-password account must not be flagged for password change")
	}
	if !auth.CheckPassword(student.User.Password, password) {
		t.Error("stored hash does not match the chosen password")
	}
}

func TestCreateStudentSemesterMissing(t *testing.T) {
	f := newUserFixture("", "")
	req := createStudentRequest()
	req.Student.AdmissionSemesterID = 42

	_, err := f.service.CreateStudent(context.Background(), req)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestCreateFacultyGeneratesPrefixedCode(t *testing.T) {
	f := newUserFixture("", "F-0042")

	faculty, err := f.service.CreateFaculty(context.Background(), &dto.CreateFacultyRequest{
		Faculty: dto.FacultyPayload{
			Name:                 dto.NameRequest{FirstName: "Rafiq", LastName: "Islam"},
			Designation:          "Lecturer",
			Email:                "rafiq@campushub.edu",
			ContactNo:            "01800000000",
			AcademicDepartmentID: 3,
		},
	})
	if err != nil {
		t.Fatalf("CreateFaculty() error: %v", err)
	}
	if faculty.Code != "F-0043" {
		t.Errorf("expected code F-0043, got %s", faculty.Code)
	}
	if faculty.User.Role != models.RoleFaculty {
		t.Errorf("expected faculty role, got %s", faculty.User.Role)
	}
}

func TestChangeStatus(t *testing.T) {
	f := newUserFixture("", "")
	f.users.byID[7] = &models.User{ID: 7, Status: models.UserStatusInProgress}

	user, err := f.service.ChangeStatus(context.Background(), 7, models.UserStatusBlocked)
	if err != nil {
		t.Fatalf("ChangeStatus() error: %v", err)
	}
	if user.Status != models.UserStatusBlocked || f.users.statuses[7] != models.UserStatusBlocked {
		t.Error("status change not applied")
	}

	if _, err := f.service.ChangeStatus(context.Background(), 99, models.UserStatusBlocked); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
