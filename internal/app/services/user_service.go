package services

import (
	"context"

	"github.com/tanvir/campushub/internal/app/models"
	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/pkg/apperrors"
	"github.com/tanvir/campushub/internal/pkg/auth"
	"github.com/tanvir/campushub/internal/pkg/dberrors"
	"github.com/tanvir/campushub/internal/pkg/identifier"
)

// UserStore is the persistence surface the user service needs
type UserStore interface {
	LastCodeByRole(ctx context.Context, role models.Role) (string, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	CreateWithStudent(ctx context.Context, user *models.User, student *models.Student) error
	CreateWithFaculty(ctx context.Context, user *models.User, faculty *models.Faculty) error
	UpdateStatus(ctx context.Context, userID int64, status models.UserStatus) error
}

// StudentProfileReader resolves a student profile from its owning user
type StudentProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
}

// FacultyByUserReader resolves a faculty profile from its owning user
type FacultyByUserReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Faculty, error)
}

// UserService defines the interface for account provisioning operations
type UserService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error)
	GetMe(ctx context.Context, userID int64, role models.Role) (interface{}, error)
	ChangeStatus(ctx context.Context, userID int64, status models.UserStatus) (*models.User, error)
}

type userServiceImpl struct {
	users           UserStore
	students        StudentProfileReader
	faculties       FacultyByUserReader
	semesters       AcademicSemesterStore
	departments     AcademicDepartmentReader
	defaultPassword string
}

// NewUserService creates a new user service instance. defaultPassword is
// assigned when a creation request carries no password.
func NewUserService(
	users UserStore,
	students StudentProfileReader,
	faculties FacultyByUserReader,
	semesters AcademicSemesterStore,
	departments AcademicDepartmentReader,
	defaultPassword string,
) UserService {
	return &userServiceImpl{
		users:           users,
		students:        students,
		faculties:       faculties,
		semesters:       semesters,
		departments:     departments,
		defaultPassword: defaultPassword,
	}
}

// CreateStudent provisions a user account and student profile atomically.
// The student code is derived from the admission semester and the highest
// code issued so far; the unique index on users.code turns a lost race
// into a conflict instead of a duplicate.
func (s *userServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	semester, err := s.semesters.GetByID(ctx, req.Student.AdmissionSemesterID)
	if err != nil {
		return nil, err
	}
	if semester == nil {
		return nil, apperrors.NewNotFoundError("Admission semester not found")
	}

	dept, err := s.departments.GetByID(ctx, req.Student.AcademicDepartmentID)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, apperrors.NewNotFoundError("Academic department not found")
	}

	lastCode, err := s.users.LastCodeByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}
	code := identifier.NextStudentID(lastCode, semester.Year, semester.Code)

	user, err := s.newUser(code, models.RoleStudent, req.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		Name: models.UserName{
			FirstName:  req.Student.Name.FirstName,
			MiddleName: req.Student.Name.MiddleName,
			LastName:   req.Student.Name.LastName,
		},
		Email:                req.Student.Email,
		ContactNo:            req.Student.ContactNo,
		AdmissionSemesterID:  req.Student.AdmissionSemesterID,
		AcademicDepartmentID: req.Student.AcademicDepartmentID,
	}
	if err := s.users.CreateWithStudent(ctx, user, student); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Generated user code is already taken, please retry")
		}
		return nil, err
	}
	student.User = user
	return student, nil
}

// CreateFaculty provisions a user account and faculty profile atomically
func (s *userServiceImpl) CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	dept, err := s.departments.GetByID(ctx, req.Faculty.AcademicDepartmentID)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, apperrors.NewNotFoundError("Academic department not found")
	}

	lastCode, err := s.users.LastCodeByRole(ctx, models.RoleFaculty)
	if err != nil {
		return nil, err
	}
	code := identifier.NextFacultyID(lastCode)

	user, err := s.newUser(code, models.RoleFaculty, req.Password)
	if err != nil {
		return nil, err
	}

	faculty := &models.Faculty{
		Name: models.UserName{
			FirstName:  req.Faculty.Name.FirstName,
			MiddleName: req.Faculty.Name.MiddleName,
			LastName:   req.Faculty.Name.LastName,
		},
		Designation:          req.Faculty.Designation,
		Email:                req.Faculty.Email,
		ContactNo:            req.Faculty.ContactNo,
		AcademicDepartmentID: req.Faculty.AcademicDepartmentID,
	}
	if err := s.users.CreateWithFaculty(ctx, user, faculty); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Generated user code is already taken, please retry")
		}
		return nil, err
	}
	faculty.User = user
	return faculty, nil
}

// GetMe returns the caller's own profile for their role. Admins have no
// separate profile record and get the bare account back.
func (s *userServiceImpl) GetMe(ctx context.Context, userID int64, role models.Role) (interface{}, error) {
	switch role {
	case models.RoleStudent:
		student, err := s.students.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if student == nil {
			return nil, apperrors.NewNotFoundError("Student profile not found")
		}
		return student, nil
	case models.RoleFaculty:
		faculty, err := s.faculties.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if faculty == nil {
			return nil, apperrors.NewNotFoundError("Faculty profile not found")
		}
		return faculty, nil
	default:
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return user, nil
	}
}

// ChangeStatus blocks or unblocks an account
func (s *userServiceImpl) ChangeStatus(ctx context.Context, userID int64, status models.UserStatus) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFoundError("User not found")
	}

	if err := s.users.UpdateStatus(ctx, userID, status); err != nil {
		return nil, err
	}
	user.Status = status
	return user, nil
}

func (s *userServiceImpl) newUser(code string, role models.Role, password *string) (*models.User, error) {
	plain := s.defaultPassword
	needsChange := true
	if password != nil {
		plain = *password
		needsChange = false
	}
	hash, err := auth.HashPassword(plain)
	if err != nil {
		return nil, err
	}
	return &models.User{
		Code:                code,
		Role:                role,
		Password:            hash,
		NeedsPasswordChange: needsChange,
		Status:              models.UserStatusInProgress,
	}, nil
}
