package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository                 *UserRepository
	StudentRepository              *StudentRepository
	FacultyRepository              *FacultyRepository
	TokenRepository                *TokenRepository
	AcademicSemesterRepository     *AcademicSemesterRepository
	AcademicFacultyRepository      *AcademicFacultyRepository
	AcademicDepartmentRepository   *AcademicDepartmentRepository
	CourseRepository               *CourseRepository
	SemesterRegistrationRepository *SemesterRegistrationRepository
	OfferedCourseRepository        *OfferedCourseRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:                 NewUserRepository(db),
		StudentRepository:              NewStudentRepository(db),
		FacultyRepository:              NewFacultyRepository(db),
		TokenRepository:                NewTokenRepository(db),
		AcademicSemesterRepository:     NewAcademicSemesterRepository(db),
		AcademicFacultyRepository:      NewAcademicFacultyRepository(db),
		AcademicDepartmentRepository:   NewAcademicDepartmentRepository(db),
		CourseRepository:               NewCourseRepository(db),
		SemesterRegistrationRepository: NewSemesterRegistrationRepository(db),
		OfferedCourseRepository:        NewOfferedCourseRepository(db),
	}
}
