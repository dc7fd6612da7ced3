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
	"github.com/tanvir/campushub/internal/pkg/schedule"
)

// OfferedCourseStore is the persistence surface the offered course service needs
type OfferedCourseStore interface {
	Create(ctx context.Context, oc *models.OfferedCourse) error
	GetByID(ctx context.Context, id int64) (*models.OfferedCourse, error)
	ExistsBySection(ctx context.Context, registrationID, courseID int64, section int) (bool, error)
	SchedulesForFaculty(ctx context.Context, registrationID, facultyID, excludeID int64) ([]schedule.Slot, error)
	List(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error)
	UpdateSchedule(ctx context.Context, id, facultyID int64, days []models.WeekDay, startTime, endTime string) (*models.OfferedCourse, error)
	Delete(ctx context.Context, id int64) error
}

// RegistrationReader resolves semester registrations and their status
type RegistrationReader interface {
	GetByID(ctx context.Context, id int64) (*models.SemesterRegistration, error)
	GetStatus(ctx context.Context, id int64) (models.RegistrationStatus, error)
}

// AcademicFacultyReader resolves academic faculties
type AcademicFacultyReader interface {
	GetByID(ctx context.Context, id int64) (*models.AcademicFaculty, error)
}

// AcademicDepartmentReader resolves academic departments and their faculty membership
type AcademicDepartmentReader interface {
	GetByID(ctx context.Context, id int64) (*models.AcademicDepartment, error)
	BelongsToFaculty(ctx context.Context, deptID, facultyID int64) (bool, error)
}

// FacultyProfileReader resolves faculty member profiles
type FacultyProfileReader interface {
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
}

// CourseReader resolves catalog courses
type CourseReader interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// OfferedCourseService defines the interface for offered course operations
type OfferedCourseService interface {
	Create(ctx context.Context, req *dto.CreateOfferedCourseRequest) (*models.OfferedCourse, error)
	GetAll(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error)
	GetByID(ctx context.Context, id int64) (*models.OfferedCourse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateOfferedCourseRequest) (*models.OfferedCourse, error)
	Delete(ctx context.Context, id int64) error
}

type offeredCourseServiceImpl struct {
	offeredCourses OfferedCourseStore
	registrations  RegistrationReader
	academicFacs   AcademicFacultyReader
	academicDepts  AcademicDepartmentReader
	faculties      FacultyProfileReader
	courses        CourseReader
}

// NewOfferedCourseService creates a new offered course service instance
func NewOfferedCourseService(
	offeredCourses OfferedCourseStore,
	registrations RegistrationReader,
	academicFacs AcademicFacultyReader,
	academicDepts AcademicDepartmentReader,
	faculties FacultyProfileReader,
	courses CourseReader,
) OfferedCourseService {
	return &offeredCourseServiceImpl{
		offeredCourses: offeredCourses,
		registrations:  registrations,
		academicFacs:   academicFacs,
		academicDepts:  academicDepts,
		faculties:      faculties,
		courses:        courses,
	}
}

// Create validates every reference in order, rejects duplicate sections
// and schedule conflicts, then persists. The denormalized academic
// semester is copied from the registration here and never recomputed.
func (s *offeredCourseServiceImpl) Create(ctx context.Context, req *dto.CreateOfferedCourseRequest) (*models.OfferedCourse, error) {
	reg, err := s.registrations.GetByID(ctx, req.SemesterRegistrationID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, apperrors.NewNotFoundError("Semester registration not found")
	}
	if reg.Status != models.RegistrationUpcoming {
		return nil, apperrors.NewStateError(
			fmt.Sprintf("Cannot offer a course in a registration that is %s", reg.Status))
	}

	academicFaculty, err := s.academicFacs.GetByID(ctx, req.AcademicFacultyID)
	if err != nil {
		return nil, err
	}
	if academicFaculty == nil {
		return nil, apperrors.NewNotFoundError("Academic faculty not found")
	}

	academicDepartment, err := s.academicDepts.GetByID(ctx, req.AcademicDepartmentID)
	if err != nil {
		return nil, err
	}
	if academicDepartment == nil {
		return nil, apperrors.NewNotFoundError("Academic department not found")
	}

	faculty, err := s.faculties.GetByID(ctx, req.FacultyID)
	if err != nil {
		return nil, err
	}
	if faculty == nil {
		return nil, apperrors.NewNotFoundError("Faculty not found")
	}

	course, err := s.courses.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperrors.NewNotFoundError("Course not found")
	}

	belongs, err := s.academicDepts.BelongsToFaculty(ctx, req.AcademicDepartmentID, req.AcademicFacultyID)
	if err != nil {
		return nil, err
	}
	if !belongs {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("%s does not belong to %s", academicDepartment.Name, academicFaculty.Name))
	}

	taken, err := s.offeredCourses.ExistsBySection(ctx, req.SemesterRegistrationID, req.CourseID, req.Section)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewConflictError("Offered course with the same section already exists")
	}

	if err := s.checkScheduleConflict(ctx, req.SemesterRegistrationID, req.FacultyID, 0, req.Days, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	oc := &models.OfferedCourse{
		SemesterRegistrationID: req.SemesterRegistrationID,
		AcademicSemesterID:     reg.AcademicSemesterID,
		AcademicFacultyID:      req.AcademicFacultyID,
		AcademicDepartmentID:   req.AcademicDepartmentID,
		CourseID:               req.CourseID,
		FacultyID:              req.FacultyID,
		Section:                req.Section,
		MaxCapacity:            req.MaxCapacity,
		Days:                   req.Days,
		StartTime:              req.StartTime,
		EndTime:                req.EndTime,
	}
	if err := s.offeredCourses.Create(ctx, oc); err != nil {
		// The composite unique index closes the check-then-insert race.
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Offered course with the same section already exists")
		}
		return nil, err
	}
	return oc, nil
}

// GetAll lists offered courses through the generic query pipeline
func (s *offeredCourseServiceImpl) GetAll(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error) {
	return s.offeredCourses.List(ctx, values)
}

// GetByID retrieves a single offered course
func (s *offeredCourseServiceImpl) GetByID(ctx context.Context, id int64) (*models.OfferedCourse, error) {
	oc, err := s.offeredCourses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if oc == nil {
		return nil, apperrors.NewNotFoundError("Offered course not found")
	}
	return oc, nil
}

// Update re-validates the faculty, requires the owning registration to be
// UPCOMING, and re-runs the conflict check against all other schedules of
// that faculty in the registration, excluding the record being updated.
func (s *offeredCourseServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateOfferedCourseRequest) (*models.OfferedCourse, error) {
	oc, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	faculty, err := s.faculties.GetByID(ctx, req.FacultyID)
	if err != nil {
		return nil, err
	}
	if faculty == nil {
		return nil, apperrors.NewNotFoundError("Faculty not found")
	}

	if err := s.requireUpcoming(ctx, oc.SemesterRegistrationID, "update"); err != nil {
		return nil, err
	}

	if err := s.checkScheduleConflict(ctx, oc.SemesterRegistrationID, req.FacultyID, id, req.Days, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	return s.offeredCourses.UpdateSchedule(ctx, id, req.FacultyID, req.Days, req.StartTime, req.EndTime)
}

// Delete removes an offered course while its registration is still UPCOMING
func (s *offeredCourseServiceImpl) Delete(ctx context.Context, id int64) error {
	oc, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireUpcoming(ctx, oc.SemesterRegistrationID, "delete"); err != nil {
		return err
	}
	return s.offeredCourses.Delete(ctx, id)
}

func (s *offeredCourseServiceImpl) requireUpcoming(ctx context.Context, registrationID int64, action string) error {
	status, err := s.registrations.GetStatus(ctx, registrationID)
	if err != nil {
		return err
	}
	if status != models.RegistrationUpcoming {
		return apperrors.NewStateError(
			fmt.Sprintf("Cannot %s this offered course as its semester registration is %s", action, status))
	}
	return nil
}

func (s *offeredCourseServiceImpl) checkScheduleConflict(ctx context.Context, registrationID, facultyID, excludeID int64, days []models.WeekDay, startTime, endTime string) error {
	assigned, err := s.offeredCourses.SchedulesForFaculty(ctx, registrationID, facultyID, excludeID)
	if err != nil {
		return err
	}
	candidate := schedule.Slot{Days: days, StartTime: startTime, EndTime: endTime}
	if schedule.HasConflict(assigned, candidate) {
		return apperrors.NewConflictError("This faculty is not available at that time, choose another time or day")
	}
	return nil
}
