package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tanvir/campushub/internal/app/models"
	"github.com/tanvir/campushub/internal/pkg/query"
	"github.com/tanvir/campushub/internal/pkg/schedule"
)

var offeredCourseQueryConfig = query.Config{
	Fields: []string{
		"id", "semesterRegistrationId", "academicSemesterId", "academicFacultyId",
		"academicDepartmentId", "courseId", "facultyId", "section", "maxCapacity",
		"days", "startTime", "endTime", "createdAt", "updatedAt",
	},
	Columns: map[string]string{
		"id":                     "id",
		"semesterRegistrationId": "semester_registration_id",
		"academicSemesterId":     "academic_semester_id",
		"academicFacultyId":      "academic_faculty_id",
		"academicDepartmentId":   "academic_department_id",
		"courseId":               "course_id",
		"facultyId":              "faculty_id",
		"section":                "section",
		"maxCapacity":            "max_capacity",
		"days":                   "days",
		"startTime":              "start_time",
		"endTime":                "end_time",
		"createdAt":              "created_at",
		"updatedAt":              "updated_at",
	},
	DefaultSort: "-createdAt",
}

// OfferedCourseRepository handles database operations for offered courses
type OfferedCourseRepository struct {
	db *pgxpool.Pool
}

// NewOfferedCourseRepository creates a new offered course repository
func NewOfferedCourseRepository(db *pgxpool.Pool) *OfferedCourseRepository {
	return &OfferedCourseRepository{db: db}
}

func daysToStrings(days []models.WeekDay) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = string(d)
	}
	return out
}

func daysFromStrings(raw []string) []models.WeekDay {
	out := make([]models.WeekDay, len(raw))
	for i, d := range raw {
		out[i] = models.WeekDay(d)
	}
	return out
}

// Create inserts a new offered course
func (r *OfferedCourseRepository) Create(ctx context.Context, oc *models.OfferedCourse) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO offered_courses (
			semester_registration_id, academic_semester_id, academic_faculty_id,
			academic_department_id, course_id, faculty_id, section, max_capacity,
			days, start_time, end_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`,
		oc.SemesterRegistrationID, oc.AcademicSemesterID, oc.AcademicFacultyID,
		oc.AcademicDepartmentID, oc.CourseID, oc.FacultyID, oc.Section, oc.MaxCapacity,
		daysToStrings(oc.Days), oc.StartTime, oc.EndTime,
	).Scan(&oc.ID, &oc.CreatedAt, &oc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating offered course: %w", err)
	}
	return nil
}

// GetByID retrieves an offered course by ID
func (r *OfferedCourseRepository) GetByID(ctx context.Context, id int64) (*models.OfferedCourse, error) {
	var oc models.OfferedCourse
	var days []string
	err := r.db.QueryRow(ctx, `
		SELECT id, semester_registration_id, academic_semester_id, academic_faculty_id,
		       academic_department_id, course_id, faculty_id, section, max_capacity,
		       days, start_time, end_time, created_at, updated_at
		FROM offered_courses
		WHERE id = $1`,
		id,
	).Scan(
		&oc.ID, &oc.SemesterRegistrationID, &oc.AcademicSemesterID, &oc.AcademicFacultyID,
		&oc.AcademicDepartmentID, &oc.CourseID, &oc.FacultyID, &oc.Section, &oc.MaxCapacity,
		&days, &oc.StartTime, &oc.EndTime, &oc.CreatedAt, &oc.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving offered course: %w", err)
	}
	oc.Days = daysFromStrings(days)
	return &oc, nil
}

// ExistsBySection checks for a duplicate (registration, course, section) tuple
func (r *OfferedCourseRepository) ExistsBySection(ctx context.Context, registrationID, courseID int64, section int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM offered_courses
			WHERE semester_registration_id = $1 AND course_id = $2 AND section = $3
		)`,
		registrationID, courseID, section).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking offered course section: %w", err)
	}
	return exists, nil
}

// SchedulesForFaculty returns the schedules already assigned to the faculty
// member within the registration. excludeID removes the record being
// updated from the set so an unchanged schedule never conflicts with
// itself; pass 0 when creating.
func (r *OfferedCourseRepository) SchedulesForFaculty(ctx context.Context, registrationID, facultyID, excludeID int64) ([]schedule.Slot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT days, start_time, end_time
		FROM offered_courses
		WHERE semester_registration_id = $1 AND faculty_id = $2 AND id <> $3`,
		registrationID, facultyID, excludeID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculty schedules: %w", err)
	}
	defer rows.Close()

	var slots []schedule.Slot
	for rows.Next() {
		var days []string
		var slot schedule.Slot
		if err := rows.Scan(&days, &slot.StartTime, &slot.EndTime); err != nil {
			return nil, fmt.Errorf("error scanning faculty schedule: %w", err)
		}
		slot.Days = daysFromStrings(days)
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading faculty schedules: %w", err)
	}
	return slots, nil
}

// List retrieves offered courses through the generic list query pipeline
func (r *OfferedCourseRepository) List(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error) {
	b := query.New("offered_courses", values, offeredCourseQueryConfig).
		Filter().Sort().Paginate().Fields()
	return collectList(ctx, r.db, b)
}

// UpdateSchedule persists the schedulable fields of an offered course
func (r *OfferedCourseRepository) UpdateSchedule(ctx context.Context, id, facultyID int64, days []models.WeekDay, startTime, endTime string) (*models.OfferedCourse, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE offered_courses
		SET faculty_id = $1, days = $2, start_time = $3, end_time = $4, updated_at = NOW()
		WHERE id = $5`,
		facultyID, daysToStrings(days), startTime, endTime, id)
	if err != nil {
		return nil, fmt.Errorf("error updating offered course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}
	return r.GetByID(ctx, id)
}

// Delete removes an offered course
func (r *OfferedCourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM offered_courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting offered course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
