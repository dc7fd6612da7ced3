package models

import "time"

// OfferedCourse is a course section scheduled within one semester
// registration. academic_semester_id is denormalized from the registration
// at creation time and never recomputed.
type OfferedCourse struct {
	ID                     int64     `json:"id" db:"id" example:"1"`
	SemesterRegistrationID int64     `json:"semesterRegistrationId" db:"semester_registration_id" example:"1"`
	AcademicSemesterID     int64     `json:"academicSemesterId" db:"academic_semester_id" example:"1"`
	AcademicFacultyID      int64     `json:"academicFacultyId" db:"academic_faculty_id" example:"1"`
	AcademicDepartmentID   int64     `json:"academicDepartmentId" db:"academic_department_id" example:"1"`
	CourseID               int64     `json:"courseId" db:"course_id" example:"1"`
	FacultyID              int64     `json:"facultyId" db:"faculty_id" example:"1"`
	Section                int       `json:"section" db:"section" example:"1"`
	MaxCapacity            int       `json:"maxCapacity" db:"max_capacity" example:"40"`
	Days                   []WeekDay `json:"days" db:"days"`
	StartTime              string    `json:"startTime" db:"start_time" example:"10:00"`
	EndTime                string    `json:"endTime" db:"end_time" example:"11:30"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt              time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Course               *Course               `json:"course,omitempty"`
	Faculty              *Faculty              `json:"faculty,omitempty"`
	SemesterRegistration *SemesterRegistration `json:"semesterRegistration,omitempty"`
}
