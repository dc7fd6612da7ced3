package dto

import "github.com/tanvir/campushub/internal/app/models"

// CreateOfferedCourseRequest is the payload for offering a course section.
// academicSemesterId is not accepted from the client; it is denormalized
// from the semester registration at creation time.
type CreateOfferedCourseRequest struct {
	SemesterRegistrationID int64            `json:"semesterRegistrationId" binding:"required" validate:"gt=0" example:"1"`
	AcademicFacultyID      int64            `json:"academicFacultyId" binding:"required" validate:"gt=0" example:"1"`
	AcademicDepartmentID   int64            `json:"academicDepartmentId" binding:"required" validate:"gt=0" example:"1"`
	CourseID               int64            `json:"courseId" binding:"required" validate:"gt=0" example:"1"`
	FacultyID              int64            `json:"facultyId" binding:"required" validate:"gt=0" example:"1"`
	Section                int              `json:"section" binding:"required" validate:"gt=0" example:"1"`
	MaxCapacity            int              `json:"maxCapacity" binding:"required" validate:"gt=0" example:"40"`
	Days                   []models.WeekDay `json:"days" binding:"required" validate:"min=1,dive,oneof=Sat Sun Mon Tue Wed Thu Fri"`
	StartTime              string           `json:"startTime" binding:"required" validate:"timeofday" example:"10:00"`
	EndTime                string           `json:"endTime" binding:"required" validate:"timeofday" example:"11:30"`
}

// UpdateOfferedCourseRequest updates the schedulable part of an offered
// course: who teaches it and when. All fields are required because the
// conflict check needs the complete candidate schedule.
type UpdateOfferedCourseRequest struct {
	FacultyID int64            `json:"facultyId" binding:"required" validate:"gt=0" example:"1"`
	Days      []models.WeekDay `json:"days" binding:"required" validate:"min=1,dive,oneof=Sat Sun Mon Tue Wed Thu Fri"`
	StartTime string           `json:"startTime" binding:"required" validate:"timeofday" example:"10:00"`
	EndTime   string           `json:"endTime" binding:"required" validate:"timeofday" example:"11:30"`
}
