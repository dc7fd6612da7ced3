package dto

import "github.com/tanvir/campushub/internal/app/models"

// NameRequest is the person name shared by student and faculty payloads
type NameRequest struct {
	FirstName  string `json:"firstName" binding:"required" validate:"max=40" example:"Jesmin"`
	MiddleName string `json:"middleName,omitempty" validate:"max=40"`
	LastName   string `json:"lastName" binding:"required" validate:"max=40" example:"Akter"`
}

// CreateStudentRequest creates a user account and its student profile in
// one logical operation. Password is optional; the configured default is
// used when absent and the account is flagged for a forced change.
type CreateStudentRequest struct {
	Password *string        `json:"password,omitempty" validate:"omitempty,min=6,max=20"`
	Student  StudentPayload `json:"student" binding:"required"`
}

// StudentPayload is the profile part of a student creation request
type StudentPayload struct {
	Name                 NameRequest `json:"name" binding:"required"`
	Email                string      `json:"email" binding:"required" validate:"email"`
	ContactNo            string      `json:"contactNo" binding:"required"`
	AdmissionSemesterID  int64       `json:"admissionSemesterId" binding:"required" validate:"gt=0"`
	AcademicDepartmentID int64       `json:"academicDepartmentId" binding:"required" validate:"gt=0"`
}

// CreateFacultyRequest creates a user account and its faculty profile
type CreateFacultyRequest struct {
	Password *string        `json:"password,omitempty" validate:"omitempty,min=6,max=20"`
	Faculty  FacultyPayload `json:"faculty" binding:"required"`
}

// FacultyPayload is the profile part of a faculty creation request
type FacultyPayload struct {
	Name                 NameRequest `json:"name" binding:"required"`
	Designation          string      `json:"designation" binding:"required" validate:"max=60" example:"Lecturer"`
	Email                string      `json:"email" binding:"required" validate:"email"`
	ContactNo            string      `json:"contactNo" binding:"required"`
	AcademicDepartmentID int64       `json:"academicDepartmentId" binding:"required" validate:"gt=0"`
}

// UpdateStudentRequest is a partial student profile update
type UpdateStudentRequest struct {
	Name                 *NameRequest `json:"name,omitempty"`
	Email                *string      `json:"email,omitempty" validate:"omitempty,email"`
	ContactNo            *string      `json:"contactNo,omitempty"`
	AcademicDepartmentID *int64       `json:"academicDepartmentId,omitempty" validate:"omitempty,gt=0"`
}

// UpdateFacultyRequest is a partial faculty profile update
type UpdateFacultyRequest struct {
	Name                 *NameRequest `json:"name,omitempty"`
	Designation          *string      `json:"designation,omitempty" validate:"omitempty,max=60"`
	Email                *string      `json:"email,omitempty" validate:"omitempty,email"`
	ContactNo            *string      `json:"contactNo,omitempty"`
	AcademicDepartmentID *int64       `json:"academicDepartmentId,omitempty" validate:"omitempty,gt=0"`
}

// ChangeUserStatusRequest blocks or unblocks an account
type ChangeUserStatusRequest struct {
	Status models.UserStatus `json:"status" binding:"required" validate:"oneof=in-progress blocked" example:"blocked"`
}
