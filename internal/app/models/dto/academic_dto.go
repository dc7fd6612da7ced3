package dto

import "github.com/tanvir/campushub/internal/app/models"

// CreateAcademicSemesterRequest is the payload for creating an academic semester
type CreateAcademicSemesterRequest struct {
	Name       models.SemesterName `json:"name" binding:"required" validate:"oneof=Autumn Summer Fall" example:"Autumn"`
	Year       string              `json:"year" binding:"required" validate:"len=4,numeric" example:"2025"`
	Code       string              `json:"code" binding:"required" validate:"oneof=01 02 03" example:"01"`
	StartMonth models.Month        `json:"startMonth" binding:"required" example:"January"`
	EndMonth   models.Month        `json:"endMonth" binding:"required" example:"April"`
}

// UpdateAcademicSemesterRequest is a partial update; nil fields are untouched
type UpdateAcademicSemesterRequest struct {
	Name       *models.SemesterName `json:"name,omitempty" validate:"omitempty,oneof=Autumn Summer Fall"`
	Year       *string              `json:"year,omitempty" validate:"omitempty,len=4,numeric"`
	Code       *string              `json:"code,omitempty" validate:"omitempty,oneof=01 02 03"`
	StartMonth *models.Month        `json:"startMonth,omitempty"`
	EndMonth   *models.Month        `json:"endMonth,omitempty"`
}

// CreateAcademicFacultyRequest is the payload for creating an academic faculty
type CreateAcademicFacultyRequest struct {
	Name string `json:"name" binding:"required" validate:"min=3,max=120" example:"Faculty of Engineering"`
}

// UpdateAcademicFacultyRequest renames an academic faculty
type UpdateAcademicFacultyRequest struct {
	Name string `json:"name" binding:"required" validate:"min=3,max=120"`
}

// CreateAcademicDepartmentRequest is the payload for creating a department
type CreateAcademicDepartmentRequest struct {
	Name              string `json:"name" binding:"required" validate:"min=3,max=120" example:"Computer Science"`
	AcademicFacultyID int64  `json:"academicFacultyId" binding:"required" validate:"gt=0" example:"1"`
}

// UpdateAcademicDepartmentRequest is a partial department update
type UpdateAcademicDepartmentRequest struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,min=3,max=120"`
	AcademicFacultyID *int64  `json:"academicFacultyId,omitempty" validate:"omitempty,gt=0"`
}
