package dto

import (
	"time"

	"github.com/tanvir/campushub/internal/app/models"
)

// CreateCourseRequest is the payload for creating a catalog course
type CreateCourseRequest struct {
	Title   string `json:"title" binding:"required" validate:"min=3,max=160" example:"Data Structures"`
	Prefix  string `json:"prefix" binding:"required" validate:"min=2,max=10,uppercase" example:"CSE"`
	Code    int    `json:"code" binding:"required" validate:"gt=0" example:"205"`
	Credits int    `json:"credits" binding:"required" validate:"gt=0,lte=6" example:"3"`
}

// UpdateCourseRequest is a partial catalog course update
type UpdateCourseRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=3,max=160"`
	Prefix  *string `json:"prefix,omitempty" validate:"omitempty,min=2,max=10,uppercase"`
	Code    *int    `json:"code,omitempty" validate:"omitempty,gt=0"`
	Credits *int    `json:"credits,omitempty" validate:"omitempty,gt=0,lte=6"`
}

// CreateSemesterRegistrationRequest opens registration for an academic semester
type CreateSemesterRegistrationRequest struct {
	AcademicSemesterID int64                     `json:"academicSemesterId" binding:"required" validate:"gt=0" example:"1"`
	Status             models.RegistrationStatus `json:"status" binding:"required" validate:"oneof=UPCOMING ONGOING ENDED" example:"UPCOMING"`
	StartDate          time.Time                 `json:"startDate" binding:"required"`
	EndDate            time.Time                 `json:"endDate" binding:"required"`
	MinCredit          int                       `json:"minCredit" binding:"required" validate:"gt=0" example:"3"`
	MaxCredit          int                       `json:"maxCredit" binding:"required" validate:"gt=0" example:"15"`
}

// UpdateSemesterRegistrationRequest is a partial registration update.
// Status may only move forward (UPCOMING -> ONGOING -> ENDED).
type UpdateSemesterRegistrationRequest struct {
	Status    *models.RegistrationStatus `json:"status,omitempty" validate:"omitempty,oneof=UPCOMING ONGOING ENDED"`
	StartDate *time.Time                 `json:"startDate,omitempty"`
	EndDate   *time.Time                 `json:"endDate,omitempty"`
	MinCredit *int                       `json:"minCredit,omitempty" validate:"omitempty,gt=0"`
	MaxCredit *int                       `json:"maxCredit,omitempty" validate:"omitempty,gt=0"`
}
