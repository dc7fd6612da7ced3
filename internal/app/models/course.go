package models

import "time"

// Course represents a catalog entry offered courses reference.
type Course struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Title     string    `json:"title" db:"title" example:"Data Structures"`
	Prefix    string    `json:"prefix" db:"prefix" example:"CSE"`
	Code      int       `json:"code" db:"code" example:"205"`
	Credits   int       `json:"credits" db:"credits" example:"3"`
	IsDeleted bool      `json:"isDeleted" db:"is_deleted"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// SemesterRegistration drives whether dependent offered courses may be mutated.
type SemesterRegistration struct {
	ID                 int64              `json:"id" db:"id" example:"1"`
	AcademicSemesterID int64              `json:"academicSemesterId" db:"academic_semester_id" example:"1"`
	Status             RegistrationStatus `json:"status" db:"status" example:"UPCOMING"`
	StartDate          time.Time          `json:"startDate" db:"start_date"`
	EndDate            time.Time          `json:"endDate" db:"end_date"`
	MinCredit          int                `json:"minCredit" db:"min_credit" example:"3"`
	MaxCredit          int                `json:"maxCredit" db:"max_credit" example:"15"`
	CreatedAt          time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time          `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	AcademicSemester *AcademicSemester `json:"academicSemester,omitempty"`
}
