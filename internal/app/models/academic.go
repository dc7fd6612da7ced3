package models

import "time"

// AcademicSemester defines the academic semester model based on the
// 'academic_semesters' table. Code must match SemesterCodes[Name].
type AcademicSemester struct {
	ID         int64        `json:"id" db:"id" example:"1"`
	Name       SemesterName `json:"name" db:"name" example:"Autumn"`
	Year       string       `json:"year" db:"year" example:"2025"`
	Code       string       `json:"code" db:"code" example:"01"`
	StartMonth Month        `json:"startMonth" db:"start_month" example:"January"`
	EndMonth   Month        `json:"endMonth" db:"end_month" example:"April"`
	CreatedAt  time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time    `json:"updatedAt" db:"updated_at"`
}

// AcademicFaculty defines an academic faculty (organizational unit, not a person)
type AcademicFaculty struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"Faculty of Engineering"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// AcademicDepartment belongs to exactly one academic faculty
type AcademicDepartment struct {
	ID                int64     `json:"id" db:"id" example:"1"`
	Name              string    `json:"name" db:"name" example:"Computer Science"`
	AcademicFacultyID int64     `json:"academicFacultyId" db:"academic_faculty_id" example:"1"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	AcademicFaculty *AcademicFaculty `json:"academicFaculty,omitempty"`
}
