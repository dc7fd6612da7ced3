package models

import "time"

// User defines the authentication identity based on the 'users' table.
// Code is the generated human-readable identifier (2025010001, F-0001, A-0001),
// distinct from the storage-assigned primary key. One user maps 1:1 to a
// student or faculty profile; domain attributes live on the profile.
type User struct {
	ID                  int64      `json:"id" db:"id" example:"1"`
	Code                string     `json:"code" db:"code" example:"2025010001"`
	Role                Role       `json:"role" db:"role" example:"student"`
	Password            string     `json:"-" db:"password"`
	NeedsPasswordChange bool       `json:"needsPasswordChange" db:"needs_password_change"`
	Status              UserStatus `json:"status" db:"status" example:"in-progress"`
	IsDeleted           bool       `json:"isDeleted" db:"is_deleted"`
	CreatedAt           time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time  `json:"updatedAt" db:"updated_at"`
}

// UserName is the embedded person name shared by student and faculty profiles
type UserName struct {
	FirstName  string `json:"firstName" db:"first_name" example:"Jesmin"`
	MiddleName string `json:"middleName,omitempty" db:"middle_name"`
	LastName   string `json:"lastName" db:"last_name" example:"Akter"`
}

// Student defines the student profile based on the 'students' table
type Student struct {
	ID                   int64     `json:"id" db:"id" example:"1"`
	Code                 string    `json:"code" db:"code" example:"2025010001"`
	UserID               int64     `json:"userId" db:"user_id" example:"5"`
	Name                 UserName  `json:"name"`
	Email                string    `json:"email" db:"email" example:"student@campushub.edu"`
	ContactNo            string    `json:"contactNo" db:"contact_no"`
	AdmissionSemesterID  int64     `json:"admissionSemesterId" db:"admission_semester_id"`
	AcademicDepartmentID int64     `json:"academicDepartmentId" db:"academic_department_id"`
	IsDeleted            bool      `json:"isDeleted" db:"is_deleted"`
	CreatedAt            time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	User               *User               `json:"user,omitempty"`
	AdmissionSemester  *AcademicSemester   `json:"admissionSemester,omitempty"`
	AcademicDepartment *AcademicDepartment `json:"academicDepartment,omitempty"`
}

// Faculty defines the teaching faculty member profile (a person, unlike
// AcademicFaculty which is an organizational unit)
type Faculty struct {
	ID                   int64     `json:"id" db:"id" example:"1"`
	Code                 string    `json:"code" db:"code" example:"F-0001"`
	UserID               int64     `json:"userId" db:"user_id" example:"7"`
	Name                 UserName  `json:"name"`
	Designation          string    `json:"designation" db:"designation" example:"Lecturer"`
	Email                string    `json:"email" db:"email" example:"faculty@campushub.edu"`
	ContactNo            string    `json:"contactNo" db:"contact_no"`
	AcademicDepartmentID int64     `json:"academicDepartmentId" db:"academic_department_id"`
	IsDeleted            bool      `json:"isDeleted" db:"is_deleted"`
	CreatedAt            time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	User               *User               `json:"user,omitempty"`
	AcademicDepartment *AcademicDepartment `json:"academicDepartment,omitempty"`
}
