package models

// Role defines the user role type
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
)

// UserStatus controls whether an account may authenticate
type UserStatus string

const (
	UserStatusInProgress UserStatus = "in-progress"
	UserStatusBlocked    UserStatus = "blocked"
)

// SemesterName is the academic semester name enum
type SemesterName string

const (
	SemesterAutumn SemesterName = "Autumn"
	SemesterSummer SemesterName = "Summer"
	SemesterFall   SemesterName = "Fall"
)

// SemesterCodes maps each semester name to its canonical two-digit code.
// An AcademicSemester whose code disagrees with this mapping is invalid.
var SemesterCodes = map[SemesterName]string{
	SemesterAutumn: "01",
	SemesterSummer: "02",
	SemesterFall:   "03",
}

// Month names used for semester start/end boundaries
type Month string

const (
	MonthJanuary   Month = "January"
	MonthFebruary  Month = "February"
	MonthMarch     Month = "March"
	MonthApril     Month = "April"
	MonthMay       Month = "May"
	MonthJune      Month = "June"
	MonthJuly      Month = "July"
	MonthAugust    Month = "August"
	MonthSeptember Month = "September"
	MonthOctober   Month = "October"
	MonthNovember  Month = "November"
	MonthDecember  Month = "December"
)

// WeekDay is a day an offered course section meets
type WeekDay string

const (
	DaySaturday  WeekDay = "Sat"
	DaySunday    WeekDay = "Sun"
	DayMonday    WeekDay = "Mon"
	DayTuesday   WeekDay = "Tue"
	DayWednesday WeekDay = "Wed"
	DayThursday  WeekDay = "Thu"
	DayFriday    WeekDay = "Fri"
)

// RegistrationStatus is the semester registration lifecycle gate.
// Offered courses tied to a registration may only be mutated while
// the registration is UPCOMING.
type RegistrationStatus string

const (
	RegistrationUpcoming RegistrationStatus = "UPCOMING"
	RegistrationOngoing  RegistrationStatus = "ONGOING"
	RegistrationEnded    RegistrationStatus = "ENDED"
)
