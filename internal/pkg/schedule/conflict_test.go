package schedule

import (
	"testing"

	"github.com/tanvir/campushub/internal/app/models"
)

func TestHasConflict(t *testing.T) {
	existing := []Slot{
		{Days: []models.WeekDay{models.DayMonday, models.DayWednesday}, StartTime: "10:00", EndTime: "12:00"},
	}

	tests := []struct {
		name      string
		candidate Slot
		want      bool
	}{
		{
			"overlap on shared day",
			Slot{Days: []models.WeekDay{models.DayMonday}, StartTime: "11:00", EndTime: "13:00"},
			true,
		},
		{
			"contained interval",
			Slot{Days: []models.WeekDay{models.DayWednesday}, StartTime: "10:30", EndTime: "11:30"},
			true,
		},
		{
			"identical slot",
			Slot{Days: []models.WeekDay{models.DayMonday}, StartTime: "10:00", EndTime: "12:00"},
			true,
		},
		{
			"same time different day",
			Slot{Days: []models.WeekDay{models.DayTuesday}, StartTime: "10:00", EndTime: "12:00"},
			false,
		},
		{
			"back to back is not a conflict",
			Slot{Days: []models.WeekDay{models.DayMonday}, StartTime: "12:00", EndTime: "14:00"},
			false,
		},
		{
			"ends exactly at existing start",
			Slot{Days: []models.WeekDay{models.DayMonday}, StartTime: "08:00", EndTime: "10:00"},
			false,
		},
		{
			"one shared day among several",
			Slot{Days: []models.WeekDay{models.DayTuesday, models.DayWednesday}, StartTime: "11:00", EndTime: "12:30"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasConflict(existing, tt.candidate); got != tt.want {
				t.Errorf("HasConflict() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasConflictEmptyExisting(t *testing.T) {
	candidate := Slot{Days: []models.WeekDay{models.DayFriday}, StartTime: "09:00", EndTime: "10:00"}
	if HasConflict(nil, candidate) {
		t.Error("no existing slots should never conflict")
	}
}

func TestHasConflictMultipleExisting(t *testing.T) {
	existing := []Slot{
		{Days: []models.WeekDay{models.DaySaturday}, StartTime: "08:00", EndTime: "09:30"},
		{Days: []models.WeekDay{models.DaySunday}, StartTime: "13:00", EndTime: "14:30"},
	}
	candidate := Slot{Days: []models.WeekDay{models.DaySunday}, StartTime: "14:00", EndTime: "15:00"}
	if !HasConflict(existing, candidate) {
		t.Error("expected conflict with second existing slot")
	}
}
