// Package schedule decides whether a proposed course time slot collides
// with slots already assigned to the same faculty member.
package schedule

import "github.com/tanvir/campushub/internal/app/models"

// Slot is a weekly recurring time range. Times are same-day wall-clock
// "HH:mm" strings; cross-midnight ranges are not representable.
type Slot struct {
	Days      []models.WeekDay
	StartTime string
	EndTime   string
}

// HasConflict reports whether candidate overlaps any existing slot.
// Two slots conflict iff they share at least one weekday and their
// half-open intervals [start, end) intersect. "HH:mm" strings order
// lexicographically, so plain string comparison is exact.
func HasConflict(existing []Slot, candidate Slot) bool {
	for _, slot := range existing {
		if !shareDay(slot.Days, candidate.Days) {
			continue
		}
		if slot.StartTime < candidate.EndTime && candidate.StartTime < slot.EndTime {
			return true
		}
	}
	return false
}

func shareDay(a, b []models.WeekDay) bool {
	for _, da := range a {
		for _, db := range b {
			if da == db {
				return true
			}
		}
	}
	return false
}
