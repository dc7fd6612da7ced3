// Package identifier derives the next human-readable user code from the
// most recently generated one. Codes are sequential, not random; uniqueness
// under concurrent creation is enforced by the users.code unique constraint,
// these functions only compute the candidate.
package identifier

import (
	"fmt"
	"strconv"
)

const sequenceWidth = 4

// FacultyPrefix is the fixed prefix of generated faculty codes.
const FacultyPrefix = "F-"

// AdminPrefix is the fixed prefix of generated admin codes.
const AdminPrefix = "A-"

// NextStudentID produces the next student code for the given admission
// year and semester code. Format: YYYY + 2-digit semester code + 4-digit
// zero-padded sequence, e.g. 2025010001. The sequence continues from
// lastID only when its embedded year and semester code match the new
// admission's; otherwise (including no prior student) it restarts at 0001.
func NextStudentID(lastID, year, code string) string {
	seq := 0
	if len(lastID) == 10 && lastID[:4] == year && lastID[4:6] == code {
		if n, err := strconv.Atoi(lastID[6:]); err == nil {
			seq = n
		}
	}
	return fmt.Sprintf("%s%s%0*d", year, code, sequenceWidth, seq+1)
}

// NextFacultyID produces the next faculty code, monotonically increasing
// across all faculty regardless of semester. Format: F-0001.
func NextFacultyID(lastID string) string {
	return nextPrefixedID(FacultyPrefix, lastID)
}

// NextAdminID produces the next admin code. Format: A-0001.
func NextAdminID(lastID string) string {
	return nextPrefixedID(AdminPrefix, lastID)
}

func nextPrefixedID(prefix, lastID string) string {
	seq := 0
	if len(lastID) == len(prefix)+sequenceWidth && lastID[:len(prefix)] == prefix {
		if n, err := strconv.Atoi(lastID[len(prefix):]); err == nil {
			seq = n
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, sequenceWidth, seq+1)
}
