package identifier

import "testing"

func TestNextStudentID(t *testing.T) {
	tests := []struct {
		name   string
		lastID string
		year   string
		code   string
		want   string
	}{
		{"continues matching sequence", "2025010007", "2025", "01", "2025010008"},
		{"restarts on different year", "2024020009", "2025", "01", "2025010001"},
		{"restarts on different semester", "2025010007", "2025", "02", "2025020001"},
		{"first student ever", "", "2025", "01", "2025010001"},
		{"malformed last id restarts", "garbage", "2025", "01", "2025010001"},
		{"rolls into five digits naturally", "2025019999", "2025", "01", "20250110000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStudentID(tt.lastID, tt.year, tt.code); got != tt.want {
				t.Errorf("NextStudentID(%q, %q, %q) = %q, want %q",
					tt.lastID, tt.year, tt.code, got, tt.want)
			}
		})
	}
}

func TestNextFacultyID(t *testing.T) {
	tests := []struct {
		lastID string
		want   string
	}{
		{"", "F-0001"},
		{"F-0042", "F-0043"},
		{"F-9999", "F-10000"},
		{"A-0042", "F-0001"},
	}

	for _, tt := range tests {
		if got := NextFacultyID(tt.lastID); got != tt.want {
			t.Errorf("NextFacultyID(%q) = %q, want %q", tt.lastID, got, tt.want)
		}
	}
}

func TestNextAdminID(t *testing.T) {
	if got := NextAdminID(""); got != "A-0001" {
		t.Errorf("NextAdminID(\"\") = %q, want A-0001", got)
	}
	if got := NextAdminID("A-0001"); got != "A-0002" {
		t.Errorf("NextAdminID(\"A-0001\") = %q, want A-0002", got)
	}
}
