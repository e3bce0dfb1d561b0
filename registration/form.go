package registration

import "strings"

type AttendanceMode string

const (
	IN_PERSON AttendanceMode = "in-person"
	VIRTUAL   AttendanceMode = "virtual"
)

var AttendanceModes = []AttendanceMode{IN_PERSON, VIRTUAL}

func (m AttendanceMode) Valid() bool {
	switch m {
	case IN_PERSON, VIRTUAL:
		return true
	default:
		return false
	}
}

// Form is what an attendee fills in on the signup page. It is built once at
// submit time and not changed afterwards.
type Form struct {
	FullName       string
	Email          string
	Phone          string
	AttendanceMode AttendanceMode
	Church         string
	SpecialNeeds   string
	Newsletter     bool
	TermsAccepted  bool
}

// Trimmed returns the form with surrounding whitespace removed from every text
// field, which is how it is sent to the backend.
func (f Form) Trimmed() Form {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Church = strings.TrimSpace(f.Church)
	f.SpecialNeeds = strings.TrimSpace(f.SpecialNeeds)
	return f
}
