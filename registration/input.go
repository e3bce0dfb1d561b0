package registration

import (
	"regexp"
	"strings"
)

var phoneInputDisallowed = regexp.MustCompile(`[^\d+\s()\-]`)

// SanitizePhoneInput strips every character a phone field does not accept as
// it is typed: only digits, +, whitespace, -, ( and ) survive.
func SanitizePhoneInput(value string) string {
	return phoneInputDisallowed.ReplaceAllString(value, "")
}

type FieldEvent int

const (
	FIELD_BLUR FieldEvent = iota
	FIELD_INPUT
)

// FieldMarkedInvalid is the live feedback for a single field. On blur a
// required field that is blank gets marked; typing anything non-blank clears
// the mark. It never blocks submission.
func FieldMarkedInvalid(event FieldEvent, required bool, value string, marked bool) bool {
	blank := strings.TrimSpace(value) == ""

	switch event {
	case FIELD_BLUR:
		return required && blank
	case FIELD_INPUT:
		if !blank {
			return false
		}
		return marked
	default:
		return marked
	}
}
