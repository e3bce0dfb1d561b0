package registration

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

type ValidationReason string

const (
	REASON_NAME_TOO_SHORT          ValidationReason = "NAME_TOO_SHORT"
	REASON_INVALID_EMAIL           ValidationReason = "INVALID_EMAIL"
	REASON_INVALID_PHONE           ValidationReason = "INVALID_PHONE"
	REASON_MISSING_ATTENDANCE_MODE ValidationReason = "MISSING_ATTENDANCE_MODE"
	REASON_UNKNOWN_ATTENDANCE_MODE ValidationReason = "UNKNOWN_ATTENDANCE_MODE"
	REASON_TERMS_NOT_ACCEPTED      ValidationReason = "TERMS_NOT_ACCEPTED"
)

const (
	minNameLength  = 3
	minPhoneLength = 10
)

var (
	// Deliberately loose: one @, no whitespace, a dot somewhere after the @.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d+\s()\-]+$`)
)

var validationMessages = map[ValidationReason]string{
	REASON_NAME_TOO_SHORT:          "Please enter your full name",
	REASON_INVALID_EMAIL:           "Please enter a valid email address",
	REASON_INVALID_PHONE:           "Please enter a valid phone number",
	REASON_MISSING_ATTENDANCE_MODE: "Please select an attendance mode",
	REASON_UNKNOWN_ATTENDANCE_MODE: "Please select a valid attendance mode",
	REASON_TERMS_NOT_ACCEPTED:      "You must agree to the terms and conditions",
}

type ValidationError struct {
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message())
}

// Message is the text shown to the attendee next to the form.
func (e *ValidationError) Message() string {
	return validationMessages[e.Reason]
}

func newValidationError(reason ValidationReason) *ValidationError {
	return &ValidationError{Reason: reason}
}

// Validate checks a form at submit time. Rules run in a fixed order and the
// first one that fails is reported.
func Validate(form Form) error {
	if err := validateDetails(form); err != nil {
		return err
	}

	if !form.TermsAccepted {
		return newValidationError(REASON_TERMS_NOT_ACCEPTED)
	}

	return nil
}

// ValidateSubmission is the backend's check of a registration body. The terms
// checkbox never reaches the backend, but the attendance mode must be one the
// event offers.
func ValidateSubmission(form Form) error {
	if err := validateDetails(form); err != nil {
		return err
	}

	if !form.AttendanceMode.Valid() {
		return newValidationError(REASON_UNKNOWN_ATTENDANCE_MODE)
	}

	return nil
}

func validateDetails(form Form) *ValidationError {
	name := strings.TrimSpace(form.FullName)
	if utf8.RuneCountInString(name) < minNameLength {
		return newValidationError(REASON_NAME_TOO_SHORT)
	}

	if !emailPattern.MatchString(strings.TrimSpace(form.Email)) {
		return newValidationError(REASON_INVALID_EMAIL)
	}

	// Length counts separators too, not just digits.
	phone := strings.TrimSpace(form.Phone)
	if !phonePattern.MatchString(phone) || len(phone) < minPhoneLength {
		return newValidationError(REASON_INVALID_PHONE)
	}

	if form.AttendanceMode == "" {
		return newValidationError(REASON_MISSING_ATTENDANCE_MODE)
	}

	return nil
}
