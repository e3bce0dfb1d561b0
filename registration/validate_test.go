package registration

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{
		FullName:       "Ada Obi",
		Email:          "ada@example.com",
		Phone:          "+234 801 234 5678",
		AttendanceMode: IN_PERSON,
		TermsAccepted:  true,
	}
}

func requireValidationReason(t *testing.T, err error, reason ValidationReason) {
	t.Helper()

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "expected a *ValidationError, got %v", err)
	assert.Equal(t, reason, validationErr.Reason)
}

func TestValidate(t *testing.T) {
	t.Run("valid form", func(t *testing.T) {
		assert.NoError(t, Validate(validForm()))
	})

	t.Run("name", func(t *testing.T) {
		tests := []struct {
			name  string
			value string
			ok    bool
		}{
			{"empty", "", false},
			{"two characters", "Jo", false},
			{"padded short name", "  Jo  ", false},
			{"three characters", "Ada", true},
			{"padded three characters", "  Ada ", true},
			{"multibyte", "Ọlá", true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				form := validForm()
				form.FullName = tt.value

				err := Validate(form)
				if tt.ok {
					assert.NoError(t, err)
				} else {
					requireValidationReason(t, err, REASON_NAME_TOO_SHORT)
				}
			})
		}
	})

	t.Run("email", func(t *testing.T) {
		tests := []struct {
			value string
			ok    bool
		}{
			{"a@b.c", true},
			{"  ada@example.com  ", true},
			{"first.last+tag@sub.example.org", true},
			{"a@b", false},
			{"ab.c", false},
			{"a@@b.c", false},
			{"a b@c.d", false},
			{"a@b c.d", false},
			{"@b.c", false},
			{"a@.c", false},
			{"", false},
		}

		for _, tt := range tests {
			t.Run(tt.value, func(t *testing.T) {
				form := validForm()
				form.Email = tt.value

				err := Validate(form)
				if tt.ok {
					assert.NoError(t, err)
				} else {
					requireValidationReason(t, err, REASON_INVALID_EMAIL)
				}
			})
		}
	})

	t.Run("phone", func(t *testing.T) {
		tests := []struct {
			value string
			ok    bool
		}{
			{"+234 801 234 5678", true},
			{"08012345678", true},
			{"(080) 123-4567", true},
			{"123-456-78", true},
			{"12345", false},
			{"123456789", false},
			{"  123456789  ", false},
			{"0801234567a", false},
			{"phone number", false},
			{"+234.801.234.5678", false},
			{"", false},
		}

		for _, tt := range tests {
			t.Run(tt.value, func(t *testing.T) {
				form := validForm()
				form.Phone = tt.value

				err := Validate(form)
				if tt.ok {
					assert.NoError(t, err)
				} else {
					requireValidationReason(t, err, REASON_INVALID_PHONE)
				}
			})
		}
	})

	t.Run("attendance mode", func(t *testing.T) {
		form := validForm()
		form.AttendanceMode = ""

		requireValidationReason(t, Validate(form), REASON_MISSING_ATTENDANCE_MODE)
	})

	t.Run("terms", func(t *testing.T) {
		form := validForm()
		form.TermsAccepted = false

		requireValidationReason(t, Validate(form), REASON_TERMS_NOT_ACCEPTED)
	})

	t.Run("optional fields are not checked", func(t *testing.T) {
		form := validForm()
		form.Church = ""
		form.SpecialNeeds = strings.Repeat("x", 2000)

		assert.NoError(t, Validate(form))
	})
}

func TestValidateRuleOrder(t *testing.T) {
	t.Run("name is reported before email", func(t *testing.T) {
		form := validForm()
		form.FullName = "A"
		form.Email = "not-an-email"

		requireValidationReason(t, Validate(form), REASON_NAME_TOO_SHORT)
	})

	t.Run("email is reported before phone", func(t *testing.T) {
		form := validForm()
		form.Email = "a@b"
		form.Phone = "12"

		requireValidationReason(t, Validate(form), REASON_INVALID_EMAIL)
	})

	t.Run("phone is reported before attendance mode", func(t *testing.T) {
		form := validForm()
		form.Phone = "12"
		form.AttendanceMode = ""

		requireValidationReason(t, Validate(form), REASON_INVALID_PHONE)
	})

	t.Run("attendance mode is reported before terms", func(t *testing.T) {
		form := validForm()
		form.AttendanceMode = ""
		form.TermsAccepted = false

		requireValidationReason(t, Validate(form), REASON_MISSING_ATTENDANCE_MODE)
	})

	t.Run("everything invalid reports the name only", func(t *testing.T) {
		requireValidationReason(t, Validate(Form{}), REASON_NAME_TOO_SHORT)
	})
}

func TestValidationErrorMessage(t *testing.T) {
	err := Validate(Form{})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Please enter your full name", validationErr.Message())
	assert.Equal(t, "NAME_TOO_SHORT: Please enter your full name", err.Error())
}

func TestValidateSubmission(t *testing.T) {
	t.Run("terms are not required", func(t *testing.T) {
		form := validForm()
		form.TermsAccepted = false

		assert.NoError(t, ValidateSubmission(form))
	})

	t.Run("unknown attendance mode", func(t *testing.T) {
		form := validForm()
		form.AttendanceMode = "hybrid"

		requireValidationReason(t, ValidateSubmission(form), REASON_UNKNOWN_ATTENDANCE_MODE)
	})

	t.Run("shared rules still apply", func(t *testing.T) {
		form := validForm()
		form.Phone = "12345"

		requireValidationReason(t, ValidateSubmission(form), REASON_INVALID_PHONE)
	})
}
