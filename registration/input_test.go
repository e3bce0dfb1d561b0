package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePhoneInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+234 801 234 5678", "+234 801 234 5678"},
		{"(080) 123-4567", "(080) 123-4567"},
		{"0801abc2345678", "08012345678"},
		{"tel: +234.801", " +234801"},
		{"☎ 0801", " 0801"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizePhoneInput(tt.in))
		})
	}
}

func TestFieldMarkedInvalid(t *testing.T) {
	t.Run("blur on a blank required field marks it", func(t *testing.T) {
		assert.True(t, FieldMarkedInvalid(FIELD_BLUR, true, "   ", false))
	})

	t.Run("blur on a blank optional field does not mark it", func(t *testing.T) {
		assert.False(t, FieldMarkedInvalid(FIELD_BLUR, false, "", false))
	})

	t.Run("blur on a filled required field clears the mark", func(t *testing.T) {
		assert.False(t, FieldMarkedInvalid(FIELD_BLUR, true, "Ada", true))
	})

	t.Run("typing into a marked field clears it", func(t *testing.T) {
		assert.False(t, FieldMarkedInvalid(FIELD_INPUT, true, "A", true))
	})

	t.Run("typing whitespace keeps the existing mark", func(t *testing.T) {
		assert.True(t, FieldMarkedInvalid(FIELD_INPUT, true, " ", true))
		assert.False(t, FieldMarkedInvalid(FIELD_INPUT, true, " ", false))
	})
}
