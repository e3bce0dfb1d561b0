package registration

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "without a cause",
			err:      NewRegistrationDoesNotExistsError("Registration with reference \"DE2026-000000000000\" not found", nil),
			expected: "REGISTRATION_DOES_NOT_EXIST: Registration with reference \"DE2026-000000000000\" not found",
		},
		{
			name:     "timeouts never carry a cause",
			err:      NewTimeoutError("GetRegistration timed out"),
			expected: "TIMEOUT: GetRegistration timed out",
		},
		{
			name:     "with a cause",
			err:      NewFailedToWriteError("Failed TransactWriteItems call", errors.New("throttled")),
			expected: "FAILED_TO_WRITE: Failed TransactWriteItems call. Cause: throttled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.NotContains(t, tt.err.Error(), "%!")
		})
	}
}
