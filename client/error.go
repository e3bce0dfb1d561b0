package client

import "fmt"

type ErrorReason string

const (
	REASON_REGISTRATION_FAILED         ErrorReason = "REGISTRATION_FAILED"
	REASON_NETWORK_ERROR               ErrorReason = "NETWORK_ERROR"
	REASON_VERIFICATION_REQUEST_FAILED ErrorReason = "VERIFICATION_REQUEST_FAILED"
	REASON_VERIFICATION_REJECTED       ErrorReason = "VERIFICATION_REJECTED"
)

type Error struct {
	Reason  ErrorReason
	Message string
	// Reference is set on verification errors so the attendee can quote it to
	// support.
	Reference string
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Reason, e.Message)
	}
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newClientError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewRegistrationFailedError(message string, cause error) *Error {
	return newClientError(REASON_REGISTRATION_FAILED, message, cause)
}

func NewNetworkError(message string, cause error) *Error {
	return newClientError(REASON_NETWORK_ERROR, message, cause)
}

func NewVerificationRequestFailedError(reference string, message string, cause error) *Error {
	err := newClientError(REASON_VERIFICATION_REQUEST_FAILED, message, cause)
	err.Reference = reference
	return err
}

func NewVerificationRejectedError(reference string, status string) *Error {
	err := newClientError(REASON_VERIFICATION_REJECTED, fmt.Sprintf("Verification returned status %q", status), nil)
	err.Reference = reference
	return err
}
