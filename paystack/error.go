package paystack

import "fmt"

type ErrorReason string

const (
	REASON_REQUEST_FAILED        ErrorReason = "REQUEST_FAILED"
	REASON_UNEXPECTED_STATUS     ErrorReason = "UNEXPECTED_STATUS"
	REASON_INVALID_RESPONSE      ErrorReason = "INVALID_RESPONSE"
	REASON_VERIFICATION_REJECTED ErrorReason = "VERIFICATION_REJECTED"
	REASON_INVALID_SIGNATURE     ErrorReason = "INVALID_SIGNATURE"
	REASON_INVALID_PAYLOAD       ErrorReason = "INVALID_PAYLOAD"
)

type Error struct {
	Reason  ErrorReason
	Message string
	Cause   error
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

func newPaystackError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewRequestFailedError(message string, cause error) *Error {
	return newPaystackError(REASON_REQUEST_FAILED, message, cause)
}

func NewUnexpectedStatusError(statusCode int) *Error {
	return newPaystackError(REASON_UNEXPECTED_STATUS, fmt.Sprintf("Paystack responded with status %d", statusCode), nil)
}

func NewInvalidResponseError(message string, cause error) *Error {
	return newPaystackError(REASON_INVALID_RESPONSE, message, cause)
}

func NewVerificationRejectedError(message string) *Error {
	return newPaystackError(REASON_VERIFICATION_REJECTED, message, nil)
}

func NewInvalidSignatureError(message string) *Error {
	return newPaystackError(REASON_INVALID_SIGNATURE, message, nil)
}

func NewInvalidPayloadError(message string, cause error) *Error {
	return newPaystackError(REASON_INVALID_PAYLOAD, message, cause)
}
