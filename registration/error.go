package registration

import "fmt"

type ErrorReason string

const (
	REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL ErrorReason = "FAILED_TO_TRANSLATE_TO_DB_MODEL"
	REASON_FAILED_TO_WRITE                 ErrorReason = "FAILED_TO_WRITE"
	REASON_REGISTRATION_DOES_NOT_EXIST     ErrorReason = "REGISTRATION_DOES_NOT_EXIST"
	REASON_REGISTRATION_ALREADY_EXISTS     ErrorReason = "REGISTRATION_ALREADY_EXISTS"
	REASON_FAILED_TO_FETCH                 ErrorReason = "FAILED_TO_FETCH"
	REASON_INVALID_CURSOR                  ErrorReason = "INVALID_CURSOR"
	REASON_ASSOCIATED_EVENT_DOES_NOT_EXIST ErrorReason = "ASSOCIATED_EVENT_DOES_NOT_EXIST"
	REASON_TIMEOUT                         ErrorReason = "TIMEOUT"
	REASON_INVALID_SUBMISSION              ErrorReason = "INVALID_SUBMISSION"
	REASON_PAYMENT_VERIFICATION_FAILED     ErrorReason = "PAYMENT_VERIFICATION_FAILED"
	REASON_PAYMENT_NOT_SUCCESSFUL          ErrorReason = "PAYMENT_NOT_SUCCESSFUL"
	REASON_PAYMENT_AMOUNT_MISMATCH         ErrorReason = "PAYMENT_AMOUNT_MISMATCH"
	REASON_VERSION_CONFLICT                ErrorReason = "VERSION_CONFLICT"
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

func newRegistrationError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToTranslateToDBModelError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL, message, cause)
}

func NewRegistrationAlreadyExistsError(message string, cause error) *Error {
	return newRegistrationError(REASON_REGISTRATION_ALREADY_EXISTS, message, cause)
}

func NewRegistrationDoesNotExistsError(message string, cause error) *Error {
	return newRegistrationError(REASON_REGISTRATION_DOES_NOT_EXIST, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewInvalidCursorError(message string, cause error) *Error {
	return newRegistrationError(REASON_INVALID_CURSOR, message, cause)
}

func NewAssociatedEventDoesNotExistError(message string, cause error) *Error {
	return newRegistrationError(REASON_ASSOCIATED_EVENT_DOES_NOT_EXIST, message, cause)
}

// NewVersionConflictError means the registration changed between being read
// and being written.
func NewVersionConflictError(message string, cause error) *Error {
	return newRegistrationError(REASON_VERSION_CONFLICT, message, cause)
}

func NewTimeoutError(message string) *Error {
	return newRegistrationError(REASON_TIMEOUT, message, nil)
}

// NewInvalidSubmissionError wraps the *ValidationError that rejected the body.
func NewInvalidSubmissionError(cause *ValidationError) *Error {
	return newRegistrationError(REASON_INVALID_SUBMISSION, cause.Message(), cause)
}

func NewPaymentVerificationFailedError(reference string, cause error) *Error {
	return newRegistrationError(REASON_PAYMENT_VERIFICATION_FAILED, fmt.Sprintf("Could not verify payment %q with the provider", reference), cause)
}

func NewPaymentNotSuccessfulError(reference string, status string) *Error {
	return newRegistrationError(REASON_PAYMENT_NOT_SUCCESSFUL, fmt.Sprintf("Payment %q has status %q", reference, status), nil)
}

func NewPaymentAmountMismatchError(reference string, paid string, expected string) *Error {
	return newRegistrationError(REASON_PAYMENT_AMOUNT_MISMATCH, fmt.Sprintf("Payment %q was for %s, expected %s", reference, paid, expected), nil)
}
