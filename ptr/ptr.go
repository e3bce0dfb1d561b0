package ptr

import "time"

func String(s string) *string {
	return &s
}

func Time(t time.Time) *time.Time {
	return &t
}

// StringOrNil returns nil for an empty string so optional form fields are
// stored as absent rather than blank.
func StringOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to value, or the zero value for nil.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
