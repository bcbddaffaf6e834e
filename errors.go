package tryget

import "errors"

// ErrNoValue is the sentinel every NoValueError unwraps to.
var ErrNoValue = errors.New("tryget: no value")

// NoValueError is raised when the value of an unsuccessful Result is read.
// It signals a broken contract at the call site rather than an expected
// outcome, so Value and Unwrap panic with it; Get returns it.
type NoValueError struct {
	// Type is the static type of the value that was requested.
	Type string
}

func (e *NoValueError) Error() string {
	if e.Type == "" {
		return ErrNoValue.Error()
	}
	return ErrNoValue.Error() + " of type " + e.Type
}

func (e *NoValueError) Unwrap() error {
	return ErrNoValue
}
