package business

import "fmt"

// ValidationKind distinguishes the user-correctable submission failures.
type ValidationKind int

const (
	MissingRequiredField ValidationKind = iota
	InvalidEmail
	InvalidPhone
)

// ValidationError reports a rejected booking submission. The wizard state
// is unchanged after one; the user may correct the form and retry.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PreconditionError reports an operation invoked from a state it is not
// valid in. These indicate a presentation-layer bug: the UI is responsible
// for not offering disallowed intents. Fatal to the call, never to the
// session.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func preconditionErr(op, format string, args ...interface{}) *PreconditionError {
	return &PreconditionError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
