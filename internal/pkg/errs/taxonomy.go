package errs

import "errors"

// Error categories surfaced by the core. Every domain error unwraps to exactly one of them.
var (
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrConcurrencyConflict = errors.New("concurrency conflict")
	ErrAuthorizationDenied = errors.New("authorization denied")
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation error")
)

type domainError struct {
	kind error
	msg  string
}

func (e *domainError) Error() string { return e.msg }
func (e *domainError) Unwrap() error { return e.kind }

func InvalidTransition(msg string) error { return &domainError{kind: ErrInvalidTransition, msg: msg} }
func Conflict(msg string) error          { return &domainError{kind: ErrConcurrencyConflict, msg: msg} }
func Denied(msg string) error            { return &domainError{kind: ErrAuthorizationDenied, msg: msg} }
func NotFound(msg string) error          { return &domainError{kind: ErrNotFound, msg: msg} }
func Validation(msg string) error        { return &domainError{kind: ErrValidation, msg: msg} }

// Category reports which taxonomy bucket err belongs to, or nil for unclassified errors.
func Category(err error) error {
	for _, kind := range []error{ErrInvalidTransition, ErrConcurrencyConflict, ErrAuthorizationDenied, ErrNotFound, ErrValidation} {
		if Is(err, kind) {
			return kind
		}
	}
	return nil
}

// StateError attaches the current state of the entity a rejected operation targeted.
type StateError struct {
	Entity string
	ID     string
	State  string
	err    error
}

func (e *StateError) Error() string { return e.err.Error() }
func (e *StateError) Unwrap() error { return e.err }

// WithState wraps err with the entity's current state. A nil err stays nil.
func WithState(err error, entity, id, state string) error {
	if err == nil {
		return nil
	}
	return &StateError{Entity: entity, ID: id, State: state, err: err}
}

// CurrentState returns the outermost state attached to err.
func CurrentState(err error) (*StateError, bool) {
	var se *StateError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
