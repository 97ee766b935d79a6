package figure

import (
	"errors"
	"fmt"
)

var (
	// ErrStateMismatch means the registry's active figure is not the one a
	// session just built: some other code created or activated a figure
	// between id allocation and the end of construction.
	ErrStateMismatch = errors.New("figure does not match active figure")

	// ErrInvalidShareReference means a ShareMap entry points at a subplot
	// that is not built before the referencing one.
	ErrInvalidShareReference = errors.New("invalid share reference")

	// ErrUnsupportedFormat is returned for output paths whose extension has
	// no canvas.
	ErrUnsupportedFormat = errors.New("unsupported figure format")

	// ErrInvalidOptions is returned by New for unusable options.
	ErrInvalidOptions = errors.New("invalid figure options")

	// ErrSessionClosed is returned when a session is used after exit.
	ErrSessionClosed = errors.New("figure session closed")
)

// StateMismatchError describes an ErrStateMismatch.
type StateMismatchError struct {
	// Want is the id allocated for the new figure.
	Want int
	// Active is the registry's active figure id, 0 if none.
	Active int
	// Reused is set when Want already belonged to another live figure.
	Reused bool
}

func (e *StateMismatchError) Error() string {
	if e.Reused {
		return fmt.Sprintf("%v: figure %d already existed", ErrStateMismatch, e.Want)
	}
	return fmt.Sprintf("%v: built figure %d, active is %d", ErrStateMismatch, e.Want, e.Active)
}

func (e *StateMismatchError) Unwrap() error { return ErrStateMismatch }

// InvalidShareReferenceError describes an ErrInvalidShareReference.
type InvalidShareReferenceError struct {
	Index  int
	Role   ShareRole
	Ref    int
	Reason string
}

func (e *InvalidShareReferenceError) Error() string {
	if e.Role == "" {
		return fmt.Sprintf("%v: subplot %d: %s", ErrInvalidShareReference, e.Index, e.Reason)
	}
	return fmt.Sprintf("%v: subplot %d %s=%d: %s", ErrInvalidShareReference, e.Index, e.Role, e.Ref, e.Reason)
}

func (e *InvalidShareReferenceError) Unwrap() error { return ErrInvalidShareReference }
