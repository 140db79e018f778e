package patch

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every error caused by a bad caller supplied value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidStructure is matched by errors where the supplied data is well formed but
	// does not describe a usable patch.
	ErrInvalidStructure = errors.New("invalid patch structure")
)

// ArgumentError names the parameter that failed validation.
type ArgumentError struct {
	Param string
	Msg   string

	// Structural marks argument errors that are also structural violations.
	Structural bool
	Err        error
}

func newArgumentError(param string, format string, args ...any) *ArgumentError {
	return &ArgumentError{Param: param, Msg: fmt.Sprintf(format, args...)}
}

func (e *ArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", ErrInvalidArgument, e.Param, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidArgument, e.Param, e.Msg)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument || (e.Structural && target == ErrInvalidStructure)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func structureError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidStructure, fmt.Sprintf(format, args...))
}
