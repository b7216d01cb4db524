package command

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatible matches any *IncompatibleError.
	ErrIncompatible = errors.New("incompatible options")
	// ErrUnrepresentablePath matches any *PathError.
	ErrUnrepresentablePath = errors.New("unrepresentable path")
)

// IncompatibleError reports two options that cannot be combined for an operation.
type IncompatibleError struct {
	Op    string
	First string
	Other string
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("%s: --%s cannot be used with --%s", e.Op, e.First, e.Other)
}

func (e *IncompatibleError) Is(target error) bool {
	return target == ErrIncompatible
}

// PathError reports a configured path that cannot be passed to the underlying program.
type PathError struct {
	Option string
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Option, e.Path, e.Reason)
}

func (e *PathError) Is(target error) bool {
	return target == ErrUnrepresentablePath
}
