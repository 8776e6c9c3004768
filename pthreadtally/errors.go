//go:build !solution

package pthreadtally

import (
	"errors"
	"fmt"
)

// ErrInputUnavailable matches every failure to open or read an input list.
var ErrInputUnavailable = errors.New("input file unavailable")

// InputError reports which platform list could not be read.
type InputError struct {
	Platform string
	Path     string
	Err      error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s list %s: %v", e.Platform, e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func (e *InputError) Is(target error) bool {
	return target == ErrInputUnavailable
}
