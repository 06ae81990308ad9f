// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package corostack

import (
	"errors"
	"fmt"
)

// ErrCanceled is returned by [Control.Yield] when the parent [Coroutine]
// has been (or is being) closed. A [WorkFunc] must propagate this error
// rather than call Yield again; doing so is a programmer error (see
// ErrReentrantYield).
var ErrCanceled = errors.New("corostack: coroutine canceled")

// PanicError is the value every programmer-error panic raised by this
// package carries. It wraps the underlying sentinel so callers that
// choose to recover can still use [errors.Is]/[errors.As] against it.
type PanicError struct {
	// Op names the operation that detected the violation, e.g. "New" or
	// "Resume".
	Op string
	// Err is the underlying sentinel error.
	Err error
}

func (e PanicError) Error() string {
	return fmt.Sprintf("corostack: %s: %v", e.Op, e.Err)
}

// Unwrap enables [errors.Is] and [errors.As] against the wrapped
// sentinel, the same pattern used throughout this module's ambient
// error types.
func (e PanicError) Unwrap() error {
	return e.Err
}

// Sentinels wrapped by [PanicError] when this package panics. None of
// these are meant to be recovered from productively -- they indicate a
// bug in the calling code -- but they are typed so a recovering test
// harness (or a defensive top-level recover) can identify which
// invariant was violated.
var (
	// ErrStackTooSmall is raised by New when the supplied stack, once
	// aligned by AlignStack, is smaller than StackMinimum.
	ErrStackTooSmall = errors.New("stack smaller than STACK_MINIMUM")

	// ErrResumeAfterTerminated is raised by Resume when called on a
	// coroutine that has already completed or been canceled.
	ErrResumeAfterTerminated = errors.New("resume called after coroutine terminated")

	// ErrReentrantYield is raised when a closure ignores a canceled
	// Yield and calls Yield again; that Yield panics with it instead of
	// switching back to a parent that has already been closed.
	ErrReentrantYield = errors.New("yield called again after cancellation")

	// ErrUnsupportedArch is raised by New on architectures this package
	// has no hand-written corostackSwap/corostackInit assembly for.
	ErrUnsupportedArch = errors.New("GOARCH has no corostack assembly support")
)

func panicOp(op string, err error) {
	panic(PanicError{Op: op, Err: err})
}
