// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Package coroiter adapts a [corostack.Coroutine] to the standard
// library's [iter.Seq] generator shape, so its yields can be consumed with
// an ordinary range-over-func loop instead of calling Resume directly.
package coroiter

import (
	"iter"

	"github.com/joeycumines/go-corostack"
)

// Seq drives a coroutine running fn on stack, returning a Go 1.23
// iter.Seq[Y] over its yielded values plus a result func that reports the
// coroutine's final return value and error once the sequence has been
// fully consumed (or broken out of early).
//
// Breaking out of the range loop early closes the underlying coroutine,
// observable as [corostack.ErrCanceled] from result if fn never reached
// its own Done call. result must not be called until the range loop has
// returned; doing so earlier observes a zero R and a nil error.
func Seq[Y, R any](stack []byte, fn corostack.WorkFunc[Y, R], opts ...corostack.Option) (seq iter.Seq[Y], result func() (R, error)) {
	co := corostack.New(stack, fn, opts...)

	var (
		value R
		err   error
		done  bool
	)

	seq = func(yield func(Y) bool) {
		for {
			t := co.Resume()
			if y, ok := t.Yielded(); ok {
				if !yield(y) {
					err = co.Close()
					done = true
					return
				}
				continue
			}
			r, _ := t.Complete()
			value = r
			done = true
			return
		}
	}

	result = func() (R, error) {
		if !done {
			var zero R
			return zero, nil
		}
		return value, err
	}

	return seq, result
}
