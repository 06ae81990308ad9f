// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package corostack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPanicError_ErrorAndUnwrap(t *testing.T) {
	t.Parallel()

	pe := PanicError{Op: "New", Err: ErrStackTooSmall}
	assert.Contains(t, pe.Error(), "New")
	assert.Contains(t, pe.Error(), ErrStackTooSmall.Error())
	assert.True(t, errors.Is(pe, ErrStackTooSmall))
}

func TestPanicOp_panicsWithPanicError(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		pe, ok := r.(PanicError)
		assert.True(t, ok)
		assert.Equal(t, "Resume", pe.Op)
		assert.ErrorIs(t, pe, ErrResumeAfterTerminated)
	}()
	panicOp("Resume", ErrResumeAfterTerminated)
}
