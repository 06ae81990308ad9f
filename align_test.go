// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package corostack

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignStack_empty(t *testing.T) {
	t.Parallel()
	var buf []byte
	require.Empty(t, AlignStack(buf))
}

func TestAlignStack_alreadyAligned(t *testing.T) {
	t.Parallel()
	buf := make([]byte, StackMinimum)
	aligned := AlignStack(buf)
	top := uintptr(unsafe.Pointer(&aligned[0])) + uintptr(len(aligned))
	assert.Zero(t, top%StackAlignment)
	// an already-16-byte-aligned buffer should lose at most StackAlignment-1
	// bytes off the end.
	assert.GreaterOrEqual(t, len(aligned), len(buf)-int(StackAlignment-1))
}

func TestAlignStack_misalignedLeadingBytes(t *testing.T) {
	t.Parallel()

	// allocate extra headroom and slice off a variable number of leading
	// bytes, simulating a caller-supplied buffer with arbitrary alignment.
	raw := make([]byte, StackMinimum+StackAlignment)
	for shift := 0; shift < int(StackAlignment); shift++ {
		buf := raw[shift : shift+StackMinimum]
		aligned := AlignStack(buf)
		require.NotEmpty(t, aligned)
		top := uintptr(unsafe.Pointer(&aligned[0])) + uintptr(len(aligned))
		assert.Zero(t, top%StackAlignment, "shift=%d", shift)
	}
}

func TestAlignStack_neverGrows(t *testing.T) {
	t.Parallel()
	buf := make([]byte, StackMinimum)
	aligned := AlignStack(buf)
	assert.LessOrEqual(t, len(aligned), len(buf))
}
