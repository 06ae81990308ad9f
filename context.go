// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package corostack

import "unsafe"

// context holds the two register save areas (one per side of the
// switch) plus the transfer pointer shared between a Coroutine and its
// Control. It is heap-allocated by New and stays pinned until the
// coroutine terminates.
//
// arg is non-nil exactly while the parent is inside Resume: nil at all
// other times, including while the child runs autonomously between
// Yield calls. A nil arg, observed by the child inside Yield, is the
// sole signal for cancellation.
type context[Y, R any] struct {
	parent regs
	child  regs
	arg    unsafe.Pointer // *transfer[Y, R], or nil

	// terminated, err and panicVal are written once, by runEntry's
	// deferred cleanup, immediately before the final corostackJump.
	// They exist because a Close-triggered cancellation leaves arg nil
	// for the closure's last leg, so the transfer-by-pointer protocol
	// above has nothing to write the outcome into; the Coroutine reads
	// these directly instead.
	terminated bool
	err        error
	panicVal   any

	// canceled latches the first time Yield observes a nil arg, so a
	// second Yield call on the same already-canceled Control is
	// distinguishable from the legitimate first observation (which
	// must return ErrCanceled, not panic -- a coroutine closed before
	// its first Resume runs its closure once with arg nil from the
	// start, see the Fresh row of the state table).
	canceled bool

	// guardDisabled mirrors the coroutine's WithStackGuardDisabled
	// option; read by both sides of the switch (Coroutine.switchIn and
	// Control.Yield), so it lives on the context rather than being
	// threaded through call arguments.
	guardDisabled bool
}

// transferState tags which variant of transfer is populated.
type transferState uint8

const (
	transferNone transferState = iota
	transferYielded
	transferComplete
)

// transfer is the tagged union written by the child and read by the
// parent immediately around each switch. A transfer value always
// lives on the parent's stack, for the duration of a single Resume
// call; the pointer to it is only ever valid between a Resume's entry
// and its return.
type transfer[Y, R any] struct {
	state transferState
	y     Y
	r     R
}

// Transfer is the value returned by [Coroutine.Resume]: either a
// yielded value, or the coroutine's final return value.
type Transfer[Y, R any] struct {
	t transfer[Y, R]
}

// Yielded reports whether the coroutine suspended with a value,
// returning it and true if so.
func (t Transfer[Y, R]) Yielded() (Y, bool) {
	if t.t.state == transferYielded {
		return t.t.y, true
	}
	var zero Y
	return zero, false
}

// Complete reports whether the coroutine finished, returning its
// return value and true if so.
func (t Transfer[Y, R]) Complete() (R, bool) {
	if t.t.state == transferComplete {
		return t.t.r, true
	}
	var zero R
	return zero, false
}

// Finished is the success value a [WorkFunc] produces via
// [Control.Done]. It exists (rather than a bare R) so that done has a
// distinct, single-purpose return type, mirroring the reference
// implementation's Finished(R) wrapper.
type Finished[R any] struct {
	Value R
}

// WorkFunc is the closure type driven by a [Coroutine]. It receives a
// [Control] for the current suspension point and must either complete
// (return a Finished value and a nil error) or propagate a
// cancellation observed from [Control.Yield] (return the zero
// Finished value and that error, unmodified).
type WorkFunc[Y, R any] func(*Control[Y, R]) (Finished[R], error)
