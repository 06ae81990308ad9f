// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package corostack

// Control is handed to a [WorkFunc] at every suspension point. It is
// only valid for the duration of the call it was passed into; do not
// retain it past a Yield or Done call.
type Control[Y, R any] struct {
	ctx *context[Y, R]
}

// Yield suspends the coroutine, handing value to whichever goroutine
// is blocked in [Coroutine.Resume], and blocks until that goroutine
// resumes it again.
//
// On a normal resume it returns a fresh *Control and a nil error; the
// closure must use the returned Control for its next Yield or Done
// call, not the one it was holding before. If the owning [Coroutine]
// has been (or is being) closed instead, it returns (nil,
// [ErrCanceled]) -- including on the very first Yield call of a
// closure whose Coroutine was closed before ever being resumed. The
// closure must propagate that error immediately rather than call
// Yield again on the same, now-stale Control; doing so panics with
// [ErrReentrantYield].
func (c *Control[Y, R]) Yield(value Y) (*Control[Y, R], error) {
	ctx := c.ctx
	if ctx.arg == nil {
		if ctx.canceled {
			panicOp("Yield", ErrReentrantYield)
		}
		ctx.canceled = true
		return nil, ErrCanceled
	}
	*(*transfer[Y, R])(ctx.arg) = transfer[Y, R]{state: transferYielded, y: value}

	if ctx.guardDisabled {
		corostackSwap(&ctx.child, &ctx.parent)
	} else {
		widened := widenStackGuard()
		corostackSwap(&ctx.child, &ctx.parent)
		restoreStackGuard(widened)
	}

	if ctx.arg == nil {
		ctx.canceled = true
		return nil, ErrCanceled
	}
	return &Control[Y, R]{ctx: ctx}, nil
}

// Done completes the coroutine with value. It does not itself switch
// control anywhere; the switch happens once the closure returns,
// handled by the trampoline that invoked it.
func (c *Control[Y, R]) Done(value R) (Finished[R], error) {
	return Finished[R]{Value: value}, nil
}
