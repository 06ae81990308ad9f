// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package corostack

import (
	"runtime"
	"sync/atomic"
	"unsafe"
)

// Coroutine is a stackful, one-shot, symmetric coroutine: a unit of
// work that runs on its own stack, suspending at explicit [Control.Yield]
// points and resuming exactly where it left off. A zero Coroutine is
// not usable; construct one with [New].
//
// A Coroutine is not safe for concurrent use: Resume and Close must be
// called from a single goroutine at a time, the same constraint the
// reference implementation places on its Coroutine type, since nothing
// about suspending onto a borrowed stack is safe to do from two
// goroutines simultaneously.
type Coroutine[Y, R any] struct {
	ctx    *context[Y, R]
	entry  func()
	state  atomic.Int32 // coroState, atomic so State() may be read from any goroutine
	opts   *coroOptions
	pinner runtime.Pinner
	stack  []byte // retained so the GC does not reclaim it mid-flight
}

// State reports the coroutine's current lifecycle state. It is safe to
// call from any goroutine, for diagnostics/logging purposes, but is only
// a snapshot: Resume and Close remain restricted to the owning goroutine.
func (c *Coroutine[Y, R]) State() coroState {
	return coroState(c.state.Load())
}

// New constructs a Coroutine that runs fn on stack once resumed. stack
// must be at least [StackMinimum] bytes; New panics (wrapping
// [ErrStackTooSmall] in a [PanicError]) otherwise. The memory backing
// stack must not be touched by the caller again until the Coroutine is
// closed or has run to completion -- it becomes the coroutine's own
// call stack the moment the first [Coroutine.Resume] is called.
func New[Y, R any](stack []byte, fn WorkFunc[Y, R], opts ...Option) *Coroutine[Y, R] {
	aligned := AlignStack(stack)
	if len(aligned) < StackMinimum {
		panicOp("New", ErrStackTooSmall)
	}

	cfg := resolveOptions(opts)
	ctx := &context[Y, R]{guardDisabled: cfg.stackGuardDisabled}
	entry := makeEntryClosure(ctx, fn)

	co := &Coroutine[Y, R]{
		ctx:   ctx,
		entry: entry,
		opts:  cfg,
		stack: aligned,
	}
	co.state.Store(int32(stateFresh))
	co.pinner.Pin(ctx)
	co.pinner.Pin(&co.entry)

	top := uintptr(unsafe.Pointer(&aligned[0])) + uintptr(len(aligned))
	corostackInit(top, corostackBootstrapAddr(), uintptr(unsafe.Pointer(&co.entry)), 0, &ctx.child)

	runtime.SetFinalizer(co, func(c *Coroutine[Y, R]) {
		if c.State() != stateTerminated {
			c.opts.logger.Log(LevelWarn, "coroutine garbage collected without Close", Field{Key: "state", Value: c.State().String()})
			c.closeLocked()
		}
	})

	return co
}

// Resume runs the coroutine until it next suspends or completes. It
// panics (wrapping [ErrResumeAfterTerminated]) if the coroutine has
// already terminated, either by completing, by closing, or by a panic
// inside fn.
//
// If fn panics during this call, that panic is re-raised here,
// mirroring how an ordinary function call propagates a panic to its
// caller instead of swallowing it. The coroutine is then terminated,
// so any later call panics with [ErrResumeAfterTerminated] as above.
func (c *Coroutine[Y, R]) Resume() Transfer[Y, R] {
	if c.State() == stateTerminated {
		panicOp("Resume", ErrResumeAfterTerminated)
	}

	var t transfer[Y, R]
	c.ctx.arg = unsafe.Pointer(&t)

	c.switchIn()

	c.ctx.arg = nil
	if c.ctx.terminated {
		c.state.Store(int32(stateTerminated))
		c.pinner.Unpin()
		if c.ctx.panicVal != nil {
			panic(c.ctx.panicVal)
		}
	} else {
		c.state.Store(int32(stateSuspended))
	}

	return Transfer[Y, R]{t: t}
}

// Close cancels the coroutine if it has not already terminated,
// running it to its next [Control.Yield] (or its end) with
// [ErrCanceled] observable there, then releases the pinned memory. It
// returns whatever error fn unwound with: [ErrCanceled] (or a wrapping
// of it) if fn propagated the cancellation as [Control.Yield] requires,
// nil if fn reached [Control.Done] before the cancellation could reach
// it, or fn's own error if it chose to return something else instead
// of propagating. Close is idempotent and safe to call on an
// already-terminated coroutine, returning nil in that case. It never
// re-raises a panic from fn; Resume is the only place that surfaces
// one.
func (c *Coroutine[Y, R]) Close() error {
	if c.State() == stateTerminated {
		return nil
	}
	return c.closeLocked()
}

func (c *Coroutine[Y, R]) closeLocked() error {
	c.ctx.arg = nil
	c.switchIn()
	c.state.Store(int32(stateTerminated))
	c.pinner.Unpin()
	runtime.SetFinalizer(c, nil)
	return c.ctx.err
}

// switchIn performs one context switch into the child, holding the
// calling OS thread fixed for its duration. Locking the thread matters
// because the child executes with a foreign, runtime-invisible stack:
// if the scheduler preempted this goroutine onto a different thread
// mid-switch, the next morestack-sensitive instruction on that thread
// would have no idea the thread's notion of "the current stack" had
// been hijacked out from under it.
func (c *Coroutine[Y, R]) switchIn() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if c.ctx.guardDisabled {
		corostackSwap(&c.ctx.parent, &c.ctx.child)
		return
	}

	widened := widenStackGuard()
	corostackSwap(&c.ctx.parent, &c.ctx.child)
	restoreStackGuard(widened)
}
