// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Package corostack implements stackful, one-shot, symmetric coroutines:
// routines that run on their own private stack (a caller-supplied byte
// buffer) and can suspend mid-computation at any call depth, yielding a
// value to the parent, and later be resumed from the exact suspension
// point.
//
// # Architecture
//
// The package is built in three layers, leaves-first:
//
//   - Low-level context-switch primitives ([corostackSwap],
//     [corostackJump], [corostackInit]): per-architecture assembly that
//     bootstraps a fresh stack and exchanges the stack pointer and
//     callee-saved registers between parent and child.
//   - The [context] record and the trampoline entry point: the small
//     bootstrap that runs once on the new stack to receive the user
//     closure and invoke it.
//   - The user-facing [Coroutine] and [Control] types, which own the state
//     machine, the backing stack, and the cancellation protocol.
//
// # Platform support
//
// The assembly primitives are implemented for:
//   - amd64 (System V AMD64 ABI)
//   - arm64 (AAPCS64)
//
// Other architectures compile (see stack_unsupported.go) but panic on use.
//
// # Concurrency model
//
// A [Coroutine] is a strictly two-party, single-threaded protocol between
// exactly one parent goroutine and its child closure. There is no
// scheduler and no parallelism: [Coroutine.Resume] and [Control.Yield] are
// the only two suspension points, and at any instant only one side is
// executing. A [Coroutine] must not be resumed or closed from more than
// one goroutine, nor (while a child is suspended) migrated to another
// goroutine.
//
// # Cancellation
//
// Dropping a suspended coroutine (calling [Coroutine.Close], or letting
// the [runtime.SetFinalizer] backstop fire) resumes the child once more
// with its transfer pointer cleared; [Control.Yield] then returns
// [ErrCanceled], which a cooperating closure must propagate so that any
// deferred cleanup on the child stack still runs. [Coroutine.Close]
// itself returns that same [ErrCanceled] once the closure has
// propagated it.
//
// # Usage
//
//	stack := make([]byte, 64*1024)
//	coro := corostack.New(stack, func(c *corostack.Control[int, string]) (corostack.Finished[string], error) {
//	    c, err := c.Yield(1)
//	    if err != nil {
//	        return corostack.Finished[string]{}, err
//	    }
//	    return c.Done("foo")
//	})
//	defer coro.Close()
//
//	t := coro.Resume()
//	y, ok := t.Yielded()  // y == 1, ok == true
//
//	t = coro.Resume()
//	r, ok := t.Complete() // r == "foo", ok == true
package corostack
