// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package corostack

import "unsafe"

// corostackTrampolineEntry is called by corostackBootstrap (see
// asm_amd64.s / asm_arm64.s) the first time a fresh stack is switched
// into. It carries no type information of its own: a points at a
// func() stored by New, already closed over the real Y/R-typed
// WorkFunc, *Control[Y, R] and *context[Y, R] -- dispatch to generic
// code happens the moment that closure is invoked.
//
// parent and b are unused by this package today; they are threaded
// through corostackInit and corostackBootstrap anyway so the
// assembly's calling convention has a fixed, three-word shape that
// does not need to change if a future version needs them.
func corostackTrampolineEntry(parent *regs, a, b unsafe.Pointer) {
	fn := *(*func())(a)
	fn()
	// the closure built by makeEntryClosure always ends by calling
	// corostackJump back into the parent; returning here means it did
	// not, which is a bug in this package, not the caller's closure.
	panic("corostack: trampoline closure returned without jumping back")
}

// makeEntryClosure builds the func() stored behind corostackInit's a
// argument for a coroutine running fn against ctx. It is the only
// place the generic WorkFunc is actually invoked, and the only place
// that writes the final outcome of the closure into ctx.
func makeEntryClosure[Y, R any](ctx *context[Y, R], fn WorkFunc[Y, R]) func() {
	ctrl := &Control[Y, R]{ctx: ctx}
	return func() {
		defer func() {
			ctx.terminated = true
			if r := recover(); r != nil {
				ctx.panicVal = r
			}
			corostackJump(&ctx.parent)
		}()

		finished, err := fn(ctrl)
		ctx.err = err
		if ctx.arg != nil {
			t := transfer[Y, R]{state: transferComplete}
			if err == nil {
				t.r = finished.Value
			}
			*(*transfer[Y, R])(ctx.arg) = t
		}
	}
}
