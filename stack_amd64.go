// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

//go:build amd64

package corostack

import "unsafe"

// regs is the per-side register save area for amd64 (System V AMD64
// ABI): the stack pointer plus the callee-saved general purpose
// registers BP, BX, R12-R15. Everything else (the caller-saved
// registers, and the SSE/AVX state, which Go never asks hand-written
// asm to preserve across a call) is left to whichever side is
// currently executing to manage on its own.
type regs struct {
	sp, bp, bx, r12, r13, r14, r15 uintptr
}

const regSlots = 7

//go:noescape
func corostackSwap(from, into *regs)

//go:noescape
func corostackJump(into *regs)

//go:noescape
func corostackInit(top uintptr, entry uintptr, a, b uintptr, parent *regs)

// corostackBootstrapAddr returns the entry address corostackInit
// should use: the address of the hand-written landing pad that calls
// into corostackTrampolineEntry. See asm_amd64.s.
func corostackBootstrapAddr() uintptr

// getg returns the current g, read directly off TLS in asm_amd64.s.
// runtime.getg is a compiler intrinsic with no symbol a //go:linkname
// can target, so this is the only way to obtain it from outside
// package runtime. See stackguard.go for the one user.
func getg() unsafe.Pointer
