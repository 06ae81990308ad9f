// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

//go:build arm64

package corostack

import "unsafe"

// regs is the per-side register save area for arm64 (AAPCS64): the
// stack pointer, the frame pointer (R29/FP), the link register
// (R30/LR), and the callee-saved general purpose registers R19-R26.
//
// R27 and R28 are deliberately excluded: the Go arm64 backend reserves
// R27 as the assembler's temporary register (used to materialize large
// immediates) and R28 as the current goroutine pointer (g). Neither is
// a free callee-saved slot this package may repurpose -- we are never
// changing which goroutine is running, only where its stack pointer
// points, so g must stay exactly as the runtime left it.
type regs struct {
	sp, fp, lr, r19, r20, r21, r22, r23, r24, r25, r26 uintptr
}

const regSlots = 11

//go:noescape
func corostackSwap(from, into *regs)

//go:noescape
func corostackJump(into *regs)

//go:noescape
func corostackInit(top uintptr, entry uintptr, a, b uintptr, parent *regs)

// corostackBootstrapAddr returns the entry address corostackInit
// should use: the address of the hand-written landing pad that calls
// into corostackTrampolineEntry. See asm_arm64.s.
func corostackBootstrapAddr() uintptr

// getg returns the current g, read directly off the pinned g register
// (R28) in asm_arm64.s. runtime.getg is a compiler intrinsic with no
// symbol a //go:linkname can target, so this is the only way to
// obtain it from outside package runtime. See stackguard.go for the
// one user.
func getg() unsafe.Pointer
