// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

//go:build !amd64 && !arm64

package corostack

import "unsafe"

// regs is an empty placeholder on architectures this package has no
// hand-written register-swap assembly for. New panics before any value
// of this type is ever touched.
type regs struct{}

const regSlots = 0

func corostackSwap(from, into *regs) { panicUnsupported() }

func corostackJump(into *regs) { panicUnsupported() }

func corostackInit(top uintptr, entry uintptr, a, b uintptr, parent *regs) { panicUnsupported() }

func corostackBootstrapAddr() uintptr { panicUnsupported(); return 0 }

func getg() unsafe.Pointer { panicUnsupported(); return nil }

func panicUnsupported() {
	panic(PanicError{Op: "New", Err: ErrUnsupportedArch})
}
