// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package corostack

// coroState is the Coroutine lifecycle: Fresh -> Suspended -> Suspended
// (repeatable) -> Terminated, or Fresh/Suspended -> Terminated directly
// via Close. It is stored as an atomic so diagnostic readers (Logger,
// String) may observe it from outside the owning goroutine; only the
// owning goroutine may ever call Resume or Close.
type coroState int32

const (
	stateFresh coroState = iota
	stateSuspended
	stateTerminated
)

func (s coroState) String() string {
	switch s {
	case stateFresh:
		return "fresh"
	case stateSuspended:
		return "suspended"
	case stateTerminated:
		return "terminated"
	default:
		return "invalid"
	}
}
