// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Package corologiface adapts a [logiface.Logger] into the minimal
// [corostack.Logger] interface, so a Coroutine's diagnostic events (the
// finalizer backstop warning is the only one) flow into whichever logiface
// backend the caller has already configured -- stumpy, zerolog, slog, or
// logrus.
package corologiface

import (
	"github.com/joeycumines/logiface"

	"github.com/joeycumines/go-corostack"
)

// Logger adapts a *logiface.Logger[logiface.Event] into corostack.Logger.
type Logger struct {
	l *logiface.Logger[logiface.Event]
}

// New wraps l so it can be passed to [corostack.WithLogger]. A nil l
// panics (unlike corostack.WithLogger, which ignores a nil Logger),
// since a logger adapter with nothing to adapt is a construction
// bug, not a runtime condition to swallow.
func New(l *logiface.Logger[logiface.Event]) *Logger {
	if l == nil {
		panic("corologiface: New called with nil Logger")
	}
	return &Logger{l: l}
}

// Log implements corostack.Logger.
func (a *Logger) Log(level corostack.LogLevel, msg string, fields ...corostack.Field) {
	b := a.builder(level)
	for _, f := range fields {
		b = b.Any(f.Key, f.Value)
	}
	b.Log(msg)
}

func (a *Logger) builder(level corostack.LogLevel) *logiface.Builder[logiface.Event] {
	if level == corostack.LevelWarn {
		return a.l.Warning()
	}
	return a.l.Debug()
}
