// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package corostack

// coroOptions holds configuration applied by New.
type coroOptions struct {
	logger             Logger
	stackGuardDisabled bool
}

// Option configures a Coroutine created via New.
type Option interface {
	applyCoro(*coroOptions)
}

type optionFunc func(*coroOptions)

func (f optionFunc) applyCoro(o *coroOptions) { f(o) }

// WithLogger attaches a Logger that receives the coroutine's diagnostic
// events. The only event emitted is a LevelWarn entry when the finalizer
// backstop closes a coroutine that was never closed; state transitions
// are not logged. A nil logger is ignored. The default is NewNoOpLogger.
func WithLogger(logger Logger) Option {
	return optionFunc(func(o *coroOptions) {
		if logger != nil {
			o.logger = logger
		}
	})
}

// WithStackGuardDisabled skips the stack-guard-widening performed
// around the low-level switch (see stackguard.go). Only set this if
// you have independently verified, for your Go toolchain version and
// architecture, that a morestack check cannot fire between the switch
// and the next Go-level call on the child stack -- this is an
// expert-only escape hatch, not a performance knob for general use.
func WithStackGuardDisabled(disabled bool) Option {
	return optionFunc(func(o *coroOptions) {
		o.stackGuardDisabled = disabled
	})
}

func resolveOptions(opts []Option) *coroOptions {
	cfg := &coroOptions{
		logger: NewNoOpLogger(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applyCoro(cfg)
	}
	return cfg
}
