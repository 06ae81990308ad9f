// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package corostack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOptions_defaults(t *testing.T) {
	t.Parallel()
	cfg := resolveOptions(nil)
	require.NotNil(t, cfg.logger)
	assert.False(t, cfg.stackGuardDisabled)
}

func TestResolveOptions_withLogger(t *testing.T) {
	t.Parallel()
	logger := NewNoOpLogger()
	cfg := resolveOptions([]Option{WithLogger(logger)})
	assert.Same(t, logger, cfg.logger)
}

func TestResolveOptions_withNilLoggerIgnored(t *testing.T) {
	t.Parallel()
	cfg := resolveOptions([]Option{WithLogger(nil)})
	require.NotNil(t, cfg.logger)
}

func TestResolveOptions_withStackGuardDisabled(t *testing.T) {
	t.Parallel()
	cfg := resolveOptions([]Option{WithStackGuardDisabled(true)})
	assert.True(t, cfg.stackGuardDisabled)
}

func TestResolveOptions_skipsNilOption(t *testing.T) {
	t.Parallel()
	require.NotPanics(t, func() {
		resolveOptions([]Option{nil, WithStackGuardDisabled(true)})
	})
}
