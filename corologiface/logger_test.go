// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package corologiface

import (
	"bytes"
	"testing"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeycumines/go-corostack"
)

func newHarness(t *testing.T) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := logiface.New[*stumpy.Event](
		stumpy.WithStumpy(stumpy.WithWriter(&buf)),
		logiface.WithLevel[*stumpy.Event](logiface.LevelDebug),
	)
	return New(l.Logger()), &buf
}

func TestLogger_warnLevelWritesFieldsAndMessage(t *testing.T) {
	t.Parallel()

	adapter, buf := newHarness(t)
	var logger corostack.Logger = adapter
	logger.Log(corostack.LevelWarn, "coroutine garbage collected without Close", corostack.Field{Key: "state", Value: "suspended"})

	out := buf.String()
	assert.Contains(t, out, `"msg":"coroutine garbage collected without Close"`)
	assert.Contains(t, out, `"state":"suspended"`)
}

func TestLogger_debugLevelWrites(t *testing.T) {
	t.Parallel()

	adapter, buf := newHarness(t)
	adapter.Log(corostack.LevelDebug, "trace event")
	assert.Contains(t, buf.String(), `"msg":"trace event"`)
}

func TestNew_nilLoggerPanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { New(nil) })
}
