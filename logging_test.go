// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package corostack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNoOpLogger_discardsEverything(t *testing.T) {
	t.Parallel()
	require.NotPanics(t, func() {
		NewNoOpLogger().Log(LevelWarn, "anything", Field{Key: "k", Value: "v"})
	})
}

func TestNewWriterLogger_formatsLineAndFields(t *testing.T) {
	t.Parallel()

	var lines []string
	logger := NewWriterLogger(func(line string) {
		lines = append(lines, line)
	})

	logger.Log(LevelWarn, "coroutine garbage collected without Close", Field{Key: "state", Value: "suspended"})

	require.Len(t, lines, 1)
	assert.True(t, strings.Contains(lines[0], "WARN"))
	assert.True(t, strings.Contains(lines[0], "coroutine garbage collected without Close"))
	assert.True(t, strings.Contains(lines[0], "state=suspended"))
}

func TestLogLevel_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "UNKNOWN", LogLevel(99).String())
}
