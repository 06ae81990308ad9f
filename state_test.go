// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package corostack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoroState_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "fresh", stateFresh.String())
	assert.Equal(t, "suspended", stateSuspended.String())
	assert.Equal(t, "terminated", stateTerminated.String())
	assert.Equal(t, "invalid", coroState(99).String())
}
