package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsw8075/malloc-lab/trace"
)

func TestNewModelStartsAtCursorZero(t *testing.T) {
	ops := []trace.Op{{Kind: trace.Alloc, ID: "x0", Size: 16, Line: 1}}
	m, err := newModel(ops, 4096, "byte")
	require.NoError(t, err)
	assert.Equal(t, 0, m.cursor)
	assert.True(t, m.checkOK)
}

func TestStepForwardAdvancesCursor(t *testing.T) {
	ops := []trace.Op{
		{Kind: trace.Alloc, ID: "x0", Size: 16, Line: 1},
		{Kind: trace.Free, ID: "x0", Line: 2},
	}
	m, err := newModel(ops, 4096, "byte")
	require.NoError(t, err)

	m.stepForward()
	assert.Equal(t, 1, m.cursor)
	_, live := m.replayer.Offset("x0")
	assert.True(t, live)

	m.stepForward()
	assert.Equal(t, 2, m.cursor)
	_, live = m.replayer.Offset("x0")
	assert.False(t, live)

	m.stepForward() // past the end is a no-op
	assert.Equal(t, 2, m.cursor)
}

func TestStepBackwardRewindsByReplay(t *testing.T) {
	ops := []trace.Op{
		{Kind: trace.Alloc, ID: "x0", Size: 16, Line: 1},
		{Kind: trace.Free, ID: "x0", Line: 2},
	}
	m, err := newModel(ops, 4096, "byte")
	require.NoError(t, err)

	m.stepForward()
	m.stepForward()
	m.stepBackward()

	assert.Equal(t, 1, m.cursor)
	_, live := m.replayer.Offset("x0")
	assert.True(t, live, "rewinding past the free should restore x0 as live")

	m.stepBackward()
	assert.Equal(t, 0, m.cursor)
	m.stepBackward() // before the start is a no-op
	assert.Equal(t, 0, m.cursor)
}

func TestCurrentOpReflectsLastApplied(t *testing.T) {
	ops := []trace.Op{{Kind: trace.Alloc, ID: "x0", Size: 16, Line: 1}}
	m, err := newModel(ops, 4096, "byte")
	require.NoError(t, err)

	_, ok := m.currentOp()
	assert.False(t, ok)

	m.stepForward()
	op, ok := m.currentOp()
	require.True(t, ok)
	assert.Equal(t, "x0", op.ID)
}
