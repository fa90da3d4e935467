package hostmem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteArena(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		expected int
	}{
		{"default capacity", 0, DefaultInitialCapacity},
		{"negative capacity", -1, DefaultInitialCapacity},
		{"custom capacity", 8192, 8192},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewByteArena(tt.capacity)
			assert.Equal(t, tt.expected, cap(a.buf))
			lo, hi := a.Bounds()
			assert.Equal(t, 0, lo)
			assert.Equal(t, 0, hi)
		})
	}
}

func TestByteArenaExtend(t *testing.T) {
	a := NewByteArena(64)

	oldEnd, ok := a.Extend(16)
	require.True(t, ok)
	assert.Equal(t, 0, oldEnd)

	oldEnd, ok = a.Extend(8)
	require.True(t, ok)
	assert.Equal(t, 16, oldEnd)

	_, hi := a.Bounds()
	assert.Equal(t, 24, hi)
}

func TestByteArenaExtendGrowsBackingBuffer(t *testing.T) {
	a := NewByteArena(16)

	_, ok := a.Extend(8)
	require.True(t, ok)
	initialCap := cap(a.buf)

	_, ok = a.Extend(1024)
	require.True(t, ok)
	assert.Greater(t, cap(a.buf), initialCap)

	_, hi := a.Bounds()
	assert.Equal(t, 1032, hi)
}

func TestByteArenaExtendNegativeFails(t *testing.T) {
	a := NewByteArena(64)
	_, ok := a.Extend(-1)
	assert.False(t, ok)
}

func TestByteArenaBytesReflectsGrowth(t *testing.T) {
	a := NewByteArena(64)
	_, ok := a.Extend(10)
	require.True(t, ok)

	b := a.Bytes()
	require.Len(t, b, 10)

	b[0] = 0xAB
	b[9] = 0xCD
	assert.Equal(t, byte(0xAB), a.Bytes()[0])
	assert.Equal(t, byte(0xCD), a.Bytes()[9])
}

func TestByteArenaPreservesContentAcrossGrowth(t *testing.T) {
	a := NewByteArena(8)
	_, ok := a.Extend(8)
	require.True(t, ok)
	a.Bytes()[0] = 0x42

	_, ok = a.Extend(4096)
	require.True(t, ok)
	assert.Equal(t, byte(0x42), a.Bytes()[0])
}
