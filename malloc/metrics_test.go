package malloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsOnEmptyHeap(t *testing.T) {
	h := newTestHeap(t)
	m := h.Metrics()

	assert.Equal(t, 0, m.BytesAllocated)
	assert.Equal(t, 0, m.BytesFree)
	assert.Equal(t, 0, m.LargestFreeByte)
	assert.Equal(t, float64(0), m.Utilization)
	assert.Greater(t, m.ArenaCapacity, 0)
}

func TestMetricsCountsAllocatedBytes(t *testing.T) {
	h := newTestHeap(t)

	_, ok := h.Allocate(24)
	require.True(t, ok)
	_, ok = h.Allocate(56)
	require.True(t, ok)

	m := h.Metrics()
	assert.Equal(t, 32+64, m.BytesAllocated)
	assert.Equal(t, 0, m.BytesFree)
}

func TestMetricsCountsFreeBytesByClass(t *testing.T) {
	h := newTestHeap(t)

	a, ok := h.Allocate(24)
	require.True(t, ok)
	h.Free(a)

	m := h.Metrics()
	assert.Equal(t, 0, m.BytesAllocated)
	assert.Equal(t, 32, m.BytesFree)
	class := classOf(32)
	assert.Equal(t, 32, m.FreeByClass[class])
	assert.Equal(t, 32, m.LargestFreeByte)
}

func TestMetricsUtilizationReflectsAllocatedShare(t *testing.T) {
	h := newTestHeap(t)

	_, ok := h.Allocate(24)
	require.True(t, ok)

	m := h.Metrics()
	assert.Greater(t, m.Utilization, 0.0)
	assert.Less(t, m.Utilization, 1.0)
}

func TestMetricsPanicsBeforeInit(t *testing.T) {
	h := NewHeap(nil)
	assert.Panics(t, func() {
		h.Metrics()
	})
}
