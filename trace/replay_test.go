package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsw8075/malloc-lab/hostmem"
	"github.com/lsw8075/malloc-lab/malloc"
)

func newTestReplayer(t *testing.T) *Replayer {
	t.Helper()
	h := malloc.NewHeap(hostmem.NewByteArena(4096))
	require.NoError(t, h.Init())
	return NewReplayer(h)
}

func TestReplayerAppliesAllocateAndFree(t *testing.T) {
	r := newTestReplayer(t)

	require.NoError(t, r.Apply(Op{Kind: Alloc, ID: "x0", Size: 16, Line: 1}))
	_, live := r.Offset("x0")
	assert.True(t, live)
	assert.Equal(t, 1, r.LiveCount())

	require.NoError(t, r.Apply(Op{Kind: Free, ID: "x0", Line: 2}))
	_, live = r.Offset("x0")
	assert.False(t, live)
	assert.Equal(t, 0, r.LiveCount())

	ok, err := r.Heap.Check()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReplayerFreeOfUnknownIDFails(t *testing.T) {
	r := newTestReplayer(t)
	err := r.Apply(Op{Kind: Free, ID: "ghost", Line: 1})
	assert.Error(t, err)
}

func TestReplayerReallocTracksNewOffset(t *testing.T) {
	r := newTestReplayer(t)
	require.NoError(t, r.Apply(Op{Kind: Alloc, ID: "x0", Size: 16, Line: 1}))
	require.NoError(t, r.Apply(Op{Kind: Realloc, ID: "x0", Size: 4000, Line: 2}))

	bp, live := r.Offset("x0")
	assert.True(t, live)
	assert.GreaterOrEqual(t, r.Heap.Size(bp), uint32(4000))
}

func TestReplayerReallocUnknownIDBehavesAsAllocate(t *testing.T) {
	r := newTestReplayer(t)
	require.NoError(t, r.Apply(Op{Kind: Realloc, ID: "fresh", Size: 16, Line: 1}))
	_, live := r.Offset("fresh")
	assert.True(t, live)
}

func TestReplayerReallocToZeroFreesAndForgets(t *testing.T) {
	r := newTestReplayer(t)
	require.NoError(t, r.Apply(Op{Kind: Alloc, ID: "x0", Size: 16, Line: 1}))
	require.NoError(t, r.Apply(Op{Kind: Realloc, ID: "x0", Size: 0, Line: 2}))

	_, live := r.Offset("x0")
	assert.False(t, live)
}
