package trace

import (
	"fmt"

	"github.com/lsw8075/malloc-lab/malloc"
)

// Replayer drives a malloc.Heap from parsed Ops, translating each
// trace-local ID to the heap offset the allocator actually assigned
// it, the way the original driver's id-to-pointer table does.
type Replayer struct {
	Heap *malloc.Heap
	live map[string]int
}

// NewReplayer wraps h for replay. h must already be initialized.
func NewReplayer(h *malloc.Heap) *Replayer {
	return &Replayer{Heap: h, live: make(map[string]int)}
}

// Apply executes one operation against the heap, returning an error
// that names the offending trace line on failure.
func (r *Replayer) Apply(op Op) error {
	switch op.Kind {
	case Alloc:
		bp, ok := r.Heap.Allocate(op.Size)
		if !ok {
			return fmt.Errorf("trace: line %d: allocate %d bytes for %q: %w", op.Line, op.Size, op.ID, malloc.ErrArenaExhausted)
		}
		r.live[op.ID] = bp

	case Free:
		bp, known := r.live[op.ID]
		if !known {
			return fmt.Errorf("trace: line %d: free of unknown id %q", op.Line, op.ID)
		}
		r.Heap.Free(bp)
		delete(r.live, op.ID)

	case Realloc:
		bp := r.live[op.ID] // 0 if unknown, which Realloc treats as a fresh allocation
		newBP, ok := r.Heap.Realloc(bp, op.Size)
		if !ok {
			if op.Size == 0 {
				delete(r.live, op.ID)
				return nil
			}
			return fmt.Errorf("trace: line %d: realloc %d bytes for %q: %w", op.Line, op.Size, op.ID, malloc.ErrArenaExhausted)
		}
		r.live[op.ID] = newBP
	}
	return nil
}

// Offset reports the heap offset currently assigned to a trace id, and
// whether that id is still live.
func (r *Replayer) Offset(id string) (int, bool) {
	bp, ok := r.live[id]
	return bp, ok
}

// LiveCount reports how many trace ids are currently allocated.
func (r *Replayer) LiveCount() int {
	return len(r.live)
}
