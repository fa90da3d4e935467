// Package malloc implements a segregated-fit dynamic storage allocator
// over a single, contiguous, byte-addressable arena supplied by a
// hostmem.Grower.
//
// # Overview
//
// Heap is the allocator engine: Init, Allocate, Free, and Realloc,
// built on two lower subsystems:
//
//   - block layout primitives (header/footer boundary tags, §4.1 of the
//     design) that derive a block's header, footer, next-block and
//     previous-block offsets from its payload offset;
//   - a segregated explicit free list (13 size classes, LIFO intra-class
//     ordering, prolog/epilog sentinel triples) that makes placement,
//     insertion, and removal branch-free at list boundaries.
//
// # Basic Usage
//
//	g := hostmem.NewByteArena(0)
//	h := malloc.NewHeap(g)
//	if err := h.Init(); err != nil {
//	    log.Fatal(err)
//	}
//
//	bp, ok := h.Allocate(100)
//	// ... use the payload bytes at g.Bytes()[bp : bp+100] ...
//	h.Free(bp)
//
// # Addressing Model
//
// Blocks are addressed by int offset into the Grower's backing bytes,
// not by pointer — the arena owns all bytes, Heap holds an exclusive
// reference to one Grower, and payloads are handed out as offsets with
// caller-managed lifetime. This sidesteps the need to track pointer
// relocation when the underlying buffer grows and gets reallocated.
//
// # Thread Safety
//
// Heap is not safe for concurrent use. It is intentionally
// single-threaded: serialize access externally (one Heap per goroutine,
// or a caller-side mutex) if concurrent access is needed.
package malloc
