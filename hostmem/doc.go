// Package hostmem implements the host memory model consumed by the
// malloc package: a single, contiguous, byte-addressable region that
// grows monotonically, addressed by offset rather than pointer.
//
// # Overview
//
// hostmem plays the role of the classical mem_sbrk/mem_heap_lo/mem_heap_hi
// trio from a trace-driven malloc lab: a growth primitive (Extend) and a
// bounds query (Bounds), both defined by the Grower interface. Two
// implementations are provided:
//
//   - ByteArena: a plain Go byte slice grown by doubling-then-copy. Used
//     by default and in tests; portable to every platform Go supports.
//   - MmapArena: an anonymous mmap reservation grown by replacing the
//     mapping with a larger one (build-tagged to unix platforms).
//
// # Basic Usage
//
//	g := hostmem.NewByteArena(0) // default initial capacity
//	base, ok := g.Extend(312)    // grow by both sentinel regions (2 x 156)
//	lo, hi := g.Bounds()
//
// # Addressing Model
//
// Offsets are relative to the start of the arena, not raw pointers. The
// arena owns all bytes; callers (the malloc package) hold an exclusive
// reference to one Grower and interpret offsets within it. This sidesteps
// aliasing hazards that a raw-unsafe.Pointer model would otherwise need to
// manage by hand, at the cost of an extra offset-to-byte indirection on
// every access.
package hostmem
