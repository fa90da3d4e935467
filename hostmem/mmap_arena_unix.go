//go:build unix

package hostmem

import (
	"golang.org/x/sys/unix"
)

// MmapArena is a Grower backed by an anonymous, zero-fill mmap mapping.
// It gives the arena real page-backed memory instead of a Go-managed
// slice, at the cost of a munmap+mmap+copy (rather than append-style
// realloc) whenever growth overruns the current mapping. Grounded in
// the "preallocate a flat region, track a logical high-water mark"
// idiom used by trace-driven mm.c harnesses, but with a real host
// mapping underneath instead of a process-heap malloc.
type MmapArena struct {
	mapping []byte // mmap'd region; len == capacity
	end     int
}

// NewMmapArena reserves an anonymous mapping of at least capacity bytes.
// If capacity <= 0, DefaultInitialCapacity is used. If the mapping
// cannot be created (e.g. sandboxed environment), it falls back to a
// ByteArena of the same capacity.
func NewMmapArena(capacity int) Grower {
	if capacity <= 0 {
		capacity = DefaultInitialCapacity
	}
	m, err := unix.Mmap(-1, 0, capacity, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return NewByteArena(capacity)
	}
	return &MmapArena{mapping: m}
}

// Extend implements Grower.
func (a *MmapArena) Extend(n int) (oldEnd int, ok bool) {
	if n < 0 {
		return 0, false
	}
	need := a.end + n
	if need > len(a.mapping) {
		if !a.remap(need) {
			return 0, false
		}
	}
	oldEnd = a.end
	a.end = need
	return oldEnd, true
}

// Bounds implements Grower.
func (a *MmapArena) Bounds() (lo, hi int) {
	return 0, a.end
}

// Bytes implements Grower.
func (a *MmapArena) Bytes() []byte {
	return a.mapping[:a.end]
}

// remap replaces the current mapping with a larger one, doubling
// capacity (or jumping to need if that's bigger), and copies the live
// prefix across. Returns false if the new mapping could not be created.
func (a *MmapArena) remap(need int) bool {
	newCap := len(a.mapping) * 2
	if newCap < need {
		newCap = need
	}
	next, err := unix.Mmap(-1, 0, newCap, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return false
	}
	copy(next, a.mapping[:a.end])
	_ = unix.Munmap(a.mapping)
	a.mapping = next
	return true
}

// Close releases the mapping. Safe to call multiple times.
func (a *MmapArena) Close() error {
	if a.mapping == nil {
		return nil
	}
	err := unix.Munmap(a.mapping)
	a.mapping = nil
	a.end = 0
	return err
}
