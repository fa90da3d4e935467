package malloc

import "github.com/lsw8075/malloc-lab/hostmem"

// Heap is one allocator instance: engine state threaded explicitly
// through every operation, so that the "global allocator" the original
// C API exposes is, here, just a thin convenience wrapper a caller can
// build over one default Heap, rather than the engine's only mode.
type Heap struct {
	g hostmem.Grower

	epilogBase int // offset of the epilog region's first word (class 0's header field)
	ready      bool
}

// NewHeap creates a Heap over the given host memory model. Call Init
// before any other method.
func NewHeap(g hostmem.Grower) *Heap {
	return &Heap{g: g}
}

// Init lays down the 13 prolog/epilog sentinel triples and prepares
// the heap for allocation. It requests exactly
// 2 * SeglistCount * 3 * wordSize bytes from the host memory model.
func (h *Heap) Init() error {
	oldEnd, ok := h.g.Extend(2 * sentinelRegionSize)
	if !ok {
		return ErrArenaExhausted
	}
	h.epilogBase = oldEnd + sentinelRegionSize

	for i := 0; i < SeglistCount; i++ {
		prolog := h.prologBP(i)
		epilog := h.epilogBP(i)

		h.writeWord(h.predOff(prolog), 0)
		h.writeWord(h.succOff(prolog), uint32(epilog))
		h.writeWord(prolog+2*wordSize, 0) // prolog footer

		h.writeWord(h.hdrOff(epilog), 0)
		h.writeWord(h.predOff(epilog), uint32(prolog))
		h.writeWord(h.succOff(epilog), 0)
	}

	h.ready = true
	return nil
}

func (h *Heap) checkReady() {
	if !h.ready {
		panic(ErrNotInitialized)
	}
}

// Allocate reserves a block of at least size payload bytes and returns
// its payload offset. size == 0 returns (0, false) and leaves the heap
// unchanged; that is not an error.
func (h *Heap) Allocate(size uint32) (int, bool) {
	h.checkReady()
	if size == 0 {
		return 0, false
	}
	asize := alignUp(size, alignment) + dWordSize

	if bp, found := h.findFit(asize); found {
		h.removeFree(bp)
		bsize := h.sizeOf(bp)
		if bsize-asize >= MinBlockSize {
			h.setBlock(bp, asize, false)
			rem := h.nextOff(bp)
			h.setBlock(rem, bsize-asize, true)
			h.insertFree(rem)
		} else {
			h.setBlock(bp, bsize, false)
		}
		return bp, true
	}

	bp, ok := h.growForAllocation(asize)
	if !ok {
		return 0, false
	}
	h.setBlock(bp, asize, false)
	return bp, true
}

// findFit walks classes from classOf(asize) up to the largest class,
// first-fit within each class, escalating to the next class on a miss.
func (h *Heap) findFit(asize uint32) (int, bool) {
	for i := classOf(asize); i < SeglistCount; i++ {
		for cur := h.firstFree(i); h.readWord(h.hdrOff(cur)) != 0; cur = int(h.readWord(h.succOff(cur))) {
			if h.sizeOf(cur) >= asize {
				return cur, true
			}
		}
	}
	return 0, false
}

// growForAllocation finds or creates room for a block of size asize at
// the top of the arena, returning its payload offset.
func (h *Heap) growForAllocation(asize uint32) (int, bool) {
	tailFooter := h.readWord(h.epilogBase - wordSize)
	if unpackFree(tailFooter) {
		size := unpackSize(tailFooter)
		bp := h.epilogBase - int(size) + wordSize
		h.removeFree(bp)
		shortfall := int(asize) - int(size)
		if shortfall > 0 {
			if !h.growArena(shortfall) {
				h.insertFree(bp)
				return 0, false
			}
		}
		return bp, true
	}

	bp := h.epilogBase + wordSize
	if !h.growArena(int(asize)) {
		return 0, false
	}
	return bp, true
}

// Free returns bp's block to the free pool, coalescing with any
// immediately adjacent free neighbors. bp == 0 is a no-op.
func (h *Heap) Free(bp int) {
	h.checkReady()
	if bp == 0 {
		return
	}
	size := h.sizeOf(bp)
	h.setBlock(bp, size, true)

	prevWord := h.readWord(bp - dWordSize)
	nextBP := bp + int(size)
	nextWord := h.readWord(h.hdrOff(nextBP))

	start := bp
	newSize := size

	if unpackFree(prevWord) {
		prevSize := unpackSize(prevWord)
		prevBP := bp - int(prevSize)
		h.removeFree(prevBP)
		newSize += prevSize
		start = prevBP
	}
	if unpackFree(nextWord) {
		nextSize := unpackSize(nextWord)
		h.removeFree(nextBP)
		newSize += nextSize
	}

	h.setBlock(start, newSize, true)
	h.insertFree(start)
}

// Size returns bp's usable payload size (excluding header/footer
// overhead), the quantity the original mm_size exposes.
func (h *Heap) Size(bp int) uint32 {
	h.checkReady()
	return h.sizeOf(bp) - dWordSize
}

// Realloc resizes bp's block to hold size payload bytes, preferring to
// absorb free space forward (never backward; see DESIGN.md) or grow
// the arena in place when bp is the last block, and falling back to
// allocate+copy+free otherwise.
func (h *Heap) Realloc(bp int, size uint32) (int, bool) {
	h.checkReady()
	if bp == 0 {
		return h.Allocate(size)
	}
	if size == 0 {
		h.Free(bp)
		return 0, false
	}

	asize := alignUp(size, alignment) + dWordSize
	cur := h.sizeOf(bp)
	nextBP := bp + int(cur)
	nextWord := h.readWord(h.hdrOff(nextBP))
	nextFree := unpackFree(nextWord)
	nextSize := unpackSize(nextWord)
	isLast := h.hdrOff(nextBP) == h.epilogBase

	var total uint32
	switch {
	case nextFree && cur+nextSize >= asize:
		h.removeFree(nextBP)
		total = cur + nextSize

	case !nextFree && cur >= asize:
		total = cur

	case isLast:
		if nextFree {
			h.removeFree(nextBP)
			cur += nextSize
		}
		if shortfall := int(asize) - int(cur); shortfall > 0 {
			if !h.growArena(shortfall) {
				return 0, false
			}
		}
		total = asize

	default:
		newBP, ok := h.Allocate(size)
		if !ok {
			return 0, false
		}
		copyLen := int(size)
		if usable := int(h.Size(bp)); usable < copyLen {
			copyLen = usable
		}
		buf := h.g.Bytes()
		copy(buf[newBP:newBP+copyLen], buf[bp:bp+copyLen])
		h.Free(bp)
		return newBP, true
	}

	if total-asize >= MinBlockSize {
		h.setBlock(bp, asize, false)
		tail := bp + int(asize)
		h.setBlock(tail, total-asize, true)
		h.insertFree(tail)
	} else {
		h.setBlock(bp, total, false)
	}
	return bp, true
}

// growArena extends the arena by delta bytes (rounded up to 8) and
// relocates the 13 epilog sentinel triples to the new end, repointing
// any real free block that was a class's tail so it still finds the
// epilog at its new address.
func (h *Heap) growArena(delta int) bool {
	delta = int(alignUp(uint32(delta), alignment))

	oldEpilogBase := h.epilogBase
	oldEnd, ok := h.g.Extend(delta)
	if !ok {
		return false
	}
	newEpilogBase := oldEnd + delta - sentinelRegionSize

	buf := h.g.Bytes()
	copy(buf[newEpilogBase:newEpilogBase+sentinelRegionSize], buf[oldEpilogBase:oldEpilogBase+sentinelRegionSize])
	h.epilogBase = newEpilogBase

	for i := 0; i < SeglistCount; i++ {
		epilog := h.epilogBP(i)
		predFree := int(h.readWord(h.predOff(epilog)))
		if predFree != h.prologBP(i) {
			h.writeWord(h.succOff(predFree), uint32(epilog))
		}
	}
	return true
}
