package malloc

// HeapMetrics is a snapshot of a Heap's occupancy, analogous to the
// teacher arena's ArenaMetrics but scoped to a segregated-fit
// allocator: bytes actually handed to callers, bytes sitting free
// across all 13 classes, how those free bytes are distributed, and
// the largest single free block available.
type HeapMetrics struct {
	BytesAllocated  int
	BytesFree       int
	ArenaCapacity   int
	FreeByClass     [SeglistCount]int // free bytes per size class
	LargestFreeByte int
	Utilization     float64 // BytesAllocated / ArenaCapacity
}

// Metrics walks the heap once and reports current occupancy.
func (h *Heap) Metrics() HeapMetrics {
	h.checkReady()

	var m HeapMetrics
	_, hi := h.g.Bounds()
	m.ArenaCapacity = hi

	firstBP := sentinelRegionSize + wordSize
	for cur := firstBP; h.readWord(h.hdrOff(cur)) != 0; cur = h.nextOff(cur) {
		size := int(h.sizeOf(cur))
		if h.isFree(cur) {
			m.BytesFree += size
			class := classOf(uint32(size))
			m.FreeByClass[class] += size
			if size > m.LargestFreeByte {
				m.LargestFreeByte = size
			}
		} else {
			m.BytesAllocated += size
		}
	}

	if m.ArenaCapacity > 0 {
		m.Utilization = float64(m.BytesAllocated) / float64(m.ArenaCapacity)
	}
	return m
}
