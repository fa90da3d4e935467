package malloc

import "math/bits"

// classOf returns the segregated size class for a block of the given
// total size (header+payload+footer), class i covering
// [2^(i+4), 2^(i+5)), with class 12 absorbing everything >= 2^16.
// Computed as the integer base-2 logarithm of size, minus 4, clamped
// to [0, 12] via bits.Len32.
func classOf(size uint32) int {
	if size == 0 {
		return 0
	}
	class := bits.Len32(size) - 1 - 4
	switch {
	case class < 0:
		return 0
	case class > SeglistCount-1:
		return SeglistCount - 1
	default:
		return class
	}
}

// predOff and succOff give the pred/succ link offsets relative to a
// free-list node's "bp". The convention applies identically to a real
// free block's payload offset and to a sentinel's fake bp, so
// insert/remove/walk code treats both uniformly.
func (h *Heap) predOff(bp int) int { return bp }
func (h *Heap) succOff(bp int) int { return bp + wordSize }

// prologBP returns class i's sentinel "bp": the address of its pred
// field. The prolog triple is [pred, succ, footer], with pred at
// offset 0 and succ at +4, matching predOff/succOff's generic bp+0/bp+4
// convention, so prologBP(i) stands in for bp in any free-list
// operation. The prolog region never moves.
func (h *Heap) prologBP(i int) int {
	return i * sentinelTripleSize
}

// epilogBP returns class i's sentinel "bp": the address of its pred
// field. The epilog triple is [header, pred, succ], with pred at +4
// (one word past the triple start), so hdrOff(epilogBP(i)) lands on
// the triple's header field, always 0, halting forward boundary-tag
// walks. The epilog region is relocated on every growth.
func (h *Heap) epilogBP(i int) int {
	return h.epilogBase + i*sentinelTripleSize + wordSize
}

// insertFree splices bp onto the head of its size class's free list
// (LIFO): pred becomes the class prolog, succ becomes the class's
// previous head. bp's header/footer must already record it free with
// its final size.
func (h *Heap) insertFree(bp int) {
	i := classOf(h.sizeOf(bp))
	predFree := h.prologBP(i)
	succFree := int(h.readWord(h.succOff(predFree)))

	h.writeWord(h.predOff(bp), uint32(predFree))
	h.writeWord(h.succOff(bp), uint32(succFree))
	h.writeWord(h.succOff(predFree), uint32(bp))
	h.writeWord(h.predOff(succFree), uint32(bp))
}

// removeFree splices bp out of whichever free list it belongs to,
// using only its own pred/succ links. No size-class lookup is needed;
// the sentinels absorb head/tail cases.
func (h *Heap) removeFree(bp int) {
	predFree := int(h.readWord(h.predOff(bp)))
	succFree := int(h.readWord(h.succOff(bp)))

	h.writeWord(h.succOff(predFree), uint32(succFree))
	h.writeWord(h.predOff(succFree), uint32(predFree))
}

// firstFree returns the head of class i's free list: the class's own
// epilogBP(i) if the list is empty.
func (h *Heap) firstFree(i int) int {
	return int(h.readWord(h.succOff(h.prologBP(i))))
}
