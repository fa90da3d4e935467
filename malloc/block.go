package malloc

import "encoding/binary"

// Word and alignment sizes. The block header/footer wire format is
// fixed at 32 bits regardless of host pointer width, capping a single
// Heap's arena at just under 4 GiB.
const (
	wordSize  = 4
	dWordSize = 8
	alignment = 8

	freeBit = 1 // status bit: 1 = free, 0 = allocated

	// SeglistCount is the number of segregated size classes.
	SeglistCount = 13

	// MinBlockSize is the smallest legal block: header + pred + succ + footer.
	MinBlockSize = 16

	sentinelTripleSize = 3 * wordSize
	sentinelRegionSize = SeglistCount * sentinelTripleSize
)

// alignUp rounds n up to the next multiple of to, where to is a power of two.
func alignUp(n, to uint32) uint32 {
	return (n + to - 1) &^ (to - 1)
}

// packHeader combines a block size with its free bit into a header/footer word.
func packHeader(size uint32, free bool) uint32 {
	w := size &^ (alignment - 1)
	if free {
		w |= freeBit
	}
	return w
}

func unpackSize(word uint32) uint32 { return word &^ (alignment - 1) }
func unpackFree(word uint32) bool   { return word&freeBit != 0 }

// readWord and writeWord are the sole points where the arena's byte
// buffer is interpreted as 32-bit words. Every other function in this
// file works in terms of byte offsets relative to the arena base.
func (h *Heap) readWord(off int) uint32 {
	b := h.g.Bytes()
	return binary.LittleEndian.Uint32(b[off : off+wordSize])
}

func (h *Heap) writeWord(off int, v uint32) {
	b := h.g.Bytes()
	binary.LittleEndian.PutUint32(b[off:off+wordSize], v)
}

// hdrOff returns the offset of bp's header word. Unlike ftrOff/nextOff,
// this needs no prior read: the header always sits exactly one word
// before the payload.
func (h *Heap) hdrOff(bp int) int { return bp - wordSize }

// ftrOff returns the offset of bp's footer word, derived from the size
// currently recorded in bp's header.
func (h *Heap) ftrOff(bp int) int { return bp + int(h.sizeOf(bp)) - dWordSize }

// nextOff returns the payload offset of the block immediately after bp.
func (h *Heap) nextOff(bp int) int { return bp + int(h.sizeOf(bp)) }

// prevOff returns the payload offset of the block immediately before bp,
// derived from the previous block's footer (the word just before bp's header).
func (h *Heap) prevOff(bp int) int {
	prevSize := unpackSize(h.readWord(bp - dWordSize))
	return bp - int(prevSize)
}

// sizeOf reads the size recorded in bp's header.
func (h *Heap) sizeOf(bp int) uint32 { return unpackSize(h.readWord(h.hdrOff(bp))) }

// isFree reports whether bp's header marks it free.
func (h *Heap) isFree(bp int) bool { return unpackFree(h.readWord(h.hdrOff(bp))) }

// setBlock writes size/free to both bp's header and footer. Header is
// written first so ftrOff, which re-reads the header to locate the
// footer, picks up the new size.
func (h *Heap) setBlock(bp int, size uint32, free bool) {
	word := packHeader(size, free)
	h.writeWord(h.hdrOff(bp), word)
	h.writeWord(h.ftrOff(bp), word)
}
