package malloc

// Check walks the heap looking for invariant violations: every normal
// block's header must equal its footer, no two adjacent blocks may
// both be free, and every block reachable from a segregated list must
// actually be free and filed under the class its size maps to. It
// mirrors the original mm_check's two-pass shape (block-list pass,
// then free-list pass) generalized to 13 lists.
//
// Check never panics; it returns (false, err) with err describing the
// first violation found, so self-tests can assert on the result
// instead of relying on process-terminating behavior.
func (h *Heap) Check() (bool, error) {
	h.checkReady()

	if err := h.checkBlockList(); err != nil {
		return false, err
	}
	if err := h.checkFreeLists(); err != nil {
		return false, err
	}
	return true, nil
}

func (h *Heap) checkBlockList() error {
	firstBP := sentinelRegionSize + wordSize
	prevWasFree := false

	for cur := firstBP; h.readWord(h.hdrOff(cur)) != 0; cur = h.nextOff(cur) {
		hdr := h.readWord(h.hdrOff(cur))
		ftr := h.readWord(h.ftrOff(cur))
		if hdr != ftr {
			return &CheckError{Offset: cur, Reason: "header and footer mismatch"}
		}

		free := unpackFree(hdr)
		if free && prevWasFree {
			return &CheckError{Offset: cur, Reason: "adjacent free blocks not coalesced"}
		}
		size := unpackSize(hdr)
		if size < MinBlockSize || size%alignment != 0 {
			return &CheckError{Offset: cur, Reason: "block size smaller than minimum or misaligned"}
		}
		prevWasFree = free
	}
	return nil
}

func (h *Heap) checkFreeLists() error {
	for i := 0; i < SeglistCount; i++ {
		for cur := h.firstFree(i); h.readWord(h.hdrOff(cur)) != 0; cur = int(h.readWord(h.succOff(cur))) {
			if !h.isFree(cur) {
				return &CheckError{Offset: cur, Reason: "allocated block present in free list"}
			}
			if got := classOf(h.sizeOf(cur)); got != i {
				return &CheckError{Offset: cur, Reason: "block filed under the wrong size class"}
			}
		}
	}
	return nil
}
