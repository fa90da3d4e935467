//go:build !unix

package hostmem

// NewMmapArena falls back to a ByteArena on platforms without an
// anonymous-mmap facility wired up (golang.org/x/sys/unix covers unix
// targets only).
func NewMmapArena(capacity int) Grower {
	return NewByteArena(capacity)
}
