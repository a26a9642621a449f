//go:build unix

package objstack

import "golang.org/x/sys/unix"

// DebugAllocator is a ChunkAllocator that poisons a chunk's backing pages
// with PROT_NONE instead of merely dropping the slice reference on
// FreeChunk. Any dereference through a dangling addr derived from a freed
// chunk then segfaults immediately rather than silently reading whatever
// the Go garbage collector has or hasn't reused the memory for yet,
// grounded on the mmap/mprotect guard-page idiom used for page-level memory
// management in gvisor's pgalloc package and in folbricht-desync's sparse
// file handling.
//
// DebugAllocator rounds every request up to a whole number of host pages,
// since mprotect operates at page granularity. It is intended for tests and
// fuzzing, not production use: mmap'd memory is not participating in Go's
// GC and every chunk costs at least one full page.
type DebugAllocator struct{}

// AllocChunk implements ChunkAllocator using an anonymous mmap region.
func (DebugAllocator) AllocChunk(size int) []byte {
	pageSize := hostPageSize()
	rounded := ((size + pageSize - 1) / pageSize) * pageSize
	buf, err := unix.Mmap(-1, 0, rounded, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil
	}
	return buf[:size]
}

// FreeChunk marks buf's backing pages PROT_NONE rather than unmapping them
// outright, so a stray access still faults predictably instead of
// potentially succeeding against memory the kernel has handed to an
// unrelated mapping.
func (DebugAllocator) FreeChunk(buf []byte) {
	if len(buf) == 0 {
		return
	}
	full := buf[:cap(buf):cap(buf)]
	_ = unix.Mprotect(full, unix.PROT_NONE)
}
