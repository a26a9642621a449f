//go:build !unix

package objstack

// DebugAllocator falls back to plain garbage-collected chunks on platforms
// without mmap/mprotect support; it exists there only so the type name
// stays portable, not to provide poisoning guarantees.
type DebugAllocator struct{}

// AllocChunk implements ChunkAllocator.
func (DebugAllocator) AllocChunk(size int) []byte { return make([]byte, size) }

// FreeChunk implements ChunkAllocator.
func (DebugAllocator) FreeChunk([]byte) {}
