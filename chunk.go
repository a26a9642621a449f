package objstack

import "unsafe"

// chunkHeaderSize reserves space at the front of every chunk's backing
// buffer for the conceptual header (limit + prev) the original obstack.c
// embeds inline ahead of chunk->contents. Reserving it here keeps the
// "address of chunk" boundary arithmetic in Free/newChunk faithful to the
// original: the first content byte of a chunk is never equal to the
// chunk's own base address, so the strict '>' lower bound in contains
// behaves the same way it does in the C implementation.
const chunkHeaderSize = int(unsafe.Sizeof(uintptr(0))) * 2

// chunk is a single contiguous backing region obtained from a
// ChunkAllocator. Finalized objects and at most one partial growing
// object live in chunk.buf; chunk itself is an ordinary Go heap value, not
// embedded in buf, so buf never needs an unsafe cast back to a struct.
type chunk struct {
	buf   []byte // backing memory; keeps the region reachable for the GC
	base  uintptr
	limit uintptr // one past the last usable byte
	prev  *chunk

	// used marks the end of finalized content in this chunk, for metrics
	// only. It is set when the chunk stops being current (during
	// migration) or when Free rewinds into it; the core algorithm never
	// reads it.
	used uintptr
}

func newChunk(buf []byte) *chunk {
	if len(buf) == 0 {
		panic("objstack: ChunkAllocator returned an empty buffer")
	}
	base := uintptr(unsafe.Pointer(&buf[0]))
	return &chunk{
		buf:   buf,
		base:  base,
		limit: base + uintptr(len(buf)),
	}
}

// contentsStart is the first address within the chunk where user data may
// begin, before alignment padding.
func (c *chunk) contentsStart() uintptr {
	return c.base + uintptr(chunkHeaderSize)
}

// contains reports whether target lies within this chunk's usable range.
//
// Grounded on obstack.c's _obstack_free / _obstack_allocated_p loop
// condition "lp >= obj || lp->limit < obj" (continue scanning while NOT
// contained): negating that gives contains = obj > lp && obj <= lp->limit.
// A pointer exactly at a chunk's own base address is never inside it (no
// object can start at the header), but a pointer exactly at limit is
// inside — that is precisely how an empty object finalized at the high
// end of one chunk is distinguished from the (unrelated) base of whatever
// chunk happens to follow it.
func (c *chunk) contains(target uintptr) bool {
	return target > c.base && target <= c.limit
}

// addr is a raw address within one of a Stack's chunks. Go's GC does not
// currently move heap allocations, so converting an addr back to a
// pointer is safe for as long as the owning chunk remains reachable via
// Stack.chunk / chunk.prev; once Free or a migration retires that chunk,
// any addr derived from it is a dangling view into retired memory by
// contract, not because the bytes were actually reclaimed (GoAllocator
// leaves reclamation to the Go garbage collector; other allocators may be
// more aggressive — see DebugAllocator).
type addr uintptr

func (a addr) ptr() unsafe.Pointer { return unsafe.Pointer(uintptr(a)) }

func addrOf(p unsafe.Pointer) addr { return addr(uintptr(p)) }

// alignUp rounds addr up to the next multiple of mask+1. mask must be a
// power of two minus one. This is the uniform, pointer-width-agnostic
// formulation Design Notes recommend in place of obstack.c's dual
// __PTR_ALIGN/__BPTR_ALIGN strategy: it is equivalent whenever the base
// being aligned from is itself already aligned, which every object_base
// in this package always is.
func alignUp(addr uintptr, mask uintptr) uintptr {
	return (addr + mask) &^ mask
}
