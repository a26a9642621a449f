package objstack

import (
	"unsafe"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// defaultChunkOverhead is subtracted from the host page size when picking
// a default chunk size, the same way the original reserves a few dozen
// bytes for the allocator's own bookkeeping so a "4 KiB" chunk request
// doesn't actually cause malloc to round up to two pages.
const defaultChunkOverhead = 64

const minChunkSize = 256

// defaultChunkSize picks a preferred chunk size near the host page size,
// per §4.1: "0 => implementation-chosen default near 4 KiB minus
// allocator overhead".
func defaultChunkSize() int {
	size := hostPageSize() - defaultChunkOverhead
	if size < minChunkSize {
		size = minChunkSize
	}
	return size
}

// defaultAlignment is the maximum alignment required by any of the
// platform's common scalar types, used whenever Options.Alignment is 0.
var defaultAlignment = func() int {
	a := unsafe.Alignof(uintptr(0))
	if al := unsafe.Alignof(float64(0)); al > a {
		a = al
	}
	if al := unsafe.Alignof(complex128(0)); al > a {
		a = al
	}
	return int(a)
}()

// Options configures a new Stack. The zero value is valid: it selects the
// default chunk size, default alignment, and a plain garbage-collected
// ChunkAllocator, with tracing disabled.
type Options struct {
	// ChunkSize is the preferred size for new chunks. Zero selects
	// defaultChunkSize().
	ChunkSize int

	// Alignment is the alignment every finalized object's address is a
	// multiple of. Must be a power of two, or zero to select
	// defaultAlignment.
	Alignment int

	// Allocator supplies and reclaims chunk backing memory. Nil selects
	// GoAllocator{}.
	Allocator ChunkAllocator

	// Logger, if non-nil, receives debug-level tracing of chunk
	// allocation, migration, recycling, and bulk free.
	Logger *zerolog.Logger
}

// Stack is a chunked, stack-structured region allocator: a single,
// possibly-partial "growing object" lives at the high end of the current
// chunk at all times, built up by the Grow family of methods, and frozen
// in place by Finish. It is not safe for concurrent use; see SafeStack.
type Stack struct {
	id     uuid.UUID
	Logger *zerolog.Logger

	chunkSize int
	alignMask uintptr

	chunk      *chunk
	objectBase uintptr
	nextFree   uintptr
	chunkLimit uintptr

	// maybeEmptyObject is set when a zero-length object was just
	// finalized, or when Free steps back onto an older chunk that may
	// contain a zero-length finalized object at its high end. A migration
	// clears it, since the new chunk holds no finalized object yet. It
	// makes old-chunk recycling conservative in exactly those cases; see
	// newChunk and Free.
	maybeEmptyObject bool

	allocator ChunkAllocator
}

// New creates and initializes a Stack per opts. If the backing allocator
// fails to produce the first chunk, AllocFailureHandler is invoked.
func New(opts Options) *Stack {
	s := &Stack{id: newStackID()}
	s.init(opts)
	return s
}

// Reinit releases nothing itself, but re-initializes s as if it were
// freshly constructed by New(opts). It is intended to be called after
// Free(nil), which intentionally leaves a Stack unusable rather than
// silently producing an empty-but-live Stack (see Free's doc comment for
// why).
func (s *Stack) Reinit(opts Options) {
	s.init(opts)
}

func (s *Stack) init(opts Options) {
	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize()
	}

	alignment := opts.Alignment
	if alignment <= 0 {
		alignment = defaultAlignment
	}
	if alignment&(alignment-1) != 0 {
		panic("objstack: alignment must be a power of two")
	}

	allocator := opts.Allocator
	if allocator == nil {
		allocator = GoAllocator{}
	}

	s.chunkSize = chunkSize
	s.alignMask = uintptr(alignment - 1)
	s.allocator = allocator
	s.Logger = opts.Logger

	c := s.allocChunk(chunkSize)
	c.prev = nil

	s.chunk = c
	s.objectBase = alignUp(c.contentsStart(), s.alignMask)
	s.nextFree = s.objectBase
	s.chunkLimit = c.limit
	s.maybeEmptyObject = false

	s.trace("init", "chunk_size", chunkSize, "alignment", alignment)
}

// allocChunk requests a size-byte chunk from the backing allocator,
// invoking AllocFailureHandler if it returns nil.
func (s *Stack) allocChunk(size int) *chunk {
	buf := s.allocator.AllocChunk(size)
	if buf == nil {
		failAlloc("ChunkAllocator.AllocChunk(%d) returned nil", size)
	}
	return newChunk(buf)
}

func (s *Stack) checkLive() {
	if s.chunk == nil {
		panic("objstack: Stack used after Free(nil); call Reinit before further use")
	}
}

// Base returns the current (possibly non-final) address of the growing
// object. The address may change after any subsequent growth operation
// that triggers a migration.
func (s *Stack) Base() unsafe.Pointer {
	return addr(s.objectBase).ptr()
}

// NextFree returns the address of the next free byte in the current chunk.
func (s *Stack) NextFree() unsafe.Pointer {
	return addr(s.nextFree).ptr()
}

// Size returns the number of bytes appended to the growing object so far.
func (s *Stack) Size() int {
	return int(s.nextFree - s.objectBase)
}

// Room returns the number of free bytes remaining in the current chunk.
func (s *Stack) Room() int {
	return int(s.chunkLimit - s.nextFree)
}

// Empty reports whether the Stack holds exactly one chunk and the next
// free byte is that chunk's aligned content start. A zero-length object
// finalized at that address, or a Free back to the first object, still
// leaves the Stack reading as empty. After Free(nil) it reports true.
func (s *Stack) Empty() bool {
	if s.chunk == nil {
		return true
	}
	return s.chunk.prev == nil && s.nextFree == alignUp(s.chunk.contentsStart(), s.alignMask)
}

// MemoryUsed returns the sum, over every chunk still held by the Stack, of
// the size originally requested from the backing allocator.
func (s *Stack) MemoryUsed() int {
	total := 0
	for c := s.chunk; c != nil; c = c.prev {
		total += len(c.buf)
	}
	return total
}
