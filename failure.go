package objstack

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// ChunkAllocator is the injected backing allocator for a Stack's chunks.
// AllocChunk must return a buffer of exactly size bytes, or nil if no more
// memory is available; size includes whatever header room the Stack
// reserves (see chunkHeaderSize), matching the original's "size is the
// total chunk size including header" contract. FreeChunk releases a
// buffer previously returned by AllocChunk for this same Stack; it is
// only ever called on a chunk Free or a migration has determined is no
// longer reachable.
//
// The original C interface is a discriminated union of two shapes, plain
// alloc(size) and bound alloc(extra_arg, size), selected by a one-bit
// flag on the control block. Go has no need for that union: a "bound"
// allocator is simply a ChunkAllocator value whose AllocChunk/FreeChunk
// methods close over their own extra state as ordinary struct fields.
type ChunkAllocator interface {
	AllocChunk(size int) []byte
	FreeChunk(buf []byte)
}

// GoAllocator is the default ChunkAllocator: chunks are ordinary
// garbage-collected byte slices. FreeChunk is a no-op — dropping the last
// reference to buf is enough for the Go runtime to reclaim it once every
// pointer derived from it (every addr) has gone out of scope.
type GoAllocator struct{}

// AllocChunk implements ChunkAllocator.
func (GoAllocator) AllocChunk(size int) []byte { return make([]byte, size) }

// FreeChunk implements ChunkAllocator.
func (GoAllocator) FreeChunk([]byte) {}

// ExitFailure is the process exit code used by the default allocation
// failure handler, mirroring the original's obstack_exit_failure.
var ExitFailure = 1

// AllocFailureHandler is invoked when a backing allocator returns nil or a
// chunk-size computation overflows. It must not return; the default
// implementation writes a "memory exhausted" message to stderr and
// terminates the process, mirroring obstack_alloc_failed_handler's
// default of print_and_abort. Callers may replace it — for example with
// one that recovers via panic/recover instead of exiting — before using
// any Stack. Like the original, it is process-wide mutable state: it is
// not safe to replace concurrently with any Stack's operations.
var AllocFailureHandler = func(err error) {
	fmt.Fprintln(os.Stderr, "objstack: memory exhausted:", err)
	os.Exit(ExitFailure)
}

// failAlloc reports an allocation failure through AllocFailureHandler. If
// the handler returns (violating its contract), failAlloc panics rather
// than let the Stack continue mid-migration with inconsistent state.
func failAlloc(format string, args ...any) {
	err := errors.Wrap(fmt.Errorf(format, args...), "objstack: chunk allocation failed")
	AllocFailureHandler(err)
	panic("objstack: AllocFailureHandler returned instead of aborting")
}
