// Package objstack implements a chunked, stack-structured region allocator
// (an "object stack", after the GNU obstack this package is modeled on).
//
// # Overview
//
// A Stack builds many variable-sized objects in place, one at a time, by
// repeatedly appending bytes to a "growing object" that lives at the high
// end of the current backing chunk. Once the object is complete, Finish
// freezes its address; the object never moves again. This is particularly
// useful for:
//
//   - Building strings, symbol-table entries, or parse-tree nodes whose
//     final length isn't known until you're done appending
//   - Batched, stack-discipline cleanup: freeing any finalized object
//     discards everything finalized after it, cheaply
//   - Avoiding per-object allocation overhead for many short-lived objects
//
// # Basic Usage
//
//	s := objstack.New(objstack.Options{})
//	defer s.Free(nil) // release every chunk
//
//	s.Grow([]byte("hello, "))
//	s.Grow([]byte("world"))
//	p := s.Finish() // "hello, world", address now frozen
//
//	q := objstack.NewT(s, someStruct{})
//
// # Stack discipline, not heap discipline
//
// Unlike a general-purpose allocator, Stack has no per-object free: Free
// takes any address previously returned by Finish and rewinds the whole
// Stack to that point, releasing every chunk that becomes wholly
// unreachable as a result. There is no way to free an object in the
// middle while keeping objects finalized after it.
//
// # Thread Safety
//
// Stack is not safe for concurrent use; it is a single-owner,
// single-threaded control block by design. SafeStack serializes whole-stack
// access behind a mutex for callers that hand a Stack between goroutines,
// but it does not make concurrent growth of one object from two goroutines
// meaningful.
//
// # Memory Layout
//
// Stack allocates memory in large chunks (by default sized from the host
// page size) obtained from a ChunkAllocator. When a chunk fills up, a
// chunk migration relocates the partially built object into a new, larger
// chunk; finalized objects already in a chunk are left untouched, and the
// old chunk is recycled only when doing so cannot orphan a zero-length
// finalized object that happens to live at its address.
package objstack
