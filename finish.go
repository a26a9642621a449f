package objstack

import "unsafe"

// Finish freezes the current growing object and returns its address. The
// address is stable for the remainder of the Stack's lifetime, or until a
// Free targets it or anything finalized at or below it. The next growing
// object begins at the first aligned address at or after the end of the
// finalized one (the same address when the object is empty), clamped to
// the chunk limit.
func (s *Stack) Finish() unsafe.Pointer {
	s.checkLive()

	result := s.objectBase
	if s.nextFree == s.objectBase {
		// A zero-length object is being finalized. Its address coincides
		// with whatever follows, so future chunk recycling must be
		// conservative about treating this chunk as safely discardable.
		s.maybeEmptyObject = true
	}

	debugAssert(s.objectBase <= s.nextFree, "finish: object_base %d past next_free %d", s.objectBase, s.nextFree)

	next := alignUp(s.nextFree, s.alignMask)
	if next > s.chunkLimit {
		// Padding consumed the chunk tail; clamp so object_base stays
		// within the chunk. Subsequent growth will migrate.
		next = s.chunkLimit
	}
	s.nextFree = next
	s.objectBase = next

	s.trace("finish", "addr", result, "size", int(next-result))
	return addr(result).ptr()
}

// Free rewinds the Stack to the finalized object at obj, discarding every
// object finalized after it and releasing any chunk that becomes wholly
// unreachable as a result. obj must have been returned by a prior Finish
// on this exact Stack, or be nil to release every chunk.
//
// Free(nil) intentionally leaves the Stack unusable rather than silently
// producing an empty-but-live Stack: the original's _obstack_free leaves
// the control block's fields dangling in this case, and producing a
// quietly-reusable zero value here would hide that a caller skipped
// initialization. Call Reinit to make the Stack usable again.
func (s *Stack) Free(obj unsafe.Pointer) {
	if obj == nil {
		s.freeAll()
		return
	}
	s.checkLive()

	target := addrOf(obj)
	c := s.chunk
	for c != nil && !c.contains(uintptr(target)) {
		next := c.prev
		s.allocator.FreeChunk(c.buf)
		s.trace("free_chunk", "base", c.base)
		c = next
		// Having switched chunks, we can no longer rule out that the new
		// current chunk holds a zero-length finalized object at its high
		// end.
		s.maybeEmptyObject = true
	}
	if c == nil {
		panic("objstack: Free called with a pointer not owned by this Stack")
	}

	c.used = uintptr(target)
	s.objectBase = uintptr(target)
	s.nextFree = uintptr(target)
	s.chunkLimit = c.limit
	s.chunk = c

	s.trace("free", "addr", uintptr(target))
}

// freeAll releases every chunk and marks the Stack as uninitialized. It
// is idempotent: calling it again (or calling Free(nil) twice) is safe.
func (s *Stack) freeAll() {
	if s.chunk == nil {
		return
	}
	for c := s.chunk; c != nil; {
		next := c.prev
		s.allocator.FreeChunk(c.buf)
		c = next
	}
	s.chunk = nil
	s.objectBase, s.nextFree, s.chunkLimit = 0, 0, 0
	s.maybeEmptyObject = false
	s.trace("free_all")
}

// AllocatedP reports whether obj lies within some chunk of this Stack,
// using the same containment rule as Free. It is intended for debug
// assertions, not the fast path.
func (s *Stack) AllocatedP(obj unsafe.Pointer) bool {
	target := uintptr(addrOf(obj))
	for c := s.chunk; c != nil; c = c.prev {
		if c.contains(target) {
			return true
		}
	}
	return false
}
