package objstack

import "unsafe"

// maxInt is the largest representable int on this platform, used as the
// overflow ceiling in nextChunkSize.
const maxInt = int(^uint(0) >> 1)

// newChunk implements §4.4: allocate a chunk large enough to hold the
// partially built object plus length more bytes, relocate the object into
// it, and recycle the old chunk when doing so cannot orphan a zero-length
// finalized object living at its address.
func (s *Stack) newChunk(length int) {
	oldChunk := s.chunk
	oldObjectBase := s.objectBase
	objSize := s.nextFree - s.objectBase

	size := s.nextChunkSize(objSize, length)

	c := s.allocChunk(size)
	c.prev = oldChunk
	s.chunk = c
	s.chunkLimit = c.limit

	newBase := alignUp(c.contentsStart(), s.alignMask)
	if objSize > 0 {
		dst := unsafe.Slice((*byte)(addr(newBase).ptr()), objSize)
		src := unsafe.Slice((*byte)(addr(oldObjectBase).ptr()), objSize)
		copy(dst, src)
	}
	s.nextFree = newBase + objSize

	// The relocated object was the old chunk's only content: recycle it,
	// unless a zero-length object might already have been finalized at
	// exactly this address, in which case that empty object still lives
	// there and the chunk must be kept.
	oldChunk.used = oldObjectBase
	if !s.maybeEmptyObject && oldObjectBase == alignUp(oldChunk.contentsStart(), s.alignMask) {
		c.prev = oldChunk.prev
		s.allocator.FreeChunk(oldChunk.buf)
		s.trace("recycle_old_chunk", "base", oldChunk.base)
	}

	s.objectBase = newBase
	// The new chunk certainly contains no finalized object yet.
	s.maybeEmptyObject = false

	debugAssert(s.objectBase >= c.contentsStart(), "migrate: object_base %d below chunk contents start %d", s.objectBase, c.contentsStart())
	debugAssert(s.nextFree <= s.chunkLimit, "migrate: next_free %d exceeds chunk limit %d", s.nextFree, s.chunkLimit)

	s.trace("migrate", "new_chunk_size", size, "obj_size", int(objSize))
}

// nextChunkSize computes the target size for a replacement chunk per §4.4
// step 2: obj_size + length, plus alignment headroom, plus roughly
// obj_size/8 + 100 for amortized future growth, clamped up to the
// preferred chunk size. Each addition is checked for overflow; an
// overflow is treated as an allocation failure, matching the original's
// "if (new_size < sum2) new_size = sum2" guard generalized to every step.
func (s *Stack) nextChunkSize(objSize uintptr, length int) int {
	if length < 0 {
		failAlloc("negative growth length %d", length)
	}

	sum1, ok := addUintptr(objSize, uintptr(length))
	if !ok {
		failAlloc("chunk size overflow: obj_size=%d length=%d", objSize, length)
	}
	sum2, ok := addUintptr(sum1, s.alignMask)
	if !ok {
		failAlloc("chunk size overflow computing alignment headroom for obj_size=%d length=%d", objSize, length)
	}

	headroom := objSize/8 + 100
	newSize, ok := addUintptr(sum2, headroom)
	if !ok {
		newSize = sum2
	}
	if newSize < uintptr(s.chunkSize) {
		newSize = uintptr(s.chunkSize)
	}
	if newSize > uintptr(maxInt) {
		failAlloc("chunk size %d exceeds platform maximum", newSize)
	}
	return int(newSize)
}

func addUintptr(a, b uintptr) (sum uintptr, ok bool) {
	sum = a + b
	return sum, sum >= a
}
