package objstack

import "unsafe"

// MakeRoom ensures at least n free bytes remain in the current chunk,
// triggering a chunk migration (see newChunk) if they do not.
func (s *Stack) MakeRoom(n int) {
	s.checkLive()
	if s.Room() < n {
		s.newChunk(n)
	}
}

// BlankFast extends the growing object by n uninitialized bytes without
// checking room first. The caller must have just ensured room (typically
// via MakeRoom(n)) or otherwise know the current chunk has it.
func (s *Stack) BlankFast(n int) {
	s.nextFree += uintptr(n)
}

// Blank extends the growing object by n uninitialized bytes.
func (s *Stack) Blank(n int) {
	s.MakeRoom(n)
	s.BlankFast(n)
}

// ByteGrowFast appends one byte without checking room first.
func (s *Stack) ByteGrowFast(b byte) {
	*(*byte)(addr(s.nextFree).ptr()) = b
	s.nextFree++
}

// ByteGrow appends one byte to the growing object.
func (s *Stack) ByteGrow(b byte) {
	s.MakeRoom(1)
	s.ByteGrowFast(b)
}

// PtrGrowFast appends one pointer-sized value without checking room
// first. Like the original's obstack_ptr_grow_fast, this assumes
// next_free is already pointer-aligned — true so long as every prior
// append to the current growing object was itself pointer-sized or a
// multiple thereof.
func (s *Stack) PtrGrowFast(p unsafe.Pointer) {
	*(*unsafe.Pointer)(addr(s.nextFree).ptr()) = p
	s.nextFree += unsafe.Sizeof(p)
}

// PtrGrow appends one pointer-sized value to the growing object.
func (s *Stack) PtrGrow(p unsafe.Pointer) {
	s.MakeRoom(int(unsafe.Sizeof(p)))
	s.PtrGrowFast(p)
}

// IntGrowFast appends one machine-int-sized value without checking room
// first, under the same alignment assumption as PtrGrowFast.
func (s *Stack) IntGrowFast(i int) {
	*(*int)(addr(s.nextFree).ptr()) = i
	s.nextFree += unsafe.Sizeof(i)
}

// IntGrow appends one machine-int-sized value to the growing object.
func (s *Stack) IntGrow(i int) {
	s.MakeRoom(int(unsafe.Sizeof(i)))
	s.IntGrowFast(i)
}

// Grow appends len(src) bytes copied from src to the growing object.
func (s *Stack) Grow(src []byte) {
	n := len(src)
	s.MakeRoom(n)
	if n > 0 {
		dst := unsafe.Slice((*byte)(addr(s.nextFree).ptr()), n)
		copy(dst, src)
	}
	s.nextFree += uintptr(n)
}

// Grow0 appends src to the growing object, followed by a single trailing
// zero byte (not counted in a subsequent Size() beyond the n+1 bytes
// actually appended).
func (s *Stack) Grow0(src []byte) {
	n := len(src)
	s.MakeRoom(n + 1)
	if n > 0 {
		dst := unsafe.Slice((*byte)(addr(s.nextFree).ptr()), n)
		copy(dst, src)
	}
	s.nextFree += uintptr(n)
	s.ByteGrowFast(0)
}
