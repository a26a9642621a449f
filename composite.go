package objstack

import "unsafe"

// Alloc is Blank(n) followed by Finish: a single finalized, n-byte,
// uninitialized object.
func (s *Stack) Alloc(n int) unsafe.Pointer {
	s.Blank(n)
	return s.Finish()
}

// Copy is Grow(src) followed by Finish: a finalized copy of src.
func (s *Stack) Copy(src []byte) unsafe.Pointer {
	s.Grow(src)
	return s.Finish()
}

// Copy0 is Grow0(src) followed by Finish: a finalized, zero-terminated
// copy of src.
func (s *Stack) Copy0(src []byte) unsafe.Pointer {
	s.Grow0(src)
	return s.Finish()
}

// NewT allocates and initializes a T on s, returning a pointer that
// participates fully in the normal finalize/bulk-free discipline: it may
// be passed to s.Free like any address returned by Finish, unlike the
// teacher arena's GC-owned Alloc[T], whose pointers have no such
// relationship to a finalize boundary.
func NewT[T any](s *Stack, value T) *T {
	p := (*T)(s.Alloc(int(unsafe.Sizeof(value))))
	*p = value
	return p
}

// NewSlice allocates n zero-valued Ts on s as a single finalized object
// and returns a slice view over them. Returns nil if n <= 0.
func NewSlice[T any](s *Stack, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	p := s.Alloc(elemSize * n)
	return unsafe.Slice((*T)(p), n)
}
