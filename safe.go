package objstack

import (
	"sync"
	"unsafe"
)

// SafeStack is a mutex-protected wrapper around Stack, adapted from the
// teacher arena's SafeArena. The underlying Stack is still single-owner
// and single-threaded by design: SafeStack exists for callers that hand
// the whole Stack between goroutines at different points in time (e.g. a
// worker pool that checks out a Stack, builds one object, and checks it
// back in), not for concurrent growth of one object from two goroutines,
// which remains meaningless regardless of locking.
type SafeStack struct {
	mu sync.Mutex
	s  *Stack
}

// NewSafe creates a new mutex-protected Stack.
func NewSafe(opts Options) *SafeStack {
	return &SafeStack{s: New(opts)}
}

// Reinit re-initializes the underlying Stack; see Stack.Reinit.
func (ss *SafeStack) Reinit(opts Options) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.s.Reinit(opts)
}

// MakeRoom thread-safely calls Stack.MakeRoom.
func (ss *SafeStack) MakeRoom(n int) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.s.MakeRoom(n)
}

// Blank thread-safely calls Stack.Blank.
func (ss *SafeStack) Blank(n int) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.s.Blank(n)
}

// ByteGrow thread-safely calls Stack.ByteGrow.
func (ss *SafeStack) ByteGrow(b byte) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.s.ByteGrow(b)
}

// PtrGrow thread-safely calls Stack.PtrGrow.
func (ss *SafeStack) PtrGrow(p unsafe.Pointer) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.s.PtrGrow(p)
}

// IntGrow thread-safely calls Stack.IntGrow.
func (ss *SafeStack) IntGrow(i int) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.s.IntGrow(i)
}

// Grow thread-safely calls Stack.Grow.
func (ss *SafeStack) Grow(src []byte) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.s.Grow(src)
}

// Grow0 thread-safely calls Stack.Grow0.
func (ss *SafeStack) Grow0(src []byte) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.s.Grow0(src)
}

// Finish thread-safely calls Stack.Finish.
func (ss *SafeStack) Finish() unsafe.Pointer {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Finish()
}

// Free thread-safely calls Stack.Free.
func (ss *SafeStack) Free(obj unsafe.Pointer) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.s.Free(obj)
}

// Alloc thread-safely calls Stack.Alloc.
func (ss *SafeStack) Alloc(n int) unsafe.Pointer {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Alloc(n)
}

// Copy thread-safely calls Stack.Copy.
func (ss *SafeStack) Copy(src []byte) unsafe.Pointer {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Copy(src)
}

// Copy0 thread-safely calls Stack.Copy0.
func (ss *SafeStack) Copy0(src []byte) unsafe.Pointer {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Copy0(src)
}

// Base thread-safely calls Stack.Base.
func (ss *SafeStack) Base() unsafe.Pointer {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Base()
}

// Size thread-safely calls Stack.Size.
func (ss *SafeStack) Size() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Size()
}

// Room thread-safely calls Stack.Room.
func (ss *SafeStack) Room() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Room()
}

// Empty thread-safely calls Stack.Empty.
func (ss *SafeStack) Empty() bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Empty()
}

// MemoryUsed thread-safely calls Stack.MemoryUsed.
func (ss *SafeStack) MemoryUsed() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.MemoryUsed()
}

// AllocatedP thread-safely calls Stack.AllocatedP.
func (ss *SafeStack) AllocatedP(obj unsafe.Pointer) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.AllocatedP(obj)
}

// Metrics thread-safely calls Stack.Metrics.
func (ss *SafeStack) Metrics() Metrics {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Metrics()
}

// Printf thread-safely calls Stack.Printf.
func (ss *SafeStack) Printf(format string, args ...any) int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Printf(format, args...)
}
