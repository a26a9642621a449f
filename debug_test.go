//go:build objstack_debug

package objstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugAssertPanicsOnFalseCondition(t *testing.T) {
	assert.True(t, debugBuild)
	assert.Panics(t, func() {
		debugAssert(false, "expected %d, got %d", 1, 2)
	})
	assert.NotPanics(t, func() {
		debugAssert(true, "never reached")
	})
}

func TestDebugAllocatorBacksStackChunks(t *testing.T) {
	var a DebugAllocator
	s := New(Options{ChunkSize: 4096, Allocator: a})

	s.Grow([]byte("hello"))
	s.Finish()

	before := s.NumChunks()
	s.Free(nil)
	assert.Equal(t, 1, before)
}
