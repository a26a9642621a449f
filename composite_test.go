package objstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocReturnsUninitializedFinalizedObject(t *testing.T) {
	s := New(Options{ChunkSize: 256})
	p := s.Alloc(16)
	require.NotNil(t, p)
	assert.Equal(t, 0, s.Size(), "a new, still-empty growing object follows immediately")
	assert.True(t, s.AllocatedP(p))
}

func TestCopyAndCopy0(t *testing.T) {
	s := New(Options{ChunkSize: 256})

	src := []byte("payload")
	p := s.Copy(src)
	assert.Equal(t, src, bytesAt(p, len(src)))

	p0 := s.Copy0(src)
	got := bytesAt(p0, len(src)+1)
	assert.Equal(t, src, got[:len(src)])
	assert.Equal(t, byte(0), got[len(src)])
}

type point struct {
	X, Y int32
}

func TestNewTGeneric(t *testing.T) {
	s := New(Options{ChunkSize: 256})
	p := NewT(s, point{X: 3, Y: 4})
	require.NotNil(t, p)
	assert.Equal(t, int32(3), p.X)
	assert.Equal(t, int32(4), p.Y)

	assert.True(t, s.AllocatedP(ptrOfAny(p)))
}

func TestNewSliceGeneric(t *testing.T) {
	s := New(Options{ChunkSize: 256})
	sl := NewSlice[int64](s, 5)
	require.Len(t, sl, 5)
	for i := range sl {
		sl[i] = int64(i * i)
	}
	for i := range sl {
		assert.Equal(t, int64(i*i), sl[i])
	}
}

func TestNewSliceZeroOrNegativeReturnsNil(t *testing.T) {
	s := New(Options{ChunkSize: 256})
	assert.Nil(t, NewSlice[int](s, 0))
	assert.Nil(t, NewSlice[int](s, -1))
}

func TestTypedAllocationParticipatesInFree(t *testing.T) {
	s := New(Options{ChunkSize: 256})
	p1 := NewT(s, 1)
	before := s.NumChunks()
	NewT(s, 2)
	s.Free(ptrOfAny(p1))
	assert.Equal(t, before, s.NumChunks())
	assert.Equal(t, 0, s.Size())
}
