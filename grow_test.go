package objstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteGrowAccumulatesAndFinishes(t *testing.T) {
	s := New(Options{ChunkSize: 256})

	for i := 0; i < 10; i++ {
		s.ByteGrow(byte('a' + i))
	}
	assert.Equal(t, 10, s.Size())

	p := s.Finish()
	got := bytesAt(p, 10)
	assert.Equal(t, []byte("abcdefghij"), got)
}

// TestByteGrowAcrossChunkMigration grows one object byte by byte well past a
// single small chunk's capacity, forcing one or more migrations, and checks
// the final contents survive relocation intact.
func TestByteGrowAcrossChunkMigration(t *testing.T) {
	s := New(Options{ChunkSize: 64})

	const n = 200
	for i := 0; i < n; i++ {
		s.ByteGrow(byte(i))
	}
	require.GreaterOrEqual(t, s.MemoryUsed(), n, "migration must have grown capacity to fit the object")
	assert.Equal(t, n, s.Size())

	p := s.Finish()
	got := bytesAt(p, n)
	for i := 0; i < n; i++ {
		assert.Equal(t, byte(i), got[i], "byte %d corrupted across migration", i)
	}
}

func TestGrowCopiesSourceBytes(t *testing.T) {
	s := New(Options{ChunkSize: 256})
	src := []byte("the quick brown fox")
	s.Grow(src)
	assert.Equal(t, len(src), s.Size())

	p := s.Finish()
	assert.Equal(t, src, bytesAt(p, len(src)))
}

func TestGrow0AppendsTrailingZero(t *testing.T) {
	s := New(Options{ChunkSize: 256})
	src := []byte("hi")
	s.Grow0(src)
	assert.Equal(t, 3, s.Size())

	p := s.Finish()
	got := bytesAt(p, 3)
	assert.Equal(t, byte('h'), got[0])
	assert.Equal(t, byte('i'), got[1])
	assert.Equal(t, byte(0), got[2])
}

func TestBlankThenFillManually(t *testing.T) {
	s := New(Options{ChunkSize: 256})
	s.Blank(4)
	assert.Equal(t, 4, s.Size())
	p := s.Finish()
	assert.NotNil(t, p)
}

func TestPtrGrowAndIntGrow(t *testing.T) {
	s := New(Options{ChunkSize: 256})
	var x int
	s.PtrGrow(ptrOf(&x))
	s.IntGrow(42)
	assert.Equal(t, int(ptrSize()+intSize()), s.Size())
}

func TestMakeRoomTriggersMigrationWhenInsufficient(t *testing.T) {
	s := New(Options{ChunkSize: 32})
	beforeCapacity := s.MemoryUsed()
	s.MakeRoom(1000)
	assert.GreaterOrEqual(t, s.Room(), 1000)
	assert.Greater(t, s.MemoryUsed(), beforeCapacity)
}
