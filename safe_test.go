package objstack

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeStackBasicUsage(t *testing.T) {
	ss := NewSafe(Options{ChunkSize: 256})
	ss.Grow([]byte("hello"))
	p := ss.Finish()
	require.NotNil(t, p)
	assert.Equal(t, "hello", string(bytesAt(p, 5)))
	assert.True(t, ss.AllocatedP(p))
}

// TestSafeStackSerializesHandoff exercises SafeStack the way it is meant to
// be used: one goroutine owns it at a time, coordinated externally, with the
// mutex only protecting against accidental concurrent access rather than
// enabling concurrent growth of one object.
func TestSafeStackSerializesHandoff(t *testing.T) {
	ss := NewSafe(Options{ChunkSize: 4096})

	const workers = 8
	var wg sync.WaitGroup
	var mu sync.Mutex // external turn-taking lock, not SafeStack's own
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			mu.Lock()
			defer mu.Unlock()
			ss.Printf("worker-%d", id)
			ss.Finish()
		}(i)
	}
	wg.Wait()

	assert.GreaterOrEqual(t, ss.Metrics().NumChunks, 1)
	assert.GreaterOrEqual(t, ss.Metrics().SizeInUse, workers*len("worker-0"))
}

func TestSafeStackMetricsAndReinit(t *testing.T) {
	ss := NewSafe(Options{ChunkSize: 256})
	ss.Alloc(10)
	m := ss.Metrics()
	assert.Greater(t, m.SizeInUse, 0)

	ss.Reinit(Options{ChunkSize: 512})
	assert.True(t, ss.Empty())
	assert.Equal(t, 512, ss.Metrics().ChunkSize)
}
