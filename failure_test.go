package objstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAllocator always fails, to exercise AllocFailureHandler without
// needing an actually-exhausted system allocator.
type stubAllocator struct{}

func (stubAllocator) AllocChunk(int) []byte { return nil }
func (stubAllocator) FreeChunk([]byte)      {}

func TestAllocFailureHandlerInvokedOnNilChunk(t *testing.T) {
	prev := AllocFailureHandler
	defer func() { AllocFailureHandler = prev }()

	var captured error
	AllocFailureHandler = func(err error) {
		captured = err
		panic(err)
	}

	assert.Panics(t, func() {
		New(Options{ChunkSize: 64, Allocator: stubAllocator{}})
	})
	require.Error(t, captured)
}

func TestAllocFailureHandlerCanRecoverInsteadOfExit(t *testing.T) {
	prev := AllocFailureHandler
	defer func() { AllocFailureHandler = prev }()

	AllocFailureHandler = func(err error) {
		panic(err)
	}

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		New(Options{ChunkSize: 64, Allocator: stubAllocator{}})
	}()

	require.NotNil(t, recovered)
	err, ok := recovered.(error)
	require.True(t, ok, "the panic value carries an error, not a bare string")
	assert.Contains(t, err.Error(), "objstack")
}
