package objstack

// NumChunks returns the number of chunks currently held by the Stack.
func (s *Stack) NumChunks() int {
	n := 0
	for c := s.chunk; c != nil; c = c.prev {
		n++
	}
	return n
}

// Capacity is an alias for MemoryUsed, kept separate to match the names
// Utilization and SizeInUse are defined in terms of.
func (s *Stack) Capacity() int {
	return s.MemoryUsed()
}

// SizeInUse approximates the number of bytes occupied by finalized
// objects and the current growing object, summed across every chunk the
// Stack still holds. Unlike MemoryUsed (which reflects exactly what was
// requested from the backing allocator), this is a best-effort figure:
// each chunk's header reservation is counted as "in use" for simplicity,
// and alignment padding between multiple finalized objects within one
// chunk is not subtracted back out, so non-trivial chunks are slightly
// overcounted.
func (s *Stack) SizeInUse() int {
	if s.chunk == nil {
		return 0
	}
	total := int(s.nextFree - s.chunk.base)
	for c := s.chunk.prev; c != nil; c = c.prev {
		total += int(c.used - c.base)
	}
	return total
}

// Utilization returns SizeInUse divided by Capacity, or 0 if Capacity is 0.
func (s *Stack) Utilization() float64 {
	cap := s.Capacity()
	if cap == 0 {
		return 0
	}
	return float64(s.SizeInUse()) / float64(cap)
}

// Metrics is a snapshot of Stack statistics, mirroring the teacher
// arena's ArenaMetrics.
type Metrics struct {
	SizeInUse   int
	Capacity    int
	NumChunks   int
	ChunkSize   int
	Utilization float64
}

// Metrics returns a snapshot of s's current statistics.
func (s *Stack) Metrics() Metrics {
	return Metrics{
		SizeInUse:   s.SizeInUse(),
		Capacity:    s.Capacity(),
		NumChunks:   s.NumChunks(),
		ChunkSize:   s.chunkSize,
		Utilization: s.Utilization(),
	}
}
