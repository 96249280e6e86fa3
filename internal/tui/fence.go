package tui

// fence orders a screen's in-flight requests. Each issued request takes the
// next sequence number; a response carrying an older number lost the race and
// is discarded. Mutations refetch under a fresh number, so a slow read from
// before the write can never overwrite the post-write state.
type fence struct {
	seq int
}

// next claims a sequence number for a new request.
func (f *fence) next() int {
	f.seq++
	return f.seq
}

// stale reports whether a response with sequence n has been superseded.
func (f *fence) stale(n int) bool {
	return n < f.seq
}
