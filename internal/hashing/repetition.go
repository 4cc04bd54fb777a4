package hashing

// RepetitionTracker counts how often each position has occurred in a game.
type RepetitionTracker struct {
	counts  map[uint64]int
	history []uint64
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{
		counts: make(map[uint64]int),
	}
}

// Record notes one more occurrence of hash and returns its total count.
func (r *RepetitionTracker) Record(hash uint64) int {
	r.counts[hash]++
	r.history = append(r.history, hash)
	return r.counts[hash]
}

// Count returns how many times hash has been recorded.
func (r *RepetitionTracker) Count(hash uint64) int {
	return r.counts[hash]
}

// Len returns the number of recorded positions.
func (r *RepetitionTracker) Len() int {
	return len(r.history)
}

// History returns the recorded hashes in order. The slice must not be modified.
func (r *RepetitionTracker) History() []uint64 {
	return r.history
}

// Reset forgets all recorded positions. Call it after pawn moves and
// captures.
func (r *RepetitionTracker) Reset() {
	r.counts = make(map[uint64]int)
	r.history = r.history[:0]
}

// Clone returns an independent copy.
func (r *RepetitionTracker) Clone() *RepetitionTracker {
	c := &RepetitionTracker{
		counts:  make(map[uint64]int, len(r.counts)),
		history: append([]uint64(nil), r.history...),
	}
	for k, v := range r.counts {
		c.counts[k] = v
	}
	return c
}
