package pang

// RNG is a deterministic linear congruential generator. Power-up options
// are drawn from it so a seeded match replays identically.
type RNG struct {
	state uint64
}

// NewRNG creates a generator from seed. A zero seed is replaced by 1.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- seed bits are reused as-is
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

func (r *RNG) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a value in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// High bits have the longest period.
	return int((r.next() >> 33) % uint64(n)) //#nosec G115 -- n is positive
}

// State returns the generator state for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}
