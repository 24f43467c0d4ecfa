package d20hist

import "math/rand/v2"

// Roller is the random source behind the simulated die.
//
// IntN returns a uniformly distributed integer in [0, n). *rand.Rand from
// math/rand/v2 satisfies Roller, so tests can inject a seeded generator or a
// scripted sequence.
type Roller interface {
	IntN(n int) int
}

// globalRoller draws from the process-wide math/rand/v2 source, which is
// randomly seeded at startup and safe for concurrent use.
type globalRoller struct{}

func (globalRoller) IntN(n int) int { return rand.IntN(n) }

// NewSeededRoller returns a deterministic Roller backed by a PCG generator.
func NewSeededRoller(seed uint64) Roller {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
