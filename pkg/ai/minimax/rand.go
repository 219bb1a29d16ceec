package minimax

import (
	"math/rand"
	"sync"

	"lukechampine.com/frand"
)

// Source supplies the random draws used for tie-breaking. Implementations
// must be safe for concurrent use when Config.Parallel is set.
type Source interface {
	Intn(n int) int
}

type frandSource struct{}

func (frandSource) Intn(n int) int { return frand.Intn(n) }

// DefaultSource is backed by frand, which needs no locking.
func DefaultSource() Source { return frandSource{} }

type seededSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededSource returns a reproducible Source.
func NewSeededSource(seed int64) Source {
	return &seededSource{r: rand.New(rand.NewSource(seed))}
}

func (s *seededSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}
