package minimax

// Side is the player evaluated at a ply.
//
// Scores are always signed from the maximizer's point of view: positive is
// good for Maximizer, negative is good for Minimizer. A score travels up the
// tree unchanged; only the comparison used to pick a child depends on Side.
type Side int

const (
	Maximizer Side = iota
	Minimizer
)

// Flip returns the opponent.
func (s Side) Flip() Side {
	if s == Maximizer {
		return Minimizer
	}
	return Maximizer
}

// Sign is +1 for Maximizer and -1 for Minimizer.
func (s Side) Sign() int {
	if s == Maximizer {
		return 1
	}
	return -1
}

// Better reports whether score a is strictly preferred over b by s.
func (s Side) Better(a, b int) bool {
	if s == Maximizer {
		return a > b
	}
	return a < b
}

func (s Side) String() string {
	if s == Maximizer {
		return "max"
	}
	return "min"
}
