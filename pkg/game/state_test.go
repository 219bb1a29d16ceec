package game

import (
	"errors"
	"testing"
)

func TestApplyDoesNotMutate(t *testing.T) {
	s := NewState(3)
	m := NewMove(Red, Coord{1, 1, 3})

	next, err := s.Apply(m)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if s.Board.At(m.Coord()) != Uncolored {
		t.Error("Apply mutated the source board")
	}
	if s.LastMove != nil {
		t.Error("Apply mutated the source last move")
	}
	if next.Board.At(m.Coord()) != Red {
		t.Error("successor board misses the placement")
	}
	if next.LastMove == nil || *next.LastMove != m {
		t.Errorf("successor last move = %v, want %v", next.LastMove, m)
	}

	// siblings built from the same parent do not see each other
	sibling, err := s.Apply(NewMove(Blue, Coord{2, 1, 2}))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if sibling.Board.At(m.Coord()) != Uncolored {
		t.Error("sibling board observes the other placement")
	}
}

func TestApplyIllegalPlacement(t *testing.T) {
	s := NewState(3)
	s, err := s.Apply(NewMove(Red, Coord{1, 1, 3}))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	tests := []struct {
		name string
		move Move
	}{
		{"colored cell", NewMove(Blue, Coord{1, 1, 3})},
		{"border", NewMove(Blue, Coord{0, 2, 3})},
		{"off board", NewMove(Blue, Coord{9, 1, -5})},
		{"bad sum", NewMove(Blue, Coord{1, 2, 3})},
		{"no color", DummyMove(3)},
		{"bad color", Move{Color: 4, X: 2, Y: 1, Z: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Apply(tt.move)
			if !errors.Is(err, ErrIllegalPlacement) {
				t.Errorf("Apply(%v) error = %v, want ErrIllegalPlacement", tt.move, err)
			}
		})
	}
}

func TestValidateAdjacency(t *testing.T) {
	s, err := NewState(3).Apply(NewMove(Red, Coord{1, 1, 3}))
	if err != nil {
		t.Fatal(err)
	}
	if !s.MustPlayAdjacent() {
		t.Fatal("corner move has free neighbors")
	}
	if err := s.Validate(NewMove(Blue, Coord{1, 2, 2})); err != nil {
		t.Errorf("adjacent move rejected: %v", err)
	}
	if err := s.Validate(NewMove(Blue, Coord{3, 1, 1})); !errors.Is(err, ErrIllegalPlacement) {
		t.Errorf("distant move error = %v, want ErrIllegalPlacement", err)
	}
	// a losing move is still a legal play
	if err := s.Validate(NewMove(Blue, Coord{2, 1, 2})); err != nil {
		t.Errorf("losing move rejected: %v", err)
	}
}

func TestSafeMovesFreeMove(t *testing.T) {
	s := NewState(3)
	for _, m := range []Move{
		NewMove(Red, Coord{2, 1, 2}),
		NewMove(Red, Coord{1, 2, 2}),
		NewMove(Red, Coord{1, 1, 3}),
	} {
		var err error
		if s, err = s.Apply(m); err != nil {
			t.Fatal(err)
		}
	}
	if s.MustPlayAdjacent() {
		t.Fatal("surrounded last move should give a free move")
	}
	for _, m := range s.SafeMoves() {
		if err := s.Validate(m); err != nil {
			t.Errorf("safe move %v invalid: %v", m, err)
		}
	}
}

func TestCloneState(t *testing.T) {
	s, _ := NewState(3).Apply(NewMove(Red, Coord{1, 1, 3}))
	c := s.Clone()
	c.LastMove.Color = Green
	if s.LastMove.Color != Red {
		t.Error("Clone shares the last move")
	}
}
