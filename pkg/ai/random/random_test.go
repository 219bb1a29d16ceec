package random

import (
	"testing"

	"github.com/montplusa/atropos/pkg/game"
)

func TestChooseMoveIsSafe(t *testing.T) {
	ai := New()
	s, err := game.NewState(4).Apply(game.NewMove(game.Red, game.Coord{X: 1, Y: 1, Z: 4}))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		m, err := ai.ChooseMove(s)
		if err != nil {
			t.Fatal(err)
		}
		if err := s.Validate(m); err != nil {
			t.Fatalf("move %v is not playable: %v", m, err)
		}
		if game.CompletesTriangle(s.Board, m) {
			t.Fatalf("move %v loses although safe moves exist", m)
		}
	}
}

func TestChooseMoveFullBoard(t *testing.T) {
	s := game.NewState(1)
	s, err := s.Apply(game.NewMove(game.Blue, game.Coord{X: 1, Y: 1, Z: 1}))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New().ChooseMove(s); err == nil {
		t.Error("expected an error on a full board")
	}
}
