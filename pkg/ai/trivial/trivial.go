package trivial

import (
	"fmt"

	"github.com/montplusa/atropos/pkg/game"
)

type TrivialAI struct{}

func (ai *TrivialAI) Name() string {
	return "trivial"
}

func New() *TrivialAI {
	return &TrivialAI{}
}

// ChooseMove は生成順で最初の負けない手を返します
func (ai *TrivialAI) ChooseMove(state game.State) (game.Move, error) {
	if moves := state.SafeMoves(); len(moves) > 0 {
		return moves[0], nil
	}
	if m, ok := state.AnyMove(); ok {
		return m, nil
	}
	return game.Move{}, fmt.Errorf("trivial: no free cell")
}
