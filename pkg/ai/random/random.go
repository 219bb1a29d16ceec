package random

import (
	"fmt"

	"lukechampine.com/frand"

	"github.com/montplusa/atropos/pkg/game"
)

// RandomAI はランダムに行動を選ぶ実装
type RandomAI struct{}

// New は RandomAI を生成する
func New() game.AI { return &RandomAI{} }

func (r *RandomAI) Name() string { return "random" }

// ChooseMove は負けない手から一様に選ぶ。なければ負ける手を置く
func (r *RandomAI) ChooseMove(state game.State) (game.Move, error) {
	moves := state.SafeMoves()
	if len(moves) > 0 {
		return moves[frand.Intn(len(moves))], nil
	}
	if m, ok := state.AnyMove(); ok {
		return m, nil
	}
	return game.Move{}, fmt.Errorf("random: no free cell")
}
