package game

import (
	"github.com/google/uuid"

	"github.com/montplusa/atropos/pkg/game/debug"
)

// 終局理由
const (
	ReasonTriangle = "triangle" // 3色の三角形を作った
	ReasonIllegal  = "illegal"  // ルール違反の手
	ReasonError    = "error"    // エージェントがエラーを返した
	ReasonFull     = "full"     // 盤面が埋まった
)

// Ply は棋譜の一手
type Ply struct {
	Player int  `json:"player"`
	Move   Move `json:"move"`
}

// BattleResult は対戦結果の記録
type BattleResult struct {
	ID      uuid.UUID `json:"id"`
	Agents  [2]string `json:"agents"`
	Initial string    `json:"initial"` // 初期盤面 (FormatState 形式)
	Plies   []Ply     `json:"plies"`   // 手の履歴
	Winner  int       `json:"winner"`  // 0/1、引き分けは -1
	Reason  string    `json:"reason"`
}

// Replay は初期盤面から k 手進めた State を返す
func (r BattleResult) Replay(k int) (State, error) {
	s, err := ParseState(r.Initial)
	if err != nil {
		return State{}, err
	}
	for _, p := range r.Plies[:k] {
		if s, err = s.Apply(p.Move); err != nil {
			return State{}, err
		}
	}
	return s, nil
}

// GameRunner は対戦を管理
type GameRunner struct {
	agents [2]AI
	size   int
}

// NewGameRunner は AI エージェントと盤面サイズをセットして返す
func NewGameRunner(a0, a1 AI, size int) *GameRunner {
	return &GameRunner{agents: [2]AI{a0, a1}, size: size}
}

// Run は先手 0 から交互に打たせ、BattleResult を返す。
// 3色の三角形を作ったプレイヤーの負け
func (gr *GameRunner) Run() BattleResult {
	state := NewState(gr.size)
	result := BattleResult{
		ID:      uuid.New(),
		Agents:  [2]string{gr.agents[0].Name(), gr.agents[1].Name()},
		Initial: FormatState(state),
		Plies:   make([]Ply, 0, state.Board.CountFree()),
		Winner:  -1,
	}

	for player := 0; ; player = 1 - player {
		if state.Board.CountFree() == 0 {
			result.Reason = ReasonFull
			return result
		}

		m, err := gr.agents[player].ChooseMove(state)
		if err != nil {
			debug.Log("player %d returned error: %v", player, err)
			return finish(result, 1-player, ReasonError)
		}
		m.Score = 0
		if err := state.Validate(m); err != nil {
			debug.Log("player %d played illegally: %v", player, err)
			return finish(result, 1-player, ReasonIllegal)
		}
		lost := CompletesTriangle(state.Board, m)
		result.Plies = append(result.Plies, Ply{Player: player, Move: m})
		debug.Log("player %d: %v", player, m)

		if state, err = state.Apply(m); err != nil {
			return finish(result, 1-player, ReasonIllegal)
		}
		if lost {
			return finish(result, 1-player, ReasonTriangle)
		}
	}
}

func finish(r BattleResult, winner int, reason string) BattleResult {
	r.Winner = winner
	r.Reason = reason
	return r
}
