package game

import "fmt"

// State は盤面と直前の一手を保持
type State struct {
	Board    Board // 盤面
	LastMove *Move // 直前の一手。nil なら初手
}

// NewState は初期盤面の State を返す
func NewState(size int) State {
	return State{Board: NewBoard(size)}
}

// Size は盤面サイズ
func (s State) Size() int {
	return s.Board.Size()
}

// Clone は State のディープコピーを返す
func (s State) Clone() State {
	c := State{Board: s.Board.Clone()}
	if s.LastMove != nil {
		m := *s.LastMove
		c.LastMove = &m
	}
	return c
}

// Apply は m を置いた後の State を返す。s 自身は変更しない
func (s State) Apply(m Move) (State, error) {
	if !m.Color.Valid() || m.Color == Uncolored {
		return State{}, fmt.Errorf("%w: color %d", ErrIllegalPlacement, m.Color)
	}
	c := m.Coord()
	if !s.Board.Interior(c) {
		return State{}, fmt.Errorf("%w: %v is not a playable cell", ErrIllegalPlacement, m)
	}
	if s.Board.At(c) != Uncolored {
		return State{}, fmt.Errorf("%w: %v is already colored", ErrIllegalPlacement, m)
	}
	next := State{Board: s.Board.Clone()}
	next.Board.set(c, m.Color)
	placed := m
	placed.Score = 0
	next.LastMove = &placed
	return next, nil
}

// MustPlayAdjacent は直前の手に隣接する未着色マスがあるか判定する
func (s State) MustPlayAdjacent() bool {
	if s.LastMove == nil {
		return false
	}
	_, anyFree := ChildMoves(s.Board, s.LastMove.Coord())
	return anyFree
}

// Validate は m がルール上置ける手か確認する。負けになる手も置ける手に含む
func (s State) Validate(m Move) error {
	if m.IsDummy() {
		return fmt.Errorf("%w: move has no color", ErrIllegalPlacement)
	}
	c := m.Coord()
	if !s.Board.Interior(c) || s.Board.At(c) != Uncolored {
		return fmt.Errorf("%w: %v", ErrIllegalPlacement, m)
	}
	if s.MustPlayAdjacent() && !adjacent(s.LastMove.Coord(), c) {
		return fmt.Errorf("%w: %v is not adjacent to %v", ErrIllegalPlacement, m, *s.LastMove)
	}
	return nil
}

func adjacent(a, b Coord) bool {
	for _, d := range neighborDeltas {
		if a.Add(d) == b {
			return true
		}
	}
	return false
}

// SafeMoves は手番のプレイヤーが置ける負けない手を返す
func (s State) SafeMoves() []Move {
	if s.LastMove != nil {
		if moves, anyFree := ChildMoves(s.Board, s.LastMove.Coord()); anyFree {
			return moves
		}
	}
	return FreeMoves(s.Board)
}

// AnyMove は負けるしかない局面で置く手を返す
func (s State) AnyMove() (Move, bool) {
	if s.LastMove == nil {
		return firstFree(s.Board)
	}
	return FallbackMove(s.Board, s.LastMove.Coord())
}
