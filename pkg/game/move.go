package game

import "fmt"

// Move は一手、または探索ノードの評価値。
// Score は正なら最大化側、負なら最小化側に有利で 0 は中立
type Move struct {
	Color Color `json:"color"`
	X     int   `json:"x"`
	Y     int   `json:"y"`
	Z     int   `json:"z"`
	Score int   `json:"score,omitempty"`
}

// NewMove は c に color を置く手を返す
func NewMove(color Color, c Coord) Move {
	return Move{Color: color, X: c.X, Y: c.Y, Z: c.Z}
}

// DummyMove は座標を持たず評価値だけを運ぶ手を返す
func DummyMove(score int) Move {
	return Move{Score: score}
}

// IsDummy は評価値だけの手か判定する
func (m Move) IsDummy() bool {
	return m.Color == Uncolored
}

// Coord は手の座標
func (m Move) Coord() Coord {
	return Coord{m.X, m.Y, m.Z}
}

// WithScore は評価値を差し替えた手を返す
func (m Move) WithScore(score int) Move {
	m.Score = score
	return m
}

// String は "(color,x,y,z)" 形式
func (m Move) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", m.Color, m.X, m.Y, m.Z)
}
