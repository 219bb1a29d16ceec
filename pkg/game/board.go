package game

// Color はマスの色
type Color int

const (
	Uncolored Color = iota
	Red
	Blue
	Green
)

// Colors は置くことのできる3色
var Colors = [3]Color{Red, Blue, Green}

// Valid は c が 0〜3 の範囲か判定する
func (c Color) Valid() bool {
	return c >= Uncolored && c <= Green
}

// Third は異なる2色 a, b に対して残りの1色を返す (1+2+3 = 6)
func Third(a, b Color) Color {
	return 6 - a - b
}

// Coord は三軸座標。X は下辺、Y は左辺、Z は右辺からの距離で X+Y+Z = size+2
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// neighborDeltas は右上から時計回りの6近傍。隣り合う要素同士も隣接している
var neighborDeltas = [6]Coord{
	{1, 0, -1},
	{0, 1, -1},
	{-1, 1, 0},
	{-1, 0, 1},
	{0, -1, 1},
	{1, -1, 0},
}

// Add は座標に差分を足す
func (c Coord) Add(d Coord) Coord {
	return Coord{c.X + d.X, c.Y + d.Y, c.Z + d.Z}
}

// Board は三角形の盤面。[x][y] で引き、z は size+2-x-y から決まる
type Board struct {
	size  int
	cells [][]Color
}

// NewBoard は外周を塗った初期盤面を返す。
// 下辺は赤/青、左辺は赤/緑、右辺は青/緑を交互に置く
func NewBoard(size int) Board {
	b := emptyBoard(size)
	for y := 1; y <= size+1; y++ {
		b.cells[0][y] = alternate(y, Red, Blue)
	}
	for x := 1; x <= size+1; x++ {
		b.cells[x][0] = alternate(x, Red, Green)
		b.cells[x][size+2-x] = alternate(x, Blue, Green)
	}
	return b
}

func alternate(i int, odd, even Color) Color {
	if i%2 == 1 {
		return odd
	}
	return even
}

func emptyBoard(size int) Board {
	cells := make([][]Color, size+2)
	for x := range cells {
		cells[x] = make([]Color, size+2)
	}
	return Board{size: size, cells: cells}
}

// Size は遊べる領域の一辺の長さ
func (b Board) Size() int {
	return b.size
}

// CoordAt は (x, y) から z を補った座標を返す
func (b Board) CoordAt(x, y int) Coord {
	return Coord{x, y, b.size + 2 - x - y}
}

// OnBoard は c が外周を含む盤面上にあるか判定する
func (b Board) OnBoard(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.Z >= 0 &&
		c.X <= b.size+1 && c.Y <= b.size+1 &&
		c.X+c.Y+c.Z == b.size+2
}

// Interior は c が外周を除いたプレイ領域にあるか判定する
func (b Board) Interior(c Coord) bool {
	return b.OnBoard(c) && c.X > 0 && c.Y > 0 && c.Z > 0
}

// At は c の色を返す。盤外は Uncolored
func (b Board) At(c Coord) Color {
	if !b.OnBoard(c) {
		return Uncolored
	}
	return b.cells[c.X][c.Y]
}

func (b *Board) set(c Coord, color Color) {
	b.cells[c.X][c.Y] = color
}

// Neighbors は c の6近傍を右上から時計回りに返す
func (b Board) Neighbors(c Coord) [6]Coord {
	var ns [6]Coord
	for i, d := range neighborDeltas {
		ns[i] = c.Add(d)
	}
	return ns
}

// neighborColors は近傍の色を回転順に並べ、先頭をもう一度末尾に足して閉じた列にする
func (b Board) neighborColors(c Coord) [7]Color {
	var cs [7]Color
	for i, n := range b.Neighbors(c) {
		cs[i] = b.At(n)
	}
	cs[6] = cs[0]
	return cs
}

// EachInterior はプレイ領域のマスを上の行から順に走査する。f が false を返すと止まる
func (b Board) EachInterior(f func(c Coord) bool) {
	for x := b.size; x > 0; x-- {
		for y := 1; y < b.size-x+2; y++ {
			if !f(b.CoordAt(x, y)) {
				return
			}
		}
	}
}

// CountFree はプレイ領域の未着色マスを数える
func (b Board) CountFree() int {
	n := 0
	b.EachInterior(func(c Coord) bool {
		if b.At(c) == Uncolored {
			n++
		}
		return true
	})
	return n
}

// Clone は Board のディープコピーを返す
func (b Board) Clone() Board {
	cells := make([][]Color, len(b.cells))
	for x := range b.cells {
		cells[x] = make([]Color, len(b.cells[x]))
		copy(cells[x], b.cells[x])
	}
	return Board{size: b.size, cells: cells}
}
