package game

// forbiddenColors は c に置くと3色の三角形ができてしまう色の集合を返す
func forbiddenColors(b Board, c Coord) [4]bool {
	var bad [4]bool
	cs := b.neighborColors(c)
	for i := 0; i < 6; i++ {
		c1, c2 := cs[i], cs[i+1]
		if c1 != Uncolored && c2 != Uncolored && c1 != c2 {
			bad[Third(c1, c2)] = true
		}
	}
	return bad
}

// LegalColors は c に置いても即負けにならない色を返す
func LegalColors(b Board, c Coord) []Color {
	bad := forbiddenColors(b, c)
	legal := make([]Color, 0, len(Colors))
	for _, color := range Colors {
		if !bad[color] {
			legal = append(legal, color)
		}
	}
	return legal
}

// CompletesTriangle は m を置くと3色の三角形が完成するか判定する
func CompletesTriangle(b Board, m Move) bool {
	if !m.Color.Valid() {
		return false
	}
	return forbiddenColors(b, m.Coord())[m.Color]
}

func appendLegal(moves []Move, b Board, c Coord) []Move {
	for _, color := range LegalColors(b, c) {
		moves = append(moves, NewMove(color, c))
	}
	return moves
}

// ChildMoves は last に隣接する未着色マスへの負けない手を返す。
// 隣接する未着色マスが1つもなければ anyFree は false
func ChildMoves(b Board, last Coord) (moves []Move, anyFree bool) {
	moves = []Move{}
	for _, n := range b.Neighbors(last) {
		if !b.Interior(n) || b.At(n) != Uncolored {
			continue
		}
		anyFree = true
		moves = appendLegal(moves, b, n)
	}
	return moves, anyFree
}

// FreeMoves はプレイ領域すべての未着色マスへの負けない手を返す
func FreeMoves(b Board) []Move {
	moves := []Move{}
	b.EachInterior(func(c Coord) bool {
		if b.At(c) == Uncolored {
			moves = appendLegal(moves, b, c)
		}
		return true
	})
	return moves
}

// FallbackMove は負けが確定しているときに使う合法手を返す。
// last に隣接する最初の未着色マス、なければ走査順で最初の未着色マスに赤を置く
func FallbackMove(b Board, last Coord) (Move, bool) {
	for _, n := range b.Neighbors(last) {
		if b.Interior(n) && b.At(n) == Uncolored {
			return NewMove(Red, n), true
		}
	}
	return firstFree(b)
}

func firstFree(b Board) (m Move, found bool) {
	b.EachInterior(func(c Coord) bool {
		if b.At(c) == Uncolored {
			m, found = NewMove(Red, c), true
			return false
		}
		return true
	})
	return m, found
}
