package game

import (
	"fmt"
	"strconv"
	"strings"
)

const lastPlayPrefix = "LastPlay:"

// ParseState は "[13][302][1003]...[0120]LastPlay:(1,1,1,3)" 形式の文字列を読む。
// 行は上 (x = size+1) から順に並び、最後の行は下辺 (x = 0, y = 1 から)。
// 末尾に "(" がなければ初手の局面とみなす
func ParseState(input string) (State, error) {
	rows := strings.Split(strings.TrimSpace(input), "]")
	if len(rows) < 4 {
		return State{}, fmt.Errorf("%w: need at least 3 rows, got %d", ErrMalformedInput, len(rows)-1)
	}
	size := len(rows) - 3
	b := emptyBoard(size)

	for i := 0; i < len(rows)-1; i++ {
		row := rows[i]
		if !strings.HasPrefix(row, "[") {
			return State{}, fmt.Errorf("%w: row %d does not start with '['", ErrMalformedInput, i)
		}
		digits := row[1:]
		x, yOffset := size+1-i, 0
		want := size + 3 - x
		if i == len(rows)-2 {
			x, yOffset, want = 0, 1, size+1
		}
		if len(digits) != want {
			return State{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedInput, i, len(digits), want)
		}
		for j, ch := range digits {
			if ch < '0' || ch > '3' {
				return State{}, fmt.Errorf("%w: row %d has invalid color %q", ErrMalformedInput, i, ch)
			}
			b.cells[x][j+yOffset] = Color(ch - '0')
		}
	}

	s := State{Board: b}
	tail := rows[len(rows)-1]
	open := strings.IndexByte(tail, '(')
	if open < 0 {
		return s, nil
	}
	m, err := parseMove(tail[open:])
	if err != nil {
		return State{}, err
	}
	if !b.Interior(m.Coord()) {
		return State{}, fmt.Errorf("%w: last move %v is not a playable cell", ErrMalformedInput, m)
	}
	s.LastMove = &m
	return s, nil
}

// ParseMove は "(color,x,y,z)" を読む
func ParseMove(text string) (Move, error) {
	return parseMove(strings.TrimSpace(text))
}

func parseMove(text string) (Move, error) {
	if !strings.HasPrefix(text, "(") || !strings.HasSuffix(text, ")") {
		return Move{}, fmt.Errorf("%w: move %q is not parenthesized", ErrMalformedInput, text)
	}
	parts := strings.Split(text[1:len(text)-1], ",")
	if len(parts) != 4 {
		return Move{}, fmt.Errorf("%w: move %q needs 4 fields", ErrMalformedInput, text)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Move{}, fmt.Errorf("%w: move %q: %v", ErrMalformedInput, text, err)
		}
		v[i] = n
	}
	color := Color(v[0])
	if color == Uncolored || !color.Valid() {
		return Move{}, fmt.Errorf("%w: move %q has invalid color", ErrMalformedInput, text)
	}
	return Move{Color: color, X: v[1], Y: v[2], Z: v[3]}, nil
}

// FormatState は ParseState で読める文字列に変換する
func FormatState(s State) string {
	var sb strings.Builder
	b := s.Board
	for x := b.size + 1; x >= 1; x-- {
		sb.WriteByte('[')
		for y := 0; y <= b.size+2-x; y++ {
			sb.WriteByte(byte('0' + b.cells[x][y]))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte('[')
	for y := 1; y <= b.size+1; y++ {
		sb.WriteByte(byte('0' + b.cells[0][y]))
	}
	sb.WriteByte(']')
	sb.WriteString(lastPlayPrefix)
	if s.LastMove == nil {
		sb.WriteString("null")
	} else {
		sb.WriteString(s.LastMove.String())
	}
	return sb.String()
}
