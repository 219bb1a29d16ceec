package game

import (
	"errors"
	"testing"
)

const openingSize3 = "[33][102][3003][10002][1212]LastPlay:null"

func TestFormatNewState(t *testing.T) {
	if got := FormatState(NewState(3)); got != openingSize3 {
		t.Errorf("FormatState = %q, want %q", got, openingSize3)
	}
}

func TestParseStateRoundTrip(t *testing.T) {
	s, err := ParseState(openingSize3)
	if err != nil {
		t.Fatalf("ParseState: %v", err)
	}
	if s.Size() != 3 {
		t.Errorf("size = %d, want 3", s.Size())
	}
	if s.LastMove != nil {
		t.Errorf("last move = %v, want none", *s.LastMove)
	}

	played, err := s.Apply(NewMove(Green, Coord{2, 1, 2}))
	if err != nil {
		t.Fatal(err)
	}
	text := FormatState(played)
	if want := "[33][102][3303][10002][1212]LastPlay:(3,2,1,2)"; text != want {
		t.Fatalf("FormatState = %q, want %q", text, want)
	}
	back, err := ParseState(text)
	if err != nil {
		t.Fatalf("ParseState(%q): %v", text, err)
	}
	if back.LastMove == nil || *back.LastMove != *played.LastMove {
		t.Errorf("last move = %v, want %v", back.LastMove, played.LastMove)
	}
	if back.Board.At(Coord{2, 1, 2}) != Green {
		t.Error("placement lost in round trip")
	}
}

func TestParseStateLastMoveSegment(t *testing.T) {
	tests := []struct {
		tail string
		want *Move
	}{
		{"", nil},
		{"LastPlay:null", nil},
		{"LastPlay:(1,1,1,3)", &Move{Color: Red, X: 1, Y: 1, Z: 3}},
		{"(2, 1, 2, 2)", &Move{Color: Blue, X: 1, Y: 2, Z: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.tail, func(t *testing.T) {
			s, err := ParseState("[33][102][3003][10002][1212]" + tt.tail)
			if err != nil {
				t.Fatalf("ParseState: %v", err)
			}
			switch {
			case tt.want == nil && s.LastMove != nil:
				t.Errorf("last move = %v, want none", *s.LastMove)
			case tt.want != nil && (s.LastMove == nil || *s.LastMove != *tt.want):
				t.Errorf("last move = %v, want %v", s.LastMove, *tt.want)
			}
		})
	}
}

func TestParseStateMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too few rows", "[1][2]LastPlay:null"},
		{"missing bracket", "[33]102][3003][10002][1212]LastPlay:null"},
		{"short row", "[33][10][3003][10002][1212]LastPlay:null"},
		{"long bottom row", "[33][102][3003][10002][12121]LastPlay:null"},
		{"non digit", "[33][1x2][3003][10002][1212]LastPlay:null"},
		{"color out of range", "[33][142][3003][10002][1212]LastPlay:null"},
		{"unclosed tuple", "[33][102][3003][10002][1212]LastPlay:(1,1,1,3"},
		{"three fields", "[33][102][3003][10002][1212]LastPlay:(1,1,1)"},
		{"non numeric field", "[33][102][3003][10002][1212]LastPlay:(1,a,1,3)"},
		{"uncolored move", "[33][102][3003][10002][1212]LastPlay:(0,1,1,3)"},
		{"bad coordinate sum", "[33][102][3003][10002][1212]LastPlay:(1,1,1,1)"},
		{"border move", "[33][102][3003][10002][1212]LastPlay:(1,0,2,3)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseState(tt.input); !errors.Is(err, ErrMalformedInput) {
				t.Errorf("ParseState(%q) error = %v, want ErrMalformedInput", tt.input, err)
			}
		})
	}
}

func TestMoveString(t *testing.T) {
	if got := NewMove(Red, Coord{1, 1, 3}).String(); got != "(1,1,1,3)" {
		t.Errorf("String = %q", got)
	}
	m, err := ParseMove(" (3,2,1,2) ")
	if err != nil || m != NewMove(Green, Coord{2, 1, 2}) {
		t.Errorf("ParseMove = %v, %v", m, err)
	}
}
