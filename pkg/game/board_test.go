package game

import "testing"

func TestNewBoardBorder(t *testing.T) {
	for _, size := range []int{1, 3, 6} {
		b := NewBoard(size)
		for x := 0; x <= size+1; x++ {
			for y := 0; y <= size+2-x && y <= size+1; y++ {
				c := b.CoordAt(x, y)
				if !b.OnBoard(c) {
					continue
				}
				got := b.At(c)
				if b.Interior(c) && got != Uncolored {
					t.Errorf("size %d: interior %v colored %d", size, c, got)
				}
				if c.X == 0 && c.Y == 0 {
					continue // corner outside the grid
				}
				if !b.Interior(c) && got == Uncolored {
					t.Errorf("size %d: border %v is uncolored", size, c)
				}
			}
		}
		if got, want := b.CountFree(), size*(size+1)/2; got != want {
			t.Errorf("size %d: CountFree = %d, want %d", size, got, want)
		}
	}
}

func TestNeighborsRotation(t *testing.T) {
	b := NewBoard(5)
	c := b.CoordAt(2, 2)
	ns := b.Neighbors(c)
	want := [6]Coord{{3, 2, 2}, {2, 3, 2}, {1, 3, 3}, {1, 2, 4}, {2, 1, 4}, {3, 1, 3}}
	if ns != want {
		t.Fatalf("Neighbors(%v) = %v, want %v", c, ns, want)
	}
	for i, n := range ns {
		if n.X+n.Y+n.Z != 7 {
			t.Errorf("neighbor %d %v breaks x+y+z", i, n)
		}
		// consecutive neighbors are adjacent to each other (cyclic)
		next := ns[(i+1)%6]
		if !adjacent(n, next) {
			t.Errorf("neighbors %v and %v are not adjacent", n, next)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard(3)
	c := b.CoordAt(1, 1)
	clone := b.Clone()
	clone.set(c, Green)
	if b.At(c) != Uncolored {
		t.Fatal("Clone shares cells with the original")
	}
	if clone.CountFree() != b.CountFree()-1 {
		t.Errorf("CountFree after set = %d, want %d", clone.CountFree(), b.CountFree()-1)
	}
}

func TestEachInteriorOrder(t *testing.T) {
	b := NewBoard(3)
	var got []Coord
	b.EachInterior(func(c Coord) bool {
		got = append(got, c)
		return true
	})
	want := []Coord{{3, 1, 1}, {2, 1, 2}, {2, 2, 1}, {1, 1, 3}, {1, 2, 2}, {1, 3, 1}}
	if len(got) != len(want) {
		t.Fatalf("visited %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestThird(t *testing.T) {
	tests := []struct{ a, b, want Color }{
		{Red, Blue, Green},
		{Blue, Green, Red},
		{Green, Red, Blue},
	}
	for _, tt := range tests {
		if got := Third(tt.a, tt.b); got != tt.want {
			t.Errorf("Third(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
