package core

import "testing"

func TestWrapStaysInRange(t *testing.T) {
	g := NewGrid(4, 3)
	cases := []struct {
		start  Cell
		dx, dy int
		want   Cell
	}{
		{Cell{X: 3, Y: 1}, 1, 0, Cell{X: 0, Y: 1}},
		{Cell{X: 0, Y: 1}, -1, 0, Cell{X: 3, Y: 1}},
		{Cell{X: 2, Y: 2}, 0, 1, Cell{X: 2, Y: 0}},
		{Cell{X: 2, Y: 0}, 0, -1, Cell{X: 2, Y: 2}},
		{Cell{X: 0, Y: 0}, -9, -7, Cell{X: 3, Y: 2}},
		{Cell{X: 1, Y: 1}, 400, 300, Cell{X: 1, Y: 1}},
	}
	for _, tc := range cases {
		got := g.Wrap(tc.start, tc.dx, tc.dy)
		if got != tc.want {
			t.Errorf("Wrap(%v, %d, %d) = %v, want %v", tc.start, tc.dx, tc.dy, got, tc.want)
		}
		if !g.Contains(got) {
			t.Errorf("Wrap(%v, %d, %d) = %v out of bounds", tc.start, tc.dx, tc.dy, got)
		}
	}
}

func TestMoveFollowsDirections(t *testing.T) {
	g := NewGrid(5, 5)
	start := Cell{X: 2, Y: 2}
	cases := []struct {
		dir  Direction
		want Cell
	}{
		{Up, Cell{X: 2, Y: 1}},
		{Down, Cell{X: 2, Y: 3}},
		{Left, Cell{X: 1, Y: 2}},
		{Right, Cell{X: 3, Y: 2}},
	}
	for _, tc := range cases {
		if got := g.Move(start, tc.dir); got != tc.want {
			t.Errorf("Move(%v, %v) = %v, want %v", start, tc.dir, got, tc.want)
		}
	}
}

func TestDistWrapsAroundTheShortWay(t *testing.T) {
	g := NewGrid(10, 10)
	cases := []struct {
		a, b Cell
		want int
	}{
		{Cell{X: 0, Y: 0}, Cell{X: 0, Y: 0}, 0},
		{Cell{X: 0, Y: 0}, Cell{X: 9, Y: 0}, 1},
		{Cell{X: 1, Y: 1}, Cell{X: 8, Y: 9}, 5},
		{Cell{X: 5, Y: 5}, Cell{X: 0, Y: 0}, 10},
	}
	for _, tc := range cases {
		if got := g.Dist(tc.a, tc.b); got != tc.want {
			t.Errorf("Dist(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		if got := g.Dist(tc.b, tc.a); got != tc.want {
			t.Errorf("Dist(%v, %v) = %d, want symmetric %d", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestOppositePairs(t *testing.T) {
	pairs := map[Direction]Direction{
		Up:    Down,
		Down:  Up,
		Left:  Right,
		Right: Left,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func TestGridClampsDegenerateDimensions(t *testing.T) {
	g := NewGrid(0, -4)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("NewGrid(0,-4) = %dx%d, want 1x1", g.W, g.H)
	}
}

func TestIndexIsRowMajor(t *testing.T) {
	g := NewGrid(4, 3)
	if got := g.Index(Cell{X: 3, Y: 2}); got != 11 {
		t.Fatalf("Index((3,2)) = %d, want 11", got)
	}
}
