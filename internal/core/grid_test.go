package core

import (
	"errors"
	"testing"
)

func newTestGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g, err := NewGrid(rows, cols, 10)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", rows, cols, err)
	}
	return g
}

func setAlive(g *Grid, cells ...[2]int) {
	for _, rc := range cells {
		if !g.Alive(rc[0], rc[1]) {
			g.Toggle(rc[0], rc[1])
		}
	}
}

func liveSet(g *Grid) map[[2]int]bool {
	out := map[[2]int]bool{}
	g.Each(func(row, col int, c Cell) {
		if c.Alive() {
			out[[2]int{row, col}] = true
		}
	})
	return out
}

func expectLive(t *testing.T, g *Grid, want ...[2]int) {
	t.Helper()
	got := liveSet(g)
	if len(got) != len(want) {
		t.Fatalf("generation %d: %d live cells %v, want %v", g.Generation(), len(got), got, want)
	}
	for _, rc := range want {
		if !got[rc] {
			t.Fatalf("generation %d: cell %v dead, want alive (live=%v)", g.Generation(), rc, got)
		}
	}
}

func borderDead(t *testing.T, g *Grid) {
	t.Helper()
	for row := 0; row < g.Rows()+2; row++ {
		for col := 0; col < g.Cols()+2; col++ {
			if g.Interior(row, col) {
				continue
			}
			if g.Alive(row, col) {
				t.Fatalf("border cell (%d,%d) is alive", row, col)
			}
		}
	}
}

func TestNewGridAllocatesBorder(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 0}, {1, 1}, {3, 7}, {48, 64}} {
		g := newTestGrid(t, tc.rows, tc.cols)
		if want := (tc.rows + 2) * (tc.cols + 2); g.Len() != want {
			t.Fatalf("%dx%d grid has %d cells, want %d", tc.rows, tc.cols, g.Len(), want)
		}
		if g.Population() != 0 {
			t.Fatalf("%dx%d grid starts with %d live cells", tc.rows, tc.cols, g.Population())
		}
		borderDead(t, g)
	}
}

func TestNewGridRejectsNegative(t *testing.T) {
	if _, err := NewGrid(-1, 4, 10); !errors.Is(err, ErrNegativeSize) {
		t.Fatalf("err = %v, want ErrNegativeSize", err)
	}
	if _, err := NewGrid(4, 4, -10); !errors.Is(err, ErrNegativeSize) {
		t.Fatalf("err = %v, want ErrNegativeSize", err)
	}
}

func TestCellPositions(t *testing.T) {
	g := newTestGrid(t, 3, 4)
	c := g.Cell(1, 1)
	if c.X != 0 || c.Y != 0 {
		t.Fatalf("cell (1,1) at (%d,%d), want (0,0)", c.X, c.Y)
	}
	c = g.Cell(3, 4)
	if c.X != 30 || c.Y != 20 {
		t.Fatalf("cell (3,4) at (%d,%d), want (30,20)", c.X, c.Y)
	}
	c = g.Cell(0, 0)
	if c.X != -10 || c.Y != -10 {
		t.Fatalf("border cell (0,0) at (%d,%d), want (-10,-10)", c.X, c.Y)
	}
}

func TestToggleAffectsOnlyTarget(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	g.Toggle(2, 3)
	expectLive(t, g, [2]int{2, 3})
	g.Toggle(2, 3)
	expectLive(t, g)
	borderDead(t, g)
}

func TestToggleBorderPanics(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	for _, rc := range [][2]int{{0, 1}, {1, 0}, {4, 2}, {2, 4}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("toggle of border cell %v did not panic", rc)
				}
			}()
			g.Toggle(rc[0], rc[1])
		}()
	}
	borderDead(t, g)
}

func TestCellAt(t *testing.T) {
	g, err := NewGrid(48, 64, 10)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		p        Point
		row, col int
		ok       bool
	}{
		{Point{0, 0}, 1, 1, true},
		{Point{9, 9}, 1, 1, true},
		{Point{10, 0}, 1, 2, true},
		{Point{639, 479}, 48, 64, true},
		{Point{640, 10}, 0, 0, false},
		{Point{10, 480}, 0, 0, false},
		{Point{-1, 5}, 0, 0, false},
	}
	for _, tc := range tests {
		row, col, ok := g.CellAt(tc.p)
		if row != tc.row || col != tc.col || ok != tc.ok {
			t.Fatalf("CellAt(%v) = (%d,%d,%v), want (%d,%d,%v)", tc.p, row, col, ok, tc.row, tc.col, tc.ok)
		}
	}
}

func TestCellAtTruncatedRemainder(t *testing.T) {
	// 65x45 pixels at 10px per cell leaves a 5px strip outside the board.
	g, err := NewGrid(45/10, 65/10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, ok := g.CellAt(Point{62, 10}); ok {
		t.Fatal("remainder strip mapped to a cell")
	}
	if _, _, ok := g.CellAt(Point{10, 42}); ok {
		t.Fatal("remainder strip mapped to a cell")
	}
}

func TestConwayRule(t *testing.T) {
	// Centre cell (3,3) of a 5x5 board with n neighbours placed around it.
	ring := [][2]int{{2, 2}, {2, 3}, {2, 4}, {3, 2}, {3, 4}, {4, 2}, {4, 3}, {4, 4}}
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{false, true} {
			g := newTestGrid(t, 5, 5)
			setAlive(g, ring[:n]...)
			if alive {
				g.Toggle(3, 3)
			}
			g.Step()
			if got := g.Cell(3, 3).Neighbors(); got != n {
				t.Fatalf("n=%d alive=%v: cached neighbours = %d", n, alive, got)
			}
			want := n == 3 || (alive && n == 2)
			if got := g.Alive(3, 3); got != want {
				t.Fatalf("n=%d alive=%v: next = %v, want %v", n, alive, got, want)
			}
		}
	}
}

func TestSingleCellDies(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	g.Toggle(3, 3)
	g.Step()
	expectLive(t, g)
}

func TestBlockStillLife(t *testing.T) {
	g := newTestGrid(t, 6, 6)
	block := [][2]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}}
	setAlive(g, block...)
	for i := 0; i < 10; i++ {
		g.Step()
		expectLive(t, g, block...)
	}
	if g.Generation() != 10 {
		t.Fatalf("generation = %d, want 10", g.Generation())
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	horizontal := [][2]int{{3, 2}, {3, 3}, {3, 4}}
	vertical := [][2]int{{2, 3}, {3, 3}, {4, 3}}
	setAlive(g, horizontal...)

	g.Step()
	expectLive(t, g, vertical...)

	g.Step()
	expectLive(t, g, horizontal...)
}

func TestBorderCountsAsDead(t *testing.T) {
	// A blinker against the top edge would wrap on a torus; here the
	// cells above row 1 are dead, so it collapses to a vertical pair.
	g := newTestGrid(t, 4, 5)
	setAlive(g, [2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4})
	g.Step()
	expectLive(t, g, [2]int{1, 3}, [2]int{2, 3})
	borderDead(t, g)
}

func TestCornerBlockStable(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	corner := [][2]int{{3, 3}, {3, 4}, {4, 3}, {4, 4}}
	setAlive(g, corner...)
	for i := 0; i < 4; i++ {
		g.Step()
		expectLive(t, g, corner...)
		borderDead(t, g)
	}
}

func TestStepUsesSnapshot(t *testing.T) {
	// Glider: an in-place update in row-major order would corrupt it.
	g := newTestGrid(t, 8, 8)
	setAlive(g, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1}, [2]int{3, 2}, [2]int{3, 3})
	for i := 0; i < 4; i++ {
		g.Step()
	}
	expectLive(t, g, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 2}, [2]int{4, 3}, [2]int{4, 4})
}

func TestStepEmptyGrid(t *testing.T) {
	g := newTestGrid(t, 0, 0)
	g.Step()
	if g.Population() != 0 || g.Generation() != 1 {
		t.Fatalf("empty grid: population=%d generation=%d", g.Population(), g.Generation())
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := newTestGrid(t, 20, 20)
	b := newTestGrid(t, 20, 20)
	a.Randomize(NewRNG(7), 0.4)
	b.Randomize(NewRNG(7), 0.4)
	if pa, pb := liveSet(a), liveSet(b); len(pa) != len(pb) {
		t.Fatalf("same seed gave %d and %d live cells", len(pa), len(pb))
	} else {
		for rc := range pa {
			if !pb[rc] {
				t.Fatalf("same seed differs at %v", rc)
			}
		}
	}
	if a.Population() == 0 {
		t.Fatal("density 0.4 produced an empty board")
	}
	borderDead(t, a)

	full := newTestGrid(t, 5, 5)
	full.Randomize(NewRNG(1), 1)
	if full.Population() != 25 {
		t.Fatalf("density 1 population = %d, want 25", full.Population())
	}
	borderDead(t, full)
}
