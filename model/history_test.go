package model

import "testing"

func TestHistoryDetectsStillLife(t *testing.T) {
	block := CoordSeed{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	g := newTestGrid(t, 6, 6, block)

	var h History
	for gen := range 3 {
		if h.IsStagnant(g) {
			t.Fatalf("stagnation reported with only %d recorded generations", gen)
		}
		h.Update(g)
		g.Step()
	}
	if !h.IsStagnant(g) {
		t.Fatal("block still life was not detected as stagnant")
	}
}

func TestHistoryDetectsOscillator(t *testing.T) {
	g := newTestGrid(t, 6, 6, CoordSeed(Blinker(2, 1)))

	var h History
	for range 3 {
		h.Update(g)
		g.Step()
	}
	if !h.IsStagnant(g) {
		t.Fatal("period-2 blinker was not detected as stagnant")
	}
}

func TestHistoryIgnoresMovingGlider(t *testing.T) {
	g := newTestGrid(t, 12, 12, CoordSeed(Glider(0, 0)))

	var h History
	for range historySize {
		h.Update(g)
		g.Step()
		if h.IsStagnant(g) {
			t.Fatalf("glider reported stagnant: %v", g.LiveCells())
		}
	}

	h.Forget()
	if h.IsStagnant(g) {
		t.Fatal("stagnation reported after Forget")
	}
}

func TestGridHashDependsOnShape(t *testing.T) {
	var (
		h    History
		wide = newTestGrid(t, 8, 2, CoordSeed{{0, 0}})
		tall = newTestGrid(t, 2, 8, CoordSeed{{0, 0}})
	)
	if h.GridHash(wide) == h.GridHash(tall) {
		t.Fatal("grids with different shapes share a hash")
	}
	if h.GridHash(wide) != h.GridHash(wide) {
		t.Fatal("hash is not stable")
	}
}
