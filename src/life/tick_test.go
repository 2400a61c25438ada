package life

import "testing"

func assertLiving(t *testing.T, w World, want ...Location) {
	t.Helper()
	if w.Population() != len(want) {
		t.Fatalf("expected %d living cells, got %d: %v", len(want), w.Population(), w.Living())
	}
	for _, loc := range want {
		if !w.CellAt(loc).Alive {
			t.Errorf("expected a living cell at %v", loc)
		}
	}
}

func TestUnderpopulationKillsLonelyCell(t *testing.T) {
	w := Tick(NewWorld(living(Location{0, 0})))
	assertLiving(t, w)
}

func TestUnderpopulationKillsPair(t *testing.T) {
	w := Tick(NewWorld(living(Location{0, 0}, Location{1, 0})))
	assertLiving(t, w)
}

func TestBlinkerOscillatesWithPeriodTwo(t *testing.T) {
	horizontal := []Location{{-1, 0}, {0, 0}, {1, 0}}
	vertical := []Location{{0, -1}, {0, 0}, {0, 1}}

	w := Tick(NewWorld(living(horizontal...)))
	assertLiving(t, w, vertical...)

	w = Tick(w)
	assertLiving(t, w, horizontal...)
}

func TestOverpopulationKillsCrowdedCell(t *testing.T) {
	w := NewWorld(living(
		Location{0, 0},
		Location{-1, -1}, Location{1, -1}, Location{-1, 1}, Location{1, 1},
	))
	if w.CellAt(Location{0, 0}).Alive != true {
		t.Fatal("setup: center must start alive")
	}

	next := Tick(w)
	if next.CellAt(Location{0, 0}).Alive {
		t.Error("a cell with 4 living neighbors must die")
	}
}

func TestReproductionRevivesDeadCellWithThreeNeighbors(t *testing.T) {
	//three corner cells complete into a block
	w := Tick(NewWorld(living(Location{1, 0}, Location{0, 1}, Location{1, 1})))
	assertLiving(t, w, Location{0, 0}, Location{1, 0}, Location{0, 1}, Location{1, 1})
}

func TestBlockIsAStillLife(t *testing.T) {
	block := []Location{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	w := NewWorld(living(block...))
	for i := 0; i < 3; i++ {
		w = Tick(w)
		assertLiving(t, w, block...)
	}
}

func TestTickingEmptyWorldStaysEmpty(t *testing.T) {
	w := Tick(NewWorld(nil))
	assertLiving(t, w)
	if w.Generation() != 1 {
		t.Errorf("expected generation 1, got %d", w.Generation())
	}
}

func TestGenerationIncrementsByExactlyOne(t *testing.T) {
	w := NewWorld(living(Location{-1, 0}, Location{0, 0}, Location{1, 0}))
	for i := 1; i <= 5; i++ {
		w = Tick(w)
		if w.Generation() != i {
			t.Fatalf("after %d ticks expected generation %d, got %d", i, i, w.Generation())
		}
	}
}

func TestTickIsDeterministic(t *testing.T) {
	w := NewWorld(living(
		Location{1, 0}, Location{2, 1},
		Location{0, 2}, Location{1, 2}, Location{2, 2},
	))

	a := Tick(w)
	b := Tick(w)

	if a.Generation() != b.Generation() {
		t.Errorf("generations differ: %d vs %d", a.Generation(), b.Generation())
	}
	if !SameLiving(a, b) {
		t.Errorf("living sets differ: %v vs %v", a.Living(), b.Living())
	}
}

func TestGliderTranslatesDiagonallyEveryFourTicks(t *testing.T) {
	glider := []Location{
		{1, 0},
		{2, 1},
		{0, 2}, {1, 2}, {2, 2},
	}

	w := NewWorld(living(glider...))
	for i := 0; i < 4; i++ {
		w = Tick(w)
	}

	translated := make([]Location, len(glider))
	for i, loc := range glider {
		translated[i] = Location{X: loc.X + 1, Y: loc.Y + 1}
	}
	assertLiving(t, w, translated...)

	//and again: the displacement repeats
	for i := 0; i < 4; i++ {
		w = Tick(w)
	}
	for i, loc := range glider {
		translated[i] = Location{X: loc.X + 2, Y: loc.Y + 2}
	}
	assertLiving(t, w, translated...)
}
