package pattern

import (
	"sort"
	"testing"

	"sparselife/src/life"
)

func TestLookupKnownPatterns(t *testing.T) {
	for _, name := range Names() {
		e, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		cells := e.Build(life.Location{})
		if len(cells) == 0 {
			t.Errorf("pattern %q builds no cells", name)
		}
		for _, c := range cells {
			if !c.Alive {
				t.Errorf("pattern %q contains a dead cell at %v", name, c.Loc)
			}
		}
	}
}

func TestLookupUnknownPattern(t *testing.T) {
	if _, err := Lookup("spaceship-of-theseus"); err == nil {
		t.Error("expected an error for an unknown pattern name")
	}
}

func TestNamesAreSorted(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() is not sorted: %v", names)
	}
}

func TestBuildPlacesPatternAtCenter(t *testing.T) {
	e, err := Lookup("blinker")
	if err != nil {
		t.Fatal(err)
	}

	cells := e.Build(life.Location{X: 5, Y: 5})
	want := map[life.Location]bool{
		{X: 4, Y: 5}: true, {X: 5, Y: 5}: true, {X: 6, Y: 5}: true,
	}
	if len(cells) != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), len(cells))
	}
	for _, c := range cells {
		if !want[c.Loc] {
			t.Errorf("unexpected cell at %v", c.Loc)
		}
	}
}

func TestGliderGunCellCount(t *testing.T) {
	e, err := Lookup("glider-gun")
	if err != nil {
		t.Fatal(err)
	}
	if got := len(e.Build(life.Location{})); got != 36 {
		t.Errorf("the Gosper gun has 36 cells, got %d", got)
	}
}

func TestRandomIsDeterministicPerSeed(t *testing.T) {
	a := Random(20, 10, life.Location{}, 0.5, 42)
	b := Random(20, 10, life.Location{}, 0.5, 42)

	if len(a) != len(b) {
		t.Fatalf("same seed produced different cell counts: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different cells at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRandomDensityBounds(t *testing.T) {
	if cells := Random(20, 10, life.Location{}, 0, 1); len(cells) != 0 {
		t.Errorf("density 0 must produce no cells, got %d", len(cells))
	}
	if cells := Random(20, 10, life.Location{}, 1, 1); len(cells) != 200 {
		t.Errorf("density 1 must fill the rectangle, got %d cells", len(cells))
	}
}
