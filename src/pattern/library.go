package pattern

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"sparselife/src/life"
)

//Entry is a named seeding pattern that can be placed anywhere on the plane
type Entry struct {
	Name  string
	Descr string
	Build func(center life.Location) []life.Cell
}

var library = map[string]Entry{
	"blinker": {
		Name:  "blinker",
		Descr: "period-2 oscillator, three cells in a row",
		Build: fromOffsets([]life.Location{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}}),
	},
	"block": {
		Name:  "block",
		Descr: "2x2 still life",
		Build: fromOffsets([]life.Location{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}),
	},
	"toad": {
		Name:  "toad",
		Descr: "period-2 oscillator, two offset rows of three",
		Build: fromOffsets([]life.Location{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}),
	},
	"beacon": {
		Name:  "beacon",
		Descr: "period-2 oscillator, two blinking blocks",
		Build: fromOffsets([]life.Location{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1},
			{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3},
		}),
	},
	"glider": {
		Name:  "glider",
		Descr: "5-cell spaceship, travels one cell diagonally every 4 steps",
		Build: fromOffsets(gliderOffsets),
	},
	"glider-gun": {
		Name:  "glider-gun",
		Descr: "Gosper glider gun, emits a glider every 30 steps",
		Build: fromOffsets(gliderGunOffsets),
	},
}

var gliderOffsets = []life.Location{
	{X: 1, Y: 0},
	{X: 2, Y: 1},
	{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
}

var gliderGunOffsets = []life.Location{
	{X: 0, Y: 4}, {X: 1, Y: 4}, {X: 0, Y: 5}, {X: 1, Y: 5},
	{X: 10, Y: 4}, {X: 10, Y: 5}, {X: 10, Y: 6}, {X: 11, Y: 3}, {X: 11, Y: 7}, {X: 12, Y: 2}, {X: 12, Y: 8},
	{X: 13, Y: 2}, {X: 13, Y: 8}, {X: 14, Y: 5}, {X: 15, Y: 3}, {X: 15, Y: 7},
	{X: 16, Y: 4}, {X: 16, Y: 5}, {X: 16, Y: 6}, {X: 17, Y: 5},
	{X: 20, Y: 2}, {X: 20, Y: 3}, {X: 20, Y: 4}, {X: 21, Y: 2}, {X: 21, Y: 3}, {X: 21, Y: 4},
	{X: 22, Y: 1}, {X: 22, Y: 5}, {X: 24, Y: 0}, {X: 24, Y: 1}, {X: 24, Y: 5}, {X: 24, Y: 6},
	{X: 34, Y: 2}, {X: 34, Y: 3}, {X: 35, Y: 2}, {X: 35, Y: 3},
}

//Lookup returns the named pattern from the built-in library
func Lookup(name string) (Entry, error) {
	e, ok := library[name]
	if !ok {
		return Entry{}, errors.Errorf("[Lookup] unknown pattern: %q", name)
	}
	return e, nil
}

//Names lists the built-in pattern names in a stable order
func Names() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

//Random seeds a width x height rectangle centered on center, where each
//location independently comes alive with probability density
//the same seed always produces the same cell list
func Random(width, height int, center life.Location, density float64, seed int64) []life.Cell {
	rng := rand.New(rand.NewSource(seed))
	var cells []life.Cell
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if rng.Float64() < density {
				cells = append(cells, life.Cell{
					Loc: life.Location{
						X: center.X + x - width/2,
						Y: center.Y + y - height/2,
					},
					Alive: true,
				})
			}
		}
	}
	return cells
}

//fromOffsets builds a pattern constructor that translates the given living
//cell offsets to the requested center
func fromOffsets(offsets []life.Location) func(center life.Location) []life.Cell {
	cells := make([]life.Cell, len(offsets))
	for i, o := range offsets {
		cells[i] = life.Cell{Loc: o, Alive: true}
	}
	return func(center life.Location) []life.Cell {
		return Translate(cells, center)
	}
}
