package life

import "sort"

//Location identifies a cell position on the unbounded plane
//two locations are equal iff both coordinates match
type Location struct {
	X int
	Y int
}

//Cell is a location plus its binary state
//a Cell is a value: deriving a killed or revived cell produces a new value
type Cell struct {
	Loc   Location
	Alive bool
}

//Kill returns a dead copy of the cell
func (c Cell) Kill() Cell {
	return Cell{Loc: c.Loc}
}

//Revive returns a living copy of the cell
func (c Cell) Revive() Cell {
	return Cell{Loc: c.Loc, Alive: true}
}

//World is an immutable snapshot of the simulation: a generation counter
//plus a sparse collection of cells keyed by location
//only living cells are stored; any location absent from the map is dead
type World struct {
	generation int
	cells      map[Location]Cell
}

//neighborOffsets enumerates the Moore neighborhood in row-major order
//the order carries no meaning but must stay fixed for reproducibility
var neighborOffsets = [8]Location{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

//NewWorld creates a generation-zero world from an initial cell list
//duplicate locations resolve last-write-wins; dead entries are not stored
func NewWorld(cells []Cell) World {
	return World{cells: collect(cells)}
}

//WithCells derives a new world at the same generation with the given cells
//merged over the current ones, last-write-wins per location
//merging a dead cell removes that location from explicit storage
func (w World) WithCells(cells ...Cell) World {
	merged := make(map[Location]Cell, len(w.cells)+len(cells))
	for loc, c := range w.cells {
		merged[loc] = c
	}
	for _, c := range cells {
		if c.Alive {
			merged[c.Loc] = c
		} else {
			delete(merged, c.Loc)
		}
	}
	return World{generation: w.generation, cells: merged}
}

//Generation returns the tick counter, starting at 0
func (w World) Generation() int {
	return w.generation
}

//Population returns the count of living cells
func (w World) Population() int {
	return len(w.cells)
}

//CellAt returns the tracked cell at loc if present, otherwise a synthetic
//dead cell at loc; every location is a valid query
func (w World) CellAt(loc Location) Cell {
	if c, ok := w.cells[loc]; ok {
		return c
	}
	return Cell{Loc: loc}
}

//Neighbors returns the 8 Moore-neighborhood cells of c, in a fixed order
func (w World) Neighbors(c Cell) []Cell {
	n := make([]Cell, len(neighborOffsets))
	for i, o := range neighborOffsets {
		n[i] = w.CellAt(Location{X: c.Loc.X + o.X, Y: c.Loc.Y + o.Y})
	}
	return n
}

//LivingNeighbors returns the living subset of the Moore neighborhood of c
func (w World) LivingNeighbors(c Cell) []Cell {
	return w.filterNeighbors(c, true)
}

//DeadNeighbors returns the dead subset of the Moore neighborhood of c
func (w World) DeadNeighbors(c Cell) []Cell {
	return w.filterNeighbors(c, false)
}

func (w World) filterNeighbors(c Cell, alive bool) []Cell {
	var out []Cell
	for _, n := range w.Neighbors(c) {
		if n.Alive == alive {
			out = append(out, n)
		}
	}
	return out
}

//Living returns the living cells sorted by Y then X
//map iteration order is not stable, so callers get a deterministic view here
func (w World) Living() []Cell {
	out := make([]Cell, 0, len(w.cells))
	for _, c := range w.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Loc.Y != out[j].Loc.Y {
			return out[i].Loc.Y < out[j].Loc.Y
		}
		return out[i].Loc.X < out[j].Loc.X
	})
	return out
}

//SameLiving reports whether two worlds hold the same set of living cells,
//ignoring the generation counters
func SameLiving(a, b World) bool {
	if len(a.cells) != len(b.cells) {
		return false
	}
	for loc := range a.cells {
		if _, ok := b.cells[loc]; !ok {
			return false
		}
	}
	return true
}

//collect folds a cell list into location-keyed storage, last-write-wins,
//keeping living cells only
func collect(cells []Cell) map[Location]Cell {
	m := make(map[Location]Cell, len(cells))
	for _, c := range cells {
		if c.Alive {
			m[c.Loc] = c
		} else {
			delete(m, c.Loc)
		}
	}
	return m
}
