package life

//Tick computes the next generation of the world per Conway's rules
//
//Only cells that can possibly change are examined: the living cells and
//the dead cells adjacent to at least one living cell. Every other location
//stays implicitly dead and is never touched, which keeps a step over the
//unbounded plane proportional to the population rather than any area.
//
//Tick is a pure function: the input world is left untouched and equal
//inputs always produce equal outputs.
func Tick(w World) World {
	next := make(map[Location]Cell, len(w.cells))
	seen := make(map[Location]struct{}, len(w.cells)*3)

	consider := func(c Cell) {
		if _, ok := seen[c.Loc]; ok {
			return
		}
		seen[c.Loc] = struct{}{}
		if survives(c.Alive, len(w.LivingNeighbors(c))) {
			next[c.Loc] = c.Revive()
		}
	}

	for _, c := range w.cells {
		consider(c)
		for _, d := range w.DeadNeighbors(c) {
			consider(d)
		}
	}

	return World{generation: w.generation + 1, cells: next}
}

//survives applies the four Game of Life rules to a single cell:
//a living cell keeps living with 2 or 3 living neighbors,
//a dead cell comes alive with exactly 3
func survives(alive bool, livingNeighbors int) bool {
	return (alive && livingNeighbors == 2) || livingNeighbors == 3
}
