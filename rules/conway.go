package rules

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to determine the next state of a cell.

	alive, neighbors < 2  -> dead (underpopulation)
	alive, neighbors 2..3 -> alive
	alive, neighbors > 3  -> dead (overpopulation)
	dead,  neighbors == 3 -> alive (reproduction)
	dead,  otherwise      -> dead
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
