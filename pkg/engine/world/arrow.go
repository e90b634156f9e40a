package world

// TraceArrow follows an arrow through the carved graph and returns the cell it
// lands in, or nil if it flies into a wall.
//
// The arrow is in cell c, having entered through the side entry, with
// distance caves left to cross. Tunnels bend the arrow along their other
// exit; caves only let it continue straight. Entering a cave costs one unit
// of distance, entering a tunnel costs nothing.
func (g *Grid) TraceArrow(c *Cell, entry Direction, distance int) *Cell {
	if c == nil || distance < 0 {
		return nil
	}

	// Tunnels never cost distance, so a long enough all-tunnel loop would
	// otherwise spin forever.
	limit := 4*len(g.cells) + distance

	for step := 0; step <= limit; step++ {
		if distance == 0 {
			return c
		}

		exit, ok := exitDirection(c, entry)
		if !ok {
			return nil
		}
		next := g.Neighbor(c, exit)
		if next == nil {
			return nil
		}
		if next.IsCave() {
			distance--
		}
		c, entry = next, exit.Opposite()
	}

	return nil
}

func exitDirection(c *Cell, entry Direction) (Direction, bool) {
	if c.IsTunnel() {
		for _, dir := range c.Exits() {
			if dir != entry {
				return dir, true
			}
		}
		return entry, false
	}
	exit := entry.Opposite()
	return exit, c.HasExit(exit)
}
