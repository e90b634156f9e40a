package generator

import "dungeons/pkg/engine/world"

// Classify marks every cell with exactly two exits as a tunnel and every other
// cell as a cave.
func Classify(grid *world.Grid) {
	grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		if cell.Degree() == 2 {
			cell.Type = world.Tunnel
		} else {
			cell.Type = world.Cave
		}
	})
}
