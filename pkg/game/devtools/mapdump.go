// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"dungeons/pkg/engine/world"
	"dungeons/pkg/game/entities"
	"dungeons/pkg/game/state"
	gameworld "dungeons/pkg/game/world"
)

const (
	mapDumpFilename = "map.txt"
	fieldWidth      = 30

	wallLabel     = "WALL"
	passageEW     = "<--------->"
	passageNS     = "|"
	playerMarker  = "*"
	arrowMarker   = "A"
	fieldSep      = " "
	listSeparator = ","
)

var treasureLetters = map[entities.Treasure]string{
	entities.Diamonds:  "D",
	entities.Rubies:    "R",
	entities.Sapphires: "S",
}

func field(s string) string {
	return fmt.Sprintf("%*s", fieldWidth, s)
}

// cellLabel renders a cell as *Cell-07{Cave}[D,R]<Monster-1>(A,A).
// The leading * marks the player's cell.
func cellLabel(g *state.Game, cell *world.Cell) string {
	var b strings.Builder
	if g.Player != nil && g.Player.Location() == cell.Name {
		b.WriteString(playerMarker)
	}
	b.WriteString(cell.Name)
	fmt.Fprintf(&b, "{%s}", cell.Type)

	data := gameworld.GetGameData(cell)
	letters := make([]string, 0, len(data.Treasures))
	for _, t := range data.Treasures {
		letters = append(letters, treasureLetters[t])
	}
	fmt.Fprintf(&b, "[%s]", strings.Join(letters, listSeparator))

	b.WriteString("<")
	if data.Monster != nil {
		b.WriteString(data.Monster.Name)
	}
	b.WriteString(">")

	arrows := make([]string, data.Arrows)
	for i := range arrows {
		arrows[i] = arrowMarker
	}
	fmt.Fprintf(&b, "(%s)", strings.Join(arrows, listSeparator))
	return b.String()
}

func passage(open bool, label string) string {
	if open {
		return field(label)
	}
	return field(wallLabel)
}

// DumpGrid renders the whole dungeon structurally: every cell with its type,
// contents and passages. The output depends only on the grid and player, so
// identical worlds give identical dumps.
func DumpGrid(g *state.Game) string {
	rows, cols := g.Grid.Rows(), g.Grid.Cols()
	var out strings.Builder
	var bottom []string

	for row := 0; row < rows; row++ {
		var top, middle []string
		for col := 0; col < cols; col++ {
			cell := g.Grid.GetCell(row, col)

			middle = append(middle, passage(cell.HasExit(world.West), passageEW))
			middle = append(middle, field(cellLabel(g, cell)))
			if col == cols-1 {
				middle = append(middle, passage(cell.HasExit(world.East), passageEW))
			}

			top = append(top, field(" "), passage(cell.HasExit(world.North), passageNS))
			if row == rows-1 {
				bottom = append(bottom, field(" "), passage(cell.HasExit(world.South), passageNS))
			}
		}
		out.WriteString(strings.Join(top, fieldSep))
		out.WriteString("\n")
		out.WriteString(strings.Join(middle, fieldSep))
		out.WriteString("\n")
	}
	out.WriteString(strings.Join(bottom, fieldSep))
	out.WriteString("\n")
	return out.String()
}

// DumpWidth returns how many columns the widest DumpGrid line of g needs.
func DumpWidth(g *state.Game) int {
	width := 0
	for _, line := range strings.Split(DumpGrid(g), "\n") {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	return width
}

// DumpGridToFile writes a debug dump to map.txt in dir: metadata followed by
// the structural grid. It returns the absolute path written.
func DumpGridToFile(g *state.Game, dir string) (string, error) {
	if g.Grid == nil {
		return "", fmt.Errorf("no grid")
	}

	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fmt.Fprintln(f, "=== MAP DUMP ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "seed: %d\n", g.Random.Seed())
	fmt.Fprintf(f, "grid_rows: %d\n", g.Grid.Rows())
	fmt.Fprintf(f, "grid_cols: %d\n", g.Grid.Cols())
	fmt.Fprintf(f, "wrap: %v\n", g.Grid.Wrap())
	fmt.Fprintf(f, "interconnectivity: %d\n", g.Config.Interconnectivity)
	fmt.Fprintf(f, "start_cell: %s\n", g.Grid.StartCell().Name)
	fmt.Fprintf(f, "exit_cell: %s\n", g.Grid.ExitCell().Name)
	fmt.Fprintf(f, "status: %s\n", g.Status)
	if g.Player != nil {
		fmt.Fprintf(f, "player_cell: %s\n", g.Player.Location())
		fmt.Fprintf(f, "player_arrows: %d\n", g.Player.Arrows())
	}
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Legend ---")
	fmt.Fprintln(f, "*: player   {}: cell type   []: treasure (D/R/S)   <>: monster   (): arrows")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Grid ---")
	if _, err := f.WriteString(DumpGrid(g)); err != nil {
		return "", err
	}

	return absPath, nil
}
