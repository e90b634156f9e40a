package tui

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"dungeons/pkg/engine/terminal"
	"dungeons/pkg/engine/world"
	"dungeons/pkg/game/entities"
	"dungeons/pkg/game/gameplay"
	"dungeons/pkg/game/messages"
	"dungeons/pkg/game/renderer"
	"dungeons/pkg/game/state"
)

// Map icons
const (
	PlayerIcon    = "@"
	IconCave      = "○"
	IconTunnel    = "·"
	IconExit      = "⌂"
	IconUnvisited = " "
	IconPassageEW = "─"
	IconPassageNS = "│"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = messages.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorCell        color.Style
	colorCellText    color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorItem        color.Style
	colorMonster     color.Style
	colorSubtle      color.Style
	colorPlayer      color.Style
	colorExitOpen    color.Style

	regexpStringFunctions *regexp.Regexp
}

var _ renderer.Renderer = (*TUIRenderer)(nil)

// New creates a new TUI renderer writing to out
func New(out io.Writer) *TUIRenderer {
	return &TUIRenderer{out: out}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorCell = color.Style{color.FgGray}
	t.colorCellText = color.Style{color.FgBlue}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorItem = color.Style{color.FgYellow}
	t.colorMonster = color.Style{color.FgRed}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorExitOpen = color.Style{color.FgGreen}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleCell:
		return t.colorCell.Sprint(text)
	case renderer.StyleCellText:
		return t.colorCellText.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleMonster:
		return t.colorMonster.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleExitOpen:
		return t.colorExitOpen.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = t.colorItem.Sprint(operand)
		case "CELL":
			val = t.colorCell.Sprint(operand)
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// RenderFrame renders the player's cell, the scent, the status bar and the
// messages pane. Before the game starts only the messages are shown.
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	view, err := gameplay.CurrentLocation(g)
	if err == nil {
		t.printLocation(view)
		t.printScent(g)
		t.printStatusBar(g)
	}
	t.printMessagesPane(g)
}

func (t *TUIRenderer) printLocation(view gameplay.CellView) {
	fmt.Fprintln(t.out, messages.Get("LOCATION", t.colorCellText.Sprint(view.Name), view.Type))

	doors := make([]string, 0, len(view.Exits))
	for _, exit := range view.Exits {
		doors = append(doors, t.FormatText("ACTION{%s}", exit.Direction))
	}
	fmt.Fprintln(t.out, messages.Get("DOORS", strings.Join(doors, ", ")))

	if len(view.Treasures) > 0 {
		var gems []string
		for _, kind := range entities.AllTreasures() {
			if n := view.TreasureCounts[kind]; n > 0 {
				gems = append(gems, t.colorItem.Sprintf("%s %d %s", kind.Icon(), n, kind))
			}
		}
		fmt.Fprintln(t.out, messages.Get("SEE_TREASURE", strings.Join(gems, ", ")))
	}
	if view.Arrows > 0 {
		fmt.Fprintln(t.out, messages.Get("SEE_ARROWS", view.Arrows))
	}
	if m := view.Monster; m != nil {
		switch m.Health {
		case entities.HealthZero:
			fmt.Fprintln(t.out, messages.Get("SEE_DEAD_MONSTER", t.colorSubtle.Sprint(m.Name)))
		case entities.HealthHalf:
			fmt.Fprintln(t.out, messages.Get("SEE_WOUNDED_MONSTER", t.colorMonster.Sprint(m.Name)))
		}
	}
}

func (t *TUIRenderer) printScent(g *state.Game) {
	scent, err := gameplay.CurrentScent(g)
	if err != nil {
		return
	}
	switch scent {
	case gameplay.ScentStrong:
		fmt.Fprintln(t.out, t.colorDenied.Sprint(messages.Get("SMELL_STRONG")))
	case gameplay.ScentWeak:
		fmt.Fprintln(t.out, t.colorMonster.Sprint(messages.Get("SMELL_WEAK")))
	}
}

// printStatusBar renders the player's quiver and treasure
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	p, err := gameplay.PlayerInfo(g)
	if err != nil {
		return
	}
	fmt.Fprintln(t.out)

	loot := messages.Get("NO_TREASURE")
	var held []string
	for _, kind := range entities.AllTreasures() {
		if n := p.Treasures[kind]; n > 0 {
			held = append(held, t.colorItem.Sprintf("%d %s", n, kind))
		}
	}
	if len(held) > 0 {
		loot = strings.Join(held, t.colorSubtle.Sprint(", "))
	}
	fmt.Fprintln(t.out, messages.Get("PLAYER_SUMMARY", t.colorPlayer.Sprint(p.Name), p.Arrows, loot))
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(messages.Get("PATH", strings.Join(p.Path, " > "))))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width := terminal.WidthOf(t.out)

	label := " " + messages.Get("MESSAGES") + " "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))

	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+messages.Get("NO_MESSAGES")))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}

// RenderMap draws the cells the player has visited and the passages between
// them, centered in the terminal. Passages that wrap around the edge are not
// drawn.
func (t *TUIRenderer) RenderMap(g *state.Game) {
	if g.Player == nil {
		return
	}
	visited := mapset.New[string]()
	for _, name := range g.Player.Path() {
		visited.Put(name)
	}
	seen := func(c *world.Cell) bool {
		return c != nil && visited.Has(c.Name)
	}

	rows, cols := g.Grid.Rows(), g.Grid.Cols()
	indent := (terminal.WidthOf(t.out) - (2*cols - 1)) / 2
	if indent < 0 {
		indent = 0
	}
	pad := strings.Repeat(" ", indent)

	for row := 0; row < rows; row++ {
		var line, below strings.Builder
		for col := 0; col < cols; col++ {
			cell := g.Grid.GetCell(row, col)
			line.WriteString(t.renderCell(g, cell, seen(cell)))

			if col < cols-1 {
				east := g.Grid.GetCell(row, col+1)
				if seen(cell) && seen(east) && g.Grid.Neighbor(cell, world.East) == east {
					line.WriteString(t.colorCell.Sprint(IconPassageEW))
				} else {
					line.WriteString(" ")
				}
			}

			if row < rows-1 {
				south := g.Grid.GetCell(row+1, col)
				if seen(cell) && seen(south) && g.Grid.Neighbor(cell, world.South) == south {
					below.WriteString(t.colorCell.Sprint(IconPassageNS))
				} else {
					below.WriteString(" ")
				}
				if col < cols-1 {
					below.WriteString(" ")
				}
			}
		}
		fmt.Fprintln(t.out, pad+line.String())
		if row < rows-1 {
			fmt.Fprintln(t.out, pad+below.String())
		}
	}
}

// renderCell returns the map symbol for a cell
func (t *TUIRenderer) renderCell(g *state.Game, c *world.Cell, visited bool) string {
	switch {
	case g.CurrentCell() == c:
		return t.colorPlayer.Sprint(PlayerIcon)
	case !visited:
		return IconUnvisited
	case c == g.Grid.ExitCell():
		return t.colorExitOpen.Sprint(IconExit)
	case c.IsCave():
		return t.colorCell.Sprint(IconCave)
	default:
		return t.colorSubtle.Sprint(IconTunnel)
	}
}
