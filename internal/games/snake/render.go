package snake

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake/phase"
	"github.com/vovakirdan/gridsnake/internal/games/snake/world"
)

const (
	hudHeight    = 2 // Title line and separator
	bannerHeight = 2 // Blank line and phase banner under the board
)

// glyph is how one entity kind is drawn.
type glyph struct {
	r     rune
	color core.Color
	fill  bool // Repeat the rune across the whole cell width
}

var glyphs = map[world.EntityKind]glyph{
	world.KindWall: {'█', core.ColorGray, true},
	world.KindFood: {'*', core.ColorBrightRed, false},
	world.KindHead: {'@', core.ColorBrightGreen, false},
	world.KindBody: {'o', core.ColorGreen, false},
	world.KindTail: {'.', core.ColorGreen, false},
}

// boardView maps grid cells to screen cells. Grid y grows upward, screen y
// grows downward, and every grid cell is cellWidth columns wide.
type boardView struct {
	origin    core.Rect // Board including the wall ring
	extent    int
	cellWidth int
}

func newBoardView(screen core.Rect, g world.Grid, cellWidth int) boardView {
	side := g.Side() + 2
	area := core.NewRect(0, hudHeight, screen.W, screen.H-hudHeight-bannerHeight)
	return boardView{
		origin:    area.Centered(side*cellWidth, side),
		extent:    g.Extent,
		cellWidth: cellWidth,
	}
}

// toScreen returns the left column and row of a grid cell.
func (v boardView) toScreen(p world.GridPosition) (int, int) {
	col := p.X + v.extent + 1
	row := v.extent + 1 - p.Y
	return v.origin.X + col*v.cellWidth, v.origin.Y + row
}

// requiredSize returns the smallest screen that fits the board.
func requiredSize(g world.Grid, cellWidth int) (int, int) {
	side := g.Side() + 2
	return side * cellWidth, side + hudHeight + bannerHeight
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.session == nil {
		g.renderOverlay(dst, "Snake unavailable", g.errText())
		return
	}

	grid := g.session.World().Grid()
	needW, needH := requiredSize(grid, g.cellWidth)
	if !dst.Bounds().Fits(needW, needH) {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	view := newBoardView(dst.Bounds(), grid, g.cellWidth)
	for _, e := range g.session.World().Entities() {
		g.drawEntity(dst, view, e)
	}
	g.renderBanner(dst, view)

	if g.session.Fault() != nil {
		g.renderOverlay(dst, "Simulation halted", "Press q to quit")
	}
}

func (g *Game) drawEntity(dst *core.Screen, view boardView, e world.Entity) {
	gl, ok := glyphs[e.Kind]
	if !ok {
		return
	}
	x, y := view.toScreen(e.Pos)
	dst.SetColored(x, y, gl.r, gl.color)
	if gl.fill {
		for i := 1; i < view.cellWidth; i++ {
			dst.SetColored(x+i, y, gl.r, gl.color)
		}
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := " " + g.Title()
	if g.session != nil {
		hud += fmt.Sprintf(" | Length: %d  Runs: %d  Eaten: %d",
			g.session.Length(), g.session.Machine().Runs(), g.session.FoodEaten())
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawTextColored(0, 1, strings.Repeat("─", dst.Width()), core.ColorGray)
}

// renderBanner draws the phase line under the board.
func (g *Game) renderBanner(dst *core.Screen, view boardView) {
	y := view.origin.Bottom() + 1
	m := g.session.Machine()

	var text string
	color := core.ColorYellow
	switch m.Active() {
	case phase.PreGame:
		text = fmt.Sprintf("Get ready... %d", countdownSeconds(m.Countdown()))
	case phase.Running:
		text = "Go!"
		color = core.ColorCyan
	case phase.PostGame:
		text = fmt.Sprintf("%s, next run in %d", endMessage(m.LastEnd()), countdownSeconds(m.Countdown()))
		color = core.ColorRed
		if m.LastEnd() == world.EndBoardFilled {
			color = core.ColorBrightGreen
		}
	}
	dst.DrawTextCentered(y, text, color)
}

func countdownSeconds(remaining float64) int {
	return int(math.Ceil(remaining))
}

func endMessage(r world.EndReason) string {
	switch r {
	case world.EndSelfCollision:
		return "Bit yourself"
	case world.EndOutOfBounds:
		return "Hit the wall"
	case world.EndBoardFilled:
		return "Board filled"
	default:
		return "Game over"
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(w, 5)

	dst.FillRect(box)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
