package iced

import (
	"math"

	"github.com/vovakirdan/iced/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlatformChar = '▀'
	SparkleChar  = '✦'
	SpikeChar    = '▲'
	GoalChar     = '★'
	VelocityChar = '─'
)

// Instructions is the help line shown while playing.
const Instructions = "ARROW KEYS or WASD to move, SPACE to jump"

// Render draws the world scaled onto the character grid.
func (g *Game) Render(dst *core.Screen) {
	RenderWorld(dst, g.world)
}

// RenderWorld draws w onto dst, stretching the world bounds over the whole screen.
func RenderWorld(dst *core.Screen, w World) {
	dst.Clear()

	v := newViewport(dst, w.Rules.Bounds)

	for _, p := range w.Platforms {
		drawPlatform(dst, v, p)
	}

	for _, s := range w.Spikes {
		dst.SetColored(v.col(s.Pos.X), v.row(s.Pos.Y), SpikeChar, core.ColorBrightRed)
	}

	dst.SetColored(v.col(w.Goal.Pos.X), v.row(w.Goal.Pos.Y), GoalChar, core.ColorBrightYellow)

	drawPlayer(dst, v, w.Player)

	if w.Won {
		drawCenteredMessage(dst, "YOU WIN! Time: "+FormatTime(w.WinTime), "Press R to restart")
		return
	}

	dst.DrawTextColored(1, 0, Instructions, core.ColorGray)
	dst.DrawTextColored(1, 1, "Time: "+FormatTime(w.Timer), core.ColorYellow)
}

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, bounds core.Vec2) viewport {
	return viewport{
		sx: float64(dst.Width()) / bounds.X,
		sy: float64(dst.Height()) / bounds.Y,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// cells returns the grid rectangle covered by r, at least one cell in each direction.
func (v viewport) cells(r core.RectF) core.Rect {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func drawPlatform(dst *core.Screen, v viewport, p Platform) {
	r := v.cells(p.Rect)
	r.H = 1
	dst.DrawRect(r, PlatformChar, core.ColorBrightCyan)

	// Ice sparkles at the quarter points
	for j := 1; j <= 3; j++ {
		x := p.Rect.X + p.Rect.W*float64(j)/4
		dst.SetColored(v.col(x), r.Y, SparkleChar, core.ColorBrightWhite)
	}
}

func drawPlayer(dst *core.Screen, v viewport, p Player) {
	dst.DrawRect(v.cells(p.Rect()), PlayerChar, core.ColorCyan)

	// Velocity indicator
	if math.Abs(p.Vel.X) > 10 {
		c := p.Center()
		from, to := v.col(c.X), v.col(c.X+p.Vel.X*0.1)
		if from > to {
			from, to = to, from
		}
		dst.DrawHLine(from, v.row(c.Y), to-from+1, VelocityChar, core.ColorRed)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightYellow)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
