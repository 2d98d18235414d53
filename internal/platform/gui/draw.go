package gui

import (
	"bytes"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/iced/internal/games/iced"
)

// Palette
var (
	backgroundColor   = color.RGBA{20, 30, 50, 255}
	iceColor          = color.RGBA{150, 200, 255, 255}
	iceEdgeColor      = color.RGBA{200, 230, 255, 255}
	sparkleColor      = color.RGBA{255, 255, 255, 180}
	spikeColor        = color.RGBA{255, 60, 60, 255}
	spikeEdgeColor    = color.RGBA{180, 0, 0, 255}
	spikeHighlight    = color.RGBA{255, 140, 0, 255}
	goalColor         = color.RGBA{255, 203, 0, 255}
	goalEdgeColor     = color.RGBA{253, 249, 0, 255}
	playerColor       = color.RGBA{102, 191, 255, 255}
	playerEdgeColor   = color.White
	velocityColor     = color.RGBA{230, 41, 55, 255}
	instructionsColor = color.RGBA{200, 200, 200, 255}
	timerColor        = color.RGBA{253, 249, 0, 255}
)

// art holds the resources the renderer allocates once.
type art struct {
	white      *ebiten.Image // 1x1 source for DrawTriangles
	smallFace  text.Face
	normalFace text.Face
	titleFace  text.Face
}

func newArt() (*art, error) {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}

	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)

	return &art{
		white:      img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		smallFace:  &text.GoTextFace{Source: fontSource, Size: 16},
		normalFace: &text.GoTextFace{Source: fontSource, Size: 20},
		titleFace:  &text.GoTextFace{Source: fontSource, Size: 30},
	}, nil
}

// fillPolygon fills a convex polygon as a triangle fan.
func (a *art) fillPolygon(dst *ebiten.Image, pts []vec, clr color.Color) {
	r, g, b, al := clr.RGBA()
	vs := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX:   p.x,
			DstY:   p.y,
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(r) / 0xffff,
			ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff,
			ColorA: float32(al) / 0xffff,
		}
	}
	is := make([]uint16, 0, 3*(len(pts)-2))
	for i := 1; i+1 < len(pts); i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, a.white, op)
}

// strokePolygon outlines a closed polygon.
func strokePolygon(dst *ebiten.Image, pts []vec, width float32, clr color.Color) {
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, p.x, p.y, q.x, q.y, width, clr, true)
	}
}

type vec struct {
	x, y float32
}

// spikePoints returns the spike outline: left base, tip, right base.
// tipScale shortens the tip toward the base; 1 is the full spike.
func spikePoints(s iced.Spike, tipScale float64) []vec {
	x, y, size := float32(s.Pos.X), float32(s.Pos.Y), float32(s.Size)
	return []vec{
		{x - size, y + size},
		{x, y - size*float32(tipScale)},
		{x + size, y + size},
	}
}

// pentagonPoints returns a regular pentagon around (cx, cy) with one vertex pointing right.
func pentagonPoints(cx, cy, radius float64) []vec {
	pts := make([]vec, 5)
	for i := range pts {
		a := float64(i) * 2 * math.Pi / 5
		pts[i] = vec{
			x: float32(cx + radius*math.Cos(a)),
			y: float32(cy + radius*math.Sin(a)),
		}
	}
	return pts
}

func (a *art) drawWorld(dst *ebiten.Image, w iced.World, goalScale float64) {
	dst.Fill(backgroundColor)

	for _, p := range w.Platforms {
		r := p.Rect
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), iceColor, false)
		vector.StrokeRect(dst, float32(r.X)+1, float32(r.Y)+1, float32(r.W)-2, float32(r.H)-2, 2, iceEdgeColor, false)

		// Ice sparkles at the quarter points
		for j := 1; j <= 3; j++ {
			sx := r.X + r.W*float64(j)/4
			vector.DrawFilledCircle(dst, float32(sx), float32(r.Y+5), 2, sparkleColor, true)
		}
	}

	for _, s := range w.Spikes {
		full := spikePoints(s, 1)
		a.fillPolygon(dst, full, spikeColor)
		strokePolygon(dst, full, 1, spikeEdgeColor)
		a.fillPolygon(dst, spikePoints(s, 0.6), spikeHighlight)
	}

	goal := pentagonPoints(w.Goal.Pos.X, w.Goal.Pos.Y, w.Goal.Size*goalScale)
	a.fillPolygon(dst, goal, goalColor)
	strokePolygon(dst, goal, 1, goalEdgeColor)

	pl := w.Player
	vector.DrawFilledRect(dst, float32(pl.Pos.X), float32(pl.Pos.Y), float32(pl.W), float32(pl.H), playerColor, false)
	vector.StrokeRect(dst, float32(pl.Pos.X), float32(pl.Pos.Y), float32(pl.W), float32(pl.H), 1, playerEdgeColor, false)

	// Velocity indicator
	if math.Abs(pl.Vel.X) > 10 {
		c := pl.Center()
		vector.StrokeLine(dst, float32(c.X), float32(c.Y), float32(c.X+pl.Vel.X*0.1), float32(c.Y), 1, velocityColor, false)
	}
}

func (a *art) drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// drawHUD draws the instructions and timer, or the win banner.
// bannerT runs from 0 to 1 as the banner slides in.
func (a *art) drawHUD(dst *ebiten.Image, w iced.World, bannerT float64) {
	if !w.Won {
		a.drawText(dst, iced.Instructions, a.smallFace, 10, 35, instructionsColor)
		a.drawText(dst, "Time: "+iced.FormatTime(w.Timer), a.normalFace, 10, 60, timerColor)
		return
	}

	cx, cy := w.Rules.Bounds.X/2, w.Rules.Bounds.Y/2
	offset := (1 - bannerT) * -cy

	title := "YOU WIN! Time: " + iced.FormatTime(w.WinTime)
	tw, _ := text.Measure(title, a.titleFace, 0)
	a.drawText(dst, title, a.titleFace, cx-tw/2, cy-20+offset, goalColor)

	hint := "Press R to restart"
	hw, _ := text.Measure(hint, a.normalFace, 0)
	a.drawText(dst, hint, a.normalFace, cx-hw/2, cy+20+offset, color.White)
}
