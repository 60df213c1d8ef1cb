package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-gravity/pkg/entity"
	"github.com/opd-ai/go-gravity/pkg/physics"
)

var (
	fieldStyle  = tcell.StyleDefault.Foreground(tcell.ColorNavy)
	planetStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	rocketStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// rocketGlyphs are indexed by heading in 45 degree steps, starting east
// and turning clockwise.
var rocketGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

const (
	fieldRune  = '·'
	planetRune = 'O'
	helpLine   = "←/→ rotate  ↑ thrust  q quit"
)

// TerminalRenderer draws the scene onto a tcell screen. Draw calls are
// collected until Present, so LookAt may come after the entities.
type TerminalRenderer struct {
	screen  tcell.Screen
	scale   float64 // world units per column; rows are twice as tall
	center  physics.Vector2D
	planets []*entity.Planet
	rocket  *entity.Rocket
}

// NewTerminalRenderer creates a renderer for screen. scale is the number of
// world units covered by one terminal column.
func NewTerminalRenderer(screen tcell.Screen, scale float64) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, scale: scale}
}

// Clear implements entity.Renderer.
func (r *TerminalRenderer) Clear() {
	r.planets = r.planets[:0]
	r.rocket = nil
}

// RenderPlanet implements entity.Renderer.
func (r *TerminalRenderer) RenderPlanet(planet *entity.Planet) {
	r.planets = append(r.planets, planet)
}

// RenderRocket implements entity.Renderer.
func (r *TerminalRenderer) RenderRocket(rocket *entity.Rocket) {
	r.rocket = rocket
}

// LookAt implements entity.Renderer.
func (r *TerminalRenderer) LookAt(pos physics.Vector2D) {
	r.center = pos
}

// Present implements entity.Renderer.
func (r *TerminalRenderer) Present() {
	r.screen.Clear()
	width, height := r.screen.Size()

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if ch, style, ok := r.planetCell(r.ScreenToWorld(col, row)); ok {
				r.screen.SetContent(col, row, ch, nil, style)
			}
		}
	}

	if r.rocket != nil {
		col, row := r.WorldToScreen(r.rocket.GetPosition())
		if col >= 0 && col < width && row >= 0 && row < height {
			r.screen.SetContent(col, row, RocketGlyph(r.rocket.Heading()), nil, rocketStyle)
		}
		c := r.rocket.Craft
		r.drawText(0, 0, fmt.Sprintf("pos %7.1f %7.1f  vel %6.2f %6.2f  heading %4.0f",
			c.Position.X, c.Position.Y, c.Velocity.X, c.Velocity.Y, r.rocket.Heading()))
	}
	r.drawText(0, height-1, helpLine)

	r.screen.Show()
}

func (r *TerminalRenderer) planetCell(pos physics.Vector2D) (rune, tcell.Style, bool) {
	inField := false
	for _, p := range r.planets {
		d := pos.Distance(p.Body.Position)
		if d <= p.Body.Radius {
			return planetRune, planetStyle, true
		}
		if d < p.Body.FieldRange {
			inField = true
		}
	}
	if inField {
		return fieldRune, fieldStyle, true
	}
	return 0, tcell.StyleDefault, false
}

func (r *TerminalRenderer) drawText(col, row int, text string) {
	width, _ := r.screen.Size()
	for _, ch := range text {
		if col >= width {
			return
		}
		r.screen.SetContent(col, row, ch, nil, hudStyle)
		col++
	}
}

// WorldToScreen converts a world position to a terminal cell.
func (r *TerminalRenderer) WorldToScreen(pos physics.Vector2D) (int, int) {
	width, height := r.screen.Size()
	col := int(math.Floor((pos.X-r.center.X)/r.scale)) + width/2
	row := int(math.Floor((pos.Y-r.center.Y)/(2*r.scale))) + height/2
	return col, row
}

// ScreenToWorld returns the world position at the center of a terminal
// cell.
func (r *TerminalRenderer) ScreenToWorld(col, row int) physics.Vector2D {
	width, height := r.screen.Size()
	return physics.Vector2D{
		X: r.center.X + (float64(col-width/2)+0.5)*r.scale,
		Y: r.center.Y + (float64(row-height/2)+0.5)*2*r.scale,
	}
}

// RocketGlyph picks the arrow closest to heading, in degrees.
func RocketGlyph(heading float64) rune {
	idx := int(math.Round(heading/45)) % 8
	if idx < 0 {
		idx += 8
	}
	return rocketGlyphs[idx]
}
