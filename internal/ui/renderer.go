package ui

import (
	"github.com/samdwyer/roomcrawl/internal/entity"
	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/vision"
	"github.com/samdwyer/roomcrawl/internal/world"
)

// ViewSize is the width and height of the square viewport in cells.
const ViewSize = 31

const (
	GlyphWall   = '#'
	GlyphPlayer = '@'
	GlyphFloor  = '.'
	GlyphHidden = ' '
)

// Frame is one composed viewport, indexed [row][column].
type Frame [ViewSize][ViewSize]rune

// String renders the frame as newline separated rows.
func (f Frame) String() string {
	buf := make([]rune, 0, ViewSize*(ViewSize+1))
	for y := range f {
		buf = append(buf, f[y][:]...)
		buf = append(buf, '\n')
	}
	return string(buf)
}

// Compose builds the viewport centered on the character. Cells outside the
// grid or out of sight are blank.
func Compose(grid *world.Grid, hero *entity.Character) Frame {
	var frame Frame

	origin := hero.Position()
	startX := origin.X - ViewSize/2
	startY := origin.Y - ViewSize/2

	for y := 0; y < ViewSize; y++ {
		for x := 0; x < ViewSize; x++ {
			frame[y][x] = glyphAt(grid, origin, world.Point{X: startX + x, Y: startY + y})
		}
	}
	return frame
}

func glyphAt(grid *world.Grid, origin, cell world.Point) rune {
	if !grid.InBounds(cell.X, cell.Y) {
		return GlyphHidden
	}
	if !vision.IsVisible(grid, origin, cell) {
		return GlyphHidden
	}
	switch {
	case !grid.IsPassable(cell.X, cell.Y):
		return GlyphWall
	case cell == origin:
		return GlyphPlayer
	default:
		return GlyphFloor
	}
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the viewport around the character to the screen.
func (r *Renderer) Render(grid *world.Grid, hero *entity.Character) {
	r.screen.Clear()

	frame := Compose(grid, hero)
	for y := range frame {
		for x, glyph := range frame[y] {
			r.screen.SetContent(x, y, glyph, r.palette.Style(glyph))
		}
	}

	r.screen.Show()
}
