package gamedata

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// PaletteEntry defines how one glyph is colored, loaded from JSON.
type PaletteEntry struct {
	Glyph      string `json:"glyph"`      // Single character the entry applies to (e.g., "#")
	Name       string `json:"name"`       // Human readable name (e.g., "wall")
	Foreground string `json:"foreground"` // Hex color code (e.g., "#8A8A8A")
	Bold       bool   `json:"bold"`
}

// GlyphRune returns the glyph as a rune.
func (e *PaletteEntry) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// Style returns the tcell style for this entry.
func (e *PaletteEntry) Style() tcell.Style {
	color, err := ParseHexColor(e.Foreground)
	if err != nil {
		color = tcell.ColorWhite // fallback
	}
	return tcell.StyleDefault.Foreground(color).Bold(e.Bold)
}

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Entries []PaletteEntry `json:"entries"`
}

// Palette maps glyphs to display styles.
type Palette struct {
	styles map[rune]tcell.Style
}

// NewPalette creates a palette from loaded entries.
func NewPalette(entries []PaletteEntry) *Palette {
	p := &Palette{styles: make(map[rune]tcell.Style, len(entries))}
	for i := range entries {
		p.styles[entries[i].GlyphRune()] = entries[i].Style()
	}
	return p
}

// LoadPalette loads the palette from the embedded palette.json.
func LoadPalette() (*Palette, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	if len(file.Entries) == 0 {
		return nil, errors.New("no entries loaded from palette.json")
	}
	return NewPalette(file.Entries), nil
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *Palette {
	palette, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return palette
}

// Style returns the style for a glyph, or the default style if the glyph
// has no entry.
func (p *Palette) Style(glyph rune) tcell.Style {
	if style, ok := p.styles[glyph]; ok {
		return style
	}
	return tcell.StyleDefault
}

// Count returns the number of glyphs in the palette.
func (p *Palette) Count() int {
	return len(p.styles)
}
