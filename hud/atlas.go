package hud

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	firstGlyph = ' '
	lastGlyph  = '~'
	atlasCols  = 16
)

// Atlas is a grid of printable ASCII glyphs in a single-channel bitmap.
// Pix row 0 is the top row and maps to v = 0.
type Atlas struct {
	Width, Height int
	CellW, CellH  int
	Pix           []byte
}

// NewAtlas rasterizes the printable ASCII range of face into a 16-column
// grid. A nil face selects basicfont.Face7x13.
func NewAtlas(face font.Face) *Atlas {
	if face == nil {
		face = basicfont.Face7x13
	}
	m := face.Metrics()
	adv, _ := face.GlyphAdvance('M')
	a := &Atlas{
		CellW: adv.Ceil(),
		CellH: m.Height.Ceil(),
	}
	count := int(lastGlyph-firstGlyph) + 1
	rows := (count + atlasCols - 1) / atlasCols
	a.Width = atlasCols * a.CellW
	a.Height = rows * a.CellH

	dst := image.NewAlpha(image.Rect(0, 0, a.Width, a.Height))
	d := &font.Drawer{Dst: dst, Src: image.Opaque, Face: face}
	for r := firstGlyph; r <= lastGlyph; r++ {
		col, row := a.cell(r)
		d.Dot = fixed.P(col*a.CellW, row*a.CellH+m.Ascent.Ceil())
		d.DrawString(string(r))
	}
	a.Pix = dst.Pix
	return a
}

func (a *Atlas) cell(r rune) (col, row int) {
	idx := int(r - firstGlyph)
	return idx % atlasCols, idx / atlasCols
}

// UV returns the atlas coordinates of r's cell. Runes outside the atlas
// fall back to an ASCII look-alike or '?'.
func (a *Atlas) UV(r rune) (u0, v0, u1, v1 float32) {
	r = asciiFallback(r)
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	col, row := a.cell(r)
	w, h := float32(a.Width), float32(a.Height)
	u0 = float32(col*a.CellW) / w
	v0 = float32(row*a.CellH) / h
	u1 = float32((col+1)*a.CellW) / w
	v1 = float32((row+1)*a.CellH) / h
	return
}

// TextWidth returns the pixel width of s at scale 1.
func (a *Atlas) TextWidth(s string) int {
	n := 0
	for range s {
		n++
	}
	return n * a.CellW
}

// asciiFallback maps the few symbols the status lines use to ASCII.
func asciiFallback(r rune) rune {
	switch r {
	case '→', '►', '▶':
		return '>'
	case '←', '◄', '◀':
		return '<'
	case '•', '●':
		return '*'
	case '—', '–':
		return '-'
	case '°':
		return 'o'
	default:
		return r
	}
}
