package hud

// Overlay lays out status lines in the top-left corner of the window.
type Overlay struct {
	Atlas     *Atlas
	TextureID uint32
	Scale     float32
	Margin    float32
	Padding   float32

	TextColor       uint32
	BackgroundColor uint32
}

// NewOverlay returns an overlay with white text on a translucent black
// panel.
func NewOverlay(a *Atlas, textureID uint32) *Overlay {
	return &Overlay{
		Atlas:           a,
		TextureID:       textureID,
		Scale:           1,
		Margin:          8,
		Padding:         4,
		TextColor:       ColorWhite,
		BackgroundColor: RGBA(0, 0, 0, 160),
	}
}

// Build appends the panel and text for lines to dl. Nothing is added for
// no lines.
func (o *Overlay) Build(dl *DrawList, lines []string) {
	if len(lines) == 0 {
		return
	}
	widest := 0
	for _, l := range lines {
		widest = max(widest, o.Atlas.TextWidth(l))
	}
	lineH := float32(o.Atlas.CellH) * o.Scale
	w := float32(widest)*o.Scale + 2*o.Padding
	h := lineH*float32(len(lines)) + 2*o.Padding
	dl.AddRect(o.Margin, o.Margin, w, h, o.BackgroundColor)

	y := o.Margin + o.Padding
	for _, l := range lines {
		dl.AddText(o.Atlas, o.TextureID, o.Margin+o.Padding, y, l, o.TextColor, o.Scale)
		y += lineH
	}
}
