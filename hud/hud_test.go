package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtlasLayout(t *testing.T) {
	a := NewAtlas(nil)
	assert.Equal(t, 7, a.CellW)
	assert.Equal(t, 13, a.CellH)
	assert.Equal(t, 16*7, a.Width)
	assert.Equal(t, 6*13, a.Height)
	require.Len(t, a.Pix, a.Width*a.Height)

	// the space cell is empty, 'A' has coverage
	cellSum := func(r rune) int {
		col, row := a.cell(r)
		sum := 0
		for y := row * a.CellH; y < (row+1)*a.CellH; y++ {
			for x := col * a.CellW; x < (col+1)*a.CellW; x++ {
				sum += int(a.Pix[y*a.Width+x])
			}
		}
		return sum
	}
	assert.Zero(t, cellSum(' '))
	assert.Positive(t, cellSum('A'))
	assert.Positive(t, cellSum('~'))
}

func TestAtlasUV(t *testing.T) {
	a := NewAtlas(nil)
	u0, v0, u1, v1 := a.UV(' ')
	assert.Zero(t, u0)
	assert.Zero(t, v0)
	assert.InDelta(t, 1.0/16, u1, 1e-6)
	assert.InDelta(t, 1.0/6, v1, 1e-6)

	// outside the atlas maps to '?'
	q0, qv0, _, _ := a.UV('?')
	x0, xv0, _, _ := a.UV('漢')
	assert.Equal(t, q0, x0)
	assert.Equal(t, qv0, xv0)

	// look-alike fallback
	g0, _, _, _ := a.UV('>')
	f0, _, _, _ := a.UV('→')
	assert.Equal(t, g0, f0)

	assert.Equal(t, 3*7, a.TextWidth("a→b"))
}

func TestDrawListBatching(t *testing.T) {
	a := NewAtlas(nil)
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, ColorBlack)
	dl.AddText(a, 7, 0, 0, "ab c", ColorWhite, 1)
	dl.AddText(a, 7, 0, 13, "d", ColorWhite, 1)
	dl.AddRect(0, 0, 1, 1, ColorTransparent)
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 2)
	assert.Equal(t, uint32(0), dl.CmdBuffer[0].TextureID)
	assert.Equal(t, uint32(6), dl.CmdBuffer[0].ElemCount)
	assert.Equal(t, uint32(7), dl.CmdBuffer[1].TextureID)
	// spaces advance without a quad: a, b, c, d
	assert.Equal(t, uint32(4*6), dl.CmdBuffer[1].ElemCount)
	assert.Equal(t, uint32(4), dl.CmdBuffer[1].VertexOffset)
	assert.Equal(t, uint32(6), dl.CmdBuffer[1].IndexOffset)
	assert.Len(t, dl.VtxBuffer, 4+4*4)

	// indices restart at zero for each command
	assert.Equal(t, uint16(0), dl.IdxBuffer[6])

	// 'c' is the fourth cell from the left
	cQuad := dl.VtxBuffer[4+2*4]
	assert.Equal(t, float32(3*7), cQuad.Pos[0])
}

func TestOverlayBuild(t *testing.T) {
	a := NewAtlas(nil)
	o := NewOverlay(a, 3)
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	o.Build(dl, nil)
	assert.Empty(t, dl.VtxBuffer)

	o.Build(dl, []string{"Mode: Fixed", "Material 0"})
	dl.Finalize()
	require.Len(t, dl.CmdBuffer, 2)

	bg := dl.VtxBuffer[:4]
	assert.Equal(t, o.Margin, bg[0].Pos[0])
	assert.Equal(t, o.Margin+float32(11*7)+2*o.Padding, bg[1].Pos[0])
	assert.Equal(t, o.Margin+float32(2*13)+2*o.Padding, bg[2].Pos[1])

	_, _, _, alpha := UnpackRGBA(bg[0].Color)
	assert.Equal(t, uint8(160), alpha)
}

func TestOverlayScale(t *testing.T) {
	a := NewAtlas(nil)
	o := NewOverlay(a, 3)
	o.Scale = 2
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	o.Build(dl, []string{"ab"})
	bg := dl.VtxBuffer[:4]
	assert.Equal(t, o.Margin+float32(2*2*7)+2*o.Padding, bg[1].Pos[0])

	// second glyph starts two scaled cells in
	glyphB := dl.VtxBuffer[4+4]
	assert.Equal(t, o.Margin+o.Padding+float32(2*7), glyphB.Pos[0])
}
