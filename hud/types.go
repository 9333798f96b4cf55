// Package hud draws the tutorials' status lines over the rendered scene.
//
// An Overlay turns text lines into a DrawList of textured quads using a
// glyph Atlas rasterized from a bitmap font; a Renderer uploads the DrawList
// and draws it with alpha blending in window pixel coordinates.
package hud

// Vertex represents a vertex for overlay rendering.
// Memory layout matches the Renderer's vertex attribute setup.
type Vertex struct {
	Pos      [2]float32 // Position in window pixels, y down
	TexCoord [2]float32 // Atlas coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd is a run of indices drawn with one texture.
type DrawCmd struct {
	ElemCount    uint32 // Number of indices to draw
	TextureID    uint32 // OpenGL texture ID (0 = untextured)
	VertexOffset uint32 // Base vertex
	IndexOffset  uint32 // First index
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorYellow      uint32 = 0xFF00FFFF
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}
