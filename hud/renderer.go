package hud

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/gltut/glutil"
)

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
`

// R channel of the atlas is coverage; vertex color supplies RGB.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D fontTexture;
uniform bool useTexture;

void main() {
    if (useTexture) {
        FragColor = vec4(Color.rgb, Color.a * texture(fontTexture, TexCoord).r);
    } else {
        FragColor = Color;
    }
}
`

// Renderer draws DrawLists with OpenGL.
type Renderer struct {
	program  *glutil.Program
	font     *glutil.Texture
	sampler  *glutil.Sampler
	vao, vbo uint32
	ebo      uint32
	overlay  *Overlay
}

// NewRenderer compiles the overlay program and uploads the atlas.
func NewRenderer(a *Atlas) (*Renderer, error) {
	r := &Renderer{}
	var err error

	// Create shader program
	r.program, err = glutil.NewProgram("hud", vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("hud shader: %w", err)
	}
	// Upload the glyph atlas; R is coverage
	r.font, err = glutil.NewTextureR8(a.Width, a.Height, a.Pix)
	if err != nil {
		r.Delete()
		return nil, fmt.Errorf("hud font: %w", err)
	}
	r.sampler = glutil.NewSampler(gl.NEAREST, gl.NEAREST)
	r.overlay = NewOverlay(a, r.font.ID)

	// Create VAO
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// Create VBO
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Create EBO
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Vertex layout: Pos (2 floats) + TexCoord (2 floats) + Color (1 uint32)
	stride := int32(unsafe.Sizeof(Vertex{}))

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// TexCoord attribute
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	// Color attribute (normalized uint8x4)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(Vertex{}.Color))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	r.program.SetSampler("fontTexture", 0)

	if err := glutil.CheckError("hud init"); err != nil {
		r.Delete()
		return nil, err
	}
	return r, nil
}

// Overlay returns the layout used by DrawLines.
func (r *Renderer) Overlay() *Overlay {
	return r.overlay
}

// DrawLines renders status lines over a width x height framebuffer.
func (r *Renderer) DrawLines(lines []string, width, height int) {
	if len(lines) == 0 {
		return
	}
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	r.overlay.Build(dl, lines)
	r.Render(dl, width, height)
}

// Render draws dl over a width x height framebuffer, restoring the GL
// state it touches.
func (r *Renderer) Render(dl *DrawList, width, height int) {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return
	}
	// Finalize the draw list
	dl.Finalize()

	// Save GL state
	var lastProgram int32
	var lastBlendSrc, lastBlendDst int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	blendEnabled := gl.IsEnabled(gl.BLEND)
	depthEnabled := gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled := gl.IsEnabled(gl.CULL_FACE)

	// Setup render state
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)

	// Use shader
	r.program.Use()

	// Set projection matrix (orthographic, y down)
	proj := mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
	gl.UniformMatrix4fv(r.program.Uniform("projection"), 1, false, &proj[0])

	// Bind VAO and upload data
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	// Execute draw commands
	useTex := r.program.Uniform("useTexture")
	for _, cmd := range dl.CmdBuffer {
		// Bind texture if specified
		if cmd.TextureID != 0 {
			gl.ActiveTexture(gl.TEXTURE0)
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.BindSampler(0, r.sampler.ID)
			gl.Uniform1i(useTex, 1)
		} else {
			gl.Uniform1i(useTex, 0)
		}
		// Draw
		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2,
			int32(cmd.VertexOffset),
		)
	}
	glutil.Unbind(0)
	gl.BindVertexArray(0)

	// Restore GL state
	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))
	setEnabled(gl.BLEND, blendEnabled)
	setEnabled(gl.DEPTH_TEST, depthEnabled)
	setEnabled(gl.CULL_FACE, cullEnabled)
}

func setEnabled(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.sampler != nil {
		r.sampler.Delete()
	}
	if r.font != nil {
		r.font.Delete()
	}
	if r.program != nil {
		r.program.Delete()
	}
}
