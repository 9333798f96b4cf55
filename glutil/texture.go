package glutil

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture is a single-level 2D texture.
type Texture struct {
	ID            uint32
	Width, Height int
}

// NewTextureR8 uploads width*height bytes as a one-channel 2D texture with
// no mipmaps.
func NewTextureR8(width, height int, pix []byte) (*Texture, error) {
	if width < 1 || height < 1 || len(pix) != width*height {
		return nil, fmt.Errorf("texture: %d bytes for %dx%d", len(pix), width, height)
	}
	t := &Texture{Width: width, Height: height}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(width), int32(height), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_BASE_LEVEL, 0)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, 0)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	if err := checkCreated("texture upload", t.Delete); err != nil {
		return nil, err
	}
	return t, nil
}

// Bind binds the texture and sampler to a texture unit.
func (t *Texture) Bind(unit uint32, sampler *Sampler) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	if sampler != nil {
		gl.BindSampler(unit, sampler.ID)
	}
}

// Unbind clears a texture unit.
func Unbind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindSampler(unit, 0)
	gl.ActiveTexture(gl.TEXTURE0)
}

// Delete releases the texture.
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}

// Sampler is a GL sampler object.
type Sampler struct {
	ID uint32
}

// NewSampler creates a sampler with the given filters that clamps to edge
// on both axes.
func NewSampler(minFilter, magFilter int32) *Sampler {
	s := &Sampler{}
	gl.GenSamplers(1, &s.ID)
	gl.SamplerParameteri(s.ID, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.SamplerParameteri(s.ID, gl.TEXTURE_MAG_FILTER, magFilter)
	gl.SamplerParameteri(s.ID, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.SamplerParameteri(s.ID, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return s
}

// Delete releases the sampler.
func (s *Sampler) Delete() {
	if s.ID != 0 {
		gl.DeleteSamplers(1, &s.ID)
		s.ID = 0
	}
}
