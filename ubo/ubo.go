// Package ubo packs light, material and projection data into the std140
// byte layouts read by the tutorial shaders' uniform blocks.
//
// Packing is stateless: callers build value structs each frame and pass them
// in. All floats are written little-endian.
package ubo

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// NumberOfLights is the light array length compiled into the shaders.
const NumberOfLights = 2

const (
	Vec4Size       = 16
	Mat4Size       = 64
	PerLightSize   = 2 * Vec4Size
	LightSize      = 2*Vec4Size + NumberOfLights*PerLightSize
	MaterialSize   = 3 * Vec4Size
	ProjectionSize = Mat4Size
)

var (
	// ErrLightCount is returned when a LightBlock does not hold exactly
	// NumberOfLights lights.
	ErrLightCount = errors.New("ubo: wrong number of lights")

	// ErrPrecondition is returned for invalid packer arguments.
	ErrPrecondition = errors.New("ubo: precondition violated")

	// ErrShortBuffer is returned when unpacking fewer bytes than a block needs.
	ErrShortBuffer = errors.New("ubo: buffer too short")
)

// PerLight is one entry of the light array.
type PerLight struct {
	CameraSpaceLightPos mgl32.Vec4 // w = 0 for directional lights
	LightIntensity      mgl32.Vec4
}

// LightBlock mirrors the shaders' Light uniform block.
type LightBlock struct {
	AmbientIntensity mgl32.Vec4
	LightAttenuation float32
	Lights           []PerLight
}

// MaterialBlock mirrors the shaders' Material uniform block.
type MaterialBlock struct {
	DiffuseColor      mgl32.Vec4
	SpecularColor     mgl32.Vec4
	SpecularShininess float32
}

// LightOffset returns the byte offset of light i inside a packed LightBlock.
func LightOffset(i int) int {
	return 2*Vec4Size + i*PerLightSize
}

// PackLight serializes b into a LightSize byte buffer.
func PackLight(b LightBlock) ([]byte, error) {
	if len(b.Lights) != NumberOfLights {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLightCount, len(b.Lights), NumberOfLights)
	}
	buf := make([]byte, LightSize)
	putVec4(buf, 0, b.AmbientIntensity)
	putFloat(buf, Vec4Size, b.LightAttenuation)
	for i, l := range b.Lights {
		off := LightOffset(i)
		putVec4(buf, off, l.CameraSpaceLightPos)
		putVec4(buf, off+Vec4Size, l.LightIntensity)
	}
	return buf, nil
}

// UnpackLight decodes a buffer produced by PackLight.
func UnpackLight(buf []byte) (LightBlock, error) {
	if len(buf) < LightSize {
		return LightBlock{}, fmt.Errorf("%w: light block needs %d bytes, got %d", ErrShortBuffer, LightSize, len(buf))
	}
	b := LightBlock{
		AmbientIntensity: getVec4(buf, 0),
		LightAttenuation: getFloat(buf, Vec4Size),
		Lights:           make([]PerLight, NumberOfLights),
	}
	for i := range b.Lights {
		off := LightOffset(i)
		b.Lights[i] = PerLight{
			CameraSpaceLightPos: getVec4(buf, off),
			LightIntensity:      getVec4(buf, off+Vec4Size),
		}
	}
	return b, nil
}

// PackMaterial serializes m into a MaterialSize byte buffer.
func PackMaterial(m MaterialBlock) []byte {
	buf := make([]byte, MaterialSize)
	putMaterial(buf, 0, m)
	return buf
}

// UnpackMaterial decodes a single material starting at buf[0].
func UnpackMaterial(buf []byte) (MaterialBlock, error) {
	if len(buf) < MaterialSize {
		return MaterialBlock{}, fmt.Errorf("%w: material block needs %d bytes, got %d", ErrShortBuffer, MaterialSize, len(buf))
	}
	return MaterialBlock{
		DiffuseColor:      getVec4(buf, 0),
		SpecularColor:     getVec4(buf, Vec4Size),
		SpecularShininess: getFloat(buf, 2*Vec4Size),
	}, nil
}

// MaterialStride rounds MaterialSize up to a multiple of alignment.
func MaterialStride(alignment int) (int, error) {
	if alignment < 1 {
		return 0, fmt.Errorf("%w: alignment %d", ErrPrecondition, alignment)
	}
	return (MaterialSize + alignment - 1) / alignment * alignment, nil
}

// PackMaterialArray packs materials contiguously, each slot starting at
// index*stride, where stride respects the uniform buffer offset alignment.
func PackMaterialArray(materials []MaterialBlock, alignment int) ([]byte, int, error) {
	if len(materials) == 0 {
		return nil, 0, fmt.Errorf("%w: no materials", ErrPrecondition)
	}
	stride, err := MaterialStride(alignment)
	if err != nil {
		return nil, 0, err
	}
	buf := make([]byte, stride*len(materials))
	for i, m := range materials {
		putMaterial(buf, i*stride, m)
	}
	return buf, stride, nil
}

// PackProjection serializes a column-major camera-to-clip matrix.
func PackProjection(m mgl32.Mat4) []byte {
	buf := make([]byte, Mat4Size)
	for i, v := range m {
		putFloat(buf, i*4, v)
	}
	return buf
}

func putMaterial(buf []byte, off int, m MaterialBlock) {
	putVec4(buf, off, m.DiffuseColor)
	putVec4(buf, off+Vec4Size, m.SpecularColor)
	putFloat(buf, off+2*Vec4Size, m.SpecularShininess)
}

func putFloat(buf []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
}

func putVec4(buf []byte, off int, v mgl32.Vec4) {
	for i := range v {
		putFloat(buf, off+i*4, v[i])
	}
}

func getFloat(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

func getVec4(buf []byte, off int) mgl32.Vec4 {
	var v mgl32.Vec4
	for i := range v {
		v[i] = getFloat(buf, off+i*4)
	}
	return v
}
