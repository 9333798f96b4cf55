package ubo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLights() LightBlock {
	return LightBlock{
		AmbientIntensity: mgl32.Vec4{0.2, 0.2, 0.2, 1},
		LightAttenuation: 1.0 / (25 * 25),
		Lights: []PerLight{
			{CameraSpaceLightPos: mgl32.Vec4{0.707, 0.707, 0, 0}, LightIntensity: mgl32.Vec4{0.6, 0.6, 0.6, 1}},
			{CameraSpaceLightPos: mgl32.Vec4{-3, 1, 0.25, 1}, LightIntensity: mgl32.Vec4{0.4, 0.4, 0.4, 1}},
		},
	}
}

func TestPackLightRoundTrip(t *testing.T) {
	in := sampleLights()

	buf, err := PackLight(in)
	require.NoError(t, err)
	assert.Len(t, buf, LightSize)
	assert.Equal(t, 96, LightSize)

	out, err := UnpackLight(buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestPackLightOffsets(t *testing.T) {
	in := sampleLights()
	buf, err := PackLight(in)
	require.NoError(t, err)

	assert.Equal(t, in.LightAttenuation, getFloat(buf, Vec4Size))
	for i, l := range in.Lights {
		assert.Equal(t, l.CameraSpaceLightPos, getVec4(buf, 2*Vec4Size+i*PerLightSize), "light %d position", i)
		assert.Equal(t, l.LightIntensity, getVec4(buf, 2*Vec4Size+i*PerLightSize+Vec4Size), "light %d intensity", i)
	}
	// padding after the attenuation stays zero
	for off := Vec4Size + 4; off < 2*Vec4Size; off++ {
		assert.Zero(t, buf[off])
	}
}

func TestPackLightWrongCount(t *testing.T) {
	for _, n := range []int{0, 1, 3} {
		b := sampleLights()
		b.Lights = make([]PerLight, n)
		buf, err := PackLight(b)
		assert.ErrorIs(t, err, ErrLightCount, "count %d", n)
		assert.Nil(t, buf)
	}
}

func TestUnpackShortBuffer(t *testing.T) {
	_, err := UnpackLight(make([]byte, LightSize-1))
	assert.ErrorIs(t, err, ErrShortBuffer)

	_, err = UnpackMaterial(make([]byte, MaterialSize-1))
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func TestPackMaterial(t *testing.T) {
	m := MaterialBlock{
		DiffuseColor:      mgl32.Vec4{1, 0.673, 0.043, 1},
		SpecularColor:     mgl32.Vec4{0.4, 0.2692, 0.0172, 0.4},
		SpecularShininess: 0.125,
	}
	buf := PackMaterial(m)
	require.Len(t, buf, MaterialSize)
	assert.Equal(t, float32(0.125), getFloat(buf, 2*Vec4Size))

	out, err := UnpackMaterial(buf)
	require.NoError(t, err)
	assert.Equal(t, m, out)
}

func TestMaterialStride(t *testing.T) {
	tests := []struct {
		alignment int
		want      int
	}{
		{1, 48},
		{4, 48},
		{16, 48},
		{32, 64},
		{48, 48},
		{64, 64},
		{256, 256},
	}
	for _, tt := range tests {
		got, err := MaterialStride(tt.alignment)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "alignment %d", tt.alignment)

		// smallest multiple of the alignment that fits a material
		assert.Zero(t, got%tt.alignment)
		assert.GreaterOrEqual(t, got, MaterialSize)
		assert.Less(t, got-tt.alignment, MaterialSize)
	}

	_, err := MaterialStride(0)
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestPackMaterialArray(t *testing.T) {
	mtls := []MaterialBlock{
		{DiffuseColor: mgl32.Vec4{1, 0, 0, 1}, SpecularShininess: 0.1},
		{DiffuseColor: mgl32.Vec4{0, 1, 0, 1}, SpecularShininess: 0.2},
		{DiffuseColor: mgl32.Vec4{0, 0, 1, 1}, SpecularShininess: 0.3},
	}
	for _, alignment := range []int{1, 16, 256} {
		buf, stride, err := PackMaterialArray(mtls, alignment)
		require.NoError(t, err)
		assert.Len(t, buf, stride*len(mtls))

		for i, want := range mtls {
			got, err := UnpackMaterial(buf[i*stride:])
			require.NoError(t, err)
			assert.Equal(t, want, got, "alignment %d material %d", alignment, i)
		}
	}

	_, _, err := PackMaterialArray(nil, 256)
	assert.ErrorIs(t, err, ErrPrecondition)
	_, _, err = PackMaterialArray(mtls, -4)
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestPackProjection(t *testing.T) {
	m := mgl32.Perspective(mgl32.DegToRad(45), 1.5, 1, 1000)
	buf := PackProjection(m)
	require.Len(t, buf, Mat4Size)
	for i := range m {
		assert.Equal(t, m[i], getFloat(buf, i*4))
	}
}
