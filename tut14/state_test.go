package tut14

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gltut"
	"github.com/go-theft-auto/gltut/timer"
	"github.com/go-theft-auto/gltut/ubo"
)

type fakeClock struct {
	now float64
}

func (c *fakeClock) Now() float64 { return c.now }

func newTestState(t *testing.T, s Settings) (*State, *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: 10}
	st, err := NewState(s, timer.WithClock(clk.Now))
	require.NoError(t, err)
	st.Update()
	return st, clk
}

func press(st *State, k gltut.Key) bool {
	return st.HandleKey(gltut.KeyEvent{Key: k})
}

func TestSettingsValidate(t *testing.T) {
	require.NoError(t, DefaultSettings().Validate())

	tests := []struct {
		name   string
		mutate func(s *Settings)
	}{
		{"no levels", func(s *Settings) { s.GaussianLevels = 0 }},
		{"no materials", func(s *Settings) { s.Materials = nil }},
		{"extra material", func(s *Settings) { s.Materials = append(s.Materials, s.Materials[0]) }},
		{"single material", func(s *Settings) { s.Materials = s.Materials[:1] }},
		{"digits overflow", func(s *Settings) { s.GaussianLevels = 8 }},
		{"zero loop", func(s *Settings) { s.LoopSeconds = 0 }},
		{"zero half distance", func(s *Settings) { s.HalfLightDistance = 0 }},
		{"zero shininess resolution", func(s *Settings) { s.ShininessResolution = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrSettings)
			_, err := NewState(s)
			assert.ErrorIs(t, err, ErrSettings)
		})
	}
}

func TestSettingsYAMLOverlay(t *testing.T) {
	s := DefaultSettings()
	doc := `
lightRadius: 5
loopSeconds: 2.5
materials:
  - diffuse: [1, 0, 0, 1]
    specular: [1, 1, 1, 1]
    shininess: 0.3
  - diffuse: [0, 0, 1, 1]
    specular: [1, 1, 1, 1]
    shininess: 0.05
`
	require.NoError(t, gltut.DecodeYAML([]byte(doc), &s))
	assert.Equal(t, float32(5), s.LightRadius)
	assert.Equal(t, float32(2.5), s.LoopSeconds)
	assert.Equal(t, float32(1), s.LightHeight)
	require.Len(t, s.Materials, NumberOfMaterials)
	assert.Equal(t, float32(0.3), s.Materials[0].Shininess)
	require.NoError(t, s.Validate())

	err := gltut.DecodeYAML([]byte("lightRadiuss: 5\n"), &s)
	assert.Error(t, err)
}

func TestRenderModeCycle(t *testing.T) {
	m := ModeFixed
	for i := 0; i < 3; i++ {
		m = m.Next()
	}
	assert.Equal(t, ModeFixed, m)
	assert.Equal(t, ModeTextured, ModeFixed.Next())
	assert.Equal(t, ModeFixed, ModeComputed.Next())
	assert.Equal(t, "Texture Shininess with computed Gaussian", ModeComputed.String())
	assert.Equal(t, "RenderMode(7)", RenderMode(7).String())
}

func TestSpaceCyclesMode(t *testing.T) {
	st, _ := newTestState(t, DefaultSettings())
	assert.Equal(t, "lit", st.VAO())
	assert.True(t, press(st, gltut.KeySpace))
	assert.Equal(t, ModeTextured, st.Mode)
	assert.Equal(t, "lit-tex", st.VAO())
	press(st, gltut.KeySpace)
	press(st, gltut.KeySpace)
	assert.Equal(t, ModeFixed, st.Mode)
}

func TestToggles(t *testing.T) {
	st, _ := newTestState(t, DefaultSettings())
	assert.True(t, st.DrawLights)
	assert.False(t, st.DrawCameraPos)
	assert.True(t, st.UseObjectMesh)
	assert.Equal(t, float32(2), st.ObjectScale())

	press(st, gltut.KeyG)
	press(st, gltut.KeyT)
	press(st, gltut.KeyY)
	assert.False(t, st.DrawLights)
	assert.True(t, st.DrawCameraPos)
	assert.False(t, st.UseObjectMesh)
	assert.Equal(t, float32(4), st.ObjectScale())
}

func TestDigitBindings(t *testing.T) {
	st, _ := newTestState(t, DefaultSettings())
	assert.Equal(t, 3, st.CurrTexture)
	assert.Equal(t, 0, st.CurrMaterial)

	for level := 0; level < 4; level++ {
		assert.True(t, press(st, gltut.DigitKey(level+1)))
		assert.Equal(t, level, st.CurrTexture)
	}
	assert.Equal(t, 0, st.CurrMaterial)

	assert.True(t, press(st, gltut.Key9))
	assert.Equal(t, 1, st.CurrMaterial)
	assert.True(t, press(st, gltut.Key8))
	assert.Equal(t, 0, st.CurrMaterial)
	assert.Equal(t, 3, st.CurrTexture)

	for _, k := range []gltut.Key{gltut.Key0, gltut.Key5, gltut.Key6, gltut.Key7} {
		assert.False(t, press(st, k), gltut.KeyName(k))
	}
	assert.Equal(t, []string{"material 1"}, st.Actions().Bound(gltut.Key9))
}

func TestDigitBindingsFillAllKeys(t *testing.T) {
	s := DefaultSettings()
	s.GaussianLevels = 7
	st, _ := newTestState(t, s)
	assert.Equal(t, []string{"texture 6"}, st.Actions().Bound(gltut.Key7))
	assert.Equal(t, []string{"material 0"}, st.Actions().Bound(gltut.Key8))
	assert.Len(t, st.TextureResolutions(), 7)
}

func TestTimerKeys(t *testing.T) {
	st, clk := newTestState(t, DefaultSettings())
	clk.now += 2
	st.Update()

	press(st, gltut.KeyMinus)
	assert.InDelta(t, 1.5, st.Timer.TimeSinceStart(), 1e-5)
	press(st, gltut.KeyEqual)
	press(st, gltut.KeyKPAdd)
	assert.InDelta(t, 2.5, st.Timer.TimeSinceStart(), 1e-5)
	press(st, gltut.KeyKPSubtract)
	assert.InDelta(t, 2.0, st.Timer.TimeSinceStart(), 1e-5)

	press(st, gltut.KeyP)
	assert.True(t, st.Timer.Paused())
	alpha := st.Timer.Alpha()
	clk.now += 1
	st.Update()
	assert.Equal(t, alpha, st.Timer.Alpha())
	press(st, gltut.KeyP)
	assert.False(t, st.Timer.Paused())
}

func TestHalfPeriodLightPosition(t *testing.T) {
	s := DefaultSettings()
	require.Len(t, s.Materials, 2)
	require.Equal(t, 4, s.GaussianLevels)

	st, clk := newTestState(t, s)
	assert.InDelta(t, 3, st.LightPosition().X(), 1e-5)

	clk.now += float64(s.LoopSeconds) / 2
	st.Update()

	pos := st.LightPosition()
	assert.InDelta(t, -s.LightRadius, pos.X(), 1e-4)
	assert.InDelta(t, s.LightHeight, pos.Y(), 1e-6)
	assert.InDelta(t, 0, pos.Z(), 1e-4)
	assert.Equal(t, float32(1), pos.W())

	block := st.LightBlock(mgl32.Ident4())
	require.Len(t, block.Lights, ubo.NumberOfLights)
	assert.Equal(t, pos, block.Lights[1].CameraSpaceLightPos)
	assert.Equal(t, float32(0), block.Lights[0].CameraSpaceLightPos.W())
	assert.InDelta(t, 1.0/625, block.LightAttenuation, 1e-9)

	buf, err := ubo.PackLight(block)
	require.NoError(t, err)
	assert.Len(t, buf, ubo.LightSize)
}

func TestLightBlockCameraSpace(t *testing.T) {
	st, _ := newTestState(t, DefaultSettings())
	view := st.View.CalcMatrix()
	block := st.LightBlock(view)

	world := st.LightPosition()
	assert.True(t, view.Mul4x1(world).ApproxEqualThreshold(block.Lights[1].CameraSpaceLightPos, 1e-5))

	// directions ignore the view's translation
	dir := block.Lights[0].CameraSpaceLightPos
	assert.InDelta(t, GlobalLightDirection.Len(), dir.Vec3().Len(), 1e-5)
}

func TestMaterialBlocks(t *testing.T) {
	st, _ := newTestState(t, DefaultSettings())
	blocks := st.MaterialBlocks()
	require.Len(t, blocks, 2)
	assert.Equal(t, mgl32.Vec4{1, 0.673, 0.043, 1}, blocks[0].DiffuseColor)
	assert.InDelta(t, 0.4, blocks[0].SpecularColor.X(), 1e-6)
	assert.Equal(t, float32(0.125), blocks[1].SpecularShininess)

	data, stride, err := ubo.PackMaterialArray(blocks, 256)
	require.NoError(t, err)
	assert.Equal(t, 256, stride)
	assert.Len(t, data, 512)
}

func TestStatusLines(t *testing.T) {
	st, _ := newTestState(t, DefaultSettings())
	lines := st.Status()
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], ModeFixed.String())
	assert.Contains(t, lines[1], "512")
	assert.Contains(t, lines[2], "(8-9)")
	assert.Contains(t, lines[3], "running")

	press(st, gltut.KeyP)
	assert.Contains(t, st.Status()[3], "paused")
}
