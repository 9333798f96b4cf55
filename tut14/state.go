package tut14

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/gltut"
	"github.com/go-theft-auto/gltut/gaussian"
	"github.com/go-theft-auto/gltut/pole"
	"github.com/go-theft-auto/gltut/timer"
	"github.com/go-theft-auto/gltut/ubo"
)

// RenderMode selects how the specular term is evaluated.
type RenderMode int

const (
	// ModeFixed reads the Gaussian texture at the material's shininess.
	ModeFixed RenderMode = iota
	// ModeTextured reads the Gaussian texture at the shininess texture's value.
	ModeTextured
	// ModeComputed evaluates the Gaussian in the shader.
	ModeComputed
	modeCount
)

var modeNames = [modeCount]string{
	"Fixed Shininess with Gaussian Texture",
	"Texture Shininess with Gaussian Texture",
	"Texture Shininess with computed Gaussian",
}

// Next returns the mode after m, wrapping around.
func (m RenderMode) Next() RenderMode {
	return (m + 1) % modeCount
}

func (m RenderMode) String() string {
	if m < 0 || m >= modeCount {
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
	return modeNames[m]
}

// GlobalLightDirection is the world-space direction of the sun light.
var GlobalLightDirection = mgl32.Vec3{0.707, 0.707, 0}

var (
	ambientIntensity    = mgl32.Vec4{0.2, 0.2, 0.2, 1}
	sunIntensity        = mgl32.Vec4{0.6, 0.6, 0.6, 1}
	pointLightIntensity = mgl32.Vec4{0.4, 0.4, 0.4, 1}
	initialObjectData   = pole.ObjectData{Position: mgl32.Vec3{0, 0.5, 0}, Orientation: mgl32.QuatIdent()}
	initialViewData     = pole.ViewData{TargetPos: mgl32.Vec3{0, 0.5, 0}, Orient: mgl32.Quat{W: 0.92387953, V: mgl32.Vec3{0.3826834, 0, 0}}, Radius: 10}
	viewScale           = pole.ViewScale{MinRadius: 1.5, MaxRadius: 70, LargeRadiusDelta: 1.5, SmallRadiusDelta: 0.5, RotationScale: 90.0 / 250.0}
	objectRotationScale = float32(90.0 / 250.0)
)

// State is everything the tutorial tracks between frames apart from GL
// objects: toggles, selections, the light timer and the poles.
type State struct {
	settings Settings

	Mode          RenderMode
	DrawLights    bool
	DrawCameraPos bool
	// UseObjectMesh draws the main object; false draws the plane instead.
	UseObjectMesh bool
	CurrTexture   int
	CurrMaterial  int

	Timer  *timer.Timer
	View   *pole.ViewPole
	Object *pole.ObjectPole

	actions *gltut.ActionRegistry
}

// NewState validates s and builds the initial state and key bindings.
func NewState(s Settings, opts ...timer.Option) (*State, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	st := &State{
		settings:      s,
		DrawLights:    true,
		UseObjectMesh: true,
		CurrTexture:   s.GaussianLevels - 1,
		Timer:         timer.New(timer.Loop, s.LoopSeconds, opts...),
		View:          pole.NewViewPole(initialViewData, viewScale, gltut.MouseButtonLeft),
	}
	st.Object = pole.NewObjectPole(initialObjectData, objectRotationScale, gltut.MouseButtonRight, st.View)
	st.actions = st.bindings()
	return st, nil
}

// Settings returns the settings the state was built with.
func (st *State) Settings() Settings {
	return st.settings
}

// Actions returns the key binding table.
func (st *State) Actions() *gltut.ActionRegistry {
	return st.actions
}

// bindings builds the key table. Digit keys 1..levels select Gaussian
// textures and the top digits up to 9 select materials.
func (st *State) bindings() *gltut.ActionRegistry {
	r := gltut.NewActionRegistry()
	r.Register("toggle pause", gltut.KeyP, func(gltut.KeyEvent) { st.Timer.TogglePause() })
	for _, k := range []gltut.Key{gltut.KeyMinus, gltut.KeyKPSubtract} {
		r.Register("rewind", k, func(gltut.KeyEvent) { st.Timer.Rewind(0.5) })
	}
	for _, k := range []gltut.Key{gltut.KeyEqual, gltut.KeyKPAdd} {
		r.Register("fast forward", k, func(gltut.KeyEvent) { st.Timer.FastForward(0.5) })
	}
	r.Register("toggle camera marker", gltut.KeyT, func(gltut.KeyEvent) { st.DrawCameraPos = !st.DrawCameraPos })
	r.Register("toggle lights", gltut.KeyG, func(gltut.KeyEvent) { st.DrawLights = !st.DrawLights })
	r.Register("toggle object mesh", gltut.KeyY, func(gltut.KeyEvent) { st.UseObjectMesh = !st.UseObjectMesh })
	r.Register("next render mode", gltut.KeySpace, func(gltut.KeyEvent) {
		st.Mode = st.Mode.Next()
		gltut.Logger.Info("render mode", "mode", st.Mode.String())
	})

	for i := 0; i < st.settings.GaussianLevels; i++ {
		level := i
		r.Register(fmt.Sprintf("texture %d", level), gltut.DigitKey(level+1), func(gltut.KeyEvent) {
			st.CurrTexture = level
			gltut.Logger.Info("angle resolution", "resolution", gaussian.CosAngleResolution(level))
		})
	}
	first := 9 - NumberOfMaterials
	for i := range st.settings.Materials {
		material := i
		r.Register(fmt.Sprintf("material %d", material), gltut.DigitKey(first+material+1), func(gltut.KeyEvent) {
			st.CurrMaterial = material
			gltut.Logger.Info("material", "number", material)
		})
	}
	return r
}

// HandleKey runs the bound action, then lets the view pole see the key.
func (st *State) HandleKey(e gltut.KeyEvent) bool {
	handled := st.actions.Dispatch(e)
	if st.View.HandleKey(e) {
		handled = true
	}
	return handled
}

// HandleMouse feeds the view and object poles.
func (st *State) HandleMouse(e gltut.MouseEvent) {
	st.View.HandleMouse(e)
	st.Object.HandleMouse(e)
}

// Update advances the light timer to the current time.
func (st *State) Update() {
	st.Timer.Update()
}

// LightPosition returns the world-space position of the orbiting light.
func (st *State) LightPosition() mgl32.Vec4 {
	angle := st.Timer.Alpha() * 2 * math32.Pi
	return mgl32.Vec4{
		math32.Cos(angle) * st.settings.LightRadius,
		st.settings.LightHeight,
		math32.Sin(angle) * st.settings.LightRadius,
		1,
	}
}

// LightBlock returns this frame's lights transformed by the world-to-camera
// matrix view.
func (st *State) LightBlock(view mgl32.Mat4) ubo.LightBlock {
	return ubo.LightBlock{
		AmbientIntensity: ambientIntensity,
		LightAttenuation: st.settings.LightAttenuation(),
		Lights: []ubo.PerLight{
			{CameraSpaceLightPos: view.Mul4x1(GlobalLightDirection.Vec4(0)), LightIntensity: sunIntensity},
			{CameraSpaceLightPos: view.Mul4x1(st.LightPosition()), LightIntensity: pointLightIntensity},
		},
	}
}

// MaterialBlocks returns the configured materials in slot order.
func (st *State) MaterialBlocks() []ubo.MaterialBlock {
	blocks := make([]ubo.MaterialBlock, len(st.settings.Materials))
	for i, m := range st.settings.Materials {
		blocks[i] = m.Block()
	}
	return blocks
}

// TextureResolutions returns the cosine-angle resolution of each Gaussian
// texture level.
func (st *State) TextureResolutions() []int {
	return gaussian.Levels(st.settings.GaussianLevels)
}

// ObjectScale is the uniform scale applied to the drawn object.
func (st *State) ObjectScale() float32 {
	if st.UseObjectMesh {
		return 2
	}
	return 4
}

// VAO returns the mesh VAO the current mode needs.
func (st *State) VAO() string {
	if st.Mode == ModeFixed {
		return "lit"
	}
	return "lit-tex"
}

// Status returns the HUD lines.
func (st *State) Status() []string {
	timerState := "running"
	if st.Timer.Paused() {
		timerState = "paused"
	}
	mesh := "object"
	if !st.UseObjectMesh {
		mesh = "plane"
	}
	first := 9 - NumberOfMaterials + 1
	return []string{
		"Mode: " + st.Mode.String() + " (Space)",
		fmt.Sprintf("Gaussian texture: %d (1-%d)", gaussian.CosAngleResolution(st.CurrTexture), st.settings.GaussianLevels),
		fmt.Sprintf("Material: %d (%d-9)", st.CurrMaterial, first),
		fmt.Sprintf("Light: %s %.2f (P - +)", timerState, st.Timer.Alpha()),
		fmt.Sprintf("Lights %s (G)  Camera %s (T)  Mesh %s (Y)", onOff(st.DrawLights), onOff(st.DrawCameraPos), mesh),
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
