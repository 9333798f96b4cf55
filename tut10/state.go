// Package tut10 is the "Vertex Point Lighting" tutorial: a ground plane and
// a cylinder lit per vertex by a point light circling above them.
package tut10

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/gltut"
	"github.com/go-theft-auto/gltut/pole"
	"github.com/go-theft-auto/gltut/timer"
)

// ErrSettings is returned for settings the tutorial cannot run with.
var ErrSettings = errors.New("tut10: invalid settings")

// MinLightRadius is the smallest orbit radius the keys can reach.
const MinLightRadius = 0.2

// Settings configures the tutorial.
type Settings struct {
	LightRadius      float32 `yaml:"lightRadius"`
	LightHeight      float32 `yaml:"lightHeight"`
	LoopSeconds      float32 `yaml:"loopSeconds"`
	LightIntensity   float32 `yaml:"lightIntensity"`
	AmbientIntensity float32 `yaml:"ambientIntensity"`
	// Mesh replaces the generated cylinder; it needs "lit" and
	// "lit-color" VAOs.
	Mesh string `yaml:"mesh"`
}

// DefaultSettings returns the tutorial's stock configuration.
func DefaultSettings() Settings {
	return Settings{
		LightRadius:      1,
		LightHeight:      1.5,
		LoopSeconds:      5,
		LightIntensity:   0.8,
		AmbientIntensity: 0.2,
	}
}

// Validate reports unusable settings.
func (s Settings) Validate() error {
	if s.LoopSeconds <= 0 {
		return fmt.Errorf("%w: loopSeconds %v", ErrSettings, s.LoopSeconds)
	}
	if s.LightRadius < MinLightRadius {
		return fmt.Errorf("%w: lightRadius %v below %v", ErrSettings, s.LightRadius, MinLightRadius)
	}
	return nil
}

var (
	initialViewData   = pole.ViewData{TargetPos: mgl32.Vec3{0, 0.5, 0}, Orient: mgl32.Quat{W: 0.92387953, V: mgl32.Vec3{0.3826834, 0, 0}}, Radius: 5}
	viewScale         = pole.ViewScale{MinRadius: 3, MaxRadius: 20, LargeRadiusDelta: 1.5, SmallRadiusDelta: 0.5, RotationScale: 90.0 / 250.0}
	initialObjectData = pole.ObjectData{Position: mgl32.Vec3{0, 0.5, 0}, Orientation: mgl32.QuatIdent()}
)

// State holds the tutorial's toggles, light parameters, timer and poles.
type State struct {
	settings Settings

	DrawColoredCyl bool
	DrawLight      bool
	LightHeight    float32
	LightRadius    float32

	Timer  *timer.Timer
	View   *pole.ViewPole
	Object *pole.ObjectPole

	actions *gltut.ActionRegistry
}

// NewState validates s and builds the initial state.
func NewState(s Settings, opts ...timer.Option) (*State, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	st := &State{
		settings:    s,
		LightHeight: s.LightHeight,
		LightRadius: s.LightRadius,
		Timer:       timer.New(timer.Loop, s.LoopSeconds, opts...),
		View:        pole.NewViewPole(initialViewData, viewScale, gltut.MouseButtonLeft),
	}
	st.Object = pole.NewObjectPole(initialObjectData, 90.0/250.0, gltut.MouseButtonRight, st.View)

	r := gltut.NewActionRegistry()
	r.Register("toggle colored cylinder", gltut.KeySpace, func(gltut.KeyEvent) { st.DrawColoredCyl = !st.DrawColoredCyl })
	r.Register("raise light", gltut.KeyI, func(e gltut.KeyEvent) { st.LightHeight += step(e) })
	r.Register("lower light", gltut.KeyK, func(e gltut.KeyEvent) { st.LightHeight -= step(e) })
	r.Register("widen orbit", gltut.KeyL, func(e gltut.KeyEvent) { st.LightRadius += step(e) })
	r.Register("narrow orbit", gltut.KeyJ, func(e gltut.KeyEvent) { st.LightRadius -= step(e) })
	r.Register("toggle light marker", gltut.KeyY, func(gltut.KeyEvent) { st.DrawLight = !st.DrawLight })
	r.Register("toggle pause", gltut.KeyB, func(gltut.KeyEvent) { st.Timer.TogglePause() })
	st.actions = r
	return st, nil
}

func step(e gltut.KeyEvent) float32 {
	if e.Mods.Has(gltut.ModShift) {
		return 0.05
	}
	return 0.2
}

// Settings returns the settings the state was built with.
func (st *State) Settings() Settings {
	return st.settings
}

// Actions returns the key binding table.
func (st *State) Actions() *gltut.ActionRegistry {
	return st.actions
}

// HandleKey runs the bound action and keeps the radius in range.
func (st *State) HandleKey(e gltut.KeyEvent) bool {
	handled := st.actions.Dispatch(e)
	if st.LightRadius < MinLightRadius {
		st.LightRadius = MinLightRadius
	}
	return handled
}

// HandleMouse feeds the view and object poles.
func (st *State) HandleMouse(e gltut.MouseEvent) {
	st.View.HandleMouse(e)
	st.Object.HandleMouse(e)
}

// Update advances the light timer.
func (st *State) Update() {
	st.Timer.Update()
}

// LightPosition returns the world-space light position.
func (st *State) LightPosition() mgl32.Vec4 {
	angle := st.Timer.Alpha() * 2 * math32.Pi
	return mgl32.Vec4{
		math32.Cos(angle) * st.LightRadius,
		st.LightHeight,
		math32.Sin(angle) * st.LightRadius,
		1,
	}
}

// CameraSpaceLight returns the light position transformed by view.
func (st *State) CameraSpaceLight(view mgl32.Mat4) mgl32.Vec3 {
	return view.Mul4x1(st.LightPosition()).Vec3()
}

// LightIntensity returns the light color uniform.
func (st *State) LightIntensity() mgl32.Vec4 {
	i := st.settings.LightIntensity
	return mgl32.Vec4{i, i, i, 1}
}

// AmbientIntensity returns the ambient color uniform.
func (st *State) AmbientIntensity() mgl32.Vec4 {
	a := st.settings.AmbientIntensity
	return mgl32.Vec4{a, a, a, 1}
}

// CylinderVAO returns the VAO the cylinder is drawn with.
func (st *State) CylinderVAO() string {
	if st.DrawColoredCyl {
		return "lit-color"
	}
	return "lit"
}

// Status returns the HUD lines.
func (st *State) Status() []string {
	timerState := "running"
	if st.Timer.Paused() {
		timerState = "paused"
	}
	colored := "white"
	if st.DrawColoredCyl {
		colored = "vertex colors"
	}
	marker := "hidden"
	if st.DrawLight {
		marker = "shown"
	}
	return []string{
		"Cylinder: " + colored + " (Space)",
		fmt.Sprintf("Light height %.2f (I/K)  radius %.2f (J/L)", st.LightHeight, st.LightRadius),
		fmt.Sprintf("Light %s (B)  marker %s (Y)", timerState, marker),
	}
}
