// Package pole implements mouse-driven camera and object controllers.
//
// A ViewPole orbits a camera around a target point; an ObjectPole rotates an
// object relative to the camera's orientation. Both accumulate pointer drag
// deltas measured from the drag start and expose the resulting transform
// through CalcMatrix.
package pole

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/gltut"
)

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// ViewData is the state of an orbiting camera.
type ViewData struct {
	TargetPos mgl32.Vec3
	Orient    mgl32.Quat
	Radius    float32
	// DegSpinRotation spins the camera around its view direction.
	DegSpinRotation float32
}

// ViewScale bounds and scales ViewPole input.
type ViewScale struct {
	MinRadius        float32
	MaxRadius        float32
	LargeRadiusDelta float32
	SmallRadiusDelta float32
	LargePosOffset   float32
	SmallPosOffset   float32
	// RotationScale is in degrees per pixel.
	RotationScale float32
}

type rotateMode int

const (
	rotateDualAxis rotateMode = iota
	rotateSpin
)

// ViewPole orbits a camera around ViewData.TargetPos.
type ViewPole struct {
	initial ViewData
	curr    ViewData
	scale   ViewScale
	button  gltut.MouseButton

	dragging        bool
	mode            rotateMode
	startDragX      float32
	startDragY      float32
	startDragOrient mgl32.Quat
	startDragSpin   float32
}

// NewViewPole creates a view pole controlled by button.
func NewViewPole(initial ViewData, scale ViewScale, button gltut.MouseButton) *ViewPole {
	return &ViewPole{
		initial: initial,
		curr:    initial,
		scale:   scale,
		button:  button,
	}
}

// View returns the current view state.
func (p *ViewPole) View() ViewData {
	return p.curr
}

// Reset restores the initial view.
func (p *ViewPole) Reset() {
	if !p.dragging {
		p.curr = p.initial
	}
}

// Dragging reports whether a rotation drag is in progress.
func (p *ViewPole) Dragging() bool {
	return p.dragging
}

// Orientation returns the camera orientation including spin.
func (p *ViewPole) Orientation() mgl32.Quat {
	spin := mgl32.QuatRotate(mgl32.DegToRad(p.curr.DegSpinRotation), axisZ)
	return spin.Mul(p.curr.Orient)
}

// CalcMatrix returns the world-to-camera matrix.
func (p *ViewPole) CalcMatrix() mgl32.Mat4 {
	m := mgl32.Translate3D(0, 0, -p.curr.Radius)
	m = m.Mul4(p.Orientation().Mat4())
	t := p.curr.TargetPos
	return m.Mul4(mgl32.Translate3D(-t[0], -t[1], -t[2]))
}

// HandleMouse feeds a pointer event to the pole.
func (p *ViewPole) HandleMouse(e gltut.MouseEvent) {
	switch e.Action {
	case gltut.MousePress:
		if e.Button != p.button || p.dragging {
			return
		}
		mode := rotateDualAxis
		if e.Mods.Has(gltut.ModCtrl) {
			mode = rotateSpin
		}
		p.beginDrag(e.X, e.Y, mode)
	case gltut.MouseDrag:
		if p.dragging {
			p.onDrag(e.X, e.Y)
		}
	case gltut.MouseRelease:
		if p.dragging && e.Button == p.button {
			p.onDrag(e.X, e.Y)
			p.dragging = false
		}
	case gltut.MouseWheel:
		large := !e.Mods.Has(gltut.ModShift)
		if e.Wheel > 0 {
			p.MoveCloser(large)
		} else if e.Wheel < 0 {
			p.MoveAway(large)
		}
	}
}

// HandleKey moves the target with W/S (forward/back), A/D (left/right) and
// Q/E (down/up). Shift selects the small offset.
func (p *ViewPole) HandleKey(e gltut.KeyEvent) bool {
	dist := p.scale.LargePosOffset
	if e.Mods.Has(gltut.ModShift) {
		dist = p.scale.SmallPosOffset
	}
	var dir mgl32.Vec3
	switch e.Key {
	case gltut.KeyW:
		dir = mgl32.Vec3{0, 0, -dist}
	case gltut.KeyS:
		dir = mgl32.Vec3{0, 0, dist}
	case gltut.KeyD:
		dir = mgl32.Vec3{dist, 0, 0}
	case gltut.KeyA:
		dir = mgl32.Vec3{-dist, 0, 0}
	case gltut.KeyE:
		dir = mgl32.Vec3{0, dist, 0}
	case gltut.KeyQ:
		dir = mgl32.Vec3{0, -dist, 0}
	default:
		return false
	}
	p.OffsetTargetPos(dir)
	return true
}

// OffsetTargetPos moves the target by a camera-space offset.
func (p *ViewPole) OffsetTargetPos(camOffset mgl32.Vec3) {
	world := p.Orientation().Conjugate().Rotate(camOffset)
	p.curr.TargetPos = p.curr.TargetPos.Add(world)
}

// MoveCloser shrinks the orbit radius, stopping at MinRadius.
func (p *ViewPole) MoveCloser(large bool) {
	p.curr.Radius -= p.radiusDelta(large)
	if p.curr.Radius < p.scale.MinRadius {
		p.curr.Radius = p.scale.MinRadius
	}
}

// MoveAway grows the orbit radius, stopping at MaxRadius.
func (p *ViewPole) MoveAway(large bool) {
	p.curr.Radius += p.radiusDelta(large)
	if p.curr.Radius > p.scale.MaxRadius {
		p.curr.Radius = p.scale.MaxRadius
	}
}

func (p *ViewPole) radiusDelta(large bool) float32 {
	if large {
		return p.scale.LargeRadiusDelta
	}
	return p.scale.SmallRadiusDelta
}

func (p *ViewPole) beginDrag(x, y float32, mode rotateMode) {
	p.dragging = true
	p.mode = mode
	p.startDragX, p.startDragY = x, y
	p.startDragOrient = p.curr.Orient
	p.startDragSpin = p.curr.DegSpinRotation
}

func (p *ViewPole) onDrag(x, y float32) {
	dx := x - p.startDragX
	dy := y - p.startDragY

	switch p.mode {
	case rotateSpin:
		p.curr.DegSpinRotation = p.startDragSpin + dx*p.scale.RotationScale
	default:
		xAngle := mgl32.DegToRad(dx * p.scale.RotationScale)
		yAngle := mgl32.DegToRad(dy * p.scale.RotationScale)
		orient := p.startDragOrient.Mul(mgl32.QuatRotate(xAngle, axisY))
		p.curr.Orient = mgl32.QuatRotate(yAngle, axisX).Mul(orient).Normalize()
	}
}
