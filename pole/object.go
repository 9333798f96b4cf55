package pole

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/gltut"
)

// ObjectData is the position and orientation of a manipulated object.
type ObjectData struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
}

// Viewer supplies the camera transform an ObjectPole rotates relative to.
type Viewer interface {
	CalcMatrix() mgl32.Mat4
}

// ObjectPole rotates an object with pointer drags, in camera space when a
// Viewer is attached and in world space otherwise.
type ObjectPole struct {
	initial       ObjectData
	curr          ObjectData
	rotationScale float32
	button        gltut.MouseButton
	view          Viewer

	dragging        bool
	spin            bool
	startDragX      float32
	startDragY      float32
	startDragOrient mgl32.Quat
}

// NewObjectPole creates an object pole. rotationScale is in degrees per pixel.
func NewObjectPole(initial ObjectData, rotationScale float32, button gltut.MouseButton, view Viewer) *ObjectPole {
	return &ObjectPole{
		initial:       initial,
		curr:          initial,
		rotationScale: rotationScale,
		button:        button,
		view:          view,
	}
}

// Object returns the current object state.
func (p *ObjectPole) Object() ObjectData {
	return p.curr
}

// Reset restores the initial object state.
func (p *ObjectPole) Reset() {
	if !p.dragging {
		p.curr = p.initial
	}
}

// Dragging reports whether a rotation drag is in progress.
func (p *ObjectPole) Dragging() bool {
	return p.dragging
}

// CalcMatrix returns the object-to-world matrix.
func (p *ObjectPole) CalcMatrix() mgl32.Mat4 {
	pos := p.curr.Position
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).Mul4(p.curr.Orientation.Mat4())
}

// HandleMouse feeds a pointer event to the pole.
func (p *ObjectPole) HandleMouse(e gltut.MouseEvent) {
	switch e.Action {
	case gltut.MousePress:
		if e.Button != p.button || p.dragging {
			return
		}
		p.dragging = true
		p.spin = e.Mods.Has(gltut.ModCtrl)
		p.startDragX, p.startDragY = e.X, e.Y
		p.startDragOrient = p.curr.Orientation
	case gltut.MouseDrag:
		if p.dragging {
			p.onDrag(e.X, e.Y)
		}
	case gltut.MouseRelease:
		if p.dragging && e.Button == p.button {
			p.onDrag(e.X, e.Y)
			p.dragging = false
		}
	}
}

// RotateView applies rot, expressed in camera space, on top of the
// orientation the current drag started from.
func (p *ObjectPole) RotateView(rot mgl32.Quat) {
	if p.view == nil {
		p.curr.Orientation = rot.Mul(p.startDragOrient).Normalize()
		return
	}
	viewQuat := mgl32.Mat4ToQuat(p.view.CalcMatrix())
	invViewQuat := viewQuat.Conjugate()
	p.curr.Orientation = invViewQuat.Mul(rot).Mul(viewQuat).Mul(p.startDragOrient).Normalize()
}

func (p *ObjectPole) onDrag(x, y float32) {
	dx := x - p.startDragX
	dy := y - p.startDragY

	var rot mgl32.Quat
	if p.spin {
		rot = mgl32.QuatRotate(mgl32.DegToRad(-dx*p.rotationScale), axisZ)
	} else {
		rot = mgl32.QuatRotate(mgl32.DegToRad(dx*p.rotationScale), axisY)
		rot = mgl32.QuatRotate(mgl32.DegToRad(dy*p.rotationScale), axisX).Mul(rot).Normalize()
	}
	p.RotateView(rot)
}
