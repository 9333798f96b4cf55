// Package matstack implements a model-to-camera matrix stack.
package matstack

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Stack is a matrix stack; every transform post-multiplies the top.
type Stack struct {
	top   mgl32.Mat4
	saved []mgl32.Mat4
}

// New returns a stack whose top is m.
func New(m mgl32.Mat4) *Stack {
	return &Stack{top: m, saved: make([]mgl32.Mat4, 0, 8)}
}

// Identity returns a stack whose top is the identity.
func Identity() *Stack {
	return New(mgl32.Ident4())
}

// Top returns the current matrix.
func (s *Stack) Top() mgl32.Mat4 {
	return s.top
}

// Push saves the current matrix.
func (s *Stack) Push() {
	s.saved = append(s.saved, s.top)
}

// Pop restores the last saved matrix. Popping an empty stack is a no-op.
func (s *Stack) Pop() {
	n := len(s.saved)
	if n == 0 {
		return
	}
	s.top = s.saved[n-1]
	s.saved = s.saved[:n-1]
}

// Scope runs fn between a Push and a Pop.
func (s *Stack) Scope(fn func()) {
	s.Push()
	defer s.Pop()
	fn()
}

// Set replaces the current matrix.
func (s *Stack) Set(m mgl32.Mat4) *Stack {
	s.top = m
	return s
}

// SetIdentity replaces the current matrix with the identity.
func (s *Stack) SetIdentity() *Stack {
	return s.Set(mgl32.Ident4())
}

// Apply post-multiplies the current matrix by m.
func (s *Stack) Apply(m mgl32.Mat4) *Stack {
	s.top = s.top.Mul4(m)
	return s
}

// Translate post-multiplies by a translation.
func (s *Stack) Translate(v mgl32.Vec3) *Stack {
	return s.Apply(mgl32.Translate3D(v[0], v[1], v[2]))
}

// Scale post-multiplies by a uniform scale.
func (s *Stack) Scale(f float32) *Stack {
	return s.Apply(mgl32.Scale3D(f, f, f))
}

// Perspective post-multiplies by a perspective projection with a vertical
// field of view of fovDeg degrees.
func (s *Stack) Perspective(fovDeg, aspect, zNear, zFar float32) *Stack {
	return s.Apply(mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, zNear, zFar))
}

// NormalMatrix returns the inverse transpose of the top's upper 3x3, used to
// carry normals into camera space.
func (s *Stack) NormalMatrix() mgl32.Mat3 {
	return s.top.Mat3().Inv().Transpose()
}
