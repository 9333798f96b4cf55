package matstack

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPushPop(t *testing.T) {
	s := Identity()
	s.Translate(mgl32.Vec3{1, 2, 3})
	base := s.Top()

	s.Scope(func() {
		s.Scale(2)
		p := s.Top().Mul4x1(mgl32.Vec4{1, 1, 1, 1})
		assert.Equal(t, mgl32.Vec4{3, 4, 5, 1}, p)
	})

	assert.Equal(t, base, s.Top())

	// extra pops are ignored
	s.Pop()
	assert.Equal(t, base, s.Top())
}

func TestTransformOrder(t *testing.T) {
	s := Identity()
	s.Translate(mgl32.Vec3{0, 0, -5}).Scale(0.25)
	p := s.Top().Mul4x1(mgl32.Vec4{4, 0, 0, 1})
	assert.Equal(t, mgl32.Vec4{1, 0, -5, 1}, p)

	s.SetIdentity().Apply(mgl32.HomogRotate3DY(mgl32.DegToRad(90)))
	p = s.Top().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, p[0], 1e-6)
	assert.InDelta(t, -1, p[2], 1e-6)
}

func TestNormalMatrix(t *testing.T) {
	s := Identity()
	s.Apply(mgl32.Scale3D(2, 1, 1))
	n := s.NormalMatrix().Mul3x1(mgl32.Vec3{1, 1, 0})
	assert.InDelta(t, 0.5, n[0], 1e-6)
	assert.InDelta(t, 1, n[1], 1e-6)
}
