package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// builder accumulates vertices for the generators. Faces are described
// counter-clockwise as seen from outside and emitted clockwise, matching
// the tutorials' glFrontFace(GL_CW).
type builder struct {
	pos, color, normal, uv []float64
	indices                []uint32
}

func (b *builder) vertex(p, n mgl32.Vec3, uv mgl32.Vec2, c mgl32.Vec4) uint32 {
	idx := uint32(len(b.pos) / 3)
	b.pos = append(b.pos, float64(p[0]), float64(p[1]), float64(p[2]))
	b.normal = append(b.normal, float64(n[0]), float64(n[1]), float64(n[2]))
	b.uv = append(b.uv, float64(uv[0]), float64(uv[1]))
	b.color = append(b.color, float64(c[0]), float64(c[1]), float64(c[2]), float64(c[3]))
	return idx
}

// tri emits a counter-clockwise triangle as clockwise.
func (b *builder) tri(i0, i1, i2 uint32) {
	b.indices = append(b.indices, i0, i2, i1)
}

// quad emits a counter-clockwise quad as two clockwise triangles.
func (b *builder) quad(i0, i1, i2, i3 uint32) {
	b.tri(i0, i1, i2)
	b.tri(i0, i2, i3)
}

func (b *builder) data() *Data {
	typ := IndexUShort
	if len(b.pos)/3 > 0xFFFF {
		typ = IndexUInt
	}
	return &Data{
		Attributes: []Attribute{
			{Index: AttribPosition, Type: Float, Size: 3, Values: b.pos},
			{Index: AttribColor, Type: Float, Size: 4, Values: b.color},
			{Index: AttribNormal, Type: Float, Size: 3, Values: b.normal},
			{Index: AttribTexCoord, Type: Float, Size: 2, Values: b.uv},
		},
		Commands: []Command{{
			Primitive: Triangles,
			Indexed:   true,
			IndexType: typ,
			Indices:   b.indices,
			Count:     len(b.indices),
		}},
		VAOs: map[string][]uint32{
			"flat":      {AttribPosition},
			"color":     {AttribPosition, AttribColor},
			"lit":       {AttribPosition, AttribNormal},
			"lit-color": {AttribPosition, AttribColor, AttribNormal},
			"lit-tex":   {AttribPosition, AttribNormal, AttribTexCoord},
		},
	}
}

var white = mgl32.Vec4{1, 1, 1, 1}

// Cube returns a unit cube centered on the origin with per-face normals.
func Cube() *Data {
	faces := []struct {
		n, u, v mgl32.Vec3
		color   mgl32.Vec4
	}{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec4{1, 0, 0, 1}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec4{0, 1, 1, 1}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec4{0, 1, 0, 1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec4{1, 0, 1, 1}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec4{0, 0, 1, 1}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec4{1, 1, 0, 1}},
	}
	var b builder
	for _, f := range faces {
		c := f.n.Mul(0.5)
		u := f.u.Mul(0.5)
		v := f.v.Mul(0.5)
		i0 := b.vertex(c.Sub(u).Sub(v), f.n, mgl32.Vec2{0, 0}, f.color)
		i1 := b.vertex(c.Add(u).Sub(v), f.n, mgl32.Vec2{1, 0}, f.color)
		i2 := b.vertex(c.Add(u).Add(v), f.n, mgl32.Vec2{1, 1}, f.color)
		i3 := b.vertex(c.Sub(u).Add(v), f.n, mgl32.Vec2{0, 1}, f.color)
		b.quad(i0, i1, i2, i3)
	}
	return b.data()
}

// Plane returns a size x size plane in XZ facing +Y, centered on the origin.
func Plane(size float32) *Data {
	h := size / 2
	n := mgl32.Vec3{0, 1, 0}
	var b builder
	i0 := b.vertex(mgl32.Vec3{-h, 0, h}, n, mgl32.Vec2{0, 0}, white)
	i1 := b.vertex(mgl32.Vec3{h, 0, h}, n, mgl32.Vec2{1, 0}, white)
	i2 := b.vertex(mgl32.Vec3{h, 0, -h}, n, mgl32.Vec2{1, 1}, white)
	i3 := b.vertex(mgl32.Vec3{-h, 0, -h}, n, mgl32.Vec2{0, 1}, white)
	b.quad(i0, i1, i2, i3)
	return b.data()
}

// Cylinder returns a cylinder of radius 0.5 and height 1 around the Y axis,
// centered on the origin, with capped ends. Side vertices are colored by
// angle so the "lit-color" VAO shows per-vertex colors.
func Cylinder(segments int) *Data {
	if segments < 3 {
		segments = 3
	}
	var b builder
	rim := func(i int, y float32) (mgl32.Vec3, mgl32.Vec3) {
		a := 2 * math32.Pi * float32(i) / float32(segments)
		c, s := math32.Cos(a), math32.Sin(a)
		return mgl32.Vec3{0.5 * c, y, 0.5 * s}, mgl32.Vec3{c, 0, s}
	}
	for i := 0; i < segments; i++ {
		u0 := float32(i) / float32(segments)
		u1 := float32(i+1) / float32(segments)
		p00, n0 := rim(i, -0.5)
		p01, _ := rim(i, 0.5)
		p10, n1 := rim(i+1, -0.5)
		p11, _ := rim(i+1, 0.5)
		c0 := hueColor(u0)
		c1 := hueColor(u1)
		v0 := b.vertex(p00, n0, mgl32.Vec2{u0, 0}, c0)
		v1 := b.vertex(p01, n0, mgl32.Vec2{u0, 1}, c0)
		v2 := b.vertex(p11, n1, mgl32.Vec2{u1, 1}, c1)
		v3 := b.vertex(p10, n1, mgl32.Vec2{u1, 0}, c1)
		b.quad(v0, v1, v2, v3)
	}
	for _, y := range []float32{0.5, -0.5} {
		n := mgl32.Vec3{0, y * 2, 0}
		center := b.vertex(mgl32.Vec3{0, y, 0}, n, mgl32.Vec2{0.5, 0.5}, white)
		for i := 0; i < segments; i++ {
			p0, _ := rim(i, y)
			p1, _ := rim(i+1, y)
			i0 := b.vertex(p0, n, mgl32.Vec2{0.5 + p0[0], 0.5 + p0[2]}, white)
			i1 := b.vertex(p1, n, mgl32.Vec2{0.5 + p1[0], 0.5 + p1[2]}, white)
			if y > 0 {
				b.tri(center, i1, i0)
			} else {
				b.tri(center, i0, i1)
			}
		}
	}
	return b.data()
}

// Torus returns a ring of major radius R around the Y axis with tube radius
// r. Texture coordinates run once around both circles.
func Torus(R, r float32, rings, sides int) *Data {
	if rings < 3 {
		rings = 3
	}
	if sides < 3 {
		sides = 3
	}
	var b builder
	grid := make([][]uint32, sides+1)
	for i := 0; i <= sides; i++ {
		grid[i] = make([]uint32, rings+1)
		phi := 2 * math32.Pi * float32(i) / float32(sides)
		cp, sp := math32.Cos(phi), math32.Sin(phi)
		for j := 0; j <= rings; j++ {
			theta := 2 * math32.Pi * float32(j) / float32(rings)
			ct, st := math32.Cos(theta), math32.Sin(theta)
			n := mgl32.Vec3{cp * ct, sp, cp * st}
			p := mgl32.Vec3{(R + r*cp) * ct, r * sp, (R + r*cp) * st}
			uv := mgl32.Vec2{float32(j) / float32(rings), float32(i) / float32(sides)}
			grid[i][j] = b.vertex(p, n, uv, white)
		}
	}
	for i := 0; i < sides; i++ {
		for j := 0; j < rings; j++ {
			b.quad(grid[i][j], grid[i+1][j], grid[i+1][j+1], grid[i][j+1])
		}
	}
	return b.data()
}

// hueColor maps t in [0,1] around the color wheel.
func hueColor(t float32) mgl32.Vec4 {
	c := func(offset float32) float32 {
		return 0.5 + 0.5*math32.Cos(2*math32.Pi*(t-offset))
	}
	return mgl32.Vec4{c(0), c(1.0 / 3), c(2.0 / 3), 1}
}
