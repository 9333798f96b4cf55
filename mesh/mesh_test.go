package mesh

import (
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gltut"
)

const planeXML = `<?xml version="1.0" encoding="UTF-8"?>
<mesh xmlns="http://www.arcsynthesis.com/gltut/mesh">
	<attribute index="0" type="float" size="3">
		-1 0 1
		1 0 1
		1 0 -1
		-1 0 -1
	</attribute>
	<attribute index="1" type="norm-ubyte" size="4">
		255 255 255 255
		255 0 0 255
		0 255 0 255
		0 0 255 255
	</attribute>
	<vao name="flat">
		<source attrib="0"/>
	</vao>
	<vao name="color">
		<source attrib="0"/>
		<source attrib="1"/>
	</vao>
	<arrays cmd="points" start="0" count="4"/>
	<indices cmd="triangles" type="ushort">0 1 2 0 2 3</indices>
</mesh>`

func TestParse(t *testing.T) {
	d, err := Parse(strings.NewReader(planeXML))
	require.NoError(t, err)

	assert.Equal(t, 4, d.VertexCount())
	require.Len(t, d.Attributes, 2)
	assert.Equal(t, Float, d.Attributes[0].Type)
	assert.False(t, d.Attributes[0].Normalized)

	color := d.Attribute(1)
	require.NotNil(t, color)
	assert.Equal(t, UByte, color.Type)
	assert.True(t, color.Normalized)
	assert.Equal(t, 4, color.Size)
	assert.Nil(t, d.Attribute(7))

	assert.Equal(t, []string{"color", "flat"}, d.VAONames())
	assert.Equal(t, []uint32{0, 1}, d.VAOs["color"])

	// indexed commands first, then arrays
	require.Len(t, d.Commands, 2)
	assert.True(t, d.Commands[0].Indexed)
	assert.Equal(t, Triangles, d.Commands[0].Primitive)
	assert.Equal(t, IndexUShort, d.Commands[0].IndexType)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, d.Commands[0].Indices)
	assert.False(t, d.Commands[1].Indexed)
	assert.Equal(t, Points, d.Commands[1].Primitive)
	assert.Equal(t, 4, d.Commands[1].Count)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want error
	}{
		{
			name: "unknown attribute type",
			xml:  `<mesh><attribute index="0" type="half" size="3">0 0 0</attribute><arrays cmd="points" start="0" count="1"/></mesh>`,
			want: ErrAttribType,
		},
		{
			name: "normalized float",
			xml:  `<mesh><attribute index="0" type="norm-float" size="3">0 0 0</attribute><arrays cmd="points" start="0" count="1"/></mesh>`,
			want: ErrAttribType,
		},
		{
			name: "unknown primitive",
			xml:  `<mesh><attribute index="0" type="float" size="3">0 0 0</attribute><arrays cmd="quads" start="0" count="1"/></mesh>`,
			want: ErrPrimitive,
		},
		{
			name: "unknown index type",
			xml:  `<mesh><attribute index="0" type="float" size="3">0 0 0</attribute><indices cmd="points" type="ulong">0</indices></mesh>`,
			want: ErrIndexType,
		},
		{
			name: "bad number",
			xml:  `<mesh><attribute index="0" type="float" size="3">0 zero 0</attribute><arrays cmd="points" start="0" count="1"/></mesh>`,
			want: ErrInvalidMesh,
		},
		{
			name: "index out of range",
			xml:  `<mesh><attribute index="0" type="float" size="3">0 0 0</attribute><indices cmd="points" type="ubyte">0 1</indices></mesh>`,
			want: ErrInvalidMesh,
		},
		{
			name: "no commands",
			xml:  `<mesh><attribute index="0" type="float" size="3">0 0 0</attribute></mesh>`,
			want: ErrInvalidMesh,
		},
		{
			name: "vao with missing source",
			xml:  `<mesh><attribute index="0" type="float" size="3">0 0 0</attribute><vao name="lit"><source attrib="2"/></vao><arrays cmd="points" start="0" count="1"/></mesh>`,
			want: ErrInvalidMesh,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.xml))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse(strings.NewReader("<mesh><attribute"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plane.xml")
	require.NoError(t, os.WriteFile(path, []byte(planeXML), 0o644))

	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, d.VertexCount())

	_, err = LoadFile(filepath.Join(dir, "missing.xml"))
	require.Error(t, err)
	var le *gltut.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "mesh", le.Kind)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	base := func() *Data {
		return &Data{
			Attributes: []Attribute{
				{Index: 0, Type: Float, Size: 3, Values: []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}},
				{Index: 2, Type: Float, Size: 3, Values: []float64{0, 0, 1, 0, 0, 1, 0, 0, 1}},
			},
			Commands: []Command{{Primitive: Triangles, Indexed: true, IndexType: IndexUByte, Indices: []uint32{0, 1, 2}}},
			VAOs:     map[string][]uint32{"lit": {0, 2}},
		}
	}
	require.NoError(t, base().Validate())

	tests := []struct {
		name   string
		mutate func(d *Data)
	}{
		{"no attributes", func(d *Data) { d.Attributes = nil }},
		{"duplicate index", func(d *Data) { d.Attributes[1].Index = 0 }},
		{"index too large", func(d *Data) { d.Attributes[1].Index = 16 }},
		{"bad size", func(d *Data) { d.Attributes[1].Size = 5 }},
		{"ragged values", func(d *Data) { d.Attributes[1].Values = d.Attributes[1].Values[:8] }},
		{"vertex count mismatch", func(d *Data) { d.Attributes[1].Values = d.Attributes[1].Values[:6] }},
		{"array past end", func(d *Data) { d.Commands = []Command{{Primitive: Points, Start: 1, Count: 3}} }},
		{"negative start", func(d *Data) { d.Commands = []Command{{Primitive: Points, Start: -1, Count: 1}} }},
		{"empty indices", func(d *Data) { d.Commands[0].Indices = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base()
			tt.mutate(d)
			assert.ErrorIs(t, d.Validate(), ErrInvalidMesh)
		})
	}
}

func TestIndexFitsType(t *testing.T) {
	values := make([]float64, 3*300)
	d := &Data{
		Attributes: []Attribute{{Index: 0, Type: Float, Size: 3, Values: values}},
		Commands:   []Command{{Primitive: Points, Indexed: true, IndexType: IndexUByte, Indices: []uint32{299}}},
	}
	assert.ErrorIs(t, d.Validate(), ErrInvalidMesh)

	d.Commands[0].IndexType = IndexUShort
	assert.NoError(t, d.Validate())
}

func TestParseAttribType(t *testing.T) {
	typ, norm, err := ParseAttribType("norm-short")
	require.NoError(t, err)
	assert.Equal(t, Short, typ)
	assert.True(t, norm)
	assert.Equal(t, 2, typ.Size())

	typ, norm, err = ParseAttribType("uint")
	require.NoError(t, err)
	assert.Equal(t, UInt, typ)
	assert.False(t, norm)
	assert.Equal(t, 4, typ.Size())
}

func TestAppendValues(t *testing.T) {
	le := binary.LittleEndian

	b := appendValues(nil, Float, []float64{1.5})
	require.Len(t, b, 4)
	assert.Equal(t, float32(1.5), math.Float32frombits(le.Uint32(b)))

	b = appendValues(nil, Short, []float64{-2})
	require.Len(t, b, 2)
	assert.Equal(t, int16(-2), int16(le.Uint16(b)))

	b = appendValues(nil, UByte, []float64{255, 7})
	assert.Equal(t, []byte{255, 7}, b)

	b = appendIndices(nil, IndexUShort, []uint32{1, 258})
	assert.Equal(t, []byte{1, 0, 2, 1}, b)
}

// checkWinding asserts every triangle is clockwise when seen from the side
// its vertex normals point to.
func checkWinding(t *testing.T, d *Data) {
	t.Helper()
	require.NoError(t, d.Validate())
	pos := d.Attribute(AttribPosition)
	nrm := d.Attribute(AttribNormal)
	require.NotNil(t, pos)
	require.NotNil(t, nrm)

	vec := func(a *Attribute, i uint32) mgl32.Vec3 {
		v := a.Values[int(i)*3:]
		return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
	}
	idx := d.Commands[0].Indices
	require.Zero(t, len(idx)%3)
	for i := 0; i < len(idx); i += 3 {
		p0, p1, p2 := vec(pos, idx[i]), vec(pos, idx[i+1]), vec(pos, idx[i+2])
		face := p1.Sub(p0).Cross(p2.Sub(p0))
		if face.Len() < 1e-6 {
			continue
		}
		n := vec(nrm, idx[i]).Add(vec(nrm, idx[i+1])).Add(vec(nrm, idx[i+2]))
		if face.Dot(n) >= 0 {
			t.Fatalf("triangle %d (%v %v %v) is not clockwise", i/3, idx[i], idx[i+1], idx[i+2])
		}
	}
}

func TestGenerators(t *testing.T) {
	tests := []struct {
		name     string
		data     *Data
		vertices int
		indices  int
	}{
		{"cube", Cube(), 24, 36},
		{"plane", Plane(2), 4, 6},
		{"cylinder", Cylinder(8), 8*4 + 2*(1+8*2), 8*6 + 2*8*3},
		{"torus", Torus(1, 0.25, 8, 6), 9 * 7, 8 * 6 * 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.vertices, tt.data.VertexCount())
			require.Len(t, tt.data.Commands, 1)
			assert.Len(t, tt.data.Commands[0].Indices, tt.indices)
			assert.Equal(t, []string{"color", "flat", "lit", "lit-color", "lit-tex"}, tt.data.VAONames())
			checkWinding(t, tt.data)
		})
	}
}

func TestGeneratorsClampSegments(t *testing.T) {
	assert.Equal(t, Cylinder(3).VertexCount(), Cylinder(1).VertexCount())
	assert.Equal(t, Torus(1, 0.5, 3, 3).VertexCount(), Torus(1, 0.5, 0, 0).VertexCount())
}

func TestPlaneExtent(t *testing.T) {
	pos := Plane(30).Attribute(AttribPosition)
	for i := 0; i < pos.VertexCount(); i++ {
		assert.InDelta(t, 15, math.Abs(pos.Values[i*3]), 1e-6)
		assert.InDelta(t, 0, pos.Values[i*3+1], 1e-6)
		assert.InDelta(t, 15, math.Abs(pos.Values[i*3+2]), 1e-6)
	}
}

func TestRequireVAOs(t *testing.T) {
	m := &Mesh{named: map[string]uint32{"lit": 1, "lit-tex": 2}}
	assert.True(t, m.Has("lit"))
	assert.False(t, m.Has("flat"))

	require.NoError(t, m.Require("lit", "lit-tex"))
	err := m.Require("lit", "lit-color")
	assert.ErrorIs(t, err, ErrInvalidMesh)
	assert.Contains(t, err.Error(), `"lit-color"`)
}
