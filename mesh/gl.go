package mesh

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gltut"
	"github.com/go-theft-auto/gltut/glutil"
)

type drawCall struct {
	mode      uint32
	indexed   bool
	indexType uint32
	count     int32
	first     int32
	offset    uintptr
}

type attribLayout struct {
	index      uint32
	size       int32
	xtype      uint32
	normalized bool
	offset     uintptr
}

// Mesh is an uploaded Data: one vertex buffer, one index buffer and one
// VAO per name.
type Mesh struct {
	vbo, ibo uint32
	named    map[string]uint32
	calls    []drawCall
	warned   map[string]bool
}

// Load reads a mesh file and uploads it.
func Load(path string) (*Mesh, error) {
	d, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Upload(d)
}

// Upload validates d and copies it to GL buffers.
func Upload(d *Data) (*Mesh, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	m := &Mesh{named: make(map[string]uint32, len(d.VAOs)), warned: make(map[string]bool)}

	// Attributes are packed one after another, each 4-byte aligned.
	var vertexBytes []byte
	layouts := make(map[uint32]attribLayout, len(d.Attributes))
	for i := range d.Attributes {
		a := &d.Attributes[i]
		for len(vertexBytes)%4 != 0 {
			vertexBytes = append(vertexBytes, 0)
		}
		layouts[a.Index] = attribLayout{
			index:      a.Index,
			size:       int32(a.Size),
			xtype:      glAttribType(a.Type),
			normalized: a.Normalized,
			offset:     uintptr(len(vertexBytes)),
		}
		vertexBytes = appendValues(vertexBytes, a.Type, a.Values)
	}

	var indexBytes []byte
	for _, c := range d.Commands {
		call := drawCall{mode: glPrimitive(c.Primitive), indexed: c.Indexed}
		if c.Indexed {
			for len(indexBytes)%4 != 0 {
				indexBytes = append(indexBytes, 0)
			}
			call.indexType = glIndexType(c.IndexType)
			call.count = int32(len(c.Indices))
			call.offset = uintptr(len(indexBytes))
			indexBytes = appendIndices(indexBytes, c.IndexType, c.Indices)
		} else {
			call.first = int32(c.Start)
			call.count = int32(c.Count)
		}
		m.calls = append(m.calls, call)
	}

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertexBytes), gl.Ptr(vertexBytes), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if len(indexBytes) > 0 {
		gl.GenBuffers(1, &m.ibo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indexBytes), gl.Ptr(indexBytes), gl.STATIC_DRAW)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	}

	for _, name := range d.VAONames() {
		m.named[name] = m.buildVAO(d.VAOs[name], layouts)
	}

	if err := glutil.CheckError("mesh upload"); err != nil {
		m.Delete()
		return nil, err
	}
	gltut.Logger.Debug("mesh uploaded", "vertexBytes", len(vertexBytes), "indexBytes", len(indexBytes), "vaos", d.VAONames())
	return m, nil
}

func (m *Mesh) buildVAO(sources []uint32, layouts map[uint32]attribLayout) uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	for _, idx := range sources {
		l := layouts[idx]
		gl.EnableVertexAttribArray(l.index)
		gl.VertexAttribPointerWithOffset(l.index, l.size, l.xtype, l.normalized, 0, l.offset)
	}
	if m.ibo != 0 {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	}
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao
}

// Has reports whether the mesh has a VAO called name.
func (m *Mesh) Has(name string) bool {
	_, ok := m.named[name]
	return ok
}

// Require returns an error naming the first of names the mesh has no VAO
// for.
func (m *Mesh) Require(names ...string) error {
	for _, name := range names {
		if !m.Has(name) {
			return fmt.Errorf("%w: missing vao %q", ErrInvalidMesh, name)
		}
	}
	return nil
}

// RenderVAO draws every command through the named VAO. An unknown name is
// logged once and draws nothing.
func (m *Mesh) RenderVAO(name string) {
	vao, ok := m.named[name]
	if !ok {
		if !m.warned[name] {
			m.warned[name] = true
			gltut.Logger.Warn("mesh has no such vao", "vao", name)
		}
		return
	}
	m.draw(vao)
}

func (m *Mesh) draw(vao uint32) {
	gl.BindVertexArray(vao)
	for _, c := range m.calls {
		if c.indexed {
			gl.DrawElementsWithOffset(c.mode, c.count, c.indexType, c.offset)
		} else {
			gl.DrawArrays(c.mode, c.first, c.count)
		}
	}
	gl.BindVertexArray(0)
}

// Delete releases the mesh's GL objects.
func (m *Mesh) Delete() {
	for name, vao := range m.named {
		gl.DeleteVertexArrays(1, &vao)
		delete(m.named, name)
	}
	if m.ibo != 0 {
		gl.DeleteBuffers(1, &m.ibo)
		m.ibo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
}

func appendValues(dst []byte, t AttribType, values []float64) []byte {
	le := binary.LittleEndian
	for _, v := range values {
		switch t {
		case Float:
			dst = le.AppendUint32(dst, math.Float32bits(float32(v)))
		case Int:
			dst = le.AppendUint32(dst, uint32(int32(v)))
		case UInt:
			dst = le.AppendUint32(dst, uint32(v))
		case Short:
			dst = le.AppendUint16(dst, uint16(int16(v)))
		case UShort:
			dst = le.AppendUint16(dst, uint16(v))
		case Byte:
			dst = append(dst, byte(int8(v)))
		case UByte:
			dst = append(dst, byte(v))
		}
	}
	return dst
}

func appendIndices(dst []byte, t IndexType, indices []uint32) []byte {
	le := binary.LittleEndian
	for _, idx := range indices {
		switch t {
		case IndexUByte:
			dst = append(dst, byte(idx))
		case IndexUShort:
			dst = le.AppendUint16(dst, uint16(idx))
		default:
			dst = le.AppendUint32(dst, idx)
		}
	}
	return dst
}

func glAttribType(t AttribType) uint32 {
	switch t {
	case Int:
		return gl.INT
	case UInt:
		return gl.UNSIGNED_INT
	case Short:
		return gl.SHORT
	case UShort:
		return gl.UNSIGNED_SHORT
	case Byte:
		return gl.BYTE
	case UByte:
		return gl.UNSIGNED_BYTE
	default:
		return gl.FLOAT
	}
}

func glIndexType(t IndexType) uint32 {
	switch t {
	case IndexUByte:
		return gl.UNSIGNED_BYTE
	case IndexUShort:
		return gl.UNSIGNED_SHORT
	default:
		return gl.UNSIGNED_INT
	}
}

func glPrimitive(p Primitive) uint32 {
	switch p {
	case TriangleStrip:
		return gl.TRIANGLE_STRIP
	case TriangleFan:
		return gl.TRIANGLE_FAN
	case Lines:
		return gl.LINES
	case LineStrip:
		return gl.LINE_STRIP
	case LineLoop:
		return gl.LINE_LOOP
	case Points:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}

// String describes the mesh for logs.
func (m *Mesh) String() string {
	return fmt.Sprintf("mesh(vbo=%d, vaos=%d, commands=%d)", m.vbo, len(m.named), len(m.calls))
}
