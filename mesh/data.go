// Package mesh loads tutorial meshes and renders them by named vertex array.
//
// A mesh is a set of vertex attributes, a list of draw commands (indexed or
// plain arrays) and named VAOs that select a subset of the attributes, such
// as "lit" (position + normal) or "flat" (position only). Data is the
// GL-free description; Mesh is its uploaded form.
package mesh

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Attribute slots shared by the tutorial shaders.
const (
	AttribPosition = 0
	AttribColor    = 1
	AttribNormal   = 2
	AttribTexCoord = 5
)

var (
	ErrAttribType  = errors.New("mesh: unknown attribute type")
	ErrIndexType   = errors.New("mesh: unknown index type")
	ErrPrimitive   = errors.New("mesh: unknown primitive")
	ErrInvalidMesh = errors.New("mesh: invalid mesh")
)

// AttribType is the component type of a vertex attribute.
type AttribType int

const (
	Float AttribType = iota
	Int
	UInt
	Short
	UShort
	Byte
	UByte
)

var attribTypeNames = map[string]AttribType{
	"float":  Float,
	"int":    Int,
	"uint":   UInt,
	"short":  Short,
	"ushort": UShort,
	"byte":   Byte,
	"ubyte":  UByte,
}

// Size returns the byte size of one component.
func (t AttribType) Size() int {
	switch t {
	case Float, Int, UInt:
		return 4
	case Short, UShort:
		return 2
	default:
		return 1
	}
}

// ParseAttribType parses "float", "ushort", "norm-ubyte" and so on. The
// second result reports a "norm-" prefix.
func ParseAttribType(s string) (AttribType, bool, error) {
	norm := strings.HasPrefix(s, "norm-")
	t, ok := attribTypeNames[strings.TrimPrefix(s, "norm-")]
	if !ok || (norm && t == Float) {
		return 0, false, fmt.Errorf("%w: %q", ErrAttribType, s)
	}
	return t, norm, nil
}

// IndexType is the element type of an index list.
type IndexType int

const (
	IndexUByte IndexType = iota
	IndexUShort
	IndexUInt
)

// Size returns the byte size of one index.
func (t IndexType) Size() int {
	switch t {
	case IndexUByte:
		return 1
	case IndexUShort:
		return 2
	default:
		return 4
	}
}

// ParseIndexType parses "ubyte", "ushort" or "uint".
func ParseIndexType(s string) (IndexType, error) {
	switch s {
	case "ubyte":
		return IndexUByte, nil
	case "ushort":
		return IndexUShort, nil
	case "uint":
		return IndexUInt, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrIndexType, s)
}

// Primitive is the topology of a draw command.
type Primitive int

const (
	Triangles Primitive = iota
	TriangleStrip
	TriangleFan
	Lines
	LineStrip
	LineLoop
	Points
)

var primitiveNames = map[string]Primitive{
	"triangles":  Triangles,
	"tri-strip":  TriangleStrip,
	"tri-fan":    TriangleFan,
	"lines":      Lines,
	"line-strip": LineStrip,
	"line-loop":  LineLoop,
	"points":     Points,
}

// ParsePrimitive parses a command name such as "triangles" or "tri-strip".
func ParsePrimitive(s string) (Primitive, error) {
	p, ok := primitiveNames[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrPrimitive, s)
	}
	return p, nil
}

// Attribute is one vertex attribute; Values holds Size components per vertex.
type Attribute struct {
	Index      uint32
	Type       AttribType
	Normalized bool
	Size       int
	Values     []float64
}

// VertexCount returns the number of vertices the attribute holds.
func (a *Attribute) VertexCount() int {
	if a.Size == 0 {
		return 0
	}
	return len(a.Values) / a.Size
}

// ByteSize returns the packed size of the attribute data.
func (a *Attribute) ByteSize() int {
	return len(a.Values) * a.Type.Size()
}

// Command is a single draw call. Indexed commands draw Indices; array
// commands draw Count vertices starting at Start.
type Command struct {
	Primitive Primitive
	Indexed   bool
	IndexType IndexType
	Indices   []uint32
	Start     int
	Count     int
}

// Data is a complete GL-free mesh description.
type Data struct {
	Attributes []Attribute
	Commands   []Command
	// VAOs maps a name to the attribute indices it enables.
	VAOs map[string][]uint32
}

// VertexCount returns the shared vertex count of the attributes.
func (d *Data) VertexCount() int {
	if len(d.Attributes) == 0 {
		return 0
	}
	return d.Attributes[0].VertexCount()
}

// Attribute returns the attribute bound to index, or nil.
func (d *Data) Attribute(index uint32) *Attribute {
	for i := range d.Attributes {
		if d.Attributes[i].Index == index {
			return &d.Attributes[i]
		}
	}
	return nil
}

// VAONames returns the named VAOs in sorted order.
func (d *Data) VAONames() []string {
	names := make([]string, 0, len(d.VAOs))
	for name := range d.VAOs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the mesh for consistency.
func (d *Data) Validate() error {
	if len(d.Attributes) == 0 {
		return fmt.Errorf("%w: no attributes", ErrInvalidMesh)
	}
	if len(d.Commands) == 0 {
		return fmt.Errorf("%w: no render commands", ErrInvalidMesh)
	}

	seen := make(map[uint32]bool, len(d.Attributes))
	vertices := d.Attributes[0].VertexCount()
	for i := range d.Attributes {
		a := &d.Attributes[i]
		if a.Index >= 16 {
			return fmt.Errorf("%w: attribute index %d out of range", ErrInvalidMesh, a.Index)
		}
		if seen[a.Index] {
			return fmt.Errorf("%w: attribute %d defined twice", ErrInvalidMesh, a.Index)
		}
		seen[a.Index] = true
		if a.Size < 1 || a.Size > 4 {
			return fmt.Errorf("%w: attribute %d size %d", ErrInvalidMesh, a.Index, a.Size)
		}
		if len(a.Values) == 0 || len(a.Values)%a.Size != 0 {
			return fmt.Errorf("%w: attribute %d has %d values for size %d", ErrInvalidMesh, a.Index, len(a.Values), a.Size)
		}
		if a.VertexCount() != vertices {
			return fmt.Errorf("%w: attribute %d has %d vertices, want %d", ErrInvalidMesh, a.Index, a.VertexCount(), vertices)
		}
	}

	for name, sources := range d.VAOs {
		for _, idx := range sources {
			if !seen[idx] {
				return fmt.Errorf("%w: vao %q uses missing attribute %d", ErrInvalidMesh, name, idx)
			}
		}
	}

	for i, c := range d.Commands {
		if !c.Indexed {
			if c.Start < 0 || c.Count < 0 || c.Start+c.Count > vertices {
				return fmt.Errorf("%w: command %d draws %d..%d of %d vertices", ErrInvalidMesh, i, c.Start, c.Start+c.Count, vertices)
			}
			continue
		}
		if len(c.Indices) == 0 {
			return fmt.Errorf("%w: command %d has no indices", ErrInvalidMesh, i)
		}
		limit := uint64(1) << (8 * c.IndexType.Size())
		for _, idx := range c.Indices {
			if int(idx) >= vertices || uint64(idx) >= limit {
				return fmt.Errorf("%w: command %d index %d out of range", ErrInvalidMesh, i, idx)
			}
		}
	}
	return nil
}
