package mesh

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-theft-auto/gltut"
)

type xmlMesh struct {
	XMLName    xml.Name       `xml:"mesh"`
	Attributes []xmlAttribute `xml:"attribute"`
	VAOs       []xmlVAO       `xml:"vao"`
	Indices    []xmlIndices   `xml:"indices"`
	Arrays     []xmlArrays    `xml:"arrays"`
}

type xmlAttribute struct {
	Index uint32 `xml:"index,attr"`
	Type  string `xml:"type,attr"`
	Size  int    `xml:"size,attr"`
	Data  string `xml:",chardata"`
}

type xmlVAO struct {
	Name    string `xml:"name,attr"`
	Sources []struct {
		Attrib uint32 `xml:"attrib,attr"`
	} `xml:"source"`
}

type xmlIndices struct {
	Cmd  string `xml:"cmd,attr"`
	Type string `xml:"type,attr"`
	Data string `xml:",chardata"`
}

type xmlArrays struct {
	Cmd   string `xml:"cmd,attr"`
	Start int    `xml:"start,attr"`
	Count int    `xml:"count,attr"`
}

// LoadFile reads and validates a mesh XML file.
func LoadFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &gltut.LoadError{Kind: "mesh", Path: path, Err: err}
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, &gltut.LoadError{Kind: "mesh", Path: path, Err: err}
	}
	gltut.Logger.Debug("mesh parsed", "path", path, "vertices", d.VertexCount(), "commands", len(d.Commands), "vaos", d.VAONames())
	return d, nil
}

// Parse decodes and validates mesh XML. Indexed commands precede array
// commands in the result, each group in document order.
func Parse(r io.Reader) (*Data, error) {
	var xm xmlMesh
	if err := xml.NewDecoder(r).Decode(&xm); err != nil {
		return nil, fmt.Errorf("decode mesh xml: %w", err)
	}

	d := &Data{VAOs: make(map[string][]uint32, len(xm.VAOs))}
	for _, xa := range xm.Attributes {
		typ, norm, err := ParseAttribType(xa.Type)
		if err != nil {
			return nil, err
		}
		values, err := parseNumbers(xa.Data)
		if err != nil {
			return nil, fmt.Errorf("attribute %d: %w", xa.Index, err)
		}
		d.Attributes = append(d.Attributes, Attribute{
			Index:      xa.Index,
			Type:       typ,
			Normalized: norm,
			Size:       xa.Size,
			Values:     values,
		})
	}

	for _, xv := range xm.VAOs {
		if xv.Name == "" {
			return nil, fmt.Errorf("%w: unnamed vao", ErrInvalidMesh)
		}
		sources := make([]uint32, 0, len(xv.Sources))
		for _, s := range xv.Sources {
			sources = append(sources, s.Attrib)
		}
		d.VAOs[xv.Name] = sources
	}

	for _, xi := range xm.Indices {
		prim, err := ParsePrimitive(xi.Cmd)
		if err != nil {
			return nil, err
		}
		typ, err := ParseIndexType(xi.Type)
		if err != nil {
			return nil, err
		}
		values, err := parseNumbers(xi.Data)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
		indices := make([]uint32, len(values))
		for i, v := range values {
			if v < 0 || v != float64(uint32(v)) {
				return nil, fmt.Errorf("%w: index %v", ErrInvalidMesh, v)
			}
			indices[i] = uint32(v)
		}
		d.Commands = append(d.Commands, Command{
			Primitive: prim,
			Indexed:   true,
			IndexType: typ,
			Indices:   indices,
			Count:     len(indices),
		})
	}

	for _, xa := range xm.Arrays {
		prim, err := ParsePrimitive(xa.Cmd)
		if err != nil {
			return nil, err
		}
		d.Commands = append(d.Commands, Command{
			Primitive: prim,
			Start:     xa.Start,
			Count:     xa.Count,
		})
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func parseNumbers(s string) ([]float64, error) {
	fields := strings.Fields(s)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMesh, err)
		}
		out = append(out, v)
	}
	return out, nil
}
