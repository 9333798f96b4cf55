// Package shaders embeds the GLSL sources of the tutorials and fixes the
// binding points they share with the Go side.
package shaders

import "embed"

// FS holds tut14/*.vert|frag and tut10/*.vert|frag.
//
//go:embed tut14 tut10
var FS embed.FS

// Uniform block binding points.
const (
	BindingMaterial   = 0
	BindingLight      = 1
	BindingProjection = 2
)

// Texture units.
const (
	UnitGaussian  = 0
	UnitShininess = 1
)

// Block and sampler names as declared in the sources.
const (
	BlockProjection = "Projection"
	BlockMaterial   = "Material"
	BlockLight      = "Light"

	SamplerGaussian  = "gaussianTexture"
	SamplerShininess = "shininessTexture"
)
