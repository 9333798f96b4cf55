// Package tut14 is the "Material Texture" tutorial: a glossy object lit by
// a directional light and an orbiting point light, with the specular term
// taken from a Gaussian lookup texture, a shininess texture or computed per
// fragment.
package tut14

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/gltut/gaussian"
	"github.com/go-theft-auto/gltut/ubo"
)

// ErrSettings is returned for settings the tutorial cannot run with.
var ErrSettings = errors.New("tut14: invalid settings")

// NumberOfMaterials is the number of material slots in the material
// buffer. A settings file may change the materials but not their count.
const NumberOfMaterials = 2

// Material is a YAML-friendly ubo.MaterialBlock.
type Material struct {
	Diffuse   [4]float32 `yaml:"diffuse"`
	Specular  [4]float32 `yaml:"specular"`
	Shininess float32    `yaml:"shininess"`
}

// Block converts m to its uniform block form.
func (m Material) Block() ubo.MaterialBlock {
	return ubo.MaterialBlock{
		DiffuseColor:      mgl32.Vec4(m.Diffuse),
		SpecularColor:     mgl32.Vec4(m.Specular),
		SpecularShininess: m.Shininess,
	}
}

// Settings configures the tutorial. Zero values are not defaults; start
// from DefaultSettings and overlay a YAML file with gltut.LoadYAML.
type Settings struct {
	LightRadius       float32 `yaml:"lightRadius"`
	LightHeight       float32 `yaml:"lightHeight"`
	HalfLightDistance float32 `yaml:"halfLightDistance"`
	// LoopSeconds is the orbit period of the point light.
	LoopSeconds float32 `yaml:"loopSeconds"`

	GaussianLevels      int `yaml:"gaussianLevels"`
	ShininessResolution int `yaml:"shininessResolution"`

	// Materials holds exactly NumberOfMaterials entries.
	Materials []Material `yaml:"materials"`

	// ShininessTexture is an image file; empty selects a procedural map.
	ShininessTexture string `yaml:"shininessTexture"`
	// Mesh is a mesh XML file for the main object; empty selects a torus.
	// It needs "lit" and "lit-tex" VAOs.
	Mesh string `yaml:"mesh"`
}

// DefaultSettings returns the tutorial's stock configuration.
func DefaultSettings() Settings {
	gold := [4]float32{1, 0.673, 0.043, 1}
	return Settings{
		LightRadius:         3,
		LightHeight:         1,
		HalfLightDistance:   25,
		LoopSeconds:         6,
		GaussianLevels:      4,
		ShininessResolution: gaussian.DefaultShininessResolution,
		Materials: []Material{
			{
				Diffuse:   gold,
				Specular:  [4]float32{gold[0] * 0.4, gold[1] * 0.4, gold[2] * 0.4, gold[3] * 0.4},
				Shininess: 0.125,
			},
			{
				Diffuse:   [4]float32{0.01, 0.01, 0.01, 1},
				Specular:  [4]float32{0.99, 0.99, 0.99, 1},
				Shininess: 0.125,
			},
		},
	}
}

// Validate checks that the digit keys can address every texture level and
// material and that the light parameters are usable.
func (s Settings) Validate() error {
	switch {
	case s.GaussianLevels < 1:
		return fmt.Errorf("%w: gaussianLevels %d", ErrSettings, s.GaussianLevels)
	case len(s.Materials) != NumberOfMaterials:
		return fmt.Errorf("%w: %d materials, want %d", ErrSettings, len(s.Materials), NumberOfMaterials)
	case s.GaussianLevels+len(s.Materials) > 9:
		return fmt.Errorf("%w: %d texture levels and %d materials do not fit keys 1-9",
			ErrSettings, s.GaussianLevels, len(s.Materials))
	case s.ShininessResolution < 1:
		return fmt.Errorf("%w: shininessResolution %d", ErrSettings, s.ShininessResolution)
	case s.HalfLightDistance <= 0:
		return fmt.Errorf("%w: halfLightDistance %v", ErrSettings, s.HalfLightDistance)
	case s.LoopSeconds <= 0:
		return fmt.Errorf("%w: loopSeconds %v", ErrSettings, s.LoopSeconds)
	}
	return nil
}

// LightAttenuation is the inverse-square attenuation constant that halves
// the point light's intensity at HalfLightDistance.
func (s Settings) LightAttenuation() float32 {
	return 1 / (s.HalfLightDistance * s.HalfLightDistance)
}
