// Package gaussian builds the lookup tables that approximate the Gaussian
// specular term exp(-(angle/shininess)^2).
//
// A table has one row per shininess step and one column per step of the
// cosine of the angle between the surface normal and the half-angle vector.
// Rows are normalized so that row s holds shininess s/shininessRes.
package gaussian

import (
	"errors"
	"fmt"
	"math"
)

// BaseAngleResolution is the column count of level 0.
const BaseAngleResolution = 64

// DefaultShininessResolution is the row count used by the tutorials.
const DefaultShininessResolution = 128

// ErrResolution is returned for table sizes that cannot be built.
var ErrResolution = errors.New("gaussian: invalid resolution")

// CosAngleResolution returns the column count of a level: 64 * 2^level.
func CosAngleResolution(level int) int {
	if level < 0 {
		level = 0
	}
	return BaseAngleResolution << level
}

// Levels returns the angle resolutions of levels 0..n-1.
func Levels(n int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = CosAngleResolution(i)
	}
	return res
}

// Term returns the Gaussian term for a cosine and a shininess.
//
// Shininess 0 is taken as the limit for shininess -> 0+: the lobe collapses
// to 1 when the angle is exactly 0 and 0 everywhere else. This keeps the
// first table row defined instead of dividing by zero.
func Term(cosAngle, shininess float64) float64 {
	angle := math.Acos(clamp(cosAngle, -1, 1))
	if shininess <= 0 {
		if angle == 0 {
			return 1
		}
		return 0
	}
	exponent := angle / shininess
	return math.Exp(-(exponent * exponent))
}

// Sample quantizes a Gaussian term to an 8-bit texel.
func Sample(term float64) byte {
	return byte(math.Round(clamp(term, 0, 1) * 255))
}

// BuildTable returns an angleRes x shininessRes R8 table laid out row-major,
// texel (a, s) at s*angleRes + a.
func BuildTable(angleRes, shininessRes int) ([]byte, error) {
	if angleRes < 2 || shininessRes < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrResolution, angleRes, shininessRes)
	}
	data := make([]byte, 0, angleRes*shininessRes)
	for s := 0; s < shininessRes; s++ {
		row, err := BuildRow(angleRes, float64(s)/float64(shininessRes))
		if err != nil {
			return nil, err
		}
		data = append(data, row...)
	}
	return data, nil
}

// BuildRow returns the single row of a table for one shininess value.
func BuildRow(angleRes int, shininess float64) ([]byte, error) {
	if angleRes < 2 {
		return nil, fmt.Errorf("%w: %d columns", ErrResolution, angleRes)
	}
	row := make([]byte, angleRes)
	for a := range row {
		row[a] = Sample(Term(float64(a)/float64(angleRes-1), shininess))
	}
	return row, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
