// Package texture turns image files into single-channel pixel data for the
// shininess texture.
package texture

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/chewxy/math32"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/go-theft-auto/gltut"
)

// R8 is 8-bit single-channel pixel data. Row 0 is the bottom row, as
// glTexImage2D expects.
type R8 struct {
	Width, Height int
	Pix           []byte
}

// At returns the value at column x of row y (counted from the bottom).
func (t *R8) At(x, y int) byte {
	return t.Pix[y*t.Width+x]
}

// LoadR8 decodes the red channel of an image file. PNG, JPEG, GIF, BMP,
// TIFF and WebP are recognized.
func LoadR8(path string) (*R8, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &gltut.LoadError{Kind: "image", Path: path, Err: err}
	}
	defer f.Close()

	t, format, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, &gltut.LoadError{Kind: "image", Path: path, Err: err}
	}
	gltut.Logger.Debug("image loaded", "path", path, "format", format, "width", t.Width, "height", t.Height)
	return t, nil
}

// Decode reads an image and keeps its red channel. It returns the format
// name reported by image.Decode.
func Decode(r io.Reader) (*R8, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return FromImage(img), format, nil
}

// FromImage extracts the red channel of img, flipping it so that the
// image's top row becomes the last row.
func FromImage(img image.Image) *R8 {
	b := img.Bounds()
	t := &R8{Width: b.Dx(), Height: b.Dy(), Pix: make([]byte, b.Dx()*b.Dy())}
	if g, ok := img.(*image.Gray); ok {
		for y := 0; y < t.Height; y++ {
			src := g.Pix[y*g.Stride : y*g.Stride+t.Width]
			copy(t.Pix[(t.Height-1-y)*t.Width:], src)
		}
		return t
	}
	for y := 0; y < t.Height; y++ {
		row := (t.Height - 1 - y) * t.Width
		for x := 0; x < t.Width; x++ {
			r, _, _, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			t.Pix[row+x] = byte(r >> 8)
		}
	}
	return t
}

// Shininess returns a procedural shininess map used when no image is
// configured: bands of rough and glossy regions with values in [0.1, 0.6].
func Shininess(width, height int) *R8 {
	t := &R8{Width: width, Height: height, Pix: make([]byte, width*height)}
	for y := 0; y < height; y++ {
		v := float32(y) / float32(height)
		for x := 0; x < width; x++ {
			u := float32(x) / float32(width)
			s := 0.35 + 0.25*math32.Sin(2*math32.Pi*4*u)*math32.Cos(2*math32.Pi*2*v)
			t.Pix[y*width+x] = byte(math32.Round(s * 255))
		}
	}
	return t
}
