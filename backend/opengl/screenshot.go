package opengl

import (
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// captureJPEG reads the back buffer and writes it to path.
func captureJPEG(path string, width, height int) error {
	pixels := make([]byte, width*height*4)
	gl.ReadBuffer(gl.BACK)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodeJPEG(f, pixels, width, height); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// encodeJPEG writes bottom-up RGBA rows (the glReadPixels order) as a
// top-down JPEG image.
func encodeJPEG(w io.Writer, pixels []byte, width, height int) error {
	if len(pixels) != width*height*4 {
		return fmt.Errorf("have %d bytes for %dx%d RGBA", len(pixels), width, height)
	}
	flipRows(pixels, width*4, height)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
}

// flipRows reverses the row order of pix in place.
func flipRows(pix []byte, rowLen, rows int) {
	tmp := make([]byte, rowLen)
	for y := 0; y < rows/2; y++ {
		top := y * rowLen
		bot := (rows - 1 - y) * rowLen
		copy(tmp, pix[top:top+rowLen])
		copy(pix[top:top+rowLen], pix[bot:bot+rowLen])
		copy(pix[bot:bot+rowLen], tmp)
	}
}
