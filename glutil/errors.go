package glutil

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gltut"
)

type errorKey struct {
	op   string
	code uint32
}

// reported remembers which (op, code) pairs were already logged.
var reported = make(map[errorKey]bool)

// checkError is the check run after creating an object; tests replace it.
var checkError = CheckError

// checkCreated checks for errors after op and calls del on the new object
// when there were any.
func checkCreated(op string, del func()) error {
	if err := checkError(op); err != nil {
		del()
		return err
	}
	return nil
}

// CheckError drains glGetError after op and logs each distinct error once.
// It returns the first error seen, if any.
func CheckError(op string) error {
	var first error
	for i := 0; i < 8; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		if first == nil {
			first = fmt.Errorf("%s: %s", op, ErrorName(code))
		}
		key := errorKey{op: op, code: code}
		if reported[key] {
			continue
		}
		reported[key] = true
		gltut.Logger.Warn("gl error", "op", op, "error", ErrorName(code))
	}
	return first
}

// ErrorName returns the symbolic name of a glGetError code.
func ErrorName(code uint32) string {
	switch code {
	case gl.NO_ERROR:
		return "GL_NO_ERROR"
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("GL error 0x%04X", code)
	}
}
