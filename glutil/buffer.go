package glutil

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// UniformBuffer is a GL_UNIFORM_BUFFER of fixed size.
type UniformBuffer struct {
	ID   uint32
	Size int
}

// NewUniformBuffer allocates a dynamic uniform buffer. If data is non-nil
// it must be size bytes and becomes the initial contents.
func NewUniformBuffer(size int, data []byte) (*UniformBuffer, error) {
	if data != nil && len(data) != size {
		return nil, fmt.Errorf("uniform buffer: %d bytes of data for size %d", len(data), size)
	}
	b := &UniformBuffer{Size: size}
	gl.GenBuffers(1, &b.ID)
	gl.BindBuffer(gl.UNIFORM_BUFFER, b.ID)
	if data != nil {
		gl.BufferData(gl.UNIFORM_BUFFER, size, gl.Ptr(data), gl.DYNAMIC_DRAW)
	} else {
		gl.BufferData(gl.UNIFORM_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	}
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	if err := checkCreated("uniform buffer create", b.Delete); err != nil {
		return nil, err
	}
	return b, nil
}

// BindBase binds the whole buffer to a binding point.
func (b *UniformBuffer) BindBase(binding uint32) {
	gl.BindBufferBase(gl.UNIFORM_BUFFER, binding, b.ID)
}

// BindRange binds size bytes starting at offset to a binding point.
// offset must be a multiple of UniformBufferOffsetAlignment.
func (b *UniformBuffer) BindRange(binding uint32, offset, size int) {
	gl.BindBufferRange(gl.UNIFORM_BUFFER, binding, b.ID, offset, size)
}

// Update writes data at offset.
func (b *UniformBuffer) Update(offset int, data []byte) error {
	if offset < 0 || offset+len(data) > b.Size {
		return fmt.Errorf("uniform buffer: write %d..%d past size %d", offset, offset+len(data), b.Size)
	}
	if len(data) == 0 {
		return nil
	}
	gl.BindBuffer(gl.UNIFORM_BUFFER, b.ID)
	gl.BufferSubData(gl.UNIFORM_BUFFER, offset, len(data), gl.Ptr(data))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	return nil
}

// Delete releases the buffer.
func (b *UniformBuffer) Delete() {
	if b.ID != 0 {
		gl.DeleteBuffers(1, &b.ID)
		b.ID = 0
	}
}

var offsetAlignment int32

// UniformBufferOffsetAlignment returns GL_UNIFORM_BUFFER_OFFSET_ALIGNMENT,
// queried on first use.
func UniformBufferOffsetAlignment() int {
	if offsetAlignment == 0 {
		gl.GetIntegerv(gl.UNIFORM_BUFFER_OFFSET_ALIGNMENT, &offsetAlignment)
		if offsetAlignment < 1 {
			offsetAlignment = 1
		}
	}
	return int(offsetAlignment)
}
