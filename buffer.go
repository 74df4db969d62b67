package safegl

import (
	"github.com/gogpu/safegl/driver"
)

// Buffer owns one driver-side buffer object handle.
//
// Buffers are created through Context.CreateBuffer and freed exactly once
// by Destroy. A Buffer must not be copied; pass it by pointer.
type Buffer struct {
	fns       driver.Functions
	id        uint32
	destroyed bool
}

// CreateBuffer asks the driver for a new buffer object.
// A zero handle from the driver is reported as ErrCreateFailed.
func (c *Context) CreateBuffer() (*Buffer, error) {
	id := c.fns.GenBuffer()
	c.check("GenBuffer")
	if id == 0 {
		return nil, ErrCreateFailed
	}
	return &Buffer{fns: c.fns, id: id}, nil
}

// ID returns the raw driver handle, or 0 if the buffer was destroyed.
func (b *Buffer) ID() uint32 {
	if b.destroyed {
		return 0
	}
	return b.id
}

// Destroy deletes the driver-side buffer object.
// Destroy is idempotent; only the first call reaches the driver.
func (b *Buffer) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.fns.DeleteBuffer(b.id)
}

// ArrayBufferBinding is evidence that a specific buffer is bound to the
// array-buffer target. It is the only value exposing operations that act
// on the currently bound array buffer. Close it to return the target's
// binder to the Context.
type ArrayBufferBinding struct {
	ctx      *Context
	buf      *Buffer
	released bool
}

// BindArrayBuffer binds buf to the array-buffer target.
//
// The target's binder is lent to the returned binding until Close; a
// second bind to the same target before that fails with ErrTargetBound.
// Rebinding the same buffer afterwards is legal.
func (c *Context) BindArrayBuffer(buf *Buffer) (*ArrayBufferBinding, error) {
	if buf == nil {
		return nil, ErrNilObject
	}
	if buf.destroyed {
		return nil, ErrObjectDestroyed
	}
	if err := c.arrayBuffer.acquire(); err != nil {
		return nil, err
	}
	c.fns.BindBuffer(driver.ARRAY_BUFFER, buf.id)
	c.check("BindBuffer")
	return &ArrayBufferBinding{ctx: c, buf: buf}, nil
}

// WithArrayBuffer binds buf, runs fn, and closes the binding on every
// exit path.
func (c *Context) WithArrayBuffer(buf *Buffer, fn func(*ArrayBufferBinding) error) error {
	binding, err := c.BindArrayBuffer(buf)
	if err != nil {
		return err
	}
	defer binding.Close()
	return fn(binding)
}

// Buffer returns the bound buffer.
func (b *ArrayBufferBinding) Buffer() *Buffer {
	return b.buf
}

// BufferData uploads the vertex data into the bound buffer's data store.
func (b *ArrayBufferBinding) BufferData(data VertexData, usage BufferUsage) error {
	if b.released {
		return ErrBindingReleased
	}
	if b.buf.destroyed {
		return ErrObjectDestroyed
	}
	b.ctx.fns.BufferData(driver.ARRAY_BUFFER, data.VertexBytes(), usage.glEnum())
	b.ctx.check("BufferData")
	return nil
}

// BufferBytes uploads raw bytes into the bound buffer's data store.
func (b *ArrayBufferBinding) BufferBytes(data []byte, usage BufferUsage) error {
	if b.released {
		return ErrBindingReleased
	}
	if b.buf.destroyed {
		return ErrObjectDestroyed
	}
	b.ctx.fns.BufferData(driver.ARRAY_BUFFER, data, usage.glEnum())
	b.ctx.check("BufferData")
	return nil
}

// VertexAttribPointer points the attribute at the bound buffer's data,
// laid out per datum with the given stride and offset in bytes.
func (b *ArrayBufferBinding) VertexAttribPointer(attrib ProgramAttrib, datum VertexDatum, stride, offset int32) error {
	if b.released {
		return ErrBindingReleased
	}
	if b.buf.destroyed {
		return ErrObjectDestroyed
	}
	b.ctx.fns.VertexAttribPointer(attrib.Index, datum.Components,
		datum.Type.glEnum(), datum.Normalized, stride, offset)
	b.ctx.check("VertexAttribPointer")
	return nil
}

// Close unbinds nothing driver-side (rebinding is how the target
// changes) but returns the array-buffer binder to the Context and
// invalidates the binding. Close is idempotent.
func (b *ArrayBufferBinding) Close() error {
	if b.released {
		return nil
	}
	b.released = true
	b.ctx.arrayBuffer.release()
	return nil
}

// ElementArrayBufferBinding is evidence that a specific buffer is bound
// to the element-array-buffer target.
type ElementArrayBufferBinding struct {
	ctx      *Context
	buf      *Buffer
	released bool
}

// BindElementArrayBuffer binds buf to the element-array-buffer target.
// The binding rules match BindArrayBuffer.
func (c *Context) BindElementArrayBuffer(buf *Buffer) (*ElementArrayBufferBinding, error) {
	if buf == nil {
		return nil, ErrNilObject
	}
	if buf.destroyed {
		return nil, ErrObjectDestroyed
	}
	if err := c.elementArrayBuffer.acquire(); err != nil {
		return nil, err
	}
	c.fns.BindBuffer(driver.ELEMENT_ARRAY_BUFFER, buf.id)
	c.check("BindBuffer")
	return &ElementArrayBufferBinding{ctx: c, buf: buf}, nil
}

// WithElementArrayBuffer binds buf, runs fn, and closes the binding on
// every exit path.
func (c *Context) WithElementArrayBuffer(buf *Buffer, fn func(*ElementArrayBufferBinding) error) error {
	binding, err := c.BindElementArrayBuffer(buf)
	if err != nil {
		return err
	}
	defer binding.Close()
	return fn(binding)
}

// Buffer returns the bound buffer.
func (b *ElementArrayBufferBinding) Buffer() *Buffer {
	return b.buf
}

// BufferData uploads the index data into the bound buffer's data store.
func (b *ElementArrayBufferBinding) BufferData(data IndexData, usage BufferUsage) error {
	if b.released {
		return ErrBindingReleased
	}
	if b.buf.destroyed {
		return ErrObjectDestroyed
	}
	b.ctx.fns.BufferData(driver.ELEMENT_ARRAY_BUFFER, data.IndexBytes(), usage.glEnum())
	b.ctx.check("BufferData")
	return nil
}

// BufferBytes uploads raw bytes into the bound buffer's data store.
func (b *ElementArrayBufferBinding) BufferBytes(data []byte, usage BufferUsage) error {
	if b.released {
		return ErrBindingReleased
	}
	if b.buf.destroyed {
		return ErrObjectDestroyed
	}
	b.ctx.fns.BufferData(driver.ELEMENT_ARRAY_BUFFER, data, usage.glEnum())
	b.ctx.check("BufferData")
	return nil
}

// DrawElements renders count indices of the given type, read from the
// bound index buffer starting at the byte offset.
func (b *ElementArrayBufferBinding) DrawElements(mode DrawingMode, count int, indexType DataType, offset int32) error {
	if b.released {
		return ErrBindingReleased
	}
	if b.buf.destroyed {
		return ErrObjectDestroyed
	}
	b.ctx.fns.DrawElements(mode.glEnum(), int32(count), indexType.glEnum(), offset)
	b.ctx.check("DrawElements")
	return nil
}

// Close returns the element-array-buffer binder to the Context and
// invalidates the binding. Close is idempotent.
func (b *ElementArrayBufferBinding) Close() error {
	if b.released {
		return nil
	}
	b.released = true
	b.ctx.elementArrayBuffer.release()
	return nil
}
