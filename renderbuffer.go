package safegl

import (
	"fmt"

	"github.com/gogpu/safegl/driver"
)

// RenderbufferFormat is the internal storage format of a renderbuffer.
type RenderbufferFormat int

const (
	RGBA8 RenderbufferFormat = iota
	DepthComponent16
	StencilIndex8
)

// String returns the driver-side name of the format.
func (f RenderbufferFormat) String() string {
	switch f {
	case RGBA8:
		return "RGBA8"
	case DepthComponent16:
		return "DEPTH_COMPONENT16"
	case StencilIndex8:
		return "STENCIL_INDEX8"
	default:
		return fmt.Sprintf("INVALID_RENDERBUFFER_FORMAT(%d)", int(f))
	}
}

// glEnum maps the format to its fixed driver constant.
func (f RenderbufferFormat) glEnum() driver.Enum {
	switch f {
	case RGBA8:
		return driver.RGBA8
	case DepthComponent16:
		return driver.DEPTH_COMPONENT16
	case StencilIndex8:
		return driver.STENCIL_INDEX8
	default:
		return driver.RGBA8
	}
}

// Renderbuffer owns one driver-side renderbuffer object handle.
type Renderbuffer struct {
	fns       driver.Functions
	id        uint32
	destroyed bool
}

// CreateRenderbuffer asks the driver for a new renderbuffer object.
// A zero handle from the driver is reported as ErrCreateFailed.
func (c *Context) CreateRenderbuffer() (*Renderbuffer, error) {
	id := c.fns.GenRenderbuffer()
	c.check("GenRenderbuffer")
	if id == 0 {
		return nil, ErrCreateFailed
	}
	return &Renderbuffer{fns: c.fns, id: id}, nil
}

// ID returns the raw driver handle, or 0 if the renderbuffer was
// destroyed.
func (r *Renderbuffer) ID() uint32 {
	if r.destroyed {
		return 0
	}
	return r.id
}

// Destroy deletes the driver-side renderbuffer object.
// Destroy is idempotent; only the first call reaches the driver.
func (r *Renderbuffer) Destroy() {
	if r.destroyed {
		return
	}
	r.destroyed = true
	r.fns.DeleteRenderbuffer(r.id)
}

// RenderbufferBinding is evidence that a specific renderbuffer is bound
// to the renderbuffer target. There is exactly one renderbuffer target
// in the baseline feature set.
type RenderbufferBinding struct {
	ctx      *Context
	rb       *Renderbuffer
	released bool
}

// BindRenderbuffer binds rb to the renderbuffer target.
//
// The target's binder is lent to the returned binding until Close; a
// second bind before that fails with ErrTargetBound.
func (c *Context) BindRenderbuffer(rb *Renderbuffer) (*RenderbufferBinding, error) {
	if rb == nil {
		return nil, ErrNilObject
	}
	if rb.destroyed {
		return nil, ErrObjectDestroyed
	}
	if err := c.renderbuffer.acquire(); err != nil {
		return nil, err
	}
	c.fns.BindRenderbuffer(driver.RENDERBUFFER, rb.id)
	c.check("BindRenderbuffer")
	return &RenderbufferBinding{ctx: c, rb: rb}, nil
}

// WithRenderbuffer binds rb, runs fn, and closes the binding on every
// exit path.
func (c *Context) WithRenderbuffer(rb *Renderbuffer, fn func(*RenderbufferBinding) error) error {
	binding, err := c.BindRenderbuffer(rb)
	if err != nil {
		return err
	}
	defer binding.Close()
	return fn(binding)
}

// Renderbuffer returns the bound renderbuffer.
func (b *RenderbufferBinding) Renderbuffer() *Renderbuffer {
	return b.rb
}

// Storage allocates the bound renderbuffer's data store.
func (b *RenderbufferBinding) Storage(format RenderbufferFormat, width, height int32) error {
	if b.released {
		return ErrBindingReleased
	}
	if b.rb.destroyed {
		return ErrObjectDestroyed
	}
	b.ctx.fns.RenderbufferStorage(driver.RENDERBUFFER, format.glEnum(), width, height)
	b.ctx.check("RenderbufferStorage")
	return nil
}

// Close returns the renderbuffer binder to the Context and invalidates
// the binding. Close is idempotent.
func (b *RenderbufferBinding) Close() error {
	if b.released {
		return nil
	}
	b.released = true
	b.ctx.renderbuffer.release()
	return nil
}
