package safegl

import (
	"fmt"

	"github.com/gogpu/safegl/driver"
)

// FramebufferAttachment names an attachment point of the framebuffer
// target.
type FramebufferAttachment int

const (
	ColorAttachment0 FramebufferAttachment = iota
	DepthAttachment
	StencilAttachment
)

// String returns the driver-side name of the attachment point.
func (a FramebufferAttachment) String() string {
	switch a {
	case ColorAttachment0:
		return "COLOR_ATTACHMENT0"
	case DepthAttachment:
		return "DEPTH_ATTACHMENT"
	case StencilAttachment:
		return "STENCIL_ATTACHMENT"
	default:
		return fmt.Sprintf("INVALID_ATTACHMENT(%d)", int(a))
	}
}

// glEnum maps the attachment to its fixed driver constant.
func (a FramebufferAttachment) glEnum() driver.Enum {
	switch a {
	case ColorAttachment0:
		return driver.COLOR_ATTACHMENT0
	case DepthAttachment:
		return driver.DEPTH_ATTACHMENT
	case StencilAttachment:
		return driver.STENCIL_ATTACHMENT
	default:
		return driver.COLOR_ATTACHMENT0
	}
}

// Framebuffer owns one driver-side framebuffer object handle.
type Framebuffer struct {
	fns       driver.Functions
	id        uint32
	destroyed bool
}

// CreateFramebuffer asks the driver for a new framebuffer object.
// A zero handle from the driver is reported as ErrCreateFailed.
func (c *Context) CreateFramebuffer() (*Framebuffer, error) {
	id := c.fns.GenFramebuffer()
	c.check("GenFramebuffer")
	if id == 0 {
		return nil, ErrCreateFailed
	}
	return &Framebuffer{fns: c.fns, id: id}, nil
}

// ID returns the raw driver handle, or 0 if the framebuffer was
// destroyed.
func (f *Framebuffer) ID() uint32 {
	if f.destroyed {
		return 0
	}
	return f.id
}

// Destroy deletes the driver-side framebuffer object.
// Destroy is idempotent; only the first call reaches the driver.
func (f *Framebuffer) Destroy() {
	if f.destroyed {
		return
	}
	f.destroyed = true
	f.fns.DeleteFramebuffer(f.id)
}

// FramebufferBinding is evidence that a specific framebuffer is bound to
// the framebuffer target.
type FramebufferBinding struct {
	ctx      *Context
	fb       *Framebuffer
	released bool
}

// BindFramebuffer binds fb to the framebuffer target.
//
// The target's binder is lent to the returned binding until Close; a
// second bind before that fails with ErrTargetBound.
func (c *Context) BindFramebuffer(fb *Framebuffer) (*FramebufferBinding, error) {
	if fb == nil {
		return nil, ErrNilObject
	}
	if fb.destroyed {
		return nil, ErrObjectDestroyed
	}
	if err := c.framebuffer.acquire(); err != nil {
		return nil, err
	}
	c.fns.BindFramebuffer(driver.FRAMEBUFFER, fb.id)
	c.check("BindFramebuffer")
	return &FramebufferBinding{ctx: c, fb: fb}, nil
}

// WithFramebuffer binds fb, runs fn, and closes the binding on every
// exit path.
func (c *Context) WithFramebuffer(fb *Framebuffer, fn func(*FramebufferBinding) error) error {
	binding, err := c.BindFramebuffer(fb)
	if err != nil {
		return err
	}
	defer binding.Close()
	return fn(binding)
}

// Framebuffer returns the bound framebuffer.
func (b *FramebufferBinding) Framebuffer() *Framebuffer {
	return b.fb
}

// AttachRenderbuffer attaches the renderbuffer to the given attachment
// point of the bound framebuffer.
func (b *FramebufferBinding) AttachRenderbuffer(attachment FramebufferAttachment, rb *Renderbuffer) error {
	if b.released {
		return ErrBindingReleased
	}
	if b.fb.destroyed {
		return ErrObjectDestroyed
	}
	if rb == nil {
		return ErrNilObject
	}
	if rb.destroyed {
		return ErrObjectDestroyed
	}
	b.ctx.fns.FramebufferRenderbuffer(driver.FRAMEBUFFER, attachment.glEnum(),
		driver.RENDERBUFFER, rb.id)
	b.ctx.check("FramebufferRenderbuffer")
	return nil
}

// Complete reports whether the bound framebuffer is complete.
func (b *FramebufferBinding) Complete() (bool, error) {
	if b.released {
		return false, ErrBindingReleased
	}
	if b.fb.destroyed {
		return false, ErrObjectDestroyed
	}
	status := b.ctx.fns.CheckFramebufferStatus(driver.FRAMEBUFFER)
	return status == driver.FRAMEBUFFER_COMPLETE, nil
}

// Close returns the framebuffer binder to the Context and invalidates
// the binding. Close is idempotent.
func (b *FramebufferBinding) Close() error {
	if b.released {
		return nil
	}
	b.released = true
	b.ctx.framebuffer.release()
	return nil
}
