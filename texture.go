package safegl

import (
	"github.com/gogpu/safegl/driver"
)

// Texture owns one driver-side texture object handle.
type Texture struct {
	fns       driver.Functions
	id        uint32
	destroyed bool
}

// CreateTexture asks the driver for a new texture object.
// A zero handle from the driver is reported as ErrCreateFailed.
func (c *Context) CreateTexture() (*Texture, error) {
	id := c.fns.GenTexture()
	c.check("GenTexture")
	if id == 0 {
		return nil, ErrCreateFailed
	}
	return &Texture{fns: c.fns, id: id}, nil
}

// ID returns the raw driver handle, or 0 if the texture was destroyed.
func (t *Texture) ID() uint32 {
	if t.destroyed {
		return 0
	}
	return t.id
}

// Destroy deletes the driver-side texture object.
// Destroy is idempotent; only the first call reaches the driver.
func (t *Texture) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.fns.DeleteTexture(t.id)
}

// TextureBinding is evidence that a specific texture is bound to the 2D
// texture target of one texture unit. Each unit has its own binder slot
// in the Context.
type TextureBinding struct {
	ctx      *Context
	tex      *Texture
	unit     int
	released bool
}

// BindTexture binds tex to the 2D target of the given texture unit.
//
// The unit's binder is lent to the returned binding until Close; a
// second bind to the same unit before that fails with ErrTargetBound.
// Units outside the configured range fail with ErrTextureUnit.
func (c *Context) BindTexture(unit int, tex *Texture) (*TextureBinding, error) {
	if tex == nil {
		return nil, ErrNilObject
	}
	if tex.destroyed {
		return nil, ErrObjectDestroyed
	}
	if unit < 0 || unit >= len(c.textureUnits) {
		return nil, ErrTextureUnit
	}
	if err := c.textureUnits[unit].acquire(); err != nil {
		return nil, err
	}
	c.fns.ActiveTexture(driver.TEXTURE0 + driver.Enum(unit))
	c.fns.BindTexture(driver.TEXTURE_2D, tex.id)
	c.check("BindTexture")
	return &TextureBinding{ctx: c, tex: tex, unit: unit}, nil
}

// WithTexture binds tex to the unit, runs fn, and closes the binding on
// every exit path.
func (c *Context) WithTexture(unit int, tex *Texture, fn func(*TextureBinding) error) error {
	binding, err := c.BindTexture(unit, tex)
	if err != nil {
		return err
	}
	defer binding.Close()
	return fn(binding)
}

// Texture returns the bound texture.
func (b *TextureBinding) Texture() *Texture {
	return b.tex
}

// Unit returns the texture unit this binding occupies.
func (b *TextureBinding) Unit() int {
	return b.unit
}

// Close returns the unit's binder to the Context and invalidates the
// binding. Close is idempotent.
func (b *TextureBinding) Close() error {
	if b.released {
		return nil
	}
	b.released = true
	b.ctx.textureUnits[b.unit].release()
	return nil
}
