package safegl

import (
	"errors"
	"testing"

	"github.com/gogpu/safegl/driver"
)

func TestRenderbufferLifecycle(t *testing.T) {
	c, d := newTestContext(t)

	rb, err := c.CreateRenderbuffer()
	if err != nil {
		t.Fatalf("create renderbuffer: %v", err)
	}
	id := rb.ID()
	if id == 0 {
		t.Fatal("created renderbuffer has zero handle")
	}

	rb.Destroy()
	rb.Destroy()

	if got := d.Deleted[id]; got != 1 {
		t.Errorf("DeleteRenderbuffer calls for handle %d = %d, want 1", id, got)
	}
}

// TestRenderbufferBindingExclusion is the end-to-end scenario from the
// binding protocol: generate a renderbuffer, bind it, and attempt a
// second bind for the same target while the first binding is alive.
func TestRenderbufferBindingExclusion(t *testing.T) {
	c, d := newTestContext(t)

	rb, err := c.CreateRenderbuffer()
	if err != nil {
		t.Fatalf("create renderbuffer: %v", err)
	}

	binding, err := c.BindRenderbuffer(rb)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if got := d.Bound[driver.RENDERBUFFER]; got != rb.ID() {
		t.Errorf("driver bound handle = %d, want %d", got, rb.ID())
	}

	other, err := c.CreateRenderbuffer()
	if err != nil {
		t.Fatalf("create second renderbuffer: %v", err)
	}
	if _, err := c.BindRenderbuffer(other); !errors.Is(err, ErrTargetBound) {
		t.Fatalf("second bind error = %v, want ErrTargetBound", err)
	}

	if err := binding.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b2, err := c.BindRenderbuffer(other)
	if err != nil {
		t.Fatalf("bind after close: %v", err)
	}
	b2.Close()
}

func TestRenderbufferStorage(t *testing.T) {
	c, d := newTestContext(t)

	rb, _ := c.CreateRenderbuffer()
	err := c.WithRenderbuffer(rb, func(b *RenderbufferBinding) error {
		return b.Storage(DepthComponent16, 640, 480)
	})
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	if got := d.CallCount("RenderbufferStorage"); got != 1 {
		t.Errorf("RenderbufferStorage calls = %d, want 1", got)
	}

	b, _ := c.BindRenderbuffer(rb)
	b.Close()
	if err := b.Storage(RGBA8, 1, 1); !errors.Is(err, ErrBindingReleased) {
		t.Errorf("Storage after close = %v, want ErrBindingReleased", err)
	}
}

func TestRenderbufferDestroyWhileBound(t *testing.T) {
	c, d := newTestContext(t)

	rb, _ := c.CreateRenderbuffer()
	b, err := c.BindRenderbuffer(rb)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	defer b.Close()
	rb.Destroy()

	if err := b.Storage(RGBA8, 8, 8); !errors.Is(err, ErrObjectDestroyed) {
		t.Errorf("Storage after destroy = %v, want ErrObjectDestroyed", err)
	}
	if got := d.CallCount("RenderbufferStorage"); got != 0 {
		t.Errorf("RenderbufferStorage calls = %d, want 0", got)
	}
}

func TestFramebufferDestroyWhileBound(t *testing.T) {
	c, d := newTestContext(t)

	fb, _ := c.CreateFramebuffer()
	rb, _ := c.CreateRenderbuffer()
	defer rb.Destroy()

	b, err := c.BindFramebuffer(fb)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	defer b.Close()
	fb.Destroy()

	if err := b.AttachRenderbuffer(ColorAttachment0, rb); !errors.Is(err, ErrObjectDestroyed) {
		t.Errorf("AttachRenderbuffer after destroy = %v, want ErrObjectDestroyed", err)
	}
	if _, err := b.Complete(); !errors.Is(err, ErrObjectDestroyed) {
		t.Errorf("Complete after destroy = %v, want ErrObjectDestroyed", err)
	}
	if got := d.CallCount("FramebufferRenderbuffer"); got != 0 {
		t.Errorf("FramebufferRenderbuffer calls = %d, want 0", got)
	}
}

func TestFramebufferAttach(t *testing.T) {
	c, d := newTestContext(t)

	fb, err := c.CreateFramebuffer()
	if err != nil {
		t.Fatalf("create framebuffer: %v", err)
	}
	defer fb.Destroy()
	rb, _ := c.CreateRenderbuffer()
	defer rb.Destroy()

	err = c.WithRenderbuffer(rb, func(b *RenderbufferBinding) error {
		return b.Storage(RGBA8, 64, 64)
	})
	if err != nil {
		t.Fatalf("storage: %v", err)
	}

	err = c.WithFramebuffer(fb, func(b *FramebufferBinding) error {
		if err := b.AttachRenderbuffer(ColorAttachment0, rb); err != nil {
			return err
		}
		complete, err := b.Complete()
		if err != nil {
			return err
		}
		if !complete {
			t.Error("framebuffer reported incomplete")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}

	if got := d.CallCount("FramebufferRenderbuffer"); got != 1 {
		t.Errorf("FramebufferRenderbuffer calls = %d, want 1", got)
	}
}

func TestTextureBinding(t *testing.T) {
	c, d := newTestContext(t)

	tex, err := c.CreateTexture()
	if err != nil {
		t.Fatalf("create texture: %v", err)
	}
	defer tex.Destroy()

	b, err := c.BindTexture(1, tex)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if d.ActiveUnit != driver.TEXTURE0+1 {
		t.Errorf("active unit = %#x, want TEXTURE1", uint32(d.ActiveUnit))
	}
	if got := d.Bound[driver.TEXTURE_2D]; got != tex.ID() {
		t.Errorf("bound texture = %d, want %d", got, tex.ID())
	}
	if b.Unit() != 1 {
		t.Errorf("Unit() = %d, want 1", b.Unit())
	}
	b.Close()
}
