package safegl

import (
	"log/slog"
	"strconv"

	"github.com/gogpu/safegl/driver"
)

// DefaultTextureUnits is the number of texture unit binder slots a
// Context carries unless configured otherwise. Eight is the baseline
// minimum the underlying API guarantees.
const DefaultTextureUnits = 8

// binderSlot is the runtime stand-in for a move-only binder token.
//
// The underlying API has exactly one "currently bound object" per target,
// so a Context holds exactly one slot per target. While a binding is live
// the slot is lent out and further binds to the same target fail with
// ErrTargetBound; closing the binding returns the slot.
type binderSlot struct {
	target string
	lent   bool
}

// acquire lends the slot out, failing if it is already lent.
func (s *binderSlot) acquire() error {
	if s.lent {
		return ErrTargetBound
	}
	s.lent = true
	return nil
}

// release returns the slot. Releasing a slot that is not lent is a
// protocol violation by the caller and panics.
func (s *binderSlot) release() {
	if !s.lent {
		panic("safegl: release of binder slot that is not lent: " + s.target)
	}
	s.lent = false
}

// Context owns the binder slots for every bindable target and is the
// factory for all driver-side objects.
//
// There is one underlying driver state per thread-bound context, so a
// program should hold exactly one Context per driver. The Context itself
// is not safe for concurrent use; the underlying API already constrains
// all calls to one thread.
//
// All bound-state operations live on the binding values returned by the
// Bind* methods, never on Context. This keeps "acts on currently bound X"
// calls impossible to issue while nothing is bound.
type Context struct {
	fns   driver.Functions
	debug bool

	arrayBuffer        binderSlot
	elementArrayBuffer binderSlot
	program            binderSlot
	framebuffer        binderSlot
	renderbuffer       binderSlot
	textureUnits       []binderSlot
}

// Option configures a Context during creation.
type Option func(*contextOptions)

// contextOptions holds optional configuration for New.
type contextOptions struct {
	debug        bool
	textureUnits int
}

// WithDebugChecks enables the post-call sanity pass: after calls whose
// documented interface has no room for an error result, the Context
// queries the driver's error flag and panics on any reported code. The
// codes indicate the binding protocol was bypassed (for example through
// raw handle misuse), which is a programmer error rather than a
// recoverable condition. Production contexts leave this off and skip the
// extra driver round-trips.
func WithDebugChecks() Option {
	return func(o *contextOptions) {
		o.debug = true
	}
}

// WithTextureUnits sets the number of texture unit binder slots.
// Values below 1 are ignored.
func WithTextureUnits(n int) Option {
	return func(o *contextOptions) {
		if n >= 1 {
			o.textureUnits = n
		}
	}
}

// New wraps a driver call table in a Context.
//
// The caller asserts that fns belongs to the current thread's driver
// context and that nothing is bound on it. The returned Context holds one
// available binder per target.
func New(fns driver.Functions, opts ...Option) *Context {
	o := contextOptions{textureUnits: DefaultTextureUnits}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{
		fns:                fns,
		debug:              o.debug,
		arrayBuffer:        binderSlot{target: "ARRAY_BUFFER"},
		elementArrayBuffer: binderSlot{target: "ELEMENT_ARRAY_BUFFER"},
		program:            binderSlot{target: "PROGRAM"},
		framebuffer:        binderSlot{target: "FRAMEBUFFER"},
		renderbuffer:       binderSlot{target: "RENDERBUFFER"},
		textureUnits:       make([]binderSlot, o.textureUnits),
	}
	for i := range c.textureUnits {
		c.textureUnits[i] = binderSlot{target: "TEXTURE" + strconv.Itoa(i)}
	}
	return c
}

// Functions returns the underlying driver call table.
//
// Calls made directly on the table bypass the binding protocol; the
// debug sanity check exists to catch the fallout of doing so.
func (c *Context) Functions() driver.Functions {
	return c.fns
}

// ClearColor sets the color used by Clear on the color plane.
// Components are clamped to [0, 1] before reaching the driver.
func (c *Context) ClearColor(color Color) {
	color = color.Clamped()
	c.fns.ClearColor(color.R, color.G, color.B, color.A)
}

// Clear clears the selected framebuffer planes.
func (c *Context) Clear(buffers BufferBits) {
	c.fns.Clear(uint32(buffers))
}

// Viewport sets the drawable region.
func (c *Context) Viewport(v Viewport) {
	c.fns.Viewport(v.X, v.Y, v.Width, v.Height)
	c.check("Viewport")
}

// EnableVertexAttribArray enables the vertex attribute array at the
// given attribute location.
func (c *Context) EnableVertexAttribArray(attrib ProgramAttrib) {
	c.fns.EnableVertexAttribArray(attrib.Index)
	c.check("EnableVertexAttribArray")
}

// DrawArrays renders count vertices starting at first using the current
// program and attribute state.
//
// The driver reads whatever program and vertex state is bound at call
// time; callers are responsible for having a linked program bound and
// the needed attribute arrays enabled and pointed at uploaded data.
func (c *Context) DrawArrays(mode DrawingMode, first int32, count int) {
	c.fns.DrawArrays(mode.glEnum(), first, int32(count))
	c.check("DrawArrays")
}

// check is the debug-only post-call sanity pass. With debug checks off
// it does nothing. With them on, any error code the driver reports means
// the static protocol was bypassed, so it logs and panics.
func (c *Context) check(op string) {
	if !c.debug {
		return
	}
	code := c.fns.GetError()
	if code == driver.NO_ERROR {
		return
	}
	err := codeError(code)
	Logger().Warn("driver error in debug sanity check",
		slog.String("op", op),
		slog.Any("err", err))
	panic("safegl: " + op + ": " + err.Error())
}
