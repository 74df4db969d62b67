package safegl

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gogpu/safegl/driver"
)

// Color is an RGBA color with float32 components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGBA constructs a Color from the given components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Clamped returns the color with every component clamped to [0, 1].
func (c Color) Clamped() Color {
	clamp := func(v float32) float32 {
		return math32.Min(math32.Max(v, 0), 1)
	}
	return Color{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}

// BufferBits selects which framebuffer planes a Clear call touches.
// Values combine with bitwise OR.
type BufferBits uint32

const (
	// ColorBufferBit selects the color plane.
	ColorBufferBit BufferBits = driver.COLOR_BUFFER_BIT
	// DepthBufferBit selects the depth plane.
	DepthBufferBit BufferBits = driver.DEPTH_BUFFER_BIT
	// StencilBufferBit selects the stencil plane.
	StencilBufferBit BufferBits = driver.STENCIL_BUFFER_BIT
)

// DrawingMode selects the primitive assembly mode for draw calls.
type DrawingMode int

const (
	Points DrawingMode = iota
	Lines
	LineLoop
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
)

// String returns the driver-side name of the mode.
func (m DrawingMode) String() string {
	switch m {
	case Points:
		return "POINTS"
	case Lines:
		return "LINES"
	case LineLoop:
		return "LINE_LOOP"
	case LineStrip:
		return "LINE_STRIP"
	case Triangles:
		return "TRIANGLES"
	case TriangleStrip:
		return "TRIANGLE_STRIP"
	case TriangleFan:
		return "TRIANGLE_FAN"
	default:
		return fmt.Sprintf("INVALID_DRAWING_MODE(%d)", int(m))
	}
}

// glEnum maps the mode to its fixed driver constant.
func (m DrawingMode) glEnum() driver.Enum {
	switch m {
	case Points:
		return driver.POINTS
	case Lines:
		return driver.LINES
	case LineLoop:
		return driver.LINE_LOOP
	case LineStrip:
		return driver.LINE_STRIP
	case Triangles:
		return driver.TRIANGLES
	case TriangleStrip:
		return driver.TRIANGLE_STRIP
	case TriangleFan:
		return driver.TRIANGLE_FAN
	default:
		return driver.POINTS
	}
}

// DataType is the scalar wire type of vertex and index data.
type DataType int

const (
	Byte DataType = iota
	UnsignedByte
	Short
	UnsignedShort
	Fixed
	Float
)

// String returns the driver-side name of the type.
func (t DataType) String() string {
	switch t {
	case Byte:
		return "BYTE"
	case UnsignedByte:
		return "UNSIGNED_BYTE"
	case Short:
		return "SHORT"
	case UnsignedShort:
		return "UNSIGNED_SHORT"
	case Fixed:
		return "FIXED"
	case Float:
		return "FLOAT"
	default:
		return fmt.Sprintf("INVALID_DATA_TYPE(%d)", int(t))
	}
}

// Size returns the width of one scalar of this type in bytes.
func (t DataType) Size() int {
	switch t {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort:
		return 2
	case Fixed, Float:
		return 4
	default:
		return 0
	}
}

// glEnum maps the type to its fixed driver constant.
func (t DataType) glEnum() driver.Enum {
	switch t {
	case Byte:
		return driver.BYTE
	case UnsignedByte:
		return driver.UNSIGNED_BYTE
	case Short:
		return driver.SHORT
	case UnsignedShort:
		return driver.UNSIGNED_SHORT
	case Fixed:
		return driver.FIXED
	case Float:
		return driver.FLOAT
	default:
		return driver.FLOAT
	}
}

// Viewport is the drawable region in window coordinates.
type Viewport struct {
	X, Y          int32
	Width, Height int32
}

// BufferUsage hints how uploaded buffer data will be accessed.
type BufferUsage int

const (
	// StreamDraw: written once, used a few times.
	StreamDraw BufferUsage = iota
	// StaticDraw: written once, used many times.
	StaticDraw
	// DynamicDraw: written repeatedly, used many times.
	DynamicDraw
)

// String returns the driver-side name of the usage.
func (u BufferUsage) String() string {
	switch u {
	case StreamDraw:
		return "STREAM_DRAW"
	case StaticDraw:
		return "STATIC_DRAW"
	case DynamicDraw:
		return "DYNAMIC_DRAW"
	default:
		return fmt.Sprintf("INVALID_BUFFER_USAGE(%d)", int(u))
	}
}

// glEnum maps the usage to its fixed driver constant.
func (u BufferUsage) glEnum() driver.Enum {
	switch u {
	case StreamDraw:
		return driver.STREAM_DRAW
	case StaticDraw:
		return driver.STATIC_DRAW
	case DynamicDraw:
		return driver.DYNAMIC_DRAW
	default:
		return driver.STATIC_DRAW
	}
}
