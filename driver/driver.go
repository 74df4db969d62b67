// Package driver defines the call surface of the underlying OpenGL-style
// graphics driver as consumed by safegl.
//
// The driver is a fixed table of side-effecting entry points. It carries no
// safety guarantees of its own: handles are raw numbers, binding state is
// global and implicit, and errors are reported through a separate GetError
// side channel. Package safegl layers ownership and binding discipline on
// top; this package only names the calls and the numeric constants they
// speak.
//
// Implementations bind a real platform driver (cgo, syscall/js, …) or a
// test double such as drivertest.Driver. All methods must be called from
// the single thread that owns the underlying context.
package driver

// Enum is a raw driver constant (GLenum).
type Enum uint32

// Driver constants for the baseline feature set. Values are the fixed
// numeric values assigned by the underlying API.
const (
	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	FRAMEBUFFER          Enum = 0x8d40
	RENDERBUFFER         Enum = 0x8d41
	TEXTURE_2D           Enum = 0xde1
	TEXTURE0             Enum = 0x84c0

	COLOR_BUFFER_BIT   = 0x4000
	DEPTH_BUFFER_BIT   = 0x100
	STENCIL_BUFFER_BIT = 0x400

	VERTEX_SHADER   Enum = 0x8b31
	FRAGMENT_SHADER Enum = 0x8b30

	COMPILE_STATUS  Enum = 0x8b81
	LINK_STATUS     Enum = 0x8b82
	INFO_LOG_LENGTH Enum = 0x8b84

	STREAM_DRAW  Enum = 0x88e0
	STATIC_DRAW  Enum = 0x88e4
	DYNAMIC_DRAW Enum = 0x88e8

	BYTE           Enum = 0x1400
	UNSIGNED_BYTE  Enum = 0x1401
	SHORT          Enum = 0x1402
	UNSIGNED_SHORT Enum = 0x1403
	FIXED          Enum = 0x140c
	FLOAT          Enum = 0x1406

	POINTS         Enum = 0x0
	LINES          Enum = 0x1
	LINE_LOOP      Enum = 0x2
	LINE_STRIP     Enum = 0x3
	TRIANGLES      Enum = 0x4
	TRIANGLE_STRIP Enum = 0x5
	TRIANGLE_FAN   Enum = 0x6

	RGBA8             Enum = 0x8058
	DEPTH_COMPONENT16 Enum = 0x81a5
	STENCIL_INDEX8    Enum = 0x8d48

	COLOR_ATTACHMENT0    Enum = 0x8ce0
	DEPTH_ATTACHMENT     Enum = 0x8d00
	STENCIL_ATTACHMENT   Enum = 0x8d20
	FRAMEBUFFER_COMPLETE Enum = 0x8cd5

	NO_ERROR          Enum = 0x0
	INVALID_ENUM      Enum = 0x500
	INVALID_VALUE     Enum = 0x501
	INVALID_OPERATION Enum = 0x502
	OUT_OF_MEMORY     Enum = 0x505

	FALSE = 0
	TRUE  = 1
)

// Functions is the opaque driver call table.
//
// Methods mirror the underlying API one to one. Creation calls return a
// handle, with 0 meaning allocation failed. Query calls return the raw
// driver result (negative locations mean "not found"). Everything else is
// fire-and-forget; failures surface only through GetError.
//
// Uniform data is passed as little-endian bytes exactly as produced by
// safegl's data contracts; implementations reinterpret it as float32 or
// int32 values according to the call.
type Functions interface {
	// Object lifecycle.
	CreateProgram() uint32
	DeleteProgram(program uint32)
	CreateShader(typ Enum) uint32
	DeleteShader(shader uint32)
	GenBuffer() uint32
	DeleteBuffer(buffer uint32)
	GenRenderbuffer() uint32
	DeleteRenderbuffer(renderbuffer uint32)
	GenFramebuffer() uint32
	DeleteFramebuffer(framebuffer uint32)
	GenTexture() uint32
	DeleteTexture(texture uint32)

	// Shaders and programs.
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname Enum) int32
	GetShaderInfoLog(shader uint32, bufSize int32) []byte
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname Enum) int32
	GetProgramInfoLog(program uint32, bufSize int32) []byte
	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32
	UseProgram(program uint32)

	// Uniform upload. data holds count packed values of the call's shape.
	Uniform1fv(location, count int32, data []byte)
	Uniform2fv(location, count int32, data []byte)
	Uniform3fv(location, count int32, data []byte)
	Uniform4fv(location, count int32, data []byte)
	Uniform1iv(location, count int32, data []byte)
	Uniform2iv(location, count int32, data []byte)
	Uniform3iv(location, count int32, data []byte)
	Uniform4iv(location, count int32, data []byte)
	UniformMatrix2fv(location, count int32, transpose bool, data []byte)
	UniformMatrix3fv(location, count int32, transpose bool, data []byte)
	UniformMatrix4fv(location, count int32, transpose bool, data []byte)

	// Binding and data upload.
	BindBuffer(target Enum, buffer uint32)
	BufferData(target Enum, data []byte, usage Enum)
	BindRenderbuffer(target Enum, renderbuffer uint32)
	RenderbufferStorage(target, internalFormat Enum, width, height int32)
	BindFramebuffer(target Enum, framebuffer uint32)
	FramebufferRenderbuffer(target, attachment, rbTarget Enum, renderbuffer uint32)
	CheckFramebufferStatus(target Enum) Enum
	ActiveTexture(unit Enum)
	BindTexture(target Enum, texture uint32)

	// Drawing state.
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Viewport(x, y, width, height int32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, typ Enum, normalized bool, stride, offset int32)
	DrawArrays(mode Enum, first, count int32)
	DrawElements(mode Enum, count int32, typ Enum, offset int32)

	// GetError returns and clears the oldest recorded error flag,
	// or NO_ERROR.
	GetError() Enum
}
