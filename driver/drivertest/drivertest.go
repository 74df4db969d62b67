// Package drivertest provides a pure-Go recording implementation of
// driver.Functions for tests.
//
// The fake allocates sequential handles, tracks deletions per handle,
// records every call by name, and keeps the uploaded bytes of uniform and
// buffer calls so tests can assert on exact dispatch. Link status, info
// logs, attribute/uniform locations and the GetError queue are all
// configurable.
package drivertest

import (
	"fmt"

	"github.com/gogpu/safegl/driver"
)

// UniformCall records one uniform upload dispatched to the fake.
type UniformCall struct {
	// Func is the driver entry point name, e.g. "Uniform3fv".
	Func string
	// Location is the uniform location passed in.
	Location int32
	// Count is the element count passed in.
	Count int32
	// Transpose is the transpose flag (matrix calls only).
	Transpose bool
	// Data is the raw little-endian payload.
	Data []byte
}

// BufferUpload records one BufferData call.
type BufferUpload struct {
	Target driver.Enum
	Data   []byte
	Usage  driver.Enum
}

// Driver is a recording fake of the driver call table.
//
// The zero value is usable: handles start at 1, every program links
// successfully once a shader is attached, and all location lookups miss.
// Configure the exported fields before exercising the code under test.
//
// Driver is not safe for concurrent use, matching the single-thread
// constraint of the real call table.
type Driver struct {
	// FailCreate makes every creation call return handle 0.
	FailCreate bool

	// ForceLinkStatus overrides the computed link status per program.
	ForceLinkStatus map[uint32]bool

	// InfoLogs holds the info log text per program or shader handle.
	// An empty or missing entry reports INFO_LOG_LENGTH == 0.
	InfoLogs map[uint32]string

	// SuppressLogs prevents LinkProgram from synthesizing a default
	// info log on failure, so failed links report no log at all.
	SuppressLogs bool

	// AttribLocations and UniformLocations resolve names to locations.
	// Missing names resolve to -1.
	AttribLocations  map[string]int32
	UniformLocations map[string]int32

	// CompileStatus overrides compile status per shader (default ok).
	CompileStatus map[uint32]bool

	// Recorded state.
	Calls       []string
	Deleted     map[uint32]int
	Bound       map[driver.Enum]uint32
	ActiveUnit  driver.Enum
	Uniforms    []UniformCall
	Uploads     []BufferUpload
	DrawCalls   []string
	ClearColorV [4]float32
	ClearMask   uint32
	ViewportV   [4]int32

	nextHandle uint32
	attached   map[uint32][]uint32
	linked     map[uint32]bool
	errQueue   []driver.Enum
}

var _ driver.Functions = (*Driver)(nil)

// init registers the recording driver on package import, so importing
// drivertest is enough to make driver.Default() work in tests.
func init() {
	driver.Register(driver.NameTest, func() driver.Functions {
		return New()
	})
}

// New returns an empty recording driver.
func New() *Driver {
	return &Driver{}
}

// QueueError appends an error code to be returned by GetError.
func (d *Driver) QueueError(code driver.Enum) {
	d.errQueue = append(d.errQueue, code)
}

// CallCount returns how many recorded calls have the given name.
func (d *Driver) CallCount(name string) int {
	n := 0
	for _, c := range d.Calls {
		if c == name {
			n++
		}
	}
	return n
}

func (d *Driver) record(name string) {
	d.Calls = append(d.Calls, name)
}

func (d *Driver) create(name string) uint32 {
	d.record(name)
	if d.FailCreate {
		return 0
	}
	d.nextHandle++
	return d.nextHandle
}

func (d *Driver) delete(name string, handle uint32) {
	d.record(name)
	if d.Deleted == nil {
		d.Deleted = make(map[uint32]int)
	}
	d.Deleted[handle]++
}

func (d *Driver) bind(name string, target driver.Enum, handle uint32) {
	d.record(name)
	if d.Bound == nil {
		d.Bound = make(map[driver.Enum]uint32)
	}
	d.Bound[target] = handle
}

// Object lifecycle.

func (d *Driver) CreateProgram() uint32 { return d.create("CreateProgram") }
func (d *Driver) DeleteProgram(p uint32) { d.delete("DeleteProgram", p) }
func (d *Driver) CreateShader(driver.Enum) uint32 { return d.create("CreateShader") }
func (d *Driver) DeleteShader(s uint32) { d.delete("DeleteShader", s) }
func (d *Driver) GenBuffer() uint32 { return d.create("GenBuffer") }
func (d *Driver) DeleteBuffer(b uint32) { d.delete("DeleteBuffer", b) }
func (d *Driver) GenRenderbuffer() uint32 { return d.create("GenRenderbuffer") }
func (d *Driver) DeleteRenderbuffer(r uint32) { d.delete("DeleteRenderbuffer", r) }
func (d *Driver) GenFramebuffer() uint32 { return d.create("GenFramebuffer") }
func (d *Driver) DeleteFramebuffer(f uint32) { d.delete("DeleteFramebuffer", f) }
func (d *Driver) GenTexture() uint32 { return d.create("GenTexture") }
func (d *Driver) DeleteTexture(t uint32) { d.delete("DeleteTexture", t) }

// Shaders and programs.

func (d *Driver) ShaderSource(shader uint32, src string) { d.record("ShaderSource") }
func (d *Driver) CompileShader(shader uint32) { d.record("CompileShader") }

func (d *Driver) GetShaderiv(shader uint32, pname driver.Enum) int32 {
	d.record("GetShaderiv")
	switch pname {
	case driver.COMPILE_STATUS:
		if ok, found := d.CompileStatus[shader]; found && !ok {
			return driver.FALSE
		}
		return driver.TRUE
	case driver.INFO_LOG_LENGTH:
		return d.infoLogLength(shader)
	}
	return 0
}

func (d *Driver) GetShaderInfoLog(shader uint32, bufSize int32) []byte {
	d.record("GetShaderInfoLog")
	return d.infoLogBytes(shader, bufSize)
}

func (d *Driver) AttachShader(program, shader uint32) {
	d.record("AttachShader")
	if d.attached == nil {
		d.attached = make(map[uint32][]uint32)
	}
	d.attached[program] = append(d.attached[program], shader)
}

// LinkProgram succeeds when at least one shader is attached, unless
// overridden through ForceLinkStatus. A failed link synthesizes an info
// log unless SuppressLogs is set.
func (d *Driver) LinkProgram(program uint32) {
	d.record("LinkProgram")
	ok := len(d.attached[program]) > 0
	if forced, found := d.ForceLinkStatus[program]; found {
		ok = forced
	}
	if d.linked == nil {
		d.linked = make(map[uint32]bool)
	}
	d.linked[program] = ok
	if !ok && !d.SuppressLogs {
		if _, has := d.InfoLogs[program]; !has {
			if d.InfoLogs == nil {
				d.InfoLogs = make(map[uint32]string)
			}
			d.InfoLogs[program] = fmt.Sprintf("error: program %d has no attached shaders", program)
		}
	}
}

func (d *Driver) GetProgramiv(program uint32, pname driver.Enum) int32 {
	d.record("GetProgramiv")
	switch pname {
	case driver.LINK_STATUS:
		if d.linked[program] {
			return driver.TRUE
		}
		return driver.FALSE
	case driver.INFO_LOG_LENGTH:
		return d.infoLogLength(program)
	}
	return 0
}

func (d *Driver) GetProgramInfoLog(program uint32, bufSize int32) []byte {
	d.record("GetProgramInfoLog")
	return d.infoLogBytes(program, bufSize)
}

// infoLogLength reports len(log)+1 for the trailing NUL, or 0 when no
// log is present, matching real driver behavior.
func (d *Driver) infoLogLength(handle uint32) int32 {
	log := d.InfoLogs[handle]
	if log == "" {
		return 0
	}
	return int32(len(log)) + 1
}

func (d *Driver) infoLogBytes(handle uint32, bufSize int32) []byte {
	log := d.InfoLogs[handle]
	buf := append([]byte(log), 0)
	if int32(len(buf)) > bufSize {
		buf = buf[:bufSize]
	}
	return buf
}

func (d *Driver) GetAttribLocation(program uint32, name string) int32 {
	d.record("GetAttribLocation")
	if loc, ok := d.AttribLocations[name]; ok {
		return loc
	}
	return -1
}

func (d *Driver) GetUniformLocation(program uint32, name string) int32 {
	d.record("GetUniformLocation")
	if loc, ok := d.UniformLocations[name]; ok {
		return loc
	}
	return -1
}

func (d *Driver) UseProgram(program uint32) { d.record("UseProgram") }

// Uniform upload.

func (d *Driver) uniform(name string, loc, count int32, transpose bool, data []byte) {
	d.record(name)
	d.Uniforms = append(d.Uniforms, UniformCall{
		Func:      name,
		Location:  loc,
		Count:     count,
		Transpose: transpose,
		Data:      append([]byte(nil), data...),
	})
}

func (d *Driver) Uniform1fv(loc, count int32, data []byte) { d.uniform("Uniform1fv", loc, count, false, data) }
func (d *Driver) Uniform2fv(loc, count int32, data []byte) { d.uniform("Uniform2fv", loc, count, false, data) }
func (d *Driver) Uniform3fv(loc, count int32, data []byte) { d.uniform("Uniform3fv", loc, count, false, data) }
func (d *Driver) Uniform4fv(loc, count int32, data []byte) { d.uniform("Uniform4fv", loc, count, false, data) }
func (d *Driver) Uniform1iv(loc, count int32, data []byte) { d.uniform("Uniform1iv", loc, count, false, data) }
func (d *Driver) Uniform2iv(loc, count int32, data []byte) { d.uniform("Uniform2iv", loc, count, false, data) }
func (d *Driver) Uniform3iv(loc, count int32, data []byte) { d.uniform("Uniform3iv", loc, count, false, data) }
func (d *Driver) Uniform4iv(loc, count int32, data []byte) { d.uniform("Uniform4iv", loc, count, false, data) }

func (d *Driver) UniformMatrix2fv(loc, count int32, transpose bool, data []byte) {
	d.uniform("UniformMatrix2fv", loc, count, transpose, data)
}

func (d *Driver) UniformMatrix3fv(loc, count int32, transpose bool, data []byte) {
	d.uniform("UniformMatrix3fv", loc, count, transpose, data)
}

func (d *Driver) UniformMatrix4fv(loc, count int32, transpose bool, data []byte) {
	d.uniform("UniformMatrix4fv", loc, count, transpose, data)
}

// Binding and data upload.

func (d *Driver) BindBuffer(target driver.Enum, buffer uint32) {
	d.bind("BindBuffer", target, buffer)
}

func (d *Driver) BufferData(target driver.Enum, data []byte, usage driver.Enum) {
	d.record("BufferData")
	d.Uploads = append(d.Uploads, BufferUpload{
		Target: target,
		Data:   append([]byte(nil), data...),
		Usage:  usage,
	})
}

func (d *Driver) BindRenderbuffer(target driver.Enum, renderbuffer uint32) {
	d.bind("BindRenderbuffer", target, renderbuffer)
}

func (d *Driver) RenderbufferStorage(target, internalFormat driver.Enum, width, height int32) {
	d.record("RenderbufferStorage")
}

func (d *Driver) BindFramebuffer(target driver.Enum, framebuffer uint32) {
	d.bind("BindFramebuffer", target, framebuffer)
}

func (d *Driver) FramebufferRenderbuffer(target, attachment, rbTarget driver.Enum, renderbuffer uint32) {
	d.record("FramebufferRenderbuffer")
}

func (d *Driver) CheckFramebufferStatus(target driver.Enum) driver.Enum {
	d.record("CheckFramebufferStatus")
	return driver.FRAMEBUFFER_COMPLETE
}

func (d *Driver) ActiveTexture(unit driver.Enum) {
	d.record("ActiveTexture")
	d.ActiveUnit = unit
}

func (d *Driver) BindTexture(target driver.Enum, texture uint32) {
	d.bind("BindTexture", target, texture)
}

// Drawing state.

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.record("ClearColor")
	d.ClearColorV = [4]float32{r, g, b, a}
}

func (d *Driver) Clear(mask uint32) {
	d.record("Clear")
	d.ClearMask = mask
}

func (d *Driver) Viewport(x, y, width, height int32) {
	d.record("Viewport")
	d.ViewportV = [4]int32{x, y, width, height}
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray")
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, typ driver.Enum, normalized bool, stride, offset int32) {
	d.record("VertexAttribPointer")
}

func (d *Driver) DrawArrays(mode driver.Enum, first, count int32) {
	d.record("DrawArrays")
	d.DrawCalls = append(d.DrawCalls, fmt.Sprintf("DrawArrays(%d,%d,%d)", mode, first, count))
}

func (d *Driver) DrawElements(mode driver.Enum, count int32, typ driver.Enum, offset int32) {
	d.record("DrawElements")
	d.DrawCalls = append(d.DrawCalls, fmt.Sprintf("DrawElements(%d,%d,%d,%d)", mode, count, typ, offset))
}

func (d *Driver) GetError() driver.Enum {
	if len(d.errQueue) == 0 {
		return driver.NO_ERROR
	}
	code := d.errQueue[0]
	d.errQueue = d.errQueue[1:]
	return code
}
