package safegl

import (
	"strings"
	"unicode/utf8"

	"github.com/gogpu/safegl/driver"
)

// Program owns one driver-side program object handle.
//
// A program moves through create → attach shaders → link. Attribute and
// uniform locations are only meaningful after a successful link; looking
// them up earlier follows the driver's own convention and reports
// ErrLocationNotFound.
type Program struct {
	fns       driver.Functions
	id        uint32
	destroyed bool
}

// ProgramAttrib is an attribute location resolved by name against a
// linked program. It is only valid for the program it was resolved from.
type ProgramAttrib struct {
	Index uint32
}

// ProgramUniform is a uniform location resolved by name against a linked
// program. It is only valid for the program it was resolved from.
type ProgramUniform struct {
	Index uint32
}

// CreateProgram asks the driver for a new program object.
// A zero handle from the driver is reported as ErrCreateFailed.
func (c *Context) CreateProgram() (*Program, error) {
	id := c.fns.CreateProgram()
	c.check("CreateProgram")
	if id == 0 {
		return nil, ErrCreateFailed
	}
	return &Program{fns: c.fns, id: id}, nil
}

// ID returns the raw driver handle, or 0 if the program was destroyed.
func (p *Program) ID() uint32 {
	if p.destroyed {
		return 0
	}
	return p.id
}

// Destroy deletes the driver-side program object.
// Destroy is idempotent; only the first call reaches the driver.
func (p *Program) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.fns.DeleteProgram(p.id)
}

// AttachShader attaches the shader to the program. The call has no
// success result; a bad object or duplicate attach only surfaces through
// the debug sanity check.
func (c *Context) AttachShader(program *Program, shader *Shader) {
	c.fns.AttachShader(program.id, shader.id)
	c.check("AttachShader")
}

// LinkProgram links the program and queries its link status. On failure
// the info log is returned as a MessageError; when the driver reports no
// log at all, the literal "[Unknown program error]" is substituted so a
// link failure never arrives without a message.
func (c *Context) LinkProgram(program *Program) error {
	c.fns.LinkProgram(program.id)
	c.check("LinkProgram")

	status := c.fns.GetProgramiv(program.id, driver.LINK_STATUS)
	if status == driver.TRUE {
		return nil
	}
	msg, ok := c.ProgramInfoLog(program)
	if !ok {
		msg = "[Unknown program error]"
	}
	return &MessageError{Text: msg}
}

// ProgramInfoLog returns the program's info log, or ok == false when the
// driver reports INFO_LOG_LENGTH == 0 or the log is not valid UTF-8.
// A zero-length log is absent, never an empty string.
func (c *Context) ProgramInfoLog(program *Program) (string, bool) {
	length := c.fns.GetProgramiv(program.id, driver.INFO_LOG_LENGTH)
	if length <= 0 {
		return "", false
	}
	raw := c.fns.GetProgramInfoLog(program.id, length)
	c.check("GetProgramInfoLog")
	return decodeInfoLog(raw)
}

// decodeInfoLog strips the trailing NUL terminator the driver writes and
// validates the text encoding. Invalid encoding yields absence rather
// than an error.
func decodeInfoLog(raw []byte) (string, bool) {
	if len(raw) > 0 && raw[len(raw)-1] == 0 {
		raw = raw[:len(raw)-1]
	}
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// AttribLocation resolves an attribute name against the linked program.
//
// A name containing an embedded NUL fails locally without a driver call.
// A driver-reported index < 0 means the name is not an active attribute.
// Both failures report ErrLocationNotFound.
func (c *Context) AttribLocation(program *Program, name string) (ProgramAttrib, error) {
	if strings.IndexByte(name, 0) >= 0 {
		return ProgramAttrib{}, ErrLocationNotFound
	}
	index := c.fns.GetAttribLocation(program.id, name)
	c.check("GetAttribLocation")
	if index < 0 {
		return ProgramAttrib{}, ErrLocationNotFound
	}
	return ProgramAttrib{Index: uint32(index)}, nil
}

// UniformLocation resolves a uniform name against the linked program.
// The failure rules match AttribLocation.
func (c *Context) UniformLocation(program *Program, name string) (ProgramUniform, error) {
	if strings.IndexByte(name, 0) >= 0 {
		return ProgramUniform{}, ErrLocationNotFound
	}
	index := c.fns.GetUniformLocation(program.id, name)
	c.check("GetUniformLocation")
	if index < 0 {
		return ProgramUniform{}, ErrLocationNotFound
	}
	return ProgramUniform{Index: uint32(index)}, nil
}

// ProgramBinding is evidence that a specific program is current. Setting
// uniforms requires one, modeling the driver's rule that a program must
// be in use before its uniforms can change.
type ProgramBinding struct {
	ctx      *Context
	program  *Program
	released bool
}

// BindProgram makes the program current. The program-target binder is
// lent to the returned binding until Close.
func (c *Context) BindProgram(program *Program) (*ProgramBinding, error) {
	if program == nil {
		return nil, ErrNilObject
	}
	if program.destroyed {
		return nil, ErrObjectDestroyed
	}
	if err := c.program.acquire(); err != nil {
		return nil, err
	}
	c.fns.UseProgram(program.id)
	c.check("UseProgram")
	return &ProgramBinding{ctx: c, program: program}, nil
}

// WithProgram makes the program current, runs fn, and closes the binding
// on every exit path.
func (c *Context) WithProgram(program *Program, fn func(*ProgramBinding) error) error {
	binding, err := c.BindProgram(program)
	if err != nil {
		return err
	}
	defer binding.Close()
	return fn(binding)
}

// Program returns the bound program.
func (b *ProgramBinding) Program() *Program {
	return b.program
}

// SetUniform uploads the value to the uniform location of the current
// program. The upload call is chosen from the value's datum type alone;
// matrices are always float and always uploaded without transposition.
// The value's byte length matching its element count and datum size is
// the producing type's contract and is not re-checked here.
func (b *ProgramBinding) SetUniform(uniform ProgramUniform, val UniformData) error {
	if b.released {
		return ErrBindingReleased
	}
	if b.program.destroyed {
		return ErrObjectDestroyed
	}

	loc := int32(uniform.Index)
	count := int32(val.UniformElements())
	data := val.UniformBytes()
	fns := b.ctx.fns

	switch val.UniformDatumType() {
	case UniformVec1Float:
		fns.Uniform1fv(loc, count, data)
	case UniformVec2Float:
		fns.Uniform2fv(loc, count, data)
	case UniformVec3Float:
		fns.Uniform3fv(loc, count, data)
	case UniformVec4Float:
		fns.Uniform4fv(loc, count, data)
	case UniformVec1Int:
		fns.Uniform1iv(loc, count, data)
	case UniformVec2Int:
		fns.Uniform2iv(loc, count, data)
	case UniformVec3Int:
		fns.Uniform3iv(loc, count, data)
	case UniformVec4Int:
		fns.Uniform4iv(loc, count, data)
	case UniformMatrix2x2:
		fns.UniformMatrix2fv(loc, count, false, data)
	case UniformMatrix3x3:
		fns.UniformMatrix3fv(loc, count, false, data)
	case UniformMatrix4x4:
		fns.UniformMatrix4fv(loc, count, false, data)
	default:
		return ErrInvalidEnum
	}

	b.ctx.check("SetUniform")
	return nil
}

// Close returns the program binder to the Context and invalidates the
// binding. Close is idempotent.
func (b *ProgramBinding) Close() error {
	if b.released {
		return nil
	}
	b.released = true
	b.ctx.program.release()
	return nil
}
