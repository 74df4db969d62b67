package safegl

import (
	"fmt"

	"github.com/gogpu/safegl/driver"
)

// ShaderType selects the pipeline stage a shader object compiles for.
type ShaderType int

const (
	VertexShader ShaderType = iota
	FragmentShader
)

// String returns the driver-side name of the shader type.
func (t ShaderType) String() string {
	switch t {
	case VertexShader:
		return "VERTEX_SHADER"
	case FragmentShader:
		return "FRAGMENT_SHADER"
	default:
		return fmt.Sprintf("INVALID_SHADER_TYPE(%d)", int(t))
	}
}

// glEnum maps the shader type to its fixed driver constant.
func (t ShaderType) glEnum() driver.Enum {
	switch t {
	case VertexShader:
		return driver.VERTEX_SHADER
	default:
		return driver.FRAGMENT_SHADER
	}
}

// Shader owns one driver-side shader object handle.
type Shader struct {
	fns       driver.Functions
	id        uint32
	destroyed bool
}

// CreateShader asks the driver for a new shader object of the given type.
// A zero handle from the driver is reported as ErrCreateFailed.
func (c *Context) CreateShader(typ ShaderType) (*Shader, error) {
	id := c.fns.CreateShader(typ.glEnum())
	c.check("CreateShader")
	if id == 0 {
		return nil, ErrCreateFailed
	}
	return &Shader{fns: c.fns, id: id}, nil
}

// ID returns the raw driver handle, or 0 if the shader was destroyed.
func (s *Shader) ID() uint32 {
	if s.destroyed {
		return 0
	}
	return s.id
}

// Destroy deletes the driver-side shader object.
// Destroy is idempotent; only the first call reaches the driver.
func (s *Shader) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.fns.DeleteShader(s.id)
}

// ShaderSource replaces the shader's source text.
func (c *Context) ShaderSource(shader *Shader, src string) {
	c.fns.ShaderSource(shader.id, src)
	c.check("ShaderSource")
}

// CompileShader compiles the shader's current source. On failure the
// compile log is returned as a MessageError; when the driver reports no
// log, a fallback literal is substituted so the error text is never
// empty.
func (c *Context) CompileShader(shader *Shader) error {
	c.fns.CompileShader(shader.id)
	c.check("CompileShader")

	status := c.fns.GetShaderiv(shader.id, driver.COMPILE_STATUS)
	if status == driver.TRUE {
		return nil
	}
	msg, ok := c.ShaderInfoLog(shader)
	if !ok {
		msg = "[Unknown shader error]"
	}
	return &MessageError{Text: msg}
}

// ShaderInfoLog returns the shader's info log, or ok == false when the
// driver reports no log or the log is not valid UTF-8.
func (c *Context) ShaderInfoLog(shader *Shader) (string, bool) {
	length := c.fns.GetShaderiv(shader.id, driver.INFO_LOG_LENGTH)
	if length <= 0 {
		return "", false
	}
	raw := c.fns.GetShaderInfoLog(shader.id, length)
	c.check("GetShaderInfoLog")
	return decodeInfoLog(raw)
}
