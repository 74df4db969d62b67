package safegl_test

import (
	"fmt"

	"github.com/gogpu/safegl"
	"github.com/gogpu/safegl/driver/drivertest"
)

// Example walks the whole object and binding lifecycle against the
// recording test driver: create and link a program, resolve a uniform,
// upload vertex data, and draw.
func Example() {
	d := drivertest.New()
	d.UniformLocations = map[string]int32{"color": 0}
	d.AttribLocations = map[string]int32{"position": 0}

	gl := safegl.New(d)

	vs, _ := gl.CreateShader(safegl.VertexShader)
	defer vs.Destroy()
	fs, _ := gl.CreateShader(safegl.FragmentShader)
	defer fs.Destroy()

	program, _ := gl.CreateProgram()
	defer program.Destroy()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	if err := gl.LinkProgram(program); err != nil {
		fmt.Println("link failed:", err)
		return
	}

	color, _ := gl.UniformLocation(program, "color")
	position, _ := gl.AttribLocation(program, "position")

	buf, _ := gl.CreateBuffer()
	defer buf.Destroy()
	verts := safegl.VertexVec2s{{0, 0}, {1, 0}, {0, 1}}
	_ = gl.WithArrayBuffer(buf, func(b *safegl.ArrayBufferBinding) error {
		if err := b.BufferData(verts, safegl.StaticDraw); err != nil {
			return err
		}
		return b.VertexAttribPointer(position, verts.VertexDatum(), 0, 0)
	})
	gl.EnableVertexAttribArray(position)

	_ = gl.WithProgram(program, func(b *safegl.ProgramBinding) error {
		return b.SetUniform(color, safegl.Vec4s{{1, 0, 0, 1}})
	})

	gl.ClearColor(safegl.RGBA(0, 0, 0, 1))
	gl.Clear(safegl.ColorBufferBit)
	gl.DrawArrays(safegl.Triangles, 0, verts.VertexCount())

	fmt.Println("draw calls:", len(d.DrawCalls))
	// Output:
	// draw calls: 1
}
