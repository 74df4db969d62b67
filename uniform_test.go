package safegl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"golang.org/x/image/math/f32"
)

// TestSetUniformDispatch verifies that every datum type tag reaches its
// matching driver call, with the element count and packed bytes passed
// through and matrices never transposed.
func TestSetUniformDispatch(t *testing.T) {
	tests := []struct {
		name      string
		val       UniformData
		wantFunc  string
		wantCount int32
	}{
		{"vec1 float", Floats{0.5}, "Uniform1fv", 1},
		{"vec2 float", Vec2s{{1, 2}}, "Uniform2fv", 1},
		{"vec3 float", Vec3s{{1, 2, 3}}, "Uniform3fv", 1},
		{"vec4 float", Vec4s{{1, 2, 3, 4}}, "Uniform4fv", 1},
		{"vec1 int", Ints{9}, "Uniform1iv", 1},
		{"vec2 int", IVec2s{{1, 2}}, "Uniform2iv", 1},
		{"vec3 int", IVec3s{{1, 2, 3}}, "Uniform3iv", 1},
		{"vec4 int", IVec4s{{1, 2, 3, 4}}, "Uniform4iv", 1},
		{"matrix 2x2", Mat2s{{1, 0, 0, 1}}, "UniformMatrix2fv", 1},
		{"matrix 3x3", Mat3s{f32.Mat3{}}, "UniformMatrix3fv", 1},
		{"matrix 4x4", Mat4s{f32.Mat4{}}, "UniformMatrix4fv", 1},
		{"float array", Floats{1, 2, 3}, "Uniform1fv", 3},
		{"vec3 array", Vec3s{{1, 2, 3}, {4, 5, 6}}, "Uniform3fv", 2},
		{"matrix array", Mat4s{f32.Mat4{}, f32.Mat4{}}, "UniformMatrix4fv", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, d := newTestContext(t)
			p := linkReadyProgram(t, c)
			if err := c.LinkProgram(p); err != nil {
				t.Fatalf("link: %v", err)
			}

			err := c.WithProgram(p, func(b *ProgramBinding) error {
				return b.SetUniform(ProgramUniform{Index: 4}, tt.val)
			})
			if err != nil {
				t.Fatalf("SetUniform: %v", err)
			}

			if len(d.Uniforms) != 1 {
				t.Fatalf("uniform calls = %d, want 1", len(d.Uniforms))
			}
			call := d.Uniforms[0]
			if call.Func != tt.wantFunc {
				t.Errorf("dispatched to %s, want %s", call.Func, tt.wantFunc)
			}
			if call.Location != 4 {
				t.Errorf("location = %d, want 4", call.Location)
			}
			if call.Count != tt.wantCount {
				t.Errorf("count = %d, want %d", call.Count, tt.wantCount)
			}
			if call.Transpose {
				t.Error("transpose = true, want false")
			}
			if want := tt.val.UniformBytes(); !bytes.Equal(call.Data, want) {
				t.Errorf("data = % x, want % x", call.Data, want)
			}
		})
	}
}

// staleDatum reports a datum type tag outside the known set.
type staleDatum struct{}

func (staleDatum) UniformElements() int               { return 1 }
func (staleDatum) UniformBytes() []byte               { return make([]byte, 4) }
func (staleDatum) UniformDatumType() UniformDatumType { return UniformDatumType(99) }

func TestSetUniformUnknownDatumType(t *testing.T) {
	c, d := newTestContext(t)
	p := linkReadyProgram(t, c)
	if err := c.LinkProgram(p); err != nil {
		t.Fatalf("link: %v", err)
	}

	err := c.WithProgram(p, func(b *ProgramBinding) error {
		return b.SetUniform(ProgramUniform{Index: 0}, staleDatum{})
	})
	if !errors.Is(err, ErrInvalidEnum) {
		t.Fatalf("SetUniform with unknown tag = %v, want ErrInvalidEnum", err)
	}
	if len(d.Uniforms) != 0 {
		t.Errorf("uniform calls = %d, want 0", len(d.Uniforms))
	}
}

func TestUniformBytesLayout(t *testing.T) {
	got := Vec2s{{1.5, -2}}.UniformBytes()

	want := make([]byte, 0, 8)
	want = binary.LittleEndian.AppendUint32(want, math.Float32bits(1.5))
	want = binary.LittleEndian.AppendUint32(want, math.Float32bits(-2))
	if !bytes.Equal(got, want) {
		t.Errorf("bytes = % x, want % x", got, want)
	}

	if got := (Ints{-1}).UniformBytes(); !bytes.Equal(got, []byte{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("int bytes = % x, want ff ff ff ff", got)
	}
}

func TestUniformDataContracts(t *testing.T) {
	tests := []struct {
		name      string
		val       UniformData
		wantType  UniformDatumType
		wantCount int
		wantBytes int
	}{
		{"Floats", Floats{1, 2}, UniformVec1Float, 2, 8},
		{"Ints", Ints{1}, UniformVec1Int, 1, 4},
		{"Vec2s", Vec2s{{1, 2}}, UniformVec2Float, 1, 8},
		{"Vec3s", Vec3s{{1, 2, 3}}, UniformVec3Float, 1, 12},
		{"Vec4s", Vec4s{{1, 2, 3, 4}}, UniformVec4Float, 1, 16},
		{"IVec2s", IVec2s{{1, 2}}, UniformVec2Int, 1, 8},
		{"IVec3s", IVec3s{{1, 2, 3}}, UniformVec3Int, 1, 12},
		{"IVec4s", IVec4s{{1, 2, 3, 4}}, UniformVec4Int, 1, 16},
		{"Mat2s", Mat2s{{1, 0, 0, 1}}, UniformMatrix2x2, 1, 16},
		{"Mat3s", Mat3s{f32.Mat3{}}, UniformMatrix3x3, 1, 36},
		{"Mat4s", Mat4s{f32.Mat4{}}, UniformMatrix4x4, 1, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.val.UniformDatumType(); got != tt.wantType {
				t.Errorf("datum type = %v, want %v", got, tt.wantType)
			}
			if got := tt.val.UniformElements(); got != tt.wantCount {
				t.Errorf("elements = %d, want %d", got, tt.wantCount)
			}
			if got := len(tt.val.UniformBytes()); got != tt.wantBytes {
				t.Errorf("byte length = %d, want %d", got, tt.wantBytes)
			}
		})
	}
}
