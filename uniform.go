package safegl

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

// UniformDatumType tags the shape of one uniform datum: a 1 to 4 component
// vector of float or int, or a square float matrix. The tag alone selects
// the driver upload call.
type UniformDatumType int

const (
	UniformVec1Float UniformDatumType = iota
	UniformVec2Float
	UniformVec3Float
	UniformVec4Float
	UniformVec1Int
	UniformVec2Int
	UniformVec3Int
	UniformVec4Int
	UniformMatrix2x2
	UniformMatrix3x3
	UniformMatrix4x4
)

// String returns the name of the datum type.
func (t UniformDatumType) String() string {
	switch t {
	case UniformVec1Float:
		return "Vec1Float"
	case UniformVec2Float:
		return "Vec2Float"
	case UniformVec3Float:
		return "Vec3Float"
	case UniformVec4Float:
		return "Vec4Float"
	case UniformVec1Int:
		return "Vec1Int"
	case UniformVec2Int:
		return "Vec2Int"
	case UniformVec3Int:
		return "Vec3Int"
	case UniformVec4Int:
		return "Vec4Int"
	case UniformMatrix2x2:
		return "Matrix2x2"
	case UniformMatrix3x3:
		return "Matrix3x3"
	case UniformMatrix4x4:
		return "Matrix4x4"
	default:
		return fmt.Sprintf("InvalidUniformDatumType(%d)", int(t))
	}
}

// UniformData is the capability contract for uniform upload: a value
// exposes its element count, its raw little-endian bytes, and the datum
// type the bytes must be interpreted as.
//
// Implementations guarantee that len(UniformBytes()) equals
// UniformElements() times the byte size of one datum; SetUniform relies
// on that without re-checking.
type UniformData interface {
	UniformElements() int
	UniformBytes() []byte
	UniformDatumType() UniformDatumType
}

// Mat2 is a 2×2 float32 matrix in column-major order.
// golang.org/x/image/math/f32 starts at Mat3, so the 2×2 case is local.
type Mat2 [4]float32

// IVec2 is a 2-component int32 vector.
type IVec2 [2]int32

// IVec3 is a 3-component int32 vector.
type IVec3 [3]int32

// IVec4 is a 4-component int32 vector.
type IVec4 [4]int32

// Slice types implementing UniformData. A slice of N elements uploads a
// uniform array of N data; use a one-element slice for a plain uniform.

// Floats uploads float scalars.
type Floats []float32

func (v Floats) UniformElements() int { return len(v) }
func (v Floats) UniformDatumType() UniformDatumType { return UniformVec1Float }

func (v Floats) UniformBytes() []byte {
	buf := make([]byte, 0, len(v)*4)
	for _, x := range v {
		buf = appendFloat32(buf, x)
	}
	return buf
}

// Ints uploads int scalars.
type Ints []int32

func (v Ints) UniformElements() int { return len(v) }
func (v Ints) UniformDatumType() UniformDatumType { return UniformVec1Int }

func (v Ints) UniformBytes() []byte {
	buf := make([]byte, 0, len(v)*4)
	for _, x := range v {
		buf = appendInt32(buf, x)
	}
	return buf
}

// Vec2s uploads 2-component float vectors.
type Vec2s []f32.Vec2

func (v Vec2s) UniformElements() int { return len(v) }
func (v Vec2s) UniformDatumType() UniformDatumType { return UniformVec2Float }

func (v Vec2s) UniformBytes() []byte {
	buf := make([]byte, 0, len(v)*2*4)
	for _, e := range v {
		for _, x := range e {
			buf = appendFloat32(buf, x)
		}
	}
	return buf
}

// Vec3s uploads 3-component float vectors.
type Vec3s []f32.Vec3

func (v Vec3s) UniformElements() int { return len(v) }
func (v Vec3s) UniformDatumType() UniformDatumType { return UniformVec3Float }

func (v Vec3s) UniformBytes() []byte {
	buf := make([]byte, 0, len(v)*3*4)
	for _, e := range v {
		for _, x := range e {
			buf = appendFloat32(buf, x)
		}
	}
	return buf
}

// Vec4s uploads 4-component float vectors.
type Vec4s []f32.Vec4

func (v Vec4s) UniformElements() int { return len(v) }
func (v Vec4s) UniformDatumType() UniformDatumType { return UniformVec4Float }

func (v Vec4s) UniformBytes() []byte {
	buf := make([]byte, 0, len(v)*4*4)
	for _, e := range v {
		for _, x := range e {
			buf = appendFloat32(buf, x)
		}
	}
	return buf
}

// IVec2s uploads 2-component int vectors.
type IVec2s []IVec2

func (v IVec2s) UniformElements() int { return len(v) }
func (v IVec2s) UniformDatumType() UniformDatumType { return UniformVec2Int }

func (v IVec2s) UniformBytes() []byte {
	buf := make([]byte, 0, len(v)*2*4)
	for _, e := range v {
		for _, x := range e {
			buf = appendInt32(buf, x)
		}
	}
	return buf
}

// IVec3s uploads 3-component int vectors.
type IVec3s []IVec3

func (v IVec3s) UniformElements() int { return len(v) }
func (v IVec3s) UniformDatumType() UniformDatumType { return UniformVec3Int }

func (v IVec3s) UniformBytes() []byte {
	buf := make([]byte, 0, len(v)*3*4)
	for _, e := range v {
		for _, x := range e {
			buf = appendInt32(buf, x)
		}
	}
	return buf
}

// IVec4s uploads 4-component int vectors.
type IVec4s []IVec4

func (v IVec4s) UniformElements() int { return len(v) }
func (v IVec4s) UniformDatumType() UniformDatumType { return UniformVec4Int }

func (v IVec4s) UniformBytes() []byte {
	buf := make([]byte, 0, len(v)*4*4)
	for _, e := range v {
		for _, x := range e {
			buf = appendInt32(buf, x)
		}
	}
	return buf
}

// Mat2s uploads 2×2 float matrices.
type Mat2s []Mat2

func (v Mat2s) UniformElements() int { return len(v) }
func (v Mat2s) UniformDatumType() UniformDatumType { return UniformMatrix2x2 }

func (v Mat2s) UniformBytes() []byte {
	buf := make([]byte, 0, len(v)*4*4)
	for _, e := range v {
		for _, x := range e {
			buf = appendFloat32(buf, x)
		}
	}
	return buf
}

// Mat3s uploads 3×3 float matrices.
type Mat3s []f32.Mat3

func (v Mat3s) UniformElements() int { return len(v) }
func (v Mat3s) UniformDatumType() UniformDatumType { return UniformMatrix3x3 }

func (v Mat3s) UniformBytes() []byte {
	buf := make([]byte, 0, len(v)*9*4)
	for _, e := range v {
		for _, x := range e {
			buf = appendFloat32(buf, x)
		}
	}
	return buf
}

// Mat4s uploads 4×4 float matrices.
type Mat4s []f32.Mat4

func (v Mat4s) UniformElements() int { return len(v) }
func (v Mat4s) UniformDatumType() UniformDatumType { return UniformMatrix4x4 }

func (v Mat4s) UniformBytes() []byte {
	buf := make([]byte, 0, len(v)*16*4)
	for _, e := range v {
		for _, x := range e {
			buf = appendFloat32(buf, x)
		}
	}
	return buf
}

func appendFloat32(buf []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
}

func appendInt32(buf []byte, v int32) []byte {
	return binary.LittleEndian.AppendUint32(buf, uint32(v))
}
