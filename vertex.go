package safegl

import "golang.org/x/image/math/f32"

// VertexDatum describes the shape of one vertex attribute datum: how
// many scalar components it has, their wire type, and whether integer
// values are normalized into [0, 1] or [-1, 1] when read.
type VertexDatum struct {
	Components int32
	Type       DataType
	Normalized bool
}

// VertexData is the capability contract for vertex upload: a value
// exposes its raw bytes, how many vertices they hold, and the datum
// shape of one vertex.
//
// Implementations guarantee that len(VertexBytes()) equals
// VertexCount() times the datum's component count times the scalar
// size; the bindings rely on that without re-checking.
type VertexData interface {
	VertexBytes() []byte
	VertexCount() int
	VertexDatum() VertexDatum
}

// IndexData is the capability contract for index upload. Index scalars
// are restricted to UnsignedByte and UnsignedShort.
type IndexData interface {
	IndexBytes() []byte
	IndexCount() int
	IndexType() DataType
}

// VertexFloats holds single-float vertex attributes.
type VertexFloats []float32

func (v VertexFloats) VertexCount() int { return len(v) }

func (v VertexFloats) VertexDatum() VertexDatum {
	return VertexDatum{Components: 1, Type: Float}
}

func (v VertexFloats) VertexBytes() []byte {
	buf := make([]byte, 0, len(v)*4)
	for _, x := range v {
		buf = appendFloat32(buf, x)
	}
	return buf
}

// VertexVec2s holds 2-component float vertex attributes, such as 2D
// positions or texture coordinates.
type VertexVec2s []f32.Vec2

func (v VertexVec2s) VertexCount() int { return len(v) }

func (v VertexVec2s) VertexDatum() VertexDatum {
	return VertexDatum{Components: 2, Type: Float}
}

func (v VertexVec2s) VertexBytes() []byte {
	buf := make([]byte, 0, len(v)*2*4)
	for _, e := range v {
		for _, x := range e {
			buf = appendFloat32(buf, x)
		}
	}
	return buf
}

// VertexVec3s holds 3-component float vertex attributes.
type VertexVec3s []f32.Vec3

func (v VertexVec3s) VertexCount() int { return len(v) }

func (v VertexVec3s) VertexDatum() VertexDatum {
	return VertexDatum{Components: 3, Type: Float}
}

func (v VertexVec3s) VertexBytes() []byte {
	buf := make([]byte, 0, len(v)*3*4)
	for _, e := range v {
		for _, x := range e {
			buf = appendFloat32(buf, x)
		}
	}
	return buf
}

// VertexVec4s holds 4-component float vertex attributes.
type VertexVec4s []f32.Vec4

func (v VertexVec4s) VertexCount() int { return len(v) }

func (v VertexVec4s) VertexDatum() VertexDatum {
	return VertexDatum{Components: 4, Type: Float}
}

func (v VertexVec4s) VertexBytes() []byte {
	buf := make([]byte, 0, len(v)*4*4)
	for _, e := range v {
		for _, x := range e {
			buf = appendFloat32(buf, x)
		}
	}
	return buf
}

// ByteIndices holds 8-bit element indices.
type ByteIndices []uint8

func (v ByteIndices) IndexCount() int     { return len(v) }
func (v ByteIndices) IndexType() DataType { return UnsignedByte }
func (v ByteIndices) IndexBytes() []byte  { return []byte(v) }

// ShortIndices holds 16-bit element indices.
type ShortIndices []uint16

func (v ShortIndices) IndexCount() int     { return len(v) }
func (v ShortIndices) IndexType() DataType { return UnsignedShort }

func (v ShortIndices) IndexBytes() []byte {
	buf := make([]byte, 0, len(v)*2)
	for _, x := range v {
		buf = append(buf, byte(x), byte(x>>8))
	}
	return buf
}
