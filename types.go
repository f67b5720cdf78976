package tritex

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one interleaved mesh vertex.
// Memory layout matches the vertex attribute description in BuildGeometry:
// 20 bytes, position at offset 0, texture coordinate at offset 12.
type Vertex struct {
	Pos mgl32.Vec3 // Position (x, y, z)
	UV  mgl32.Vec2 // Texture coordinate (u, v)
}

// Byte layout of Vertex.
const (
	VertexStride   = int32(unsafe.Sizeof(Vertex{}))
	PositionOffset = unsafe.Offsetof(Vertex{}.Pos)
	UVOffset       = unsafe.Offsetof(Vertex{}.UV)
)

// Vertex attribute channels.
const (
	AttribPosition uint32 = 0
	AttribUV       uint32 = 1
)

// TriangleVertices is the one triangle drawn every frame.
var TriangleVertices = [3]Vertex{
	{Pos: mgl32.Vec3{-0.5, -0.5, -1.0}, UV: mgl32.Vec2{0.0, 0.0}}, // left bottom, texture bottom left
	{Pos: mgl32.Vec3{0.5, -0.5, -1.0}, UV: mgl32.Vec2{1.0, 0.0}},  // right bottom, texture bottom right
	{Pos: mgl32.Vec3{0.0, 0.5, -1.0}, UV: mgl32.Vec2{0.5, 1.0}},   // center top, texture top center
}

// TriangleIndices indexes TriangleVertices as a single triangle.
var TriangleIndices = [3]uint16{0, 1, 2}

// Band colors of the stripe texture.
var (
	TexelRed   = mgl32.Vec4{1, 0, 0, 1}
	TexelGreen = mgl32.Vec4{0, 1, 0, 1}
	TexelBlue  = mgl32.Vec4{0, 0, 1, 1}
)

// Program is a linked GPU program. Zero means "not built".
type Program uint32

// Valid reports whether p names a program.
func (p Program) Valid() bool { return p != 0 }

// Texture is a 2D texture object. Zero means "not built".
type Texture uint32

// Valid reports whether t names a texture.
func (t Texture) Valid() bool { return t != 0 }

// Geometry is the vertex layout object together with the buffers it references.
// Binding VAO alone restores the full layout for a draw.
type Geometry struct {
	VAO          uint32
	VertexBuffer uint32
	IndexBuffer  uint32
	IndexCount   int32
}

// Valid reports whether g holds a vertex array and both buffers.
func (g Geometry) Valid() bool {
	return g.VAO != 0 && g.VertexBuffer != 0 && g.IndexBuffer != 0 && g.IndexCount > 0
}

// asBytes reinterprets a slice of fixed-size values as raw bytes for upload.
func asBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}
