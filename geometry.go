package tritex

import "fmt"

// BuildGeometry uploads TriangleVertices and TriangleIndices as static data
// and records the attribute layout in a vertex array object.
func BuildGeometry(dev Device) (Geometry, error) {
	var g Geometry

	g.VAO = dev.GenVertexArray()
	if g.VAO == 0 {
		return Geometry{}, fmt.Errorf("vertex array: %w", ErrAllocation)
	}
	dev.BindVertexArray(g.VAO)

	g.VertexBuffer = dev.GenBuffer()
	if g.VertexBuffer == 0 {
		releaseGeometry(dev, g)
		return Geometry{}, fmt.Errorf("vertex buffer: %w", ErrAllocation)
	}
	dev.BindBuffer(ArrayBuffer, g.VertexBuffer)
	dev.BufferData(ArrayBuffer, asBytes(TriangleVertices[:]), StaticDraw)

	// Position attribute
	dev.EnableVertexAttribArray(AttribPosition)
	dev.VertexAttribFloat(AttribPosition, 3, VertexStride, PositionOffset)

	// Texture coordinate attribute
	dev.EnableVertexAttribArray(AttribUV)
	dev.VertexAttribFloat(AttribUV, 2, VertexStride, UVOffset)

	// The element buffer binding is part of the vertex array state, so it must
	// be bound while the VAO is.
	g.IndexBuffer = dev.GenBuffer()
	if g.IndexBuffer == 0 {
		dev.BindVertexArray(0)
		releaseGeometry(dev, g)
		return Geometry{}, fmt.Errorf("index buffer: %w", ErrAllocation)
	}
	dev.BindBuffer(ElementArrayBuffer, g.IndexBuffer)
	dev.BufferData(ElementArrayBuffer, asBytes(TriangleIndices[:]), StaticDraw)
	g.IndexCount = int32(len(TriangleIndices))

	dev.BindVertexArray(0)
	dev.BindBuffer(ArrayBuffer, 0)
	dev.BindBuffer(ElementArrayBuffer, 0)

	return g, nil
}

// releaseGeometry deletes whatever parts of g were created.
func releaseGeometry(dev Device, g Geometry) {
	if g.IndexBuffer != 0 {
		dev.DeleteBuffer(g.IndexBuffer)
	}
	if g.VertexBuffer != 0 {
		dev.DeleteBuffer(g.VertexBuffer)
	}
	if g.VAO != 0 {
		dev.DeleteVertexArray(g.VAO)
	}
}
