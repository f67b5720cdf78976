// Package opengl implements tritex.Device on OpenGL 4.1 core and
// tritex.Surface on a GLFW window.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/tritex"
)

// Device issues tritex.Device calls on the current OpenGL context.
type Device struct {
	version string
}

var _ tritex.Device = (*Device)(nil)

// NewDevice loads the OpenGL function pointers for the current context.
// The window's context must be current on the calling thread.
func NewDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	return &Device{version: gl.GoStr(gl.GetString(gl.VERSION))}, nil
}

// Version returns the driver's GL_VERSION string.
func (d *Device) Version() string {
	return d.version
}

// ---- Shaders and programs ----

func (d *Device) CreateShader(stage tritex.ShaderStage) uint32 {
	switch stage {
	case tritex.StageVertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case tritex.StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return 0
	}
}

func (d *Device) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

func (d *Device) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (d *Device) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (d *Device) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (d *Device) CreateProgram() uint32 { return gl.CreateProgram() }

func (d *Device) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (d *Device) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }

func (d *Device) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (d *Device) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (d *Device) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (d *Device) UseProgram(program uint32) { gl.UseProgram(program) }

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) Uniform1i(location int32, value int32) { gl.Uniform1i(location, value) }

// ---- Buffers and vertex layout ----

func (d *Device) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (d *Device) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (d *Device) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (d *Device) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (d *Device) BindBuffer(target tritex.BufferTarget, buffer uint32) {
	gl.BindBuffer(bufferTarget(target), buffer)
}

func (d *Device) BufferData(target tritex.BufferTarget, data []byte, usage tritex.BufferUsage) {
	gl.BufferData(bufferTarget(target), len(data), ptr(data), bufferUsage(usage))
}

func (d *Device) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (d *Device) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (d *Device) VertexAttribFloat(index uint32, components int32, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, components, gl.FLOAT, false, stride, offset)
}

// ---- Textures ----

func (d *Device) GenTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (d *Device) ActiveTexture(unit uint32) { gl.ActiveTexture(gl.TEXTURE0 + unit) }

func (d *Device) BindTexture(texture uint32) { gl.BindTexture(gl.TEXTURE_2D, texture) }

func (d *Device) TexParameter(param tritex.TexParam, value tritex.TexValue) {
	gl.TexParameteri(gl.TEXTURE_2D, texParam(param), int32(texValue(value)))
}

func (d *Device) TexImageRGBAFloat(level int32, width, height int32, pixels []byte) {
	gl.TexImage2D(gl.TEXTURE_2D, level, gl.RGBA32F, width, height, 0, gl.RGBA, gl.FLOAT, ptr(pixels))
}

func (d *Device) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }

// ---- Frame ----

func (d *Device) ConfigureRaster(s tritex.RasterState) {
	if s.CullBackFaces {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
	if s.FrontFaceCCW {
		gl.FrontFace(gl.CCW)
	} else {
		gl.FrontFace(gl.CW)
	}

	if s.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	gl.DepthMask(s.DepthWrite)
	gl.DepthFunc(depthFunc(s.DepthFunc))
	gl.DepthRange(s.DepthNear, s.DepthFar)
}

func (d *Device) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (d *Device) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (d *Device) ClearDepth(depth float64) { gl.ClearDepth(depth) }

func (d *Device) Clear(mask tritex.ClearMask) {
	var bits uint32
	if mask&tritex.ClearColorBit != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&tritex.ClearDepthBit != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

func (d *Device) DrawElements(mode tritex.Primitive, count int32, indexType tritex.IndexType, offset uintptr) {
	gl.DrawElementsWithOffset(primitive(mode), count, indexTypeEnum(indexType), offset)
}

// ReadPixels returns the bottom-left-origin RGBA8 contents of the current
// read framebuffer.
func (d *Device) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, ptr(pixels))
	return pixels
}

// ---- Enum mapping ----

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

func bufferTarget(t tritex.BufferTarget) uint32 {
	if t == tritex.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func bufferUsage(u tritex.BufferUsage) uint32 {
	if u == tritex.StreamDraw {
		return gl.STREAM_DRAW
	}
	return gl.STATIC_DRAW
}

func texParam(p tritex.TexParam) uint32 {
	switch p {
	case tritex.TexWrapS:
		return gl.TEXTURE_WRAP_S
	case tritex.TexWrapT:
		return gl.TEXTURE_WRAP_T
	case tritex.TexMinFilter:
		return gl.TEXTURE_MIN_FILTER
	default:
		return gl.TEXTURE_MAG_FILTER
	}
}

func texValue(v tritex.TexValue) uint32 {
	switch v {
	case tritex.TexClampToEdge:
		return gl.CLAMP_TO_EDGE
	case tritex.TexLinear:
		return gl.LINEAR
	case tritex.TexNearest:
		return gl.NEAREST
	default:
		return gl.REPEAT
	}
}

func depthFunc(f tritex.DepthFunc) uint32 {
	switch f {
	case tritex.DepthLess:
		return gl.LESS
	case tritex.DepthAlways:
		return gl.ALWAYS
	default:
		return gl.LEQUAL
	}
}

func primitive(p tritex.Primitive) uint32 {
	if p == tritex.TriangleStrip {
		return gl.TRIANGLE_STRIP
	}
	return gl.TRIANGLES
}

func indexTypeEnum(t tritex.IndexType) uint32 {
	if t == tritex.UnsignedInt {
		return gl.UNSIGNED_INT
	}
	return gl.UNSIGNED_SHORT
}
