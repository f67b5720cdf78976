package tritex

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

// String returns the lowercase stage name used in diagnostics.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// BufferTarget selects which buffer binding point a call refers to.
type BufferTarget int

const (
	ArrayBuffer        BufferTarget = iota // per-vertex data
	ElementArrayBuffer                     // indices
)

// BufferUsage hints how often buffer contents change.
type BufferUsage int

const (
	StaticDraw BufferUsage = iota // upload once, draw many times
	StreamDraw
)

// TexParam names a 2D texture parameter.
type TexParam int

const (
	TexWrapS TexParam = iota
	TexWrapT
	TexMinFilter
	TexMagFilter
)

// TexValue is a value for a TexParam.
type TexValue int

const (
	TexRepeat TexValue = iota
	TexClampToEdge
	TexLinear
	TexNearest
)

// ClearMask selects the framebuffer planes cleared by Device.Clear.
type ClearMask int

const (
	ClearColorBit ClearMask = 1 << iota
	ClearDepthBit
)

// Primitive is the topology used to interpret indices.
type Primitive int

const (
	Triangles Primitive = iota
	TriangleStrip
)

// IndexType is the element type of an index buffer.
type IndexType int

const (
	UnsignedShort IndexType = iota
	UnsignedInt
)

// DepthFunc is the depth comparison function.
type DepthFunc int

const (
	DepthLess DepthFunc = iota
	DepthLEqual
	DepthAlways
)

// RasterState groups the fixed-function state configured once at startup.
type RasterState struct {
	CullBackFaces bool
	FrontFaceCCW  bool
	DepthTest     bool
	DepthWrite    bool
	DepthFunc     DepthFunc
	DepthNear     float64
	DepthFar      float64
}

// DefaultRasterState returns back-face culling with counter-clockwise front
// faces and a less-or-equal depth test over the full [0,1] range.
func DefaultRasterState() RasterState {
	return RasterState{
		CullBackFaces: true,
		FrontFaceCCW:  true,
		DepthTest:     true,
		DepthWrite:    true,
		DepthFunc:     DepthLEqual,
		DepthNear:     0,
		DepthFar:      1,
	}
}

// Device is the subset of a graphics API the render core needs.
// Object names are API handles; zero always means "no object".
// All methods must be called from the thread that owns the context.
type Device interface {
	// Shaders and programs
	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, value int32)

	// Buffers and vertex layout
	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	BindBuffer(target BufferTarget, buffer uint32)
	BufferData(target BufferTarget, data []byte, usage BufferUsage)
	DeleteBuffer(buffer uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribFloat(index uint32, components int32, stride int32, offset uintptr)

	// Textures
	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(texture uint32)
	TexParameter(param TexParam, value TexValue)
	TexImageRGBAFloat(level int32, width, height int32, pixels []byte)
	DeleteTexture(texture uint32)

	// Frame
	ConfigureRaster(state RasterState)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float64)
	Clear(mask ClearMask)
	DrawElements(mode Primitive, count int32, indexType IndexType, offset uintptr)
}

// Surface is the window-system side of the frame loop.
type Surface interface {
	// ShouldClose reports whether the loop must stop.
	ShouldClose() bool
	// PollEvents processes pending window-system events.
	PollEvents()
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)
	// SwapBuffers presents the frame just rendered.
	SwapBuffers()
}
