package tritex

import (
	"fmt"
	"strings"
)

const (
	validVertexShader = `#version 410 core
layout (location = 0) in vec3 pos;
layout (location = 1) in vec2 texCoord;
smooth out vec2 texPos;
void main() {
    texPos = texCoord;
    gl_Position = vec4(pos, 1.0);
}
`
	validFragmentShader = `#version 410 core
uniform sampler2D tex;
smooth in vec2 texPos;
out vec4 finalColor;
void main() {
    finalColor = texture(tex, texPos);
}
`
	noSamplerFragmentShader = `#version 410 core
smooth in vec2 texPos;
out vec4 finalColor;
void main() {
    finalColor = vec4(texPos, 0.0, 1.0);
}
`
	brokenShader = `#version 410 core
void main( {
`
)

// call is one recorded Device method invocation.
type call struct {
	Name string
	Args []any
}

func (c call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

type mockShader struct {
	stage  ShaderStage
	source string
}

// mockDevice is a Device that records every call and simulates object
// allocation, compilation and linking.
//
// A shader compiles when its source contains "void main()". A program links
// unless failLink is set. A uniform exists when a linked stage declares it as
// "uniform sampler2D <name>;".
type mockDevice struct {
	calls []call

	next     uint32
	failGen  map[string]bool // method name -> return 0
	failLink bool
	// compileLog overrides the info log of a failed compile.
	compileLog string

	shaders  map[uint32]*mockShader
	attached map[uint32][]uint32
	linked   map[uint32][]string // program -> sources of its stages
	live     map[uint32]string   // object -> kind, removed on delete

	bufferData map[BufferTarget][]byte
	texImage   []byte
}

func newMockDevice() *mockDevice {
	return &mockDevice{
		failGen:    make(map[string]bool),
		shaders:    make(map[uint32]*mockShader),
		attached:   make(map[uint32][]uint32),
		linked:     make(map[uint32][]string),
		live:       make(map[uint32]string),
		bufferData: make(map[BufferTarget][]byte),
	}
}

func (m *mockDevice) record(name string, args ...any) {
	m.calls = append(m.calls, call{Name: name, Args: args})
}

func (m *mockDevice) gen(method, kind string) uint32 {
	if m.failGen[method] {
		return 0
	}
	m.next++
	m.live[m.next] = kind
	return m.next
}

// callsNamed returns the recorded calls with the given method name.
func (m *mockDevice) callsNamed(name string) []call {
	var out []call
	for _, c := range m.calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// reset forgets recorded calls but keeps object state.
func (m *mockDevice) reset() {
	m.calls = nil
}

// liveObjects returns the number of allocated objects not yet deleted.
func (m *mockDevice) liveObjects() int {
	return len(m.live)
}

func (m *mockDevice) CreateShader(stage ShaderStage) uint32 {
	id := m.gen("CreateShader", "shader")
	m.record("CreateShader", stage)
	if id != 0 {
		m.shaders[id] = &mockShader{stage: stage}
	}
	return id
}

func (m *mockDevice) ShaderSource(shader uint32, source string) {
	m.record("ShaderSource", shader)
	m.shaders[shader].source = source
}

func (m *mockDevice) CompileShader(shader uint32) { m.record("CompileShader", shader) }

func (m *mockDevice) ShaderCompiled(shader uint32) bool {
	return strings.Contains(m.shaders[shader].source, "void main()")
}

func (m *mockDevice) ShaderInfoLog(shader uint32) string {
	if m.ShaderCompiled(shader) {
		return ""
	}
	if m.compileLog != "" {
		return m.compileLog
	}
	return "0:2(11): error: syntax error, unexpected '{'\n\x00"
}

func (m *mockDevice) DeleteShader(shader uint32) {
	m.record("DeleteShader", shader)
	delete(m.live, shader)
}

func (m *mockDevice) CreateProgram() uint32 {
	id := m.gen("CreateProgram", "program")
	m.record("CreateProgram")
	return id
}

func (m *mockDevice) AttachShader(program, shader uint32) {
	m.record("AttachShader", program, shader)
	m.attached[program] = append(m.attached[program], shader)
}

func (m *mockDevice) DetachShader(program, shader uint32) {
	m.record("DetachShader", program, shader)
}

func (m *mockDevice) LinkProgram(program uint32) {
	m.record("LinkProgram", program)
	if m.failLink {
		return
	}
	var sources []string
	for _, s := range m.attached[program] {
		sources = append(sources, m.shaders[s].source)
	}
	m.linked[program] = sources
}

func (m *mockDevice) ProgramLinked(program uint32) bool {
	_, ok := m.linked[program]
	return ok
}

func (m *mockDevice) ProgramInfoLog(program uint32) string {
	if m.ProgramLinked(program) {
		return ""
	}
	return "error: fragment input texPos has no matching vertex output\n"
}

func (m *mockDevice) DeleteProgram(program uint32) {
	m.record("DeleteProgram", program)
	delete(m.live, program)
}

func (m *mockDevice) UseProgram(program uint32) { m.record("UseProgram", program) }

func (m *mockDevice) UniformLocation(program uint32, name string) int32 {
	m.record("UniformLocation", program, name)
	for _, src := range m.linked[program] {
		if strings.Contains(src, "uniform sampler2D "+name+";") {
			return 0
		}
	}
	return -1
}

func (m *mockDevice) Uniform1i(location int32, value int32) {
	m.record("Uniform1i", location, value)
}

func (m *mockDevice) GenVertexArray() uint32 {
	id := m.gen("GenVertexArray", "vao")
	m.record("GenVertexArray")
	return id
}

func (m *mockDevice) BindVertexArray(vao uint32) { m.record("BindVertexArray", vao) }

func (m *mockDevice) DeleteVertexArray(vao uint32) {
	m.record("DeleteVertexArray", vao)
	delete(m.live, vao)
}

func (m *mockDevice) GenBuffer() uint32 {
	id := m.gen("GenBuffer", "buffer")
	m.record("GenBuffer")
	return id
}

func (m *mockDevice) BindBuffer(target BufferTarget, buffer uint32) {
	m.record("BindBuffer", target, buffer)
}

func (m *mockDevice) BufferData(target BufferTarget, data []byte, usage BufferUsage) {
	m.record("BufferData", target, len(data), usage)
	m.bufferData[target] = append([]byte(nil), data...)
}

func (m *mockDevice) DeleteBuffer(buffer uint32) {
	m.record("DeleteBuffer", buffer)
	delete(m.live, buffer)
}

func (m *mockDevice) EnableVertexAttribArray(index uint32) {
	m.record("EnableVertexAttribArray", index)
}

func (m *mockDevice) VertexAttribFloat(index uint32, components int32, stride int32, offset uintptr) {
	m.record("VertexAttribFloat", index, components, stride, offset)
}

func (m *mockDevice) GenTexture() uint32 {
	id := m.gen("GenTexture", "texture")
	m.record("GenTexture")
	return id
}

func (m *mockDevice) ActiveTexture(unit uint32) { m.record("ActiveTexture", unit) }

func (m *mockDevice) BindTexture(texture uint32) { m.record("BindTexture", texture) }

func (m *mockDevice) TexParameter(param TexParam, value TexValue) {
	m.record("TexParameter", param, value)
}

func (m *mockDevice) TexImageRGBAFloat(level int32, width, height int32, pixels []byte) {
	m.record("TexImageRGBAFloat", level, width, height, len(pixels))
	m.texImage = append([]byte(nil), pixels...)
}

func (m *mockDevice) DeleteTexture(texture uint32) {
	m.record("DeleteTexture", texture)
	delete(m.live, texture)
}

func (m *mockDevice) ConfigureRaster(state RasterState) { m.record("ConfigureRaster", state) }

func (m *mockDevice) Viewport(x, y, width, height int32) {
	m.record("Viewport", x, y, width, height)
}

func (m *mockDevice) ClearColor(r, g, b, a float32) { m.record("ClearColor", r, g, b, a) }

func (m *mockDevice) ClearDepth(depth float64) { m.record("ClearDepth", depth) }

func (m *mockDevice) Clear(mask ClearMask) { m.record("Clear", mask) }

func (m *mockDevice) DrawElements(mode Primitive, count int32, indexType IndexType, offset uintptr) {
	m.record("DrawElements", mode, count, indexType, offset)
}
