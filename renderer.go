package tritex

import (
	"errors"
	"fmt"
	"log/slog"
)

// Scene holds the GPU objects built at startup. It is read-only once built.
type Scene struct {
	Program  Program
	Geometry Geometry
	Texture  Texture
	Sampler  int32 // sampler uniform location, -1 if the program has none
}

// Renderer owns a Scene and draws it on a Device.
// It is not safe for concurrent use; call it from the thread that owns the
// graphics context.
type Renderer struct {
	dev    Device
	scene  Scene
	logger *slog.Logger

	width, height int
	frames        uint64
}

// NewRenderer configures raster state and builds the program, geometry and
// texture. It returns an error if any of them fails, after releasing what was
// already built, so a Renderer never draws with an invalid handle.
//
// A program without the sampler uniform only logs a warning and keeps
// rendering, unless WithStrictSampler is set.
func NewRenderer(dev Device, opts ...Option) (*Renderer, error) {
	o := applyOptions(opts)
	r := &Renderer{dev: dev, logger: o.logger}

	dev.ConfigureRaster(o.raster)

	program, err := BuildProgram(dev, o.vertexPath, o.fragmentPath, o.infoLogLimit)
	if err != nil {
		r.logBuildError(err)
		return nil, fmt.Errorf("failed to create program: %w", err)
	}
	r.scene.Program = program

	dev.UseProgram(uint32(program))
	r.scene.Sampler = dev.UniformLocation(uint32(program), o.samplerName)
	if r.scene.Sampler < 0 {
		r.logger.Warn("could not bind uniform", "name", o.samplerName)
		if o.strictSampler {
			r.Delete()
			return nil, fmt.Errorf("uniform %q: %w", o.samplerName, ErrSamplerNotFound)
		}
	}

	r.scene.Geometry, err = BuildGeometry(dev)
	if err != nil {
		r.Delete()
		return nil, fmt.Errorf("failed to create geometry: %w", err)
	}

	r.scene.Texture, err = BuildTexture(dev)
	if err != nil {
		r.Delete()
		return nil, fmt.Errorf("failed to create texture: %w", err)
	}

	r.logger.Debug("scene ready",
		"program", uint32(r.scene.Program),
		"vao", r.scene.Geometry.VAO,
		"texture", uint32(r.scene.Texture),
		"sampler", r.scene.Sampler)

	return r, nil
}

func (r *Renderer) logBuildError(err error) {
	var shaderErr *ShaderError
	var linkErr *LinkError
	switch {
	case errors.As(err, &shaderErr):
		r.logger.Error("shader compile failed", "stage", shaderErr.Stage.String(), "log", shaderErr.Log)
	case errors.As(err, &linkErr):
		r.logger.Error("program link failed", "log", linkErr.Log)
	default:
		r.logger.Error("program build failed", "error", err)
	}
}

// Scene returns the handles built by NewRenderer.
func (r *Renderer) Scene() Scene {
	return r.scene
}

// Frames returns the number of frames rendered so far.
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// Resize updates the viewport when the framebuffer size changes.
func (r *Renderer) Resize(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.width = width
	r.height = height
	r.dev.Viewport(0, 0, int32(width), int32(height))
}

// RenderFrame clears the framebuffer and draws the triangle once.
// Bindings are repeated every frame, so consecutive calls issue identical
// command sequences.
func (r *Renderer) RenderFrame() {
	dev := r.dev
	s := &r.scene

	dev.ClearColor(0, 0, 0, 0)
	dev.ClearDepth(1)
	dev.Clear(ClearColorBit | ClearDepthBit)

	dev.UseProgram(uint32(s.Program))
	if s.Sampler >= 0 {
		dev.Uniform1i(s.Sampler, 0)
	}
	dev.BindVertexArray(s.Geometry.VAO)
	dev.ActiveTexture(0)
	dev.BindTexture(uint32(s.Texture))

	dev.DrawElements(Triangles, s.Geometry.IndexCount, UnsignedShort, 0)

	dev.BindVertexArray(0)
	dev.BindTexture(0)

	r.frames++
}

// Delete releases all device objects. The Renderer must not be used
// afterwards.
func (r *Renderer) Delete() {
	s := &r.scene
	if s.Texture.Valid() {
		r.dev.DeleteTexture(uint32(s.Texture))
	}
	releaseGeometry(r.dev, s.Geometry)
	if s.Program.Valid() {
		r.dev.DeleteProgram(uint32(s.Program))
	}
	r.scene = Scene{Sampler: -1}
}
