package opengl

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/tritex"
)

// Window is a GLFW window with a current OpenGL core-profile context.
// It implements tritex.Surface and closes when Escape is pressed; every other
// key is ignored.
type Window struct {
	window *glfw.Window
}

var _ tritex.Surface = (*Window)(nil)

// WindowOptions describes the window and the context requested from GLFW.
type WindowOptions struct {
	Width, Height int
	X, Y          int
	Title         string
	GLMajor       int
	GLMinor       int
	VSync         bool
	Hidden        bool
}

// WindowOptionsFromConfig maps the window and context sections of a config.
func WindowOptionsFromConfig(cfg tritex.Config) WindowOptions {
	return WindowOptions{
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		X:       cfg.Window.X,
		Y:       cfg.Window.Y,
		Title:   cfg.Window.Title,
		GLMajor: cfg.GL.Major,
		GLMinor: cfg.GL.Minor,
		VSync:   cfg.VSyncEnabled(),
	}
}

// OpenWindow initializes GLFW, creates the window and makes its context
// current. The caller must be locked to the main OS thread and must call
// Close, which also terminates GLFW.
func OpenWindow(opts WindowOptions) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.StencilBits, 8)
	glfw.WindowHint(glfw.AlphaBits, 8)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	if opts.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window (OpenGL %d.%d core): %w", opts.GLMajor, opts.GLMinor, err)
	}
	if !opts.Hidden {
		window.SetPos(opts.X, opts.Y)
	}
	window.MakeContextCurrent()

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{window: window}
	window.SetKeyCallback(w.keyCallback)
	return w, nil
}

func (w *Window) keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		win.SetShouldClose(true)
	}
}

// ShouldClose reports whether the window was closed or Escape was pressed.
func (w *Window) ShouldClose() bool { return w.window.ShouldClose() }

// PollEvents processes pending window-system events.
func (w *Window) PollEvents() { glfw.PollEvents() }

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) { return w.window.GetFramebufferSize() }

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() { w.window.SwapBuffers() }

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.window.Destroy()
	glfw.Terminate()
}
