// Command gen renders the example scene offscreen, captures the framebuffer
// and saves a JPEG screenshot to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/tritex"
	"github.com/go-theft-auto/tritex/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single capture.
type screenshot struct {
	name   string // filename without extension
	width  int    // viewport width
	height int    // viewport height
	frames int    // frames to render before reading back (0 = default 2)
}

func run() error {
	cfg := tritex.DefaultConfig()
	cfg.Window.Width, cfg.Window.Height = 500, 500
	cfg.Window.Title = "screenshot-gen"
	cfg.Shaders.Vertex = filepath.Join("example", "shader.vert")
	cfg.Shaders.Fragment = filepath.Join("example", "shader.frag")

	wopts := opengl.WindowOptionsFromConfig(cfg)
	wopts.Hidden = true
	window, err := opengl.OpenWindow(wopts)
	if err != nil {
		return err
	}
	defer window.Close()

	dev, err := opengl.NewDevice()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	renderer, err := tritex.NewRenderer(dev, append(cfg.Options(), tritex.WithLogger(logger))...)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := []screenshot{
		{name: "triangle", width: 500, height: 500},
		{name: "triangle_small", width: 128, height: 128},
	}

	for _, s := range shots {
		if err := capture(dev, renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(dev *opengl.Device, renderer *tritex.Renderer, s screenshot, outDir string) error {
	// Only the viewport changes; the hidden window stays larger than every
	// capture, so no asynchronous GLFW resize is involved.
	renderer.Resize(s.width, s.height)

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}
	for i := 0; i < frames; i++ {
		renderer.RenderFrame()
	}

	img, err := tritex.FramebufferImage(dev.ReadPixels(s.width, s.height), s.width, s.height)
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
