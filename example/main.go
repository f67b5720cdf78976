// Example opens a window and draws one triangle textured with red, green and
// blue stripes until Escape is pressed.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	cd example && go run .    # shaders are read from the working directory
//
// An optional tritex.yaml in the working directory overrides the window,
// context and shader settings.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-theft-auto/tritex"
	"github.com/go-theft-auto/tritex/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := tritex.LoadConfig(tritex.ConfigFilename)
	if err != nil {
		return err
	}

	window, err := opengl.OpenWindow(opengl.WindowOptionsFromConfig(cfg))
	if err != nil {
		return err
	}
	defer window.Close()

	dev, err := opengl.NewDevice()
	if err != nil {
		return err
	}
	logger.Info("OpenGL context", "version", dev.Version())

	opts := append(cfg.Options(), tritex.WithLogger(logger))
	renderer, err := tritex.NewRenderer(dev, opts...)
	if err != nil {
		return err
	}
	defer renderer.Delete()

	frames := tritex.Run(window, renderer)
	logger.Info("window closed", "frames", frames)
	return nil
}
