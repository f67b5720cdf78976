package tritex

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFilename is the optional config file looked up in the working
// directory.
const ConfigFilename = "tritex.yaml"

// Config is the on-disk configuration. Every field is optional.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Shaders ShaderConfig  `yaml:"shaders"`
	GL      ContextConfig `yaml:"gl"`

	// StrictSampler fails setup when the sampler uniform is missing.
	StrictSampler bool `yaml:"strict_sampler"`
	// InfoLogLimit bounds shader diagnostics in bytes; 0 keeps the default.
	InfoLogLimit int `yaml:"info_log_limit"`
}

// WindowConfig describes the window created by the backend.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	X      int    `yaml:"x"` // 0 is screen left
	Y      int    `yaml:"y"` // 0 is screen top
	Title  string `yaml:"title"`
	VSync  *bool  `yaml:"vsync"` // pointer to distinguish unset vs false
}

// ShaderConfig names the shader source files.
type ShaderConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
	Sampler  string `yaml:"sampler"`
}

// ContextConfig is the requested OpenGL core-profile version.
type ContextConfig struct {
	Major int `yaml:"major"`
	Minor int `yaml:"minor"`
}

// DefaultConfig returns the built-in configuration: a 500x500 window at
// (300, 200) titled after the executable, vsync on, OpenGL 4.1 core and the
// default shader paths.
func DefaultConfig() Config {
	vsync := true
	return Config{
		Window: WindowConfig{
			Width:  500,
			Height: 500,
			X:      300,
			Y:      200,
			Title:  filepath.Base(os.Args[0]),
			VSync:  &vsync,
		},
		Shaders: ShaderConfig{
			Vertex:   DefaultVertexShaderPath,
			Fragment: DefaultFragmentShaderPath,
			Sampler:  DefaultSamplerName,
		},
		GL:           ContextConfig{Major: 4, Minor: 1},
		InfoLogLimit: DefaultInfoLogLimit,
	}
}

// LoadConfig reads path over DefaultConfig. A missing file is not an error
// and yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.merge(file)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// merge overlays the fields set in other.
func (c *Config) merge(other Config) {
	w := other.Window
	if w.Width != 0 {
		c.Window.Width = w.Width
	}
	if w.Height != 0 {
		c.Window.Height = w.Height
	}
	if w.X != 0 {
		c.Window.X = w.X
	}
	if w.Y != 0 {
		c.Window.Y = w.Y
	}
	if w.Title != "" {
		c.Window.Title = w.Title
	}
	if w.VSync != nil {
		c.Window.VSync = w.VSync
	}

	if other.Shaders.Vertex != "" {
		c.Shaders.Vertex = other.Shaders.Vertex
	}
	if other.Shaders.Fragment != "" {
		c.Shaders.Fragment = other.Shaders.Fragment
	}
	if other.Shaders.Sampler != "" {
		c.Shaders.Sampler = other.Shaders.Sampler
	}

	if other.GL.Major != 0 {
		c.GL.Major = other.GL.Major
		c.GL.Minor = other.GL.Minor
	}

	c.StrictSampler = c.StrictSampler || other.StrictSampler
	if other.InfoLogLimit != 0 {
		c.InfoLogLimit = other.InfoLogLimit
	}
}

// Validate rejects values no window or context could satisfy.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.GL.Major < 3 || (c.GL.Major == 3 && c.GL.Minor < 3) {
		return fmt.Errorf("OpenGL %d.%d is below the 3.3 core profile minimum", c.GL.Major, c.GL.Minor)
	}
	return nil
}

// VSyncEnabled reports whether buffer swaps wait for vertical blank.
func (c Config) VSyncEnabled() bool {
	return c.Window.VSync == nil || *c.Window.VSync
}

// Options converts the renderer-related settings to Renderer options.
func (c Config) Options() []Option {
	return []Option{
		WithShaderPaths(c.Shaders.Vertex, c.Shaders.Fragment),
		WithSamplerName(c.Shaders.Sampler),
		WithInfoLogLimit(c.InfoLogLimit),
		WithStrictSampler(c.StrictSampler),
	}
}
