package tritex

import "log/slog"

// Default shader locations, relative to the working directory.
const (
	DefaultVertexShaderPath   = "shader.vert"
	DefaultFragmentShaderPath = "shader.frag"
	DefaultSamplerName        = "tex"
)

// Option configures a Renderer.
type Option func(*options)

type options struct {
	vertexPath    string
	fragmentPath  string
	samplerName   string
	infoLogLimit  int
	strictSampler bool
	raster        RasterState
	logger        *slog.Logger
}

func defaultOptions() options {
	return options{
		vertexPath:   DefaultVertexShaderPath,
		fragmentPath: DefaultFragmentShaderPath,
		samplerName:  DefaultSamplerName,
		infoLogLimit: DefaultInfoLogLimit,
		raster:       DefaultRasterState(),
	}
}

// applyOptions applies all options over the defaults.
func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// WithShaderPaths sets the vertex and fragment shader files.
func WithShaderPaths(vertex, fragment string) Option {
	return func(o *options) {
		o.vertexPath = vertex
		o.fragmentPath = fragment
	}
}

// WithSamplerName sets the sampler uniform bound to texture unit 0.
// An empty name keeps the default.
func WithSamplerName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.samplerName = name
		}
	}
}

// WithInfoLogLimit bounds shader diagnostics to n bytes. n <= 0 keeps the
// full log.
func WithInfoLogLimit(n int) Option {
	return func(o *options) { o.infoLogLimit = n }
}

// WithStrictSampler makes a missing sampler uniform a setup error instead of
// a warning.
func WithStrictSampler(strict bool) Option {
	return func(o *options) { o.strictSampler = strict }
}

// WithRasterState overrides the fixed-function state set at startup.
func WithRasterState(state RasterState) Option {
	return func(o *options) { o.raster = state }
}

// WithLogger sets the logger used for setup diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}
