package tritex

import (
	"fmt"
	"os"
)

// DefaultInfoLogLimit bounds compiler and linker diagnostics, in bytes.
const DefaultInfoLogLimit = 128

// BuildProgram reads a vertex and a fragment shader from disk and builds them
// into a program. See BuildProgramSource.
func BuildProgram(dev Device, vertexPath, fragmentPath string, logLimit int) (Program, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return 0, fmt.Errorf("read vertex shader %q: %w", vertexPath, err)
	}
	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return 0, fmt.Errorf("read fragment shader %q: %w", fragmentPath, err)
	}
	return BuildProgramSource(dev, string(vertexSource), string(fragmentSource), logLimit)
}

// BuildProgramSource compiles both stages and links them.
//
// A compile failure returns *ShaderError and a link failure *LinkError; in
// both cases every object created along the way is deleted. On success the
// intermediate shader objects are detached and deleted, the program keeps
// their compiled output. logLimit <= 0 disables truncation.
func BuildProgramSource(dev Device, vertexSource, fragmentSource string, logLimit int) (Program, error) {
	vs, err := compileShader(dev, StageVertex, vertexSource, logLimit)
	if err != nil {
		return 0, err
	}

	fs, err := compileShader(dev, StageFragment, fragmentSource, logLimit)
	if err != nil {
		dev.DeleteShader(vs)
		return 0, err
	}

	program := dev.CreateProgram()
	if program == 0 {
		dev.DeleteShader(vs)
		dev.DeleteShader(fs)
		return 0, fmt.Errorf("create program: %w", ErrAllocation)
	}
	dev.AttachShader(program, vs)
	dev.AttachShader(program, fs)
	dev.LinkProgram(program)

	// Linked or not, the stages are no longer needed.
	dev.DetachShader(program, vs)
	dev.DetachShader(program, fs)
	dev.DeleteShader(vs)
	dev.DeleteShader(fs)

	if !dev.ProgramLinked(program) {
		log := truncateLog(dev.ProgramInfoLog(program), logLimit)
		dev.DeleteProgram(program)
		return 0, &LinkError{Log: log}
	}

	return Program(program), nil
}

func compileShader(dev Device, stage ShaderStage, source string, logLimit int) (uint32, error) {
	shader := dev.CreateShader(stage)
	if shader == 0 {
		return 0, fmt.Errorf("create %s shader: %w", stage, ErrAllocation)
	}
	dev.ShaderSource(shader, source)
	dev.CompileShader(shader)

	if !dev.ShaderCompiled(shader) {
		log := truncateLog(dev.ShaderInfoLog(shader), logLimit)
		dev.DeleteShader(shader)
		return 0, &ShaderError{Stage: stage, Log: log}
	}
	return shader, nil
}

// truncateLog cuts an info log to limit bytes and drops trailing NULs and
// newlines left by the driver.
func truncateLog(log string, limit int) string {
	if limit > 0 && len(log) > limit {
		log = log[:limit]
	}
	for len(log) > 0 {
		switch log[len(log)-1] {
		case 0, '\n', '\r':
			log = log[:len(log)-1]
			continue
		}
		break
	}
	return log
}
