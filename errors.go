package tritex

import (
	"errors"
	"fmt"
)

var (
	// ErrSamplerNotFound is returned in strict mode when the program has no
	// active sampler uniform with the configured name.
	ErrSamplerNotFound = errors.New("sampler uniform not found")

	// ErrAllocation means the device returned no object name. Callers should
	// treat it as fatal.
	ErrAllocation = errors.New("device allocation failed")
)

// ShaderError reports a shader stage that failed to compile.
type ShaderError struct {
	Stage ShaderStage
	Log   string // compiler info log, truncated to the configured limit
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("%s shader failed: %q", e.Stage, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	if e.Log == "" {
		return "program link failed"
	}
	return fmt.Sprintf("program link failed: %q", e.Log)
}
