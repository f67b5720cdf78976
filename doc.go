/*
Package tritex draws a single textured triangle.

# Overview

Setup builds three GPU objects once: a shader program compiled from two
source files, a vertex array holding one triangle with texture coordinates,
and a 64x64 texture striped red, green and blue. Each frame clears the
framebuffer and issues one indexed draw of those objects.

All graphics calls go through the Device interface, so the builders and the
Renderer run unchanged against OpenGL (package backend/opengl) or against a
recording fake in tests.

# Quick Start

	window, err := opengl.OpenWindow(opengl.WindowOptionsFromConfig(cfg))
	if err != nil {
	    return err
	}
	defer window.Close()

	dev, err := opengl.NewDevice()
	if err != nil {
	    return err
	}

	r, err := tritex.NewRenderer(dev, cfg.Options()...)
	if err != nil {
	    return err
	}
	defer r.Delete()

	tritex.Run(window, r)

# Errors

A shader that fails to compile returns *ShaderError with the stage and the
compiler log, truncated to 128 bytes by default. A link failure returns
*LinkError. NewRenderer never returns a Renderer holding an invalid handle.

A program without the "tex" sampler uniform is accepted with a warning and
renders with whatever unit the sampler defaults to. WithStrictSampler turns
that case into ErrSamplerNotFound.
*/
package tritex
