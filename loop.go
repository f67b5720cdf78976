package tritex

// Run renders r on surface until the surface asks to close, presenting each
// frame and following framebuffer size changes. It returns the number of
// frames rendered by this call.
func Run(surface Surface, r *Renderer) uint64 {
	start := r.Frames()
	for !surface.ShouldClose() {
		surface.PollEvents()
		if surface.ShouldClose() {
			break
		}

		r.Resize(surface.FramebufferSize())
		r.RenderFrame()
		surface.SwapBuffers()
	}
	return r.Frames() - start
}
