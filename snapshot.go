package tritex

import (
	"fmt"
	"image"
)

// FramebufferImage converts tightly packed RGBA8 framebuffer rows, which
// start at the bottom-left, into a top-down image.
func FramebufferImage(pixels []byte, width, height int) (*image.RGBA, error) {
	rowLen := width * 4
	if width <= 0 || height <= 0 || len(pixels) != rowLen*height {
		return nil, fmt.Errorf("framebuffer of %d bytes does not hold %dx%d RGBA pixels", len(pixels), width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowLen
		copy(img.Pix[y*img.Stride:y*img.Stride+rowLen], pixels[src:src+rowLen])
	}
	return img, nil
}
