package tritex

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Stripe texture dimensions.
const (
	StripeRows = 64
	StripeCols = 64
)

// StripeImage returns a StripeRows x StripeCols image, row-major from the
// bottom-left texel, in three horizontal bands: red, green, blue from the
// bottom. Band edges are the integer thirds of StripeRows (21 and 42).
func StripeImage() []mgl32.Vec4 {
	img := make([]mgl32.Vec4, StripeRows*StripeCols)
	for row := 0; row < StripeRows; row++ {
		c := StripeColor(row)
		for col := 0; col < StripeCols; col++ {
			img[row*StripeCols+col] = c
		}
	}
	return img
}

// StripeColor returns the band color of a texture row.
func StripeColor(row int) mgl32.Vec4 {
	switch {
	case row < StripeRows/3:
		return TexelRed
	case row < (2*StripeRows)/3:
		return TexelGreen
	default:
		return TexelBlue
	}
}

// BuildTexture uploads StripeImage as a repeating, linearly filtered RGBA
// float texture on unit 0.
func BuildTexture(dev Device) (Texture, error) {
	tex := dev.GenTexture()
	if tex == 0 {
		return 0, fmt.Errorf("texture: %w", ErrAllocation)
	}
	dev.ActiveTexture(0)
	dev.BindTexture(tex)

	dev.TexParameter(TexWrapS, TexRepeat)
	dev.TexParameter(TexWrapT, TexRepeat)
	dev.TexParameter(TexMagFilter, TexLinear)
	// Without a min filter the default expects mipmaps and the texture is
	// incomplete.
	dev.TexParameter(TexMinFilter, TexLinear)

	img := StripeImage()
	dev.TexImageRGBAFloat(0, StripeCols, StripeRows, asBytes(img))

	dev.BindTexture(0)
	return Texture(tex), nil
}
