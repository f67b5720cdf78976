package tritex

import (
	"image/color"
	"testing"
)

func TestFramebufferImageFlipsRows(t *testing.T) {
	// 1x3 framebuffer, bottom row first: red, green, blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 255, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FramebufferImage(pixels, 1, 3)
	if err != nil {
		t.Fatal(err)
	}

	want := []color.RGBA{
		{0, 0, 255, 255},
		{0, 255, 0, 255},
		{255, 0, 0, 255},
	}
	for y, c := range want {
		if got := img.RGBAAt(0, y); got != c {
			t.Errorf("row %d = %v, want %v", y, got, c)
		}
	}
}

func TestFramebufferImageSizeMismatch(t *testing.T) {
	if _, err := FramebufferImage(make([]byte, 10), 2, 2); err == nil {
		t.Error("expected error for short pixel buffer")
	}
	if _, err := FramebufferImage(nil, 0, 0); err == nil {
		t.Error("expected error for empty framebuffer")
	}
}
