package render

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	return img
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(profileFixture(t))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}

	// Default viewport at the 2x scale.
	img := decodePNG(t, data)
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 2000 || h != 1400 {
		t.Errorf("image size = %dx%d, want 2000x1400", w, h)
	}
}

func TestRenderPNGSize(t *testing.T) {
	data, err := RenderPNG(profileFixture(t), WithPNGSize(400, 300), WithPNGScale(1))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}

	img := decodePNG(t, data)
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 400 || h != 300 {
		t.Errorf("image size = %dx%d, want 400x300", w, h)
	}
}

func TestRenderPNGBackground(t *testing.T) {
	tests := []struct {
		theme Theme
		want  [3]uint8
	}{
		{Simple{}, [3]uint8{0xff, 0xff, 0xff}},
		{Blueprint{}, [3]uint8{0x1e, 0x3a, 0x8a}},
	}
	for _, tt := range tests {
		t.Run(tt.theme.Name(), func(t *testing.T) {
			data, err := RenderPNG(profileFixture(t), WithPNGTheme(tt.theme))
			if err != nil {
				t.Fatalf("RenderPNG() error = %v", err)
			}

			// The corner sits inside the frame margin, clear of the
			// grid, so it carries the raw background color.
			img := decodePNG(t, data)
			r, g, b, _ := img.At(1, 1).RGBA()
			got := [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
			if got != tt.want {
				t.Errorf("corner pixel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderPNGNoDimensions(t *testing.T) {
	data, err := RenderPNG(profileFixture(t), WithPNGDimensions(false))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	decodePNG(t, data)
}

func TestRenderPNGTitle(t *testing.T) {
	data, err := RenderPNG(profileFixture(t), WithPNGTitle("section A-A"), WithPNGDimensions(false))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	decodePNG(t, data)
}
