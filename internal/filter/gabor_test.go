package filter

import (
	"image/color"
	"math"
	"testing"
)

func TestGaborKernelShape(t *testing.T) {
	k, err := GaborKernel(GaborParams{Wavelength: 4, Sigma: 2})
	if err != nil {
		t.Fatalf("GaborKernel failed: %v", err)
	}

	// Three-sigma support: radius 6, so a 13x13 kernel.
	if k.Width != 13 || k.Height != 13 {
		t.Fatalf("kernel size: got %dx%d, want 13x13", k.Width, k.Height)
	}

	// The center tap is envelope(0)*cos(phase) = 1 for zero phase.
	center := k.Matrix[6*13+6]
	if math.Abs(center-1) > 1e-6 {
		t.Errorf("center tap: got %v, want 1", center)
	}
}

func TestGaborKernelSymmetry(t *testing.T) {
	// With zero phase the kernel is even: g(-x,-y) = g(x,y).
	k, err := GaborKernel(GaborParams{Wavelength: 6, Orientation: 0.7, Sigma: 1.5})
	if err != nil {
		t.Fatalf("GaborKernel failed: %v", err)
	}
	n := k.Width
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			a := k.Matrix[y*n+x]
			b := k.Matrix[(n-1-y)*n+(n-1-x)]
			if math.Abs(a-b) > 1e-5 {
				t.Fatalf("taps (%d,%d) and mirrored differ: %v vs %v", x, y, a, b)
			}
		}
	}
}

func TestGaborKernelValidation(t *testing.T) {
	if _, err := GaborKernel(GaborParams{Wavelength: 0, Sigma: 1}); err == nil {
		t.Error("expected error for zero wavelength")
	}
	if _, err := GaborKernel(GaborParams{Wavelength: 4, Sigma: 0}); err == nil {
		t.Error("expected error for zero sigma")
	}
}

func TestGaborOnImage(t *testing.T) {
	src := uniformImage(32, 32, color.RGBA{128, 128, 128, 255})
	got, err := Gabor(src, GaborParams{Wavelength: 4, Sigma: 1})
	if err != nil {
		t.Fatalf("Gabor failed: %v", err)
	}
	if got.Bounds() != src.Bounds() {
		t.Errorf("bounds changed: got %v, want %v", got.Bounds(), src.Bounds())
	}
	// KeepAlpha leaves the alpha channel untouched.
	if a := got.RGBAAt(16, 16).A; a != 255 {
		t.Errorf("alpha: got %d, want 255", a)
	}
}
