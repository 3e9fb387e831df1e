package colorspace

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-tools-mcp/internal/pixel"
)

func TestRGBToHSVFloat(t *testing.T) {
	tests := []struct {
		name    string
		in      pixel.RGB[float64]
		h, s, v float64
	}{
		{"pure red", pixel.RGB[float64]{R: 1}, 0, 1, 1},
		{"pure green", pixel.RGB[float64]{G: 1}, 120, 1, 1},
		{"pure blue", pixel.RGB[float64]{B: 1}, 240, 1, 1},
		{"orange", pixel.RGB[float64]{R: 1, G: 0.5}, 30, 1, 1},
		{"white", pixel.RGB[float64]{R: 1, G: 1, B: 1}, 0, 0, 1},
		{"mid gray", pixel.RGB[float64]{R: 0.5, G: 0.5, B: 0.5}, 0, 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSV(tt.in)
			if !approx(got.H, tt.h, 1e-9) || !approx(got.S, tt.s, 1e-9) || !approx(got.V, tt.v, 1e-9) {
				t.Errorf("got (%v, %v, %v), want (%v, %v, %v)", got.H, got.S, got.V, tt.h, tt.s, tt.v)
			}
		})
	}
}

// TestRGBToHSVBlack pins the zero-saturation policy: the literal hue
// formula divides by S even though only S's own value is guarded, so an
// achromatic pixel must take the explicit H = 0 path instead of producing
// NaN or Inf.
func TestRGBToHSVBlack(t *testing.T) {
	got := RGBToHSV(pixel.RGB[float64]{})
	if got.H != 0 || got.S != 0 || got.V != 0 {
		t.Errorf("black: got (%v, %v, %v), want (0, 0, 0)", got.H, got.S, got.V)
	}
}

// TestRGBToHSVHueWrap covers the H < 0 branch: a red-dominant pixel with
// B > G yields a negative raw hue that wraps by +360.
func TestRGBToHSVHueWrap(t *testing.T) {
	got := RGBToHSV(pixel.RGB[float64]{R: 1, B: 0.5})
	// V = 1, S = 1, H = (0 - 0.5)*60/1 = -30 -> 330.
	if !approx(got.H, 330, 1e-9) {
		t.Errorf("got H=%v, want 330", got.H)
	}
}

// TestRGBToHSVAgainstReference cross-checks fully bright colors against
// go-colorful. The transcribed hue formula divides by S where the usual
// formulation divides by V-min; the two agree exactly when V = 1 (there
// S = 1-min = V-min), which makes these colors a valid shared reference.
func TestRGBToHSVAgainstReference(t *testing.T) {
	colors := []pixel.RGB[float64]{
		{R: 1, G: 0, B: 0},
		{R: 1, G: 0.5, B: 0},
		{R: 0.25, G: 1, B: 0.5},
		{R: 0, G: 0, B: 1},
		{R: 1, G: 1, B: 0},
	}
	for _, c := range colors {
		wantH, wantS, wantV := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
		got := RGBToHSV(c)
		if !approx(got.H, wantH, 1e-6) || !approx(got.S, wantS, 1e-6) || !approx(got.V, wantV, 1e-6) {
			t.Errorf("%+v: got (%v, %v, %v), reference (%v, %v, %v)",
				c, got.H, got.S, got.V, wantH, wantS, wantV)
		}
	}
}

// TestHSVIntegerNarrowing pins the as-transcribed behavior for integer
// storage: the 0-360/0-1/0-1 result ranges narrow directly, with no
// storage-dependent rescale (no *255 for S and V, no /2 for H). S and V
// truncate to 0 or 1 and out-of-range hue clips. This is almost certainly
// not a useful 8-bit HSV encoding, but it is what consumers observe today;
// an explicit scale-and-shift per storage class has to happen before the
// encoding can change.
func TestHSVIntegerNarrowing(t *testing.T) {
	tests := []struct {
		name    string
		in      pixel.RGB[uint8]
		h, s, v uint8
	}{
		{"pure red", pixel.RGB[uint8]{R: 255}, 0, 1, 1},
		{"pure green", pixel.RGB[uint8]{G: 255}, 120, 1, 1},
		{"pure blue", pixel.RGB[uint8]{B: 255}, 240, 1, 1},
		{"orange", pixel.RGB[uint8]{R: 255, G: 128}, 30, 1, 1},
		{"magenta wraps past opaque", pixel.RGB[uint8]{R: 255, B: 254}, 255, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSV(tt.in)
			if got.H != tt.h || got.S != tt.s || got.V != tt.v {
				t.Errorf("got (%d, %d, %d), want (%d, %d, %d)", got.H, got.S, got.V, tt.h, tt.s, tt.v)
			}
		})
	}
}

func TestRGBToHSLFloat(t *testing.T) {
	tests := []struct {
		name    string
		in      pixel.RGB[float64]
		h, s, l float64
	}{
		{"pure red", pixel.RGB[float64]{R: 1}, 0, 1, 0.5},
		{"pure green", pixel.RGB[float64]{G: 1}, 120, 1, 0.5},
		{"steel blue-ish", pixel.RGB[float64]{R: 0.25, G: 0.5, B: 0.75}, 210, 0.5, 0.5},
		{"dark red", pixel.RGB[float64]{R: 0.5, G: 0.25, B: 0.25}, 0, 1.0 / 3, 0.375},
		{"mid gray", pixel.RGB[float64]{R: 0.5, G: 0.5, B: 0.5}, 0, 0, 0.5},
		{"black", pixel.RGB[float64]{}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.in)
			if !approx(got.H, tt.h, 1e-9) || !approx(got.S, tt.s, 1e-9) || !approx(got.L, tt.l, 1e-9) {
				t.Errorf("got (%v, %v, %v), want (%v, %v, %v)", got.H, got.S, got.L, tt.h, tt.s, tt.l)
			}
		})
	}
}

// TestRGBToHSLWhite pins the achromatic policy at the worst spot: pure
// white hits the L >= 0.5 saturation branch where both numerator and
// denominator are zero, so without the Vmax = Vmin short-circuit the
// result would be NaN.
func TestRGBToHSLWhite(t *testing.T) {
	got := RGBToHSL(pixel.RGB[float64]{R: 1, G: 1, B: 1})
	if got.L != 1 {
		t.Errorf("L: got %v, want 1", got.L)
	}
	if got.S != 0 || got.H != 0 {
		t.Errorf("achromatic white: got H=%v S=%v, want 0 0", got.H, got.S)
	}
}

func TestHSLHueMatchesHSVWhenFullyBright(t *testing.T) {
	// The hue selector and wrap are shared between the two conversions.
	c := pixel.RGB[float64]{R: 1, B: 0.5}
	hsv := RGBToHSV(c)
	// For HSL the saturation divisor differs, so only the branch choice and
	// wrap direction are comparable: both hues sit in the magenta range.
	hsl := RGBToHSL(c)
	if hsv.H <= 240 || hsl.H <= 240 {
		t.Errorf("expected magenta-range hues, got hsv=%v hsl=%v", hsv.H, hsl.H)
	}
}
