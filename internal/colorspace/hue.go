package colorspace

import "github.com/ironsheep/color-tools-mcp/internal/pixel"

// hue computes the 0-360 degree hue for the given unit-range RGB channels,
// the channel value that attained the maximum, and the divisor from the
// saturation formula:
//
//	H = (G-B)*60/S        if max = R
//	H = 120+(B-R)*60/S    if max = G
//	H = 240+(R-G)*60/S    if max = B
//
// Ties resolve in R, G, B order. The divisor is the saturation itself, as
// transcribed; note that this differs from the usual max-min denominator
// whenever the pixel is not fully bright.
func hue(r, g, b, vmax, s float64) float64 {
	var h float64
	switch vmax {
	case r:
		h = (g - b) * 60 / s
	case g:
		h = 120 + (b-r)*60/s
	default:
		h = 240 + (r-g)*60/s
	}
	if h < 0 {
		h += 360
	}
	return h
}

// RGBToHSV converts RGB to hue/saturation/value. The input is widened to a
// unit-scaled float64 scratch pixel first, then:
//
//	V = max(R,G,B)
//	S = (V - min(R,G,B))/V   if V != 0, else 0
//
// with the hue selected by the maximal channel (see hue). A zero-saturation
// pixel is achromatic; the literal hue formula is undefined there (it
// divides by S), so this implementation reports H = 0 in that case.
//
// The result channels are narrowed directly from their natural 0-360 and
// 0-1 ranges with no storage-dependent rescale. For integer storage that
// truncates S and V to 0 or 1 and clips H into the narrow range; it is
// almost certainly not a useful encoding, but it is the behavior consumers
// currently observe, so it is kept and pinned by TestHSVIntegerNarrowing
// until an explicit scale-and-shift step is agreed on.
func RGBToHSV[T pixel.Channel](c pixel.RGB[T]) pixel.HSV[T] {
	f := pixel.ConvertRGB[float64](c)
	r, g, b := f.R, f.G, f.B

	v := max(r, g, b)
	var s float64
	if v != 0 {
		s = (v - min(r, g, b)) / v
	}
	var h float64
	if s != 0 {
		h = hue(r, g, b, v, s)
	}

	return pixel.HSV[T]{
		H: pixel.Narrow[T](h),
		S: pixel.Narrow[T](s),
		V: pixel.Narrow[T](v),
	}
}

// HSVToRGB is not implemented; it always returns ErrUnimplemented.
func HSVToRGB[T pixel.Channel](c pixel.HSV[T]) (pixel.RGB[T], error) {
	return pixel.RGB[T]{}, unimplemented("HSV", "RGB")
}

// RGBToHSL converts RGB to hue/saturation/lightness. The skeleton matches
// RGBToHSV with lightness and a piecewise saturation:
//
//	L = (Vmax + Vmin)/2
//	S = (Vmax - Vmin)/(Vmax + Vmin)       if L < 0.5
//	S = (Vmax - Vmin)/(2 - (Vmax + Vmin)) otherwise
//
// An achromatic pixel (Vmax = Vmin) short-circuits to S = 0, H = 0: the
// L >= 0.5 saturation branch is 0/0 at pure white and the hue formula
// divides by S, so both need the explicit policy. The un-rescaled
// narrowing caveat from RGBToHSV applies here as well.
func RGBToHSL[T pixel.Channel](c pixel.RGB[T]) pixel.HSL[T] {
	f := pixel.ConvertRGB[float64](c)
	r, g, b := f.R, f.G, f.B

	vmax := max(r, g, b)
	vmin := min(r, g, b)
	l := (vmax + vmin) / 2

	var h, s float64
	if vmax != vmin {
		if l < 0.5 {
			s = (vmax - vmin) / (vmax + vmin)
		} else {
			s = (vmax - vmin) / (2 - (vmax + vmin))
		}
		h = hue(r, g, b, vmax, s)
	}

	return pixel.HSL[T]{
		H: pixel.Narrow[T](h),
		S: pixel.Narrow[T](s),
		L: pixel.Narrow[T](l),
	}
}

// HSLToRGB is not implemented; it always returns ErrUnimplemented.
func HSLToRGB[T pixel.Channel](c pixel.HSL[T]) (pixel.RGB[T], error) {
	return pixel.RGB[T]{}, unimplemented("HSL", "RGB")
}
