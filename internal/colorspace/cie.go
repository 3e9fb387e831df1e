package colorspace

import (
	"math"

	"github.com/ironsheep/color-tools-mcp/internal/pixel"
)

// D65 reference white used by the Lab normalization and the Luv
// chromaticity constants.
const (
	labXn = 0.950456
	labZn = 1.088754
	luvUn = 0.19793943
	luvVn = 0.46831096
)

// labF is the piecewise Lab transfer function:
//
//	f(t) = t^(1/3)           for t > 0.008856
//	f(t) = 7.787*t + 16/116  otherwise
//
// math.Cbrt keeps the exponent an exact one-third; a pow with a truncated
// integer exponent literal would silently break the piecewise join.
func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116
}

// rgbToXYZUnit widens an RGB pixel to unit range and applies the RGBToXYZ
// matrix in extended precision. Shared precursor of the Lab and Luv
// forwards.
func rgbToXYZUnit[T pixel.Channel](c pixel.RGB[T]) (x, y, z float64) {
	f := pixel.ConvertRGB[float64](c)
	t := RGBToXYZ(f)
	return t.X, t.Y, t.Z
}

// RGBToLab converts RGB to CIE L*a*b*. The XYZ precursor is normalized to
// the D65 white point (X/0.950456, Z/1.088754), then:
//
//	L = 116*Y^(1/3)  for Y > 0.008856
//	L = 903.3*Y      otherwise
//	a = 500*(f(X) - f(Y)) + delta
//	b = 200*(f(Y) - f(Z)) + delta
//
// The bright L branch carries no -16 offset. Published Lab references
// include it (and Luv below does); this transcription does not, and the
// output is pinned to 116 for pure white by TestLabWhite, so the observed
// behavior stays fixed until the discrepancy is resolved.
//
// delta re-centers the signed a/b axes for unsigned storage: 0 for float
// channels, half of the opaque range for integer channels.
func RGBToLab[T pixel.Channel](c pixel.RGB[T]) pixel.Lab[T] {
	x, y, z := rgbToXYZUnit(c)
	x /= labXn
	z /= labZn

	var delta float64
	if pixel.IsInteger[T]() {
		delta = pixel.Delta[T]()
	}

	var l float64
	if y > 0.008856 {
		l = 116 * math.Cbrt(y)
	} else {
		l = 903.3 * y
	}
	a := 500*(labF(x)-labF(y)) + delta
	b := 200*(labF(y)-labF(z)) + delta

	return pixel.Lab[T]{
		L: pixel.Narrow[T](l),
		A: pixel.Narrow[T](a),
		B: pixel.Narrow[T](b),
	}
}

// LabToRGB is not implemented; it always returns ErrUnimplemented.
func LabToRGB[T pixel.Channel](c pixel.Lab[T]) (pixel.RGB[T], error) {
	return pixel.RGB[T]{}, unimplemented("Lab", "RGB")
}

// RGBToLuv converts RGB to CIE L*u*v*. The XYZ precursor is used without
// white-point normalization:
//
//	L  = 116*Y^(1/3) - 16  for Y > 0.008856
//	L  = 903.3*Y           otherwise
//	u' = 4*X/(X + 15*Y + 3*Z)
//	v' = 9*Y/(X + 15*Y + 3*Z)
//	u  = 13*L*(u' - 0.19793943)
//	v  = 13*L*(v' - 0.46831096)
//
// The chromaticity denominator is zero only for pure black; that case uses
// the policy u' = v' = 0, which combines with L = 0 to give (0, 0, 0)
// rather than NaN.
func RGBToLuv[T pixel.Channel](c pixel.RGB[T]) pixel.Luv[T] {
	x, y, z := rgbToXYZUnit(c)

	var l float64
	if y > 0.008856 {
		l = 116*math.Cbrt(y) - 16
	} else {
		l = 903.3 * y
	}

	var up, vp float64
	if d := x + 15*y + 3*z; d != 0 {
		up = 4 * x / d
		vp = 9 * y / d
	}

	return pixel.Luv[T]{
		L: pixel.Narrow[T](l),
		U: pixel.Narrow[T](13 * l * (up - luvUn)),
		V: pixel.Narrow[T](13 * l * (vp - luvVn)),
	}
}

// LuvToRGB is not implemented; it always returns ErrUnimplemented.
func LuvToRGB[T pixel.Channel](c pixel.Luv[T]) (pixel.RGB[T], error) {
	return pixel.RGB[T]{}, unimplemented("Luv", "RGB")
}
