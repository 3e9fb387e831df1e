package colorspace

import "github.com/ironsheep/color-tools-mcp/internal/pixel"

// RGBToXYZ converts RGB to CIE XYZ using the sRGB primaries:
//
//	|X|   |0.412453  0.357580  0.180423| |R|
//	|Y| = |0.212671  0.715160  0.072169|*|G|
//	|Z|   |0.019334  0.119193  0.950227| |B|
//
// The matrix is applied in the channel's own value range; it is well
// conditioned enough that no precision widening step is needed.
func RGBToXYZ[T pixel.Channel](c pixel.RGB[T]) pixel.XYZ[T] {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	return pixel.XYZ[T]{
		X: pixel.Narrow[T](0.412453*r + 0.357580*g + 0.180423*b),
		Y: pixel.Narrow[T](0.212671*r + 0.715160*g + 0.072169*b),
		Z: pixel.Narrow[T](0.019334*r + 0.119193*g + 0.950227*b),
	}
}

// XYZToRGB applies the algebraic inverse of the RGBToXYZ matrix:
//
//	|R|   | 3.240479  -1.53715  -0.498535| |X|
//	|G| = |-0.969256   1.875991  0.041556|*|Y|
//	|B|   | 0.055648  -0.204043  1.057311| |Z|
func XYZToRGB[T pixel.Channel](c pixel.XYZ[T]) pixel.RGB[T] {
	x, y, z := float64(c.X), float64(c.Y), float64(c.Z)
	return pixel.RGB[T]{
		R: pixel.Narrow[T](3.240479*x + -1.53715*y + -0.498535*z),
		G: pixel.Narrow[T](-0.969256*x + 1.875991*y + 0.041556*z),
		B: pixel.Narrow[T](0.055648*x + -0.204043*y + 1.057311*z),
	}
}
