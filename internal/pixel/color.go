package pixel

// Gray is a single-channel luminance pixel.
type Gray[T Channel] struct {
	Y T
}

// GrayAlpha is a two-channel luminance+alpha pixel.
//
// No color model converter accepts this type: the conversions in
// internal/colorspace assume a full tri-stimulus model, so a two-channel
// pixel has to be split by the caller first. Code that tries anyway does
// not compile.
type GrayAlpha[T Channel] struct {
	Y, A T
}

// RGB is a three-channel red/green/blue pixel.
type RGB[T Channel] struct {
	R, G, B T
}

// RGBA is a four-channel RGB pixel with alpha. Like GrayAlpha it is outside
// the converter domain; use RGB to drop the alpha channel first.
type RGBA[T Channel] struct {
	R, G, B, A T
}

// RGB returns the color channels without alpha.
func (c RGBA[T]) RGB() RGB[T] {
	return RGB[T]{R: c.R, G: c.G, B: c.B}
}

// XYZ is a CIE 1931 XYZ tristimulus pixel.
type XYZ[T Channel] struct {
	X, Y, Z T
}

// YCrCb is a luma/chroma pixel stored in Y, Cr, Cb channel order, with the
// chroma channels re-centered by the storage class delta.
type YCrCb[T Channel] struct {
	Y, Cr, Cb T
}

// HSV is a hue/saturation/value pixel. Hue spans 0-360 degrees, saturation
// and value span 0-1, regardless of storage class.
type HSV[T Channel] struct {
	H, S, V T
}

// HSL is a hue/saturation/lightness pixel with the same channel ranges as HSV.
type HSL[T Channel] struct {
	H, S, L T
}

// Lab is a CIE L*a*b* pixel (D65 reference white). For integer storage the
// a and b channels are re-centered by the storage class delta.
type Lab[T Channel] struct {
	L, A, B T
}

// Luv is a CIE L*u*v* pixel.
type Luv[T Channel] struct {
	L, U, V T
}
