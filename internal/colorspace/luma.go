package colorspace

import (
	"fmt"

	"github.com/ironsheep/color-tools-mcp/internal/pixel"
)

// RGBToGray converts an RGB pixel to its luminance using the ITU-R BT.601
// weights:
//
//	Y = 0.299*R + 0.587*G + 0.114*B
//
// The result stays in the source value range, so no precision widening
// beyond the float64 scratch is needed. Luminance is lossy; there is no
// inverse conversion.
func RGBToGray[T pixel.Channel](c pixel.RGB[T]) pixel.Gray[T] {
	y := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	return pixel.Gray[T]{Y: pixel.Narrow[T](y)}
}

// RGBToYCrCb converts RGB to Y/Cr/Cb:
//
//	Y  = 0.299*R + 0.587*G + 0.114*B
//	Cr = (R-Y)*0.713 + delta
//	Cb = (B-Y)*0.564 + delta
//
// where delta is 128 for 8-bit, 32768 for 16-bit and 0.5 for float storage.
// Y is narrowed to storage before the chroma terms are formed, so the
// stored luma is exactly what the reverse conversion sees. For an
// achromatic float pixel R = G = B = Y and the chroma channels come out
// at exactly delta; integer storage can truncate the luma one step low,
// leaving a sub-step chroma residue that also truncates back to delta.
func RGBToYCrCb[T pixel.Channel](c pixel.RGB[T]) pixel.YCrCb[T] {
	y := RGBToGray(c).Y
	delta := pixel.Delta[T]()
	fy := float64(y)

	cr := (float64(c.R)-fy)*0.713 + delta
	cb := (float64(c.B)-fy)*0.564 + delta
	return pixel.YCrCb[T]{
		Y:  y,
		Cr: pixel.Narrow[T](cr),
		Cb: pixel.Narrow[T](cb),
	}
}

// YCrCbToRGB is the reverse of RGBToYCrCb:
//
//	R = Y + 1.403*(Cr-delta)
//	G = Y - 0.714*(Cr-delta) - 0.344*(Cb-delta)
//	B = Y + 1.773*(Cb-delta)
//
// Note: the OpenCV reference documentation attaches 0.714 to the Cb term
// and 0.344 to the Cr term. The transcription used here applies them the
// other way around, and downstream output depends on that behavior, so it
// is preserved and pinned by TestYCrCbGreenCoefficients rather than
// corrected. The products 0.714*0.713 and 0.344*0.564 land close enough to
// the exact inverse that round trips still agree to about 1e-3.
func YCrCbToRGB[T pixel.Channel](c pixel.YCrCb[T]) pixel.RGB[T] {
	delta := pixel.Delta[T]()
	y := float64(c.Y)
	cr := float64(c.Cr) - delta
	cb := float64(c.Cb) - delta

	return pixel.RGB[T]{
		R: pixel.Narrow[T](y + 1.403*cr),
		G: pixel.Narrow[T](y - 0.714*cr - 0.344*cb),
		B: pixel.Narrow[T](y + 1.773*cb),
	}
}

// unimplemented builds the error returned by conversions that have no
// verified algorithm yet.
func unimplemented(from, to string) error {
	return fmt.Errorf("%s to %s: %w", from, to, ErrUnimplemented)
}
