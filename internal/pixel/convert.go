package pixel

// convertChannel rescales a single channel from the storage range of S into
// the storage range of D. Widening an 8-bit channel into float64 yields a
// value in [0, 1]; narrowing truncates through Narrow.
func convertChannel[D, S Channel](v S) D {
	return Narrow[D](float64(v) * float64(Opaque[D]()) / float64(Opaque[S]()))
}

// ConvertGray converts a luminance pixel between storage classes.
func ConvertGray[D, S Channel](c Gray[S]) Gray[D] {
	return Gray[D]{Y: convertChannel[D](c.Y)}
}

// ConvertRGB converts an RGB pixel between storage classes without changing
// the color model. The model-changing converters widen through this before
// applying their formulas, so intermediate math never runs in narrow
// integer precision.
func ConvertRGB[D, S Channel](c RGB[S]) RGB[D] {
	return RGB[D]{
		R: convertChannel[D](c.R),
		G: convertChannel[D](c.G),
		B: convertChannel[D](c.B),
	}
}
