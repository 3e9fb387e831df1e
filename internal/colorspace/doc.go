// Package colorspace implements pixel color model conversions between RGB,
// luminance, CIE XYZ, YCrCb, HSV, HSL, CIE Lab and CIE Luv.
//
// Every converter is a pure, stateless function of its input pixel: no
// shared mutable state, no I/O, no locks. Calls are independent and safe to
// invoke concurrently from any number of goroutines; mapping a converter
// over an image buffer parallelizes trivially per pixel.
//
// # Formulas
//
// The coefficient tables and piecewise formulas follow the OpenCV image
// processing reference (cvtColor family):
//
//	https://docs.opencv.org/master/de/d25/imgproc_color_conversions.html
//
// as transcribed, including a few places where the transcription is known
// to disagree with the published documentation. Those are deliberate:
// downstream consumers depend on the observed numbers, and the test suite
// pins them with literal golden values. See the individual converters and
// their tests for the details (YCrCbToRGB green coefficients, the Lab L
// bright branch, and the absence of per-storage rescaling in the HSV/HSL
// outputs).
//
// # Precision
//
// HSV, HSL, Lab and Luv first widen their input to a unit-scaled float64
// RGB scratch value via pixel.ConvertRGB, run the model math in extended
// precision, and narrow each result channel exactly once at the end with
// pixel.Narrow. The gray, XYZ and YCrCb conversions operate in the
// channel's own value range, also in float64 scratch.
//
// # Degenerate Inputs
//
// The literal hue formula divides by saturation and the Luv chromaticity
// denominator is zero for pure black. Both cases get deterministic
// policies instead of NaN: an achromatic pixel reports hue 0 (and, for
// HSL, saturation 0), and black in Luv reports u' = v' = 0. The policies
// are documented on each converter and covered by tests.
//
// # Unimplemented Reverses
//
// HSVToRGB, HSLToRGB, LabToRGB and LuvToRGB have no verified algorithm
// here. They return an error wrapping ErrUnimplemented rather than
// aborting, so a host service can detect the condition and keep running.
// No fabricated pixel value is ever produced.
package colorspace
