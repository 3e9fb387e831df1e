// Package pixel defines the channel and pixel value model shared by the
// color conversion engine and the image tools built on top of it.
//
// A pixel is an ordered, fixed-length tuple of channels over one of four
// storage types: 8-bit unsigned integer, 16-bit unsigned integer, or single
// or double precision float. The channel count is part of the pixel type:
// every color model in this package is a distinct generic struct, so a
// conversion written against RGB[T] can never be handed a two-channel
// luminance+alpha pixel by accident. That restriction is enforced by the
// compiler, not at run time.
//
// # Storage Classes and Traits
//
// Each storage type has two associated trait values, resolved statically at
// instantiation:
//   - Opaque: the maximum representable channel value (255, 65535, or 1).
//   - Delta: half of the opaque range (128, 32768, or 0.5), used to
//     re-center signed chroma quantities into unsigned storage.
//
// # Extended Precision
//
// Intermediate conversion math runs in float64, which represents every
// supported storage type without loss. Results return to channel storage
// exactly once, through Narrow, which truncates toward zero and, for
// integer storage, clips to the representable range (Go leaves the result
// of an out-of-range float-to-integer conversion implementation-dependent,
// so the clip makes narrowing deterministic).
//
// # Precision Conversion
//
// ConvertRGB and ConvertGray rescale a pixel between storage classes within
// the same color model, e.g. 8-bit RGB to unit-range float64 RGB. The
// model-changing converters in internal/colorspace use these to widen their
// input before applying any matrix or piecewise formula.
package pixel
