package pixel

// Channel is the set of supported channel storage types.
//
// The constraint lists exact types rather than underlying types so that the
// trait lookups below can resolve with a plain type switch.
type Channel interface {
	uint8 | uint16 | float32 | float64
}

// Opaque returns the maximum representable channel value for T:
// 255 for 8-bit, 65535 for 16-bit, and 1 for floating-point storage.
func Opaque[T Channel]() T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return T(255)
	case uint16:
		u := uint32(65535)
		return T(u)
	default:
		return T(1)
	}
}

// Delta returns the chroma re-centering offset for T's storage class: half
// of the opaque range, expressed in extended precision. It is 128 for 8-bit,
// 32768 for 16-bit, and 0.5 for floating-point storage.
func Delta[T Channel]() float64 {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 128
	case uint16:
		return 32768
	default:
		return 0.5
	}
}

// IsInteger reports whether T is an integer storage class.
func IsInteger[T Channel]() bool {
	var zero T
	switch any(zero).(type) {
	case uint8, uint16:
		return true
	default:
		return false
	}
}

// Narrow converts an extended-precision value back to channel storage.
//
// Floating-point storage keeps the value as is (values outside [0, 1] are
// legal there; hue reaches 360 and Lab lightness reaches 116). Integer
// storage truncates toward zero and clips to [0, Opaque].
func Narrow[T Channel](v float64) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		if v <= 0 {
			return T(0)
		}
		if v >= 255 {
			return T(255)
		}
		return T(v)
	case uint16:
		if v <= 0 {
			return T(0)
		}
		if v >= 65535 {
			u := uint32(65535)
			return T(u)
		}
		return T(v)
	default:
		return T(v)
	}
}
