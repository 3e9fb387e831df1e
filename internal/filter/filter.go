package filter

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
)

// Null returns an unmodified copy of the image. It exists so callers can
// treat "no filtering" uniformly with the real filters.
func Null(img image.Image) *image.RGBA {
	return clone.AsRGBA(img)
}

// Box applies a box blur with the given radius. Radius 0 is equivalent to
// Null.
func Box(img image.Image, radius float64) (*image.RGBA, error) {
	if radius < 0 {
		return nil, fmt.Errorf("box filter: negative radius %v", radius)
	}
	if radius == 0 {
		return Null(img), nil
	}
	return blur.Box(img, radius), nil
}

// Gaussian applies a Gaussian blur with the given radius. Radius 0 is
// equivalent to Null.
func Gaussian(img image.Image, radius float64) (*image.RGBA, error) {
	if radius < 0 {
		return nil, fmt.Errorf("gaussian filter: negative radius %v", radius)
	}
	if radius == 0 {
		return Null(img), nil
	}
	return blur.Gaussian(img, radius), nil
}

// Method selects the resampling kernel used by Resize.
type Method string

const (
	Nearest  Method = "nearest"
	Bilinear Method = "bilinear"
	Lanczos  Method = "lanczos"
)

// ParseMethod maps a method name to a Method. The empty string defaults to
// bilinear.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "":
		return Bilinear, nil
	case string(Nearest), string(Bilinear), string(Lanczos):
		return Method(name), nil
	default:
		return "", fmt.Errorf("unknown resampling method: %s", name)
	}
}

// Resize scales the image to width x height using the given resampling
// method.
func Resize(img image.Image, width, height int, method Method) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", width, height)
	}

	var filter transform.ResampleFilter
	switch method {
	case Nearest:
		filter = transform.NearestNeighbor
	case Bilinear:
		filter = transform.Linear
	case Lanczos:
		filter = transform.Lanczos
	default:
		return nil, fmt.Errorf("unknown resampling method: %s", method)
	}

	return transform.Resize(img, width, height, filter), nil
}
