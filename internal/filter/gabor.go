package filter

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/chewxy/math32"
)

// GaborParams configures a Gabor filter: a sinusoidal carrier under a
// Gaussian envelope, commonly used for oriented texture and edge analysis.
type GaborParams struct {
	// Wavelength of the sinusoidal carrier in pixels per cycle. Must be
	// positive.
	Wavelength float32

	// Orientation of the carrier in radians; 0 responds to vertical
	// structure.
	Orientation float32

	// Phase offset of the carrier in radians.
	Phase float32

	// Sigma is the standard deviation of the Gaussian envelope in pixels.
	// Must be positive. The kernel extends three sigmas from the center.
	Sigma float32

	// Aspect is the spatial aspect ratio gamma, squeezing the envelope
	// perpendicular to the carrier. Zero defaults to 1 (circular).
	Aspect float32
}

// GaborKernel builds the convolution kernel for the given parameters:
//
//	g(x,y) = exp(-(x'^2 + gamma^2*y'^2)/(2*sigma^2)) * cos(2*pi*x'/lambda + psi)
//
// with x' and y' the pixel offsets rotated by the orientation. Weights are
// computed in float32; that is ample precision for kernel taps.
func GaborKernel(p GaborParams) (*convolution.Kernel, error) {
	if p.Wavelength <= 0 {
		return nil, fmt.Errorf("gabor filter: wavelength must be positive, got %v", p.Wavelength)
	}
	if p.Sigma <= 0 {
		return nil, fmt.Errorf("gabor filter: sigma must be positive, got %v", p.Sigma)
	}
	gamma := p.Aspect
	if gamma == 0 {
		gamma = 1
	}

	radius := int(math32.Ceil(3 * p.Sigma))
	size := 2*radius + 1
	k := convolution.NewKernel(size, size)

	sin, cos := math32.Sincos(p.Orientation)
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			xr := float32(x)*cos + float32(y)*sin
			yr := -float32(x)*sin + float32(y)*cos

			envelope := math32.Exp(-(xr*xr + gamma*gamma*yr*yr) / (2 * p.Sigma * p.Sigma))
			carrier := math32.Cos(2*math32.Pi*xr/p.Wavelength + p.Phase)

			k.Matrix[(y+radius)*size+(x+radius)] = float64(envelope * carrier)
		}
	}
	return k, nil
}

// Gabor convolves the image with the Gabor kernel for the given parameters.
// The kernel has near-zero mean, so responses are signed; a mid-range bias
// keeps them visible in the unsigned output image.
func Gabor(img image.Image, p GaborParams) (*image.RGBA, error) {
	k, err := GaborKernel(p)
	if err != nil {
		return nil, err
	}
	return convolution.Convolve(img, k, &convolution.Options{Bias: 128, KeepAlpha: true}), nil
}
