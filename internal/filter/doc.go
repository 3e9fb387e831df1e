// Package filter provides the convolution and resampling filters of the
// toolkit: null (identity), box, Gaussian and Gabor convolution, plus
// nearest-neighbor, bilinear and Lanczos resizing.
//
// The box and Gaussian blurs and the resampling paths delegate to
// github.com/anthonynsimon/bild; the Gabor filter builds its kernel
// locally and applies it through bild's convolution engine.
//
// All filters take an image.Image, never mutate their input, and return a
// freshly allocated *image.RGBA. They hold no state and are safe to call
// concurrently.
package filter
