// Package pyramid builds multi-resolution Gaussian image pyramids: each
// level is the previous one smoothed and halved. Level 0 is always the
// source image itself.
package pyramid

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// blurRadius is the pre-filter applied before each downsample to avoid
// aliasing in the coarser levels.
const blurRadius = 1.0

// Build constructs a Gaussian pyramid with at most the requested number of
// levels. Construction stops early when a level would fall below one pixel
// in either dimension, so the returned slice may be shorter than levels.
func Build(img image.Image, levels int) ([]image.Image, error) {
	if levels < 1 {
		return nil, fmt.Errorf("pyramid must have at least one level, got %d", levels)
	}
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("cannot build a pyramid from an empty %dx%d image", b.Dx(), b.Dy())
	}

	out := make([]image.Image, 1, levels)
	out[0] = img

	current := img
	for level := 1; level < levels; level++ {
		w := current.Bounds().Dx() / 2
		h := current.Bounds().Dy() / 2
		if w < 1 || h < 1 {
			break
		}
		smoothed := blur.Gaussian(current, blurRadius)
		next := imaging.Resize(smoothed, w, h, imaging.Linear)
		out = append(out, next)
		current = next
	}
	return out, nil
}

// Level returns the given pyramid level, rebuilding only as many levels as
// needed. It is a convenience for callers that want a single coarse view
// without keeping the whole pyramid.
func Level(img image.Image, level int) (image.Image, error) {
	if level < 0 {
		return nil, fmt.Errorf("negative pyramid level %d", level)
	}
	p, err := Build(img, level+1)
	if err != nil {
		return nil, err
	}
	if level >= len(p) {
		return nil, fmt.Errorf("pyramid level %d does not exist: image exhausts at level %d", level, len(p)-1)
	}
	return p[level], nil
}
