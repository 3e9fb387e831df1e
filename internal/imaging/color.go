package imaging

import (
	"fmt"
	"image"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
	"github.com/ironsheep/color-tools-mcp/internal/pixel"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// Triple is a three-channel value in a named color model, reported in the
// model's natural floating-point ranges: degrees for hue, 0-1 for
// saturation-like channels, the usual CIE ranges for XYZ/Lab/Luv.
type Triple struct {
	C0 float64 `json:"c0"`
	C1 float64 `json:"c1"`
	C2 float64 `json:"c2"`
}

// ColorResult contains a color value in every representation the conversion
// engine can produce from RGB.
//
// Hex/RGB/RGBA use 8-bit storage; the model renditions come from the
// engine's floating-point path, so hue spans 0-360 and the CIE channels
// keep their reference ranges instead of being squeezed into 8 bits.
type ColorResult struct {
	Hex   string    `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGB   RGBColor  `json:"rgb"`  // RGB components
	RGBA  RGBAColor `json:"rgba"` // RGBA components with alpha
	Gray  float64   `json:"gray"` // BT.601 luminance, 0-1
	XYZ   Triple    `json:"xyz"`  // CIE XYZ tristimulus
	YCrCb Triple    `json:"ycrcb"`
	HSV   Triple    `json:"hsv"`
	HSL   Triple    `json:"hsl"`
	Lab   Triple    `json:"lab"`
	Luv   Triple    `json:"luv"`
}

// Describe runs the full set of forward conversions for one 8-bit RGBA
// color. The alpha channel does not participate: the converters are
// tri-stimulus only, so it is stripped before widening and reported back
// verbatim in the RGBA field.
func Describe(r, g, b, a uint8) *ColorResult {
	rgba := pixel.RGBA[uint8]{R: r, G: g, B: b, A: a}
	f := pixel.ConvertRGB[float64](rgba.RGB())

	xyz := colorspace.RGBToXYZ(f)
	ycrcb := colorspace.RGBToYCrCb(f)
	hsv := colorspace.RGBToHSV(f)
	hsl := colorspace.RGBToHSL(f)
	lab := colorspace.RGBToLab(f)
	luv := colorspace.RGBToLuv(f)

	return &ColorResult{
		Hex:   fmt.Sprintf("#%02X%02X%02X", r, g, b),
		RGB:   RGBColor{R: r, G: g, B: b},
		RGBA:  RGBAColor{R: r, G: g, B: b, A: a},
		Gray:  colorspace.RGBToGray(f).Y,
		XYZ:   Triple{xyz.X, xyz.Y, xyz.Z},
		YCrCb: Triple{ycrcb.Y, ycrcb.Cr, ycrcb.Cb},
		HSV:   Triple{hsv.H, hsv.S, hsv.V},
		HSL:   Triple{hsl.H, hsl.S, hsl.L},
		Lab:   Triple{lab.L, lab.A, lab.B},
		Luv:   Triple{luv.L, luv.U, luv.V},
	}
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Coordinates are 0-based with origin at top-left. The native color is read
// from the image, reduced to 8-bit components (16-bit sources are scaled
// down by right-shifting 8 bits), and expanded through Describe.
//
// Returns an error if the coordinates are outside the image bounds.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, a := img.At(x, y).RGBA()
	return Describe(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)), nil
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
//
// Labels are useful for identifying specific points in the results, such as
// "button_background" or "header_text". If Label is empty, the point will
// still be sampled but won't have an identifying label in the output.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label for this point
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"` // Optional label (empty if not provided)
	X     int         `json:"x"`               // X coordinate that was sampled
	Y     int         `json:"y"`               // Y coordinate that was sampled
	Color ColorResult `json:"color"`           // The color at this location
}

// MultiColorResult contains color samples from multiple points.
//
// Results are returned in the same order as the input points.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"` // Color samples in input order
}

// SampleColorsMulti extracts colors at multiple pixel coordinates in a
// single call. Results keep the input order. If any coordinate is outside
// the image bounds an error is returned and no partial results are
// produced.
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		color, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *color,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
//   - Width = X2 - X1, Height = Y2 - Y1
type Region struct {
	X1 int // Left edge X coordinate (inclusive)
	Y1 int // Top edge Y coordinate (inclusive)
	X2 int // Right edge X coordinate (exclusive)
	Y2 int // Bottom edge Y coordinate (exclusive)
}

// ColorFrequency represents a color and its occurrence frequency in an image.
type ColorFrequency struct {
	Hex        string   `json:"hex"`        // Hex color "#RRGGBB" (quantized)
	Percentage float64  `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGB        RGBColor `json:"rgb"`        // RGB components (quantized)
}

// DominantColorsResult contains the most frequently occurring colors in an image.
//
// Colors are sorted by frequency in descending order (most common first).
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"` // Colors sorted by frequency (descending)
}

// mergeDistance is the CIE Lab distance (on the 0-100 lightness scale)
// under which two quantized palette entries count as the same perceived
// color. Distances around 10 are clearly distinguishable; 5 absorbs
// quantization noise without folding genuinely different colors.
const mergeDistance = 5.0

// DominantColors extracts the N most common colors from an image or region.
//
// Pixels are first quantized by dropping the low 4 bits of each component
// so near-identical colors share a bucket:
//
//	quantized = (original / 16) * 16
//
// Buckets that remain perceptually indistinguishable afterwards (CIE Lab
// distance below mergeDistance) are folded into the more frequent bucket.
// The result is sorted by frequency, most common first.
//
// If region is nil the entire image is analyzed. The function iterates over
// every pixel in the region, so large images may take longer to process;
// consider using a smaller region for quick analysis.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	bounds := img.Bounds()
	if region != nil {
		bounds = image.Rect(region.X1, region.Y1, region.X2, region.Y2)
	}

	colorCounts := make(map[RGBColor]int)
	totalPixels := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// Quantize to reduce color space (group similar colors)
			q := RGBColor{
				R: uint8((r >> 8) / 16 * 16),
				G: uint8((g >> 8) / 16 * 16),
				B: uint8((b >> 8) / 16 * 16),
			}
			colorCounts[q]++
			totalPixels++
		}
	}
	if totalPixels == 0 {
		return &DominantColorsResult{}, nil
	}

	type bucket struct {
		rgb   RGBColor
		count int
	}
	buckets := make([]bucket, 0, len(colorCounts))
	for rgb, cnt := range colorCounts {
		buckets = append(buckets, bucket{rgb: rgb, count: cnt})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].count > buckets[j].count
	})

	// Fold perceptually close buckets into the more frequent one.
	merged := make([]bucket, 0, len(buckets))
	for _, b := range buckets {
		c := colorful.Color{
			R: float64(b.rgb.R) / 255,
			G: float64(b.rgb.G) / 255,
			B: float64(b.rgb.B) / 255,
		}
		folded := false
		for i := range merged {
			m := colorful.Color{
				R: float64(merged[i].rgb.R) / 255,
				G: float64(merged[i].rgb.G) / 255,
				B: float64(merged[i].rgb.B) / 255,
			}
			if c.DistanceLab(m)*100 < mergeDistance {
				merged[i].count += b.count
				folded = true
				break
			}
		}
		if !folded {
			merged = append(merged, b)
		}
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].count > merged[j].count
	})

	if len(merged) > count {
		merged = merged[:count]
	}

	colors := make([]ColorFrequency, 0, len(merged))
	for _, b := range merged {
		colors = append(colors, ColorFrequency{
			Hex:        fmt.Sprintf("#%02X%02X%02X", b.rgb.R, b.rgb.G, b.rgb.B),
			Percentage: float64(b.count) / float64(totalPixels) * 100,
			RGB:        b.rgb,
		})
	}

	return &DominantColorsResult{Colors: colors}, nil
}
