package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 255})

	result, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	// Check hex
	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}

	// Check RGB
	if result.RGB.R != 255 || result.RGB.G != 128 || result.RGB.B != 64 {
		t.Errorf("RGB: got (%d,%d,%d), want (255,128,64)", result.RGB.R, result.RGB.G, result.RGB.B)
	}

	// Check RGBA
	if result.RGBA.R != 255 || result.RGBA.G != 128 || result.RGBA.B != 64 || result.RGBA.A != 255 {
		t.Errorf("RGBA: got (%d,%d,%d,%d), want (255,128,64,255)",
			result.RGBA.R, result.RGBA.G, result.RGBA.B, result.RGBA.A)
	}
}

func TestDescribe_KnownColors(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  uint8
		wantHex  string
		wantGray float64
		wantHSV  Triple
	}{
		{"pure red", 255, 0, 0, "#FF0000", 0.299, Triple{0, 1, 1}},
		{"pure green", 0, 255, 0, "#00FF00", 0.587, Triple{120, 1, 1}},
		{"pure blue", 0, 0, 255, "#0000FF", 0.114, Triple{240, 1, 1}},
		{"white", 255, 255, 255, "#FFFFFF", 1.0, Triple{0, 0, 1}},
		{"black", 0, 0, 0, "#000000", 0.0, Triple{0, 0, 0}},
		{"gray", 128, 128, 128, "#808080", 128.0 / 255.0, Triple{0, 0, 128.0 / 255.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Describe(tt.r, tt.g, tt.b, 255)

			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if !near(result.Gray, tt.wantGray, 1e-9) {
				t.Errorf("Gray: got %v, want %v", result.Gray, tt.wantGray)
			}
			if !near(result.HSV.C0, tt.wantHSV.C0, 1e-9) ||
				!near(result.HSV.C1, tt.wantHSV.C1, 1e-9) ||
				!near(result.HSV.C2, tt.wantHSV.C2, 1e-9) {
				t.Errorf("HSV: got %+v, want %+v", result.HSV, tt.wantHSV)
			}
		})
	}
}

func TestDescribe_CIEModels(t *testing.T) {
	// Golden values for pure red through the floating-point engine path.
	red := Describe(255, 0, 0, 255)

	wantLab := Triple{69.2405879437449, 80.09416683448495, 67.20153699507154}
	if !near(red.Lab.C0, wantLab.C0, 1e-6) ||
		!near(red.Lab.C1, wantLab.C1, 1e-6) ||
		!near(red.Lab.C2, wantLab.C2, 1e-6) {
		t.Errorf("Lab: got %+v, want %+v", red.Lab, wantLab)
	}

	wantLuv := Triple{53.2405879437449, 174.94553406537133, 37.77371428343321}
	if !near(red.Luv.C0, wantLuv.C0, 1e-6) ||
		!near(red.Luv.C1, wantLuv.C1, 1e-6) ||
		!near(red.Luv.C2, wantLuv.C2, 1e-6) {
		t.Errorf("Luv: got %+v, want %+v", red.Luv, wantLuv)
	}

	wantXYZ := Triple{0.412453, 0.212671, 0.019334}
	if !near(red.XYZ.C0, wantXYZ.C0, 1e-9) ||
		!near(red.XYZ.C1, wantXYZ.C1, 1e-9) ||
		!near(red.XYZ.C2, wantXYZ.C2, 1e-9) {
		t.Errorf("XYZ: got %+v, want %+v", red.XYZ, wantXYZ)
	}

	// YCrCb on the float path has zero offset delta.
	wantYCrCb := Triple{0.299, 0.701 * 0.713, -0.299 * 0.564}
	if !near(red.YCrCb.C0, wantYCrCb.C0, 1e-9) ||
		!near(red.YCrCb.C1, wantYCrCb.C1, 1e-9) ||
		!near(red.YCrCb.C2, wantYCrCb.C2, 1e-9) {
		t.Errorf("YCrCb: got %+v, want %+v", red.YCrCb, wantYCrCb)
	}
}

func TestDescribe_AlphaPreserved(t *testing.T) {
	result := Describe(10, 20, 30, 128)
	if result.RGBA.A != 128 {
		t.Errorf("alpha: got %d, want 128", result.RGBA.A)
	}
	// Alpha must not leak into the conversion results.
	opaque := Describe(10, 20, 30, 255)
	if result.Lab != opaque.Lab || result.HSV != opaque.HSV {
		t.Error("conversion results should not depend on alpha")
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
		{"both too large", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(img, tt.x, tt.y)
			if err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestSampleColor_EdgeCoordinates(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"top-left", 0, 0},
		{"top-right", 99, 0},
		{"bottom-left", 0, 99},
		{"bottom-right", 99, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(img, tt.x, tt.y)
			if err != nil {
				t.Errorf("SampleColor failed for valid edge coordinate (%d,%d): %v", tt.x, tt.y, err)
			}
		})
	}
}

func TestSampleColorsMulti(t *testing.T) {
	img := createPatternImage(100, 100)

	points := []LabeledPoint{
		{X: 25, Y: 25, Label: "red"},
		{X: 75, Y: 25, Label: "green"},
		{X: 25, Y: 75, Label: "blue"},
		{X: 75, Y: 75, Label: "white"},
	}

	result, err := SampleColorsMulti(img, points)
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}

	if len(result.Samples) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(result.Samples))
	}

	// Check labels preserved
	for i, sample := range result.Samples {
		if sample.Label != points[i].Label {
			t.Errorf("sample %d label: got %s, want %s", i, sample.Label, points[i].Label)
		}
	}

	// Check colors
	expectedHex := []string{"#FF0000", "#00FF00", "#0000FF", "#FFFFFF"}
	for i, sample := range result.Samples {
		if sample.Color.Hex != expectedHex[i] {
			t.Errorf("sample %d (%s) hex: got %s, want %s",
				i, sample.Label, sample.Color.Hex, expectedHex[i])
		}
	}
}

func TestSampleColorsMulti_EmptyPoints(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	result, err := SampleColorsMulti(img, []LabeledPoint{})
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}

	if len(result.Samples) != 0 {
		t.Errorf("expected 0 samples, got %d", len(result.Samples))
	}
}

func TestSampleColorsMulti_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	points := []LabeledPoint{
		{X: 50, Y: 50, Label: "valid"},
		{X: 200, Y: 50, Label: "invalid"},
	}

	_, err := SampleColorsMulti(img, points)
	if err == nil {
		t.Error("SampleColorsMulti should fail when any point is out of bounds")
	}
}

func TestDominantColors(t *testing.T) {
	// Create an image with mostly red, some green
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if x < 80 {
				img.Set(x, y, color.RGBA{255, 0, 0, 255}) // 80% red
			} else {
				img.Set(x, y, color.RGBA{0, 255, 0, 255}) // 20% green
			}
		}
	}

	result, err := DominantColors(img, 5, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	if len(result.Colors) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(result.Colors))
	}

	// Red should be the most dominant. Red and green are far apart in Lab
	// space, so they must not be folded together.
	if result.Colors[0].Percentage < 50 {
		t.Errorf("dominant color percentage too low: %f", result.Colors[0].Percentage)
	}
}

func TestDominantColors_WithRegion(t *testing.T) {
	img := createPatternImage(100, 100)

	// Sample only the top-left quadrant (red)
	region := &Region{X1: 0, Y1: 0, X2: 50, Y2: 50}
	result, err := DominantColors(img, 5, region)
	if err != nil {
		t.Fatalf("DominantColors with region failed: %v", err)
	}

	if len(result.Colors) == 0 {
		t.Fatal("expected at least one color")
	}

	// Should be predominantly red (quantized)
	// The quantized red is #F00000 (255/16*16 = 240 -> F0)
	if result.Colors[0].Percentage < 90 {
		t.Errorf("expected red to dominate in top-left region, got %f%%", result.Colors[0].Percentage)
	}
}

func TestDominantColors_SingleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{128, 128, 128, 255})

	result, err := DominantColors(img, 3, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	// Should have exactly 1 color since image is uniform
	if len(result.Colors) != 1 {
		t.Errorf("expected 1 color for uniform image, got %d", len(result.Colors))
	}

	// That color should be 100%
	if result.Colors[0].Percentage != 100 {
		t.Errorf("expected 100%% for single color, got %f%%", result.Colors[0].Percentage)
	}
}

func TestDominantColors_MergesNearBlack(t *testing.T) {
	// Black and a very dark gray quantize to different buckets but sit
	// within the Lab merge distance, so they fold into a single entry.
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if x == 0 {
				img.Set(x, y, color.RGBA{16, 16, 16, 255})
			} else {
				img.Set(x, y, color.RGBA{0, 0, 0, 255})
			}
		}
	}

	result, err := DominantColors(img, 5, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	if len(result.Colors) != 1 {
		t.Fatalf("expected near-black buckets to merge into 1 color, got %d", len(result.Colors))
	}
	if result.Colors[0].Hex != "#000000" {
		t.Errorf("merged color should keep the more frequent bucket, got %s", result.Colors[0].Hex)
	}
	if result.Colors[0].Percentage != 100 {
		t.Errorf("merged color should cover all pixels, got %f%%", result.Colors[0].Percentage)
	}
}
