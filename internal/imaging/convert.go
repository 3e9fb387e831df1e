package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
	"github.com/ironsheep/color-tools-mcp/internal/pixel"
)

// ConvertResult contains a converted image encoded as base64 PNG.
type ConvertResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Model       string `json:"model"`        // Target color model
	ImageBase64 string `json:"image_base64"` // Converted image as base64 PNG
	MimeType    string `json:"mime_type"`    // Always "image/png"
}

// Grayscale renders the BT.601 luminance of an image.
//
// Each pixel is converted independently through the engine's 8-bit path;
// alpha is dropped. The conversion is a pure per-pixel map, so rows could
// be processed concurrently, but a single pass is fast enough for
// interactive use.
func Grayscale(img image.Image) (*ConvertResult, error) {
	bounds := img.Bounds()
	out := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			c := pixel.RGB[uint8]{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
			out.SetGray(x, y, color.Gray{Y: colorspace.RGBToGray(c).Y})
		}
	}

	return encodeResult(out, "gray")
}

// Convert maps every pixel of the image into the named target model on the
// engine's 8-bit path and packs the three result channels into the R, G
// and B bytes of the output for inspection (the common false-color debug
// view: for example an HSV conversion stores H in the red byte).
//
// Supported models: "xyz", "ycrcb", "hsv", "hsl", "lab", "luv". The
// models with unimplemented reverse conversions are still valid targets
// here; it is the reverse direction that does not exist.
func Convert(img image.Image, model string) (*ConvertResult, error) {
	conv, err := packedConverter(model)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	out := image.NewRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			c := pixel.RGB[uint8]{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
			c0, c1, c2 := conv(c)
			i := out.PixOffset(x, y)
			out.Pix[i+0] = c0
			out.Pix[i+1] = c1
			out.Pix[i+2] = c2
			out.Pix[i+3] = uint8(a >> 8)
		}
	}

	return encodeResult(out, model)
}

// packedConverter returns the per-pixel conversion for a target model,
// flattened to three 8-bit channel values.
func packedConverter(model string) (func(pixel.RGB[uint8]) (uint8, uint8, uint8), error) {
	switch model {
	case "xyz":
		return func(c pixel.RGB[uint8]) (uint8, uint8, uint8) {
			t := colorspace.RGBToXYZ(c)
			return t.X, t.Y, t.Z
		}, nil
	case "ycrcb":
		return func(c pixel.RGB[uint8]) (uint8, uint8, uint8) {
			t := colorspace.RGBToYCrCb(c)
			return t.Y, t.Cr, t.Cb
		}, nil
	case "hsv":
		return func(c pixel.RGB[uint8]) (uint8, uint8, uint8) {
			t := colorspace.RGBToHSV(c)
			return t.H, t.S, t.V
		}, nil
	case "hsl":
		return func(c pixel.RGB[uint8]) (uint8, uint8, uint8) {
			t := colorspace.RGBToHSL(c)
			return t.H, t.S, t.L
		}, nil
	case "lab":
		return func(c pixel.RGB[uint8]) (uint8, uint8, uint8) {
			t := colorspace.RGBToLab(c)
			return t.L, t.A, t.B
		}, nil
	case "luv":
		return func(c pixel.RGB[uint8]) (uint8, uint8, uint8) {
			t := colorspace.RGBToLuv(c)
			return t.L, t.U, t.V
		}, nil
	default:
		return nil, fmt.Errorf("unknown target model: %s", model)
	}
}

// encodeResult PNG-encodes an image into a ConvertResult.
func encodeResult(img image.Image, model string) (*ConvertResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode converted image: %w", err)
	}
	b := img.Bounds()
	return &ConvertResult{
		Width:       b.Dx(),
		Height:      b.Dy(),
		Model:       model,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
