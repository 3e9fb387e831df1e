package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
	"github.com/ironsheep/color-tools-mcp/internal/filter"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/pixel"
	"github.com/ironsheep/color-tools-mcp/internal/pyramid"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "color_convert").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
// That includes the conversions whose reverse direction does not exist
// (HSV, HSL, Lab and Luv back to RGB).
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging/colorspace/filter/pyramid function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Region Operations
	case "image_crop":
		return s.handleImageCrop(args)
	case "image_crop_quadrant":
		return s.handleImageCropQuadrant(args)

	// Color Operations
	case "color_convert":
		return s.handleColorConvert(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)

	// Whole-Image Conversion
	case "image_convert":
		return s.handleImageConvert(args)
	case "image_grayscale":
		return s.handleImageGrayscale(args)

	// Filtering and Scaling
	case "image_filter":
		return s.handleImageFilter(args)
	case "image_resize":
		return s.handleImageResize(args)
	case "image_pyramid":
		return s.handleImagePyramid(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// encodePNG renders an image as a base64 PNG string.
func encodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Region Operation Handlers ===

type imageCropArgs struct {
	Path   string  `json:"path"`
	X1     int     `json:"x1"`
	Y1     int     `json:"y1"`
	X2     int     `json:"x2"`
	Y2     int     `json:"y2"`
	Scale  float64 `json:"scale"`
	Method string  `json:"method"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Crop(img, a.X1, a.Y1, a.X2, a.Y2, a.Scale, a.Method)
}

type imageCropQuadrantArgs struct {
	Path   string  `json:"path"`
	Region string  `json:"region"`
	Scale  float64 `json:"scale"`
	Method string  `json:"method"`
}

func (s *Server) handleImageCropQuadrant(args json.RawMessage) (interface{}, error) {
	var a imageCropQuadrantArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CropQuadrant(img, a.Region, a.Scale, a.Method)
}

// === Color Operation Handlers ===

type colorConvertArgs struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	C0   float64 `json:"c0"`
	C1   float64 `json:"c1"`
	C2   float64 `json:"c2"`
}

// colorConvertResult reports a converted color. RGB channels use the
// 0-255 scale on both input and output; every other model uses its
// native floating-point ranges.
type colorConvertResult struct {
	From   string    `json:"from"`
	To     string    `json:"to"`
	Values []float64 `json:"values"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.From == "" {
		a.From = "rgb"
	}

	if a.From == "rgb" {
		values, err := convertFromRGB(a.To, a.C0, a.C1, a.C2)
		if err != nil {
			return nil, err
		}
		return &colorConvertResult{From: a.From, To: a.To, Values: values}, nil
	}
	if a.To == "rgb" {
		values, err := convertToRGB(a.From, a.C0, a.C1, a.C2)
		if err != nil {
			return nil, err
		}
		return &colorConvertResult{From: a.From, To: a.To, Values: values}, nil
	}
	return nil, fmt.Errorf("unsupported conversion: %s to %s (one side must be rgb)", a.From, a.To)
}

// convertFromRGB runs a forward conversion. RGB input channels are on the
// 0-255 scale and are widened to the unit float range before converting.
func convertFromRGB(to string, r, g, b float64) ([]float64, error) {
	c := pixel.RGB[float64]{R: r / 255, G: g / 255, B: b / 255}

	switch to {
	case "gray":
		return []float64{colorspace.RGBToGray(c).Y}, nil
	case "xyz":
		t := colorspace.RGBToXYZ(c)
		return []float64{t.X, t.Y, t.Z}, nil
	case "ycrcb":
		t := colorspace.RGBToYCrCb(c)
		return []float64{t.Y, t.Cr, t.Cb}, nil
	case "hsv":
		t := colorspace.RGBToHSV(c)
		return []float64{t.H, t.S, t.V}, nil
	case "hsl":
		t := colorspace.RGBToHSL(c)
		return []float64{t.H, t.S, t.L}, nil
	case "lab":
		t := colorspace.RGBToLab(c)
		return []float64{t.L, t.A, t.B}, nil
	case "luv":
		t := colorspace.RGBToLuv(c)
		return []float64{t.L, t.U, t.V}, nil
	default:
		return nil, fmt.Errorf("unknown target model: %s", to)
	}
}

// convertToRGB runs a reverse conversion where one exists. The engine only
// implements XYZ and YCrCb back to RGB; the other models propagate their
// unimplemented-conversion error.
func convertToRGB(from string, c0, c1, c2 float64) ([]float64, error) {
	var c pixel.RGB[float64]
	switch from {
	case "xyz":
		c = colorspace.XYZToRGB(pixel.XYZ[float64]{X: c0, Y: c1, Z: c2})
	case "ycrcb":
		c = colorspace.YCrCbToRGB(pixel.YCrCb[float64]{Y: c0, Cr: c1, Cb: c2})
	case "hsv":
		var err error
		c, err = colorspace.HSVToRGB(pixel.HSV[float64]{H: c0, S: c1, V: c2})
		if err != nil {
			return nil, err
		}
	case "hsl":
		var err error
		c, err = colorspace.HSLToRGB(pixel.HSL[float64]{H: c0, S: c1, L: c2})
		if err != nil {
			return nil, err
		}
	case "lab":
		var err error
		c, err = colorspace.LabToRGB(pixel.Lab[float64]{L: c0, A: c1, B: c2})
		if err != nil {
			return nil, err
		}
	case "luv":
		var err error
		c, err = colorspace.LuvToRGB(pixel.Luv[float64]{L: c0, U: c1, V: c2})
		if err != nil {
			return nil, err
		}
	case "gray":
		return nil, fmt.Errorf("gray to rgb is not a defined conversion")
	default:
		return nil, fmt.Errorf("unknown source model: %s", from)
	}
	return []float64{c.R * 255, c.G * 255, c.B * 255}, nil
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points)
}

type imageDominantColorsArgs struct {
	Path   string `json:"path"`
	Count  int    `json:"count"`
	Region *struct {
		X1 int `json:"x1"`
		Y1 int `json:"y1"`
		X2 int `json:"x2"`
		Y2 int `json:"y2"`
	} `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var region *imaging.Region
	if a.Region != nil {
		region = &imaging.Region{X1: a.Region.X1, Y1: a.Region.Y1, X2: a.Region.X2, Y2: a.Region.Y2}
	}
	return imaging.DominantColors(img, a.Count, region)
}

// === Whole-Image Conversion Handlers ===

type imageConvertArgs struct {
	Path  string `json:"path"`
	Model string `json:"model"`
}

func (s *Server) handleImageConvert(args json.RawMessage) (interface{}, error) {
	var a imageConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Convert(img, a.Model)
}

func (s *Server) handleImageGrayscale(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Grayscale(img)
}

// === Filtering and Scaling Handlers ===

type imageFilterArgs struct {
	Path        string  `json:"path"`
	Filter      string  `json:"filter"`
	Radius      float64 `json:"radius"`
	Wavelength  float64 `json:"wavelength"`
	Orientation float64 `json:"orientation"`
	Phase       float64 `json:"phase"`
	Sigma       float64 `json:"sigma"`
	Aspect      float64 `json:"aspect"`
}

type imageFilterResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Filter      string `json:"filter"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func (s *Server) handleImageFilter(args json.RawMessage) (interface{}, error) {
	var a imageFilterArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var out *image.RGBA
	switch a.Filter {
	case "null":
		out = filter.Null(img)
	case "box":
		if a.Radius == 0 {
			a.Radius = 3
		}
		out, err = filter.Box(img, a.Radius)
	case "gaussian":
		if a.Radius == 0 {
			a.Radius = 3
		}
		out, err = filter.Gaussian(img, a.Radius)
	case "gabor":
		if a.Wavelength == 0 {
			a.Wavelength = 8
		}
		if a.Sigma == 0 {
			a.Sigma = 4
		}
		out, err = filter.Gabor(img, filter.GaborParams{
			Wavelength:  float32(a.Wavelength),
			Orientation: float32(a.Orientation),
			Phase:       float32(a.Phase),
			Sigma:       float32(a.Sigma),
			Aspect:      float32(a.Aspect),
		})
	default:
		return nil, fmt.Errorf("unknown filter: %s", a.Filter)
	}
	if err != nil {
		return nil, err
	}

	encoded, err := encodePNG(out)
	if err != nil {
		return nil, err
	}
	return &imageFilterResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		Filter:      a.Filter,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

type imageResizeArgs struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Method string `json:"method"`
}

type imageResizeResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Method      string `json:"method"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	method, err := filter.ParseMethod(a.Method)
	if err != nil {
		return nil, err
	}
	out, err := filter.Resize(img, a.Width, a.Height, method)
	if err != nil {
		return nil, err
	}

	encoded, err := encodePNG(out)
	if err != nil {
		return nil, err
	}
	return &imageResizeResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		Method:      string(method),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

type imagePyramidArgs struct {
	Path   string `json:"path"`
	Levels int    `json:"levels"`
}

type pyramidLevelResult struct {
	Level       int    `json:"level"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
}

type imagePyramidResult struct {
	Levels   []pyramidLevelResult `json:"levels"`
	MimeType string               `json:"mime_type"`
}

func (s *Server) handleImagePyramid(args json.RawMessage) (interface{}, error) {
	var a imagePyramidArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Levels == 0 {
		a.Levels = 4
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	levels, err := pyramid.Build(img, a.Levels)
	if err != nil {
		return nil, err
	}

	result := &imagePyramidResult{MimeType: "image/png"}
	for i, level := range levels {
		encoded, err := encodePNG(level)
		if err != nil {
			return nil, err
		}
		result.Levels = append(result.Levels, pyramidLevelResult{
			Level:       i,
			Width:       level.Bounds().Dx(),
			Height:      level.Bounds().Dy(),
			ImageBase64: encoded,
		})
	}
	return result, nil
}
