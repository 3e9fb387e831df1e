package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorModels lists the conversion targets accepted by the color tools.
var colorModels = []string{"gray", "xyz", "ycrcb", "hsv", "hsl", "lab", "luv"}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, color depth and alpha information. Supported formats: PNG, JPEG, GIF, BMP, TIFF.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Region Operations
		{
			Name:        "image_crop",
			Description: "Crop a rectangular region from an image and return it as base64-encoded PNG. Use this to zoom into areas that need detailed examination.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
					"method": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"nearest", "bilinear", "lanczos"},
						"description": "Resampling method used when scaling. Default lanczos",
					},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "image_crop_quadrant",
			Description: "Crop a named region of the image (top-left, top-right, bottom-left, bottom-right, top-half, bottom-half, left-half, right-half, center).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"region": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"top-left", "top-right", "bottom-left", "bottom-right", "top-half", "bottom-half", "left-half", "right-half", "center"},
						"description": "Named region to extract",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor. Default 1.0",
						"default":     1.0,
					},
					"method": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"nearest", "bilinear", "lanczos"},
						"description": "Resampling method used when scaling. Default lanczos",
					},
				},
				"required": []string{"path", "region"},
			},
		},

		// Color Operations
		{
			Name:        "color_convert",
			Description: "Convert a single color between models. Forward conversions go from RGB to any supported model; reverse conversions to RGB exist for xyz and ycrcb only (hsv, hsl, lab and luv report an error).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"from": map[string]interface{}{
						"type":        "string",
						"enum":        append([]string{"rgb"}, colorModels...),
						"description": "Source color model. Default rgb",
					},
					"to": map[string]interface{}{
						"type":        "string",
						"enum":        append([]string{"rgb"}, colorModels...),
						"description": "Target color model",
					},
					"c0": map[string]interface{}{
						"type":        "number",
						"description": "First channel (R for rgb on a 0-255 scale, otherwise the model's native range)",
					},
					"c1": map[string]interface{}{
						"type":        "number",
						"description": "Second channel",
					},
					"c2": map[string]interface{}{
						"type":        "number",
						"description": "Third channel",
					},
				},
				"required": []string{"to", "c0", "c1", "c2"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the color at a specific pixel coordinate, reported in every supported model (hex, RGB, RGBA, gray, XYZ, YCrCb, HSV, HSL, Lab, Luv).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Get color values at multiple pixel coordinates in a single call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Array of points to sample",
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Analyze an image and return the N most dominant colors (color palette extraction). Perceptually indistinguishable shades are merged using CIE Lab distance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of dominant colors to return (default 5)",
						"default":     5,
					},
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional region to analyze. If omitted, analyzes entire image.",
					},
				},
				"required": []string{"path"},
			},
		},

		// Whole-Image Conversion
		{
			Name:        "image_convert",
			Description: "Convert every pixel of an image into a target color model and return a false-color preview PNG with the result channels packed into R, G and B.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"model": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"xyz", "ycrcb", "hsv", "hsl", "lab", "luv"},
						"description": "Target color model",
					},
				},
				"required": []string{"path", "model"},
			},
		},
		{
			Name:        "image_grayscale",
			Description: "Render the BT.601 luminance of an image as a grayscale PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Filtering and Scaling
		{
			Name:        "image_filter",
			Description: "Apply a filter to an image and return the result as a base64 PNG. Filters: null (identity copy), box blur, gaussian blur, gabor (oriented texture response).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"filter": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"null", "box", "gaussian", "gabor"},
						"description": "Filter to apply",
					},
					"radius": map[string]interface{}{
						"type":        "number",
						"description": "Blur radius in pixels for box and gaussian (default 3)",
						"default":     3.0,
					},
					"wavelength": map[string]interface{}{
						"type":        "number",
						"description": "Gabor carrier wavelength in pixels per cycle (default 8)",
						"default":     8.0,
					},
					"orientation": map[string]interface{}{
						"type":        "number",
						"description": "Gabor orientation in radians (default 0)",
						"default":     0.0,
					},
					"phase": map[string]interface{}{
						"type":        "number",
						"description": "Gabor phase offset in radians (default 0)",
						"default":     0.0,
					},
					"sigma": map[string]interface{}{
						"type":        "number",
						"description": "Gabor Gaussian envelope sigma in pixels (default 4)",
						"default":     4.0,
					},
					"aspect": map[string]interface{}{
						"type":        "number",
						"description": "Gabor spatial aspect ratio (default 1)",
						"default":     1.0,
					},
				},
				"required": []string{"path", "filter"},
			},
		},
		{
			Name:        "image_resize",
			Description: "Resize an image to the given dimensions using nearest, bilinear or lanczos resampling.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in pixels",
					},
					"method": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"nearest", "bilinear", "lanczos"},
						"description": "Resampling method. Default bilinear",
					},
				},
				"required": []string{"path", "width", "height"},
			},
		},
		{
			Name:        "image_pyramid",
			Description: "Build a Gaussian image pyramid: each level is blurred and halved from the previous one. Returns every level as a base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"levels": map[string]interface{}{
						"type":        "integer",
						"description": "Number of pyramid levels including the original (default 4)",
						"default":     4,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
