// Package server implements the MCP (Model Context Protocol) server for color analysis tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the color-space
// conversion engine and its image-level operations through the MCP protocol.
// It's designed to work with Claude and other MCP-compatible clients,
// enabling AI systems to inspect colors and images with precision.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// The server provides 13 tools organized into categories:
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Region Operations:
//   - image_crop: Extract rectangular region
//   - image_crop_quadrant: Extract named region (top-left, center, etc.)
//
// Color Operations:
//   - color_convert: Convert a single color between models
//   - image_sample_color: Get color at pixel in every supported model
//   - image_sample_colors_multi: Sample multiple points
//   - image_dominant_colors: Extract color palette with perceptual merging
//
// Whole-Image Conversion:
//   - image_convert: False-color preview of a model conversion
//   - image_grayscale: BT.601 luminance rendering
//
// Filtering and Scaling:
//   - image_filter: Null, box, gaussian and gabor filters
//   - image_resize: Nearest, bilinear or lanczos resampling
//   - image_pyramid: Gaussian image pyramid
//
// # Conversion Asymmetry
//
// Forward conversions run from RGB into any supported model. Only XYZ and
// YCrCb convert back; asking for HSV, HSL, Lab or Luv to RGB yields a
// JSON-RPC error with code -32000 rather than a silent wrong answer.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
