// Package imaging provides the image-level operations for the MCP server.
//
// This package bridges the per-pixel conversion engine (internal/colorspace,
// internal/pixel) to whole images and files: loading and caching, color
// sampling and palette extraction, cropping, grayscale rendering, and
// false-color model previews. All operations work with standard Go
// image.Image types and use a coordinate system where (0,0) is at the
// top-left corner, X increases rightward, and Y increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - Coordinates are inclusive for single points
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Individual image operations
// are stateless and can be called concurrently on different images.
//
// # Color Representation
//
// Sampled colors are reported in every model the conversion engine supports:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGB / RGBA / Gray: 8-bit components (0-255)
//   - XYZ, YCrCb, HSV, HSL, Lab, Luv: the engine's float results, unrounded
//
// The float results carry the conversion formulas' native ranges (for
// example HSV hue in degrees, Lab lightness up to 116); see the colorspace
// package documentation for the exact semantics of each model.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds
//   - Invalid region specifications (x1 >= x2 or y1 >= y2)
//   - Unknown target models or resampling methods
//   - File I/O errors during image loading
//   - Encoding errors during image output
//
// # Performance Considerations
//
// For repeated operations on the same image, use ImageCache to avoid redundant
// disk reads. Large images may consume significant memory when cached.
// Consider using Evict() or Clear() to manage memory for long-running processes.
package imaging
