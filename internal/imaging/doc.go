// Package imaging connects the paint bucket engine to image files.
//
// It decodes files into an image cache, converts decoded images to and from
// paint.Buffer, runs fills on copies of cached images and encodes the results
// back to files or base64 payloads for the MCP server and the CLI.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based and relative to the
// top-left corner of the image, whatever its Bounds().Min is:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. FloodFill never mutates
// its source image, so concurrent fills over the same cached image are safe.
//
// # Color Representation
//
// Colors use straight (non-premultiplied) alpha everywhere:
//   - Hex: "#RRGGBBAA"
//   - RGBA: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//   - Packed: 0xAARRGGBB, the layout paint.Buffer stores
//
// # Formats
//
// PNG, JPEG, GIF, BMP, TIFF, WebP and QOI can be read. Everything but WebP
// can be written.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Seeds or sample points outside image bounds
//   - Negative tolerances or malformed colors
//   - File I/O errors during image loading or saving
//   - Unsupported output formats
package imaging
