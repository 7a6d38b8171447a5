// Package paint implements the pixel model and the scanline flood fill used
// by the paint bucket tools.
//
// The package has no I/O. Callers convert a decoded image into a [Buffer],
// run [Fill] on it, and convert the buffer back into an image. The image
// adapters live in the imaging package.
//
// # Pixel Layout
//
// A [Pixel] has four 8-bit channels with straight (non-premultiplied)
// alpha. In a [Buffer] each pixel is packed into a uint32 with alpha in the
// highest byte followed by red, green and blue:
//
//	0xAARRGGBB
//
// # Coordinate System
//
// Buffers are row-major with the origin at the top-left corner. The index
// of (x, y) is x + width*y.
//
// # Error Handling
//
// Nothing in this package returns an error. Out-of-range coordinates and
// negative tolerances are caller bugs and cause a panic. Validate input at
// the boundary (see imaging.FloodFill) before calling into this package.
//
// # Thread Safety
//
// A Buffer must not be shared between goroutines while a fill is running.
// Fill is synchronous and runs to completion before returning.
package paint
