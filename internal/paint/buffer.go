package paint

import (
	"fmt"
	"slices"
)

// Buffer is a mutable, row-major grid of packed pixels.
//
// Every accessor panics when given coordinates or indices outside the
// buffer. All call sites inside this package derive their coordinates from
// the buffer's own bounds, so a panic always points at a caller bug.
type Buffer struct {
	width  int
	height int
	pix    []uint32
}

// NewBuffer allocates a width x height buffer of transparent pixels.
func NewBuffer(width, height int) *Buffer {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("paint: invalid buffer size %dx%d", width, height))
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// BufferFrom wraps packed pixels without copying. len(pix) must equal
// width*height.
func BufferFrom(width, height int, pix []uint32) *Buffer {
	if width < 0 || height < 0 || len(pix) != width*height {
		panic(fmt.Sprintf("paint: %d pixels do not fill a %dx%d buffer", len(pix), width, height))
	}
	return &Buffer{width: width, height: height, pix: pix}
}

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.height }

// Len returns width*height.
func (b *Buffer) Len() int { return len(b.pix) }

// Packed returns the backing slice. Writes through it are visible to the
// buffer.
func (b *Buffer) Packed() []uint32 { return b.pix }

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{width: b.width, height: b.height, pix: slices.Clone(b.pix)}
}

// InBounds reports whether (x, y) addresses a pixel.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Index maps (x, y) to its position in the backing slice.
func (b *Buffer) Index(x, y int) int {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("paint: (%d,%d) outside %dx%d buffer", x, y, b.width, b.height))
	}
	return x + b.width*y
}

// Coords is the inverse of Index.
func (b *Buffer) Coords(i int) (x, y int) {
	b.checkIndex(i)
	return i % b.width, i / b.width
}

// At returns the pixel at (x, y).
func (b *Buffer) At(x, y int) Pixel {
	return Unpack(b.pix[b.Index(x, y)])
}

// Set stores p at (x, y).
func (b *Buffer) Set(x, y int, p Pixel) {
	b.pix[b.Index(x, y)] = p.Uint32()
}

// Get returns the pixel at index i.
func (b *Buffer) Get(i int) Pixel {
	b.checkIndex(i)
	return Unpack(b.pix[i])
}

// Put stores p at index i.
func (b *Buffer) Put(i int, p Pixel) {
	b.checkIndex(i)
	b.pix[i] = p.Uint32()
}

func (b *Buffer) checkIndex(i int) {
	if i < 0 || i >= len(b.pix) {
		panic(fmt.Sprintf("paint: index %d outside %dx%d buffer", i, b.width, b.height))
	}
}
