package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/segment"
	"github.com/ironsheep/paint-bucket-mcp/internal/paint"
)

// ChangeMask returns a grayscale image that is white wherever a pixel of
// after differs from the same pixel of before and black elsewhere.
//
// Both buffers must have the same size. Every channel counts, alpha
// included, so erasing a region to transparent or nudging a color by one
// level both show up in the mask.
func ChangeMask(before, after *paint.Buffer) *image.Gray {
	return segment.Threshold(DifferenceImage(before, after), 1)
}

// DifferenceImage returns a grayscale image whose intensity grows with the
// paint.Diff between corresponding pixels of before and after. Unchanged
// pixels are 0 and any change is at least 2, so a luminance threshold of 1
// separates them.
func DifferenceImage(before, after *paint.Buffer) *image.Gray {
	if before.Width() != after.Width() || before.Height() != after.Height() {
		panic("imaging: difference of buffers with different sizes")
	}

	dst := image.NewGray(image.Rect(0, 0, after.Width(), after.Height()))
	for i := 0; i < after.Len(); i++ {
		d := paint.Diff(before.Get(i), after.Get(i))
		if d == 0 {
			continue
		}
		x, y := after.Coords(i)
		dst.Pix[y*dst.Stride+x] = uint8(min(2*d, 255))
	}
	return dst
}
