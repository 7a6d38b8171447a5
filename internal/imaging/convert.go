package imaging

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/ironsheep/paint-bucket-mcp/internal/paint"
)

// ToBuffer copies img into a new fill buffer.
//
// The image is first normalized to straight-alpha NRGBA with its origin
// at (0,0), so buffer coordinates are always relative to the image's
// top-left corner regardless of img.Bounds().Min.
func ToBuffer(img image.Image) *paint.Buffer {
	src := imaging.Clone(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()

	buf := paint.NewBuffer(w, h)
	pix := buf.Packed()
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w; x++ {
			px := row[x*4 : x*4+4]
			pix[x+w*y] = paint.Pixel{R: px[0], G: px[1], B: px[2], A: px[3]}.Uint32()
		}
	}
	return buf
}

// FromBuffer converts a fill buffer back into an image.
func FromBuffer(buf *paint.Buffer) *image.NRGBA {
	w, h := buf.Width(), buf.Height()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, v := range buf.Packed() {
		p := paint.Unpack(v)
		o := i * 4
		dst.Pix[o+0] = p.R
		dst.Pix[o+1] = p.G
		dst.Pix[o+2] = p.B
		dst.Pix[o+3] = p.A
	}
	return dst
}
