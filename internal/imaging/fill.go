package imaging

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/paint-bucket-mcp/internal/paint"
)

// MaxTolerance is the largest tolerance that can make a difference: the sum
// of four channel differences never exceeds it.
const MaxTolerance = 4 * 255

// FillOptions describes one paint bucket operation.
type FillOptions struct {
	// X and Y locate the seed pixel (0-based, relative to the top-left
	// corner of the image).
	X int
	Y int

	// Color is written over the region.
	Color paint.Pixel

	// Tolerance is the largest channel-sum difference from the seed color
	// still treated as part of the region. 0 replaces exact matches only.
	Tolerance int

	// Antialias fades the fill out toward the tolerance limit.
	Antialias bool

	// Mask requests a change mask alongside the filled image.
	Mask bool
}

// FillResult is the outcome of FloodFill.
type FillResult struct {
	// Image is the filled copy. The source image is never modified.
	Image *image.NRGBA

	// Target is the seed pixel's original color.
	Target paint.Pixel

	// Stats reports how many pixels were written and where.
	Stats paint.Stats

	// Mask is set when FillOptions.Mask was requested. See ChangeMask.
	Mask *image.Gray
}

// FloodFill paints the region around the seed in a copy of img.
//
// Parameters:
//   - img: Source image. It is copied, never mutated.
//   - opts: Seed, replacement color, tolerance and antialiasing.
//
// Returns:
//   - *FillResult: The filled image and what changed.
//   - error: Non-nil if the seed lies outside the image or the tolerance
//     is negative.
//
// The target color is read from the seed pixel. The fill covers every
// pixel 4-connected to the seed whose color differs from the target by at
// most the tolerance (see paint.Diff).
func FloodFill(img image.Image, opts FillOptions) (*FillResult, error) {
	bounds := img.Bounds()
	if opts.X < 0 || opts.X >= bounds.Dx() || opts.Y < 0 || opts.Y >= bounds.Dy() {
		return nil, fmt.Errorf("seed (%d,%d) outside image bounds %dx%d", opts.X, opts.Y, bounds.Dx(), bounds.Dy())
	}
	if opts.Tolerance < 0 {
		return nil, fmt.Errorf("tolerance must be >= 0, got %d", opts.Tolerance)
	}

	buf := ToBuffer(img)
	var before *paint.Buffer
	if opts.Mask {
		before = buf.Clone()
	}

	target := buf.At(opts.X, opts.Y)
	stats := paint.Fill(buf, image.Pt(opts.X, opts.Y), target, opts.Color, opts.Tolerance, opts.Antialias)

	res := &FillResult{
		Image:  FromBuffer(buf),
		Target: target,
		Stats:  stats,
	}
	if before != nil {
		res.Mask = ChangeMask(before, buf)
	}
	return res, nil
}

// FillOutcome carries the result of an asynchronous fill.
type FillOutcome struct {
	Result *FillResult
	Err    error
}

// FloodFillAsync runs FloodFill on its own goroutine and delivers exactly
// one outcome on the returned channel, which is then closed.
//
// The fill itself has no suspension points and is not interrupted by ctx.
// A context that is already done when the goroutine starts skips the fill
// and reports ctx.Err().
func FloodFillAsync(ctx context.Context, img image.Image, opts FillOptions) <-chan FillOutcome {
	out := make(chan FillOutcome, 1)
	go func() {
		defer close(out)
		if err := ctx.Err(); err != nil {
			out <- FillOutcome{Err: err}
			return
		}
		res, err := FloodFill(img, opts)
		out <- FillOutcome{Result: res, Err: err}
	}()
	return out
}

// FloodFillContext waits for FloodFillAsync or for ctx, whichever finishes
// first. When ctx wins the fill keeps running in the background and its
// result is dropped.
func FloodFillContext(ctx context.Context, img image.Image, opts FillOptions) (*FillResult, error) {
	select {
	case o := <-FloodFillAsync(ctx, img, opts):
		return o.Result, o.Err
	case <-ctx.Done():
		return nil, fmt.Errorf("flood fill abandoned: %w", ctx.Err())
	}
}

// BoundsResult is a rectangle in image coordinates. (X1,Y1) is inclusive,
// (X2,Y2) exclusive.
type BoundsResult struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// FillReport is the JSON-facing summary of a fill.
type FillReport struct {
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	SeedX        int           `json:"seed_x"`
	SeedY        int           `json:"seed_y"`
	Target       string        `json:"target"`
	Replacement  string        `json:"replacement"`
	Tolerance    int           `json:"tolerance"`
	Antialias    bool          `json:"antialias"`
	FilledPixels int           `json:"filled_pixels"`
	Bounds       *BoundsResult `json:"bounds,omitempty"`
	Format       string        `json:"format"`
	OutputPath   string        `json:"output_path,omitempty"`
	ImageBase64  string        `json:"image_base64,omitempty"`
	MimeType     string        `json:"mime_type,omitempty"`
	MaskBase64   string        `json:"mask_base64,omitempty"`
	MaskPath     string        `json:"mask_path,omitempty"`
}

// NewFillReport summarizes res. Image payloads are attached separately by
// AttachImage or by saving to a file.
func NewFillReport(res *FillResult, opts FillOptions) *FillReport {
	r := &FillReport{
		Width:        res.Image.Rect.Dx(),
		Height:       res.Image.Rect.Dy(),
		SeedX:        opts.X,
		SeedY:        opts.Y,
		Target:       res.Target.String(),
		Replacement:  opts.Color.String(),
		Tolerance:    opts.Tolerance,
		Antialias:    opts.Antialias,
		FilledPixels: res.Stats.Filled,
	}
	if b := res.Stats.Bounds; !b.Empty() {
		r.Bounds = &BoundsResult{X1: b.Min.X, Y1: b.Min.Y, X2: b.Max.X, Y2: b.Max.Y}
	}
	return r
}

// AttachImage base64-encodes the filled image, and the mask when present,
// into the report.
func (r *FillReport) AttachImage(res *FillResult, format string) error {
	format, err := NormalizeFormat(format)
	if err != nil {
		return err
	}

	data, err := EncodeBase64(res.Image, format)
	if err != nil {
		return err
	}
	r.Format = format
	r.ImageBase64 = data
	r.MimeType = MimeType(format)

	return r.attachMask(res)
}

// SaveImage writes the filled image to path and records it in the report.
// The mask, when present and not already saved by SaveMask, is attached as
// base64 PNG.
func (r *FillReport) SaveImage(res *FillResult, path, format string) error {
	var err error
	if format == "" {
		format, err = FormatFromPath(path)
	} else {
		format, err = NormalizeFormat(format)
	}
	if err != nil {
		return err
	}

	if err := Save(path, res.Image, format); err != nil {
		return err
	}
	r.Format = format
	r.OutputPath = path

	return r.attachMask(res)
}

// SaveMask writes the change mask to path as PNG. Call it before
// AttachImage or SaveImage to keep the mask out of the report body.
func (r *FillReport) SaveMask(res *FillResult, path string) error {
	if res.Mask == nil {
		return errors.New("no change mask was computed for this fill")
	}
	if err := Save(path, res.Mask, "png"); err != nil {
		return fmt.Errorf("failed to save change mask: %w", err)
	}
	r.MaskPath = path
	return nil
}

func (r *FillReport) attachMask(res *FillResult) error {
	if res.Mask == nil || r.MaskPath != "" {
		return nil
	}
	mask, err := EncodeBase64(res.Mask, "png")
	if err != nil {
		return fmt.Errorf("failed to encode change mask: %w", err)
	}
	r.MaskBase64 = mask
	return nil
}
