package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ironsheep/paint-bucket-mcp/internal/imaging"
	"github.com/ironsheep/paint-bucket-mcp/internal/paint"
)

// FillCmd fills the region around a seed pixel.
type FillCmd struct {
	Input     string        `arg:"" help:"Source image" type:"existingfile"`
	Output    string        `arg:"" help:"Destination image. The format follows the extension unless --format is given" type:"path"`
	X         int           `help:"Seed X coordinate (0-based, from left)" required:""`
	Y         int           `help:"Seed Y coordinate (0-based, from top)" required:""`
	Color     string        `help:"Replacement color as #RGB, #RRGGBB or #RRGGBBAA" short:"c" required:""`
	Tolerance int           `help:"Largest sum of per-channel differences from the seed color still filled" short:"t" default:"0"`
	Antialias bool          `help:"Fade the fill out toward the tolerance limit" default:"false"`
	Format    string        `help:"Output format (png, jpeg, gif, tiff, bmp, qoi)"`
	Mask      string        `help:"Also write a PNG change mask to this path" type:"path"`
	Timeout   time.Duration `help:"Give up waiting for the fill after this long" default:"30s"`

	Replacement paint.Pixel `kong:"-"`
}

func (c *FillCmd) Validate(kctx *kong.Context) error {
	var err error
	if c.Replacement, err = imaging.ParseColor(c.Color); err != nil {
		return err
	}

	if c.Tolerance < 0 || c.Tolerance > imaging.MaxTolerance {
		return fmt.Errorf("invalid tolerance %d: want 0..%d", c.Tolerance, imaging.MaxTolerance)
	}

	if c.Format != "" {
		if c.Format, err = imaging.NormalizeFormat(c.Format); err != nil {
			return err
		}
	} else if _, err = imaging.FormatFromPath(c.Output); err != nil {
		return fmt.Errorf("cannot derive output format from %q: %w", c.Output, err)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("invalid timeout: %s", c.Timeout)
	}

	same, err := samePath(c.Input, c.Output)
	if err != nil {
		return err
	}
	if same {
		return fmt.Errorf("refusing to overwrite the source image %q", c.Input)
	}
	return nil
}

// samePath reports whether a and b name the same file once made absolute.
func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, fmt.Errorf("cannot resolve path %q: %w", a, err)
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, fmt.Errorf("cannot resolve path %q: %w", b, err)
	}
	return absA == absB, nil
}

func (c *FillCmd) Run(ctx context.Context, logger *slog.Logger, out io.Writer) error {
	logger = logger.With("input", c.Input)

	img, err := imaging.NewImageCache().Load(c.Input)
	if err != nil {
		return err
	}
	logger.Debug("decoded image", "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	opts := imaging.FillOptions{
		X:         c.X,
		Y:         c.Y,
		Color:     c.Replacement,
		Tolerance: c.Tolerance,
		Antialias: c.Antialias,
		Mask:      c.Mask != "",
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	start := time.Now()
	res, err := imaging.FloodFillContext(ctx, img, opts)
	if err != nil {
		return err
	}
	logger.Debug("fill done", "filled", res.Stats.Filled, "elapsed", time.Since(start))

	report := imaging.NewFillReport(res, opts)
	if c.Mask != "" {
		if err := report.SaveMask(res, c.Mask); err != nil {
			return err
		}
	}
	if err := report.SaveImage(res, c.Output, c.Format); err != nil {
		return err
	}

	logger.Info("filled region", "output", c.Output, "target", res.Target, "pixels", res.Stats.Filled)
	return writeJSON(out, report)
}
