package cli

import (
	"io"
	"log/slog"

	"github.com/ironsheep/paint-bucket-mcp/internal/imaging"
)

// SampleCmd prints the color at one pixel, typically to pick a seed and
// tolerance before a fill.
type SampleCmd struct {
	Input string `arg:"" help:"Source image" type:"existingfile"`
	X     int    `help:"X coordinate (0-based, from left)" required:""`
	Y     int    `help:"Y coordinate (0-based, from top)" required:""`
}

func (c *SampleCmd) Run(logger *slog.Logger, out io.Writer) error {
	img, err := imaging.NewImageCache().Load(c.Input)
	if err != nil {
		return err
	}

	result, err := imaging.SampleColor(img, c.X, c.Y)
	if err != nil {
		return err
	}
	logger.Debug("sampled", "input", c.Input, "x", c.X, "y", c.Y, "hex", result.Hex)
	return writeJSON(out, result)
}
