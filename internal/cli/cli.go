// Package cli holds the kong command tree of the paintbucket binary.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"
)

// CLI is the root command.
type CLI struct {
	LogLevel string `help:"Log level (debug, info, warn, error)" enum:"debug,info,warn,error" default:"info"`

	Fill   FillCmd   `cmd:"" help:"Paint bucket fill from a seed pixel and write the result to a new file"`
	Sample SampleCmd `cmd:"" help:"Print the color of one pixel"`
}

// NewParser builds the kong parser for c. Command output goes to stdout,
// usage and parse errors to stderr. Commands receive stdout as their
// io.Writer; the caller binds a *slog.Logger and a context.Context before
// running the selected command.
func NewParser(c *CLI, stdout, stderr io.Writer, options ...kong.Option) (*kong.Kong, error) {
	opts := []kong.Option{
		kong.Name("paintbucket"),
		kong.Description("Paint bucket flood fill for image files."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.BindTo(stdout, (*io.Writer)(nil)),
	}
	return kong.New(c, append(opts, options...)...)
}

// Logger returns a text logger on w at the selected level.
func (c *CLI) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("could not write result: %w", err)
	}
	return nil
}
