package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ironsheep/paint-bucket-mcp/internal/cli"
)

func main() {
	var c cli.CLI
	parser, err := cli.NewParser(&c, os.Stdout, os.Stderr)
	if err != nil {
		panic(err)
	}

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logger := c.Logger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	kctx.BindTo(ctx, (*context.Context)(nil))

	if err := kctx.Run(logger); err != nil {
		logger.Error("command failed", "command", kctx.Command(), "error", err)
		stop()
		os.Exit(1)
	}
}
