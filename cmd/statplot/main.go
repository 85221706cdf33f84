package main

import (
	"context"
	"log/slog"
	"os"

	"statplot/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		slog.Default().Error("statplot failed", "error", err)
		os.Exit(1)
	}
}
