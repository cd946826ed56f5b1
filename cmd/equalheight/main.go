// Command equalheight runs the equal-height demo and measurement tools.
//
// Usage:
//
//	equalheight demo [--config layout.toml]
//	equalheight measure --config layout.toml [--width 80] [--height 24] [--render]
//
// Set EQUALHEIGHT_DEBUG=/path/to/file to write diagnostics to a file.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/go-equalheight/internal/cli"
)

const version = "0.1.0"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
