package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/cavewalk/internal/cli"
)

var version string

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cli.Execute(ctx, version)
}
