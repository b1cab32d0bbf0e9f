package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aussiebroadwan/practiceconsole/internal/console/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := (&cli.CLI{}).Run(ctx, os.Args[1:])

	stop()
	os.Exit(code)
}
