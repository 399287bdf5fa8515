// fakeapi CLI - simulates the users and inventory REST API against local storage
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/getmockd/fakeapi/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli.Version = Version
	cli.Commit = Commit

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
