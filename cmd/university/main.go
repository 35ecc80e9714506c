// Package main is the entry point of the university records hub.
//
// Without arguments the binary runs the scripted demo: it registers the
// sample people, course and department, prints their state to stdout and
// reports handled domain errors on stderr and in errors.log.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alem-hub/university-hub/internal/interface/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	return cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
