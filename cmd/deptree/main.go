package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/deptree/internal/cli"
	"github.com/matzehuels/deptree/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := cli.New(os.Stderr, cli.LogInfo)
	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
		code := errors.ExitCode(err)
		if code != errors.ExitInterrupted {
			cli.ReportError(os.Stderr, err)
		}
		cancel()
		os.Exit(code)
	}
}
