package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/cronfile/internal/adapters/in/cli"
)

var (
	version string
	commit  string
	date    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cli.SetVersionInfo(version, commit, date)
	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}
