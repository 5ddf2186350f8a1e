package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/mdxtidy/cmd/mdxtidy/commands"
	"git.home.luguber.info/inful/mdxtidy/internal/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	global := &commands.Global{Ctx: ctx, Stdout: os.Stdout, Stderr: os.Stderr}
	cli := &commands.CLI{}

	parser, err := commands.NewParser(cli, global)
	if err != nil {
		errors.NewCLIErrorAdapter(false, slog.Default()).HandleError(errors.InternalError("failed to build CLI", err))
		return
	}

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = kctx.Run(cli)
	cancel()
	errors.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err)
}
