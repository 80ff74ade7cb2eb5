package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/npillmayer/braille/internal/logging"
	"github.com/npillmayer/braille/server"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"server"},
		Short:   "Start the HTTP API",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, a)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides server.port)")
	return cmd
}

func runServer(ctx context.Context, a *app) error {
	srv := server.New(a.cfg, a.tc, logging.Logger)
	srv.Version = version
	return srv.Run(ctx)
}
