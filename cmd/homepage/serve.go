package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-homepage"
	apihttp "github.com/goliatone/go-homepage/internal/http"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve /api/profile over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, err := root.module(cmd, func(cfg *homepage.Config) {
				if cmd.Flags().Changed("addr") {
					cfg.HTTP.Addr = strings.TrimSpace(addr)
				}
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler := apihttp.NewHandler(module,
				apihttp.WithLoggerProvider(module.LoggerProvider()),
				apihttp.WithSourceName(module.SourceName()),
			)
			cfg := module.Config()
			return apihttp.Serve(ctx, apihttp.ServerConfig{
				Addr:              cfg.HTTP.Addr,
				ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
				ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
			}, handler.Routes(), module.LoggerProvider())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HOMEPAGE_ADDR)")
	return cmd
}
