package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulechain/pkg/api"
	"github.com/dmitrymomot/rulechain/pkg/httpserver"
	"github.com/dmitrymomot/rulechain/pkg/logger"
	"github.com/dmitrymomot/rulechain/pkg/validator"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the validation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}
			log := a.newLogger(cfg)
			logger.SetAsDefault(log)

			store, checks, closeStore, err := openStore(cmd.Context(), cfg.Schemas, log)
			defer closeStore()
			if err != nil {
				log.Error("schema store unavailable", logger.Error(err))
				return err
			}

			v := validator.New(
				validator.WithLogger(log.With(logger.Component("validator"))),
				validator.WithCacheSize(cfg.Cache.Size),
			)

			opts := []api.Option{
				api.WithLogger(log.With(logger.Component("api"))),
				api.WithMaxBodyBytes(cfg.HTTP.MaxBodyBytes),
			}
			for _, c := range checks {
				opts = append(opts, api.WithReadinessCheck(c))
			}
			handler := api.New(v, store, opts...)

			srv := httpserver.New(
				httpserver.WithAddr(cfg.HTTP.Addr),
				httpserver.WithReadTimeout(cfg.HTTP.ReadTimeout),
				httpserver.WithWriteTimeout(cfg.HTTP.WriteTimeout),
				httpserver.WithIdleTimeout(cfg.HTTP.IdleTimeout),
				httpserver.WithShutdownTimeout(cfg.HTTP.ShutdownTimeout),
				httpserver.WithLogger(log.With(logger.Component("http"))),
			)
			return srv.Run(cmd.Context(), handler.Router())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides http.addr")
	return cmd
}
