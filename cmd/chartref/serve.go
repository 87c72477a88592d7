package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"chartref/internal/annotate"
	"chartref/internal/config"
	"chartref/internal/handler"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var envFiles []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(envFiles...)
			if err != nil {
				return err
			}

			level, _ := cfg.Log.SlogLevel()
			if root.verbose {
				level = slog.LevelDebug
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			gin.SetMode(cfg.Server.Mode)

			router := handler.NewRouter(annotate.NewRegistry(), logger)

			logger.Info("server starting", slog.String("addr", cfg.Addr()))

			return router.Run(cfg.Addr())
		},
	}

	cmd.Flags().StringSliceVar(&envFiles, "env", nil, "Environment files to load (default .env)")

	return cmd
}
