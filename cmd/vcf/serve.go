package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmvcosta/vcfkit/internal/config"
	"github.com/jmvcosta/vcfkit/internal/core"
	"github.com/jmvcosta/vcfkit/internal/web"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP processing API",
		Long: `Starts an HTTP server exposing the transforms over a JSON/
multipart API: POST /api/process accepts a VCF upload plus transform
flags and returns the processed file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Info("configuration loaded",
				"port", cfg.Server.Port,
				"upload_max_concurrent", cfg.Upload.MaxConcurrent,
				"rate_limit_enabled", cfg.Rate.Enabled,
			)

			service := core.NewService(core.NewProcessLimiter(
				cfg.Upload.MaxConcurrent, cfg.Upload.MaxWaitTime))
			server := web.NewServer(service, cfg)

			// Graceful shutdown
			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				<-sigCh

				slog.Info("shutting down...")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
				defer cancel()

				// Let in-flight processing runs finish before closing
				status := service.Limiter().Status()
				if status.Active > 0 {
					slog.Info("waiting for active requests", "active", status.Active)
					if err := service.Limiter().WaitForDrain(shutdownCtx); err != nil {
						slog.Warn("requests did not complete in time", "error", err)
					}
				}

				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("shutdown error", "error", err)
				}
			}()

			slog.Info("server starting", "addr", cfg.Server.Addr())
			if err := server.Start(); err != nil {
				slog.Info("server stopped", "error", err)
			}
			return nil
		},
	}
}
