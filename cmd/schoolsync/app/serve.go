package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/schoolgis/schoolsync/internal/app"
	"github.com/schoolgis/schoolsync/internal/telemetry"
)

const defaultGracefulTimeout = 30 * time.Second

func (c *cli) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the operations API and the sync scheduler",
		Long: `Start the operations API server. When sync.interval and sync.regions are configured,
the directory and detail syncs of every configured region also run in the background.`,
		RunE: c.runServe,
	}
	cmd.Flags().String("address", ":8080", "Address to listen on")
	cmd.Flags().Duration("request-timeout", 30*time.Minute, "Deadline of a single API request, including synchronous syncs")
	return cmd
}

func (c *cli) runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, logCloser, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	v := flagsViper(cmd)
	address := v.GetString("address")

	tel, err := telemetry.New(ctx, telemetry.WithTelemetryConfig(cfg.Telemetry))
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Failed to flush telemetry", "error", err)
		}
	}()

	factory, err := c.newFactory(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create storage factory: %w", err)
	}

	schoolSync, err := app.NewSchoolSyncApp(ctx,
		app.WithConfig(cfg),
		app.WithAddress(address),
		app.WithRequestTimeout(v.GetDuration("request-timeout")),
		app.WithStorageFactory(factory),
		app.WithMeterProvider(tel.MeterProvider()),
		app.WithTracerProvider(tel.TracerProvider()),
		app.WithMetricsHandler(tel.MetricsHandler()),
	)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- schoolSync.Start()
	}()

	select {
	case err := <-errCh:
		_ = schoolSync.Stop(defaultGracefulTimeout)
		return err
	case <-ctx.Done():
	}

	return schoolSync.Stop(defaultGracefulTimeout)
}
