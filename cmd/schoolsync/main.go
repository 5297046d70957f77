// Package main is the entry point for the schoolsync command.
package main

import (
	"log/slog"
	"os"

	"github.com/schoolgis/schoolsync/cmd/schoolsync/app"
	"github.com/schoolgis/schoolsync/internal/config"
	"github.com/schoolgis/schoolsync/internal/logging"
)

func main() {
	// Logs go to stderr so stdout stays clean for tables and JSON.
	logger, _ := logging.New(config.LoggingConfig{})
	slog.SetDefault(logger)

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
