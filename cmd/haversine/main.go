package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"haversine/internal/cli"
	"haversine/internal/config"
	"haversine/internal/distance"
)

var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Logs go to stderr so command output stays clean
	logger := cfg.NewLoggerTo(os.Stderr)
	slog.SetDefault(logger)

	cli.SetService(distance.NewDistanceService(logger))
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
