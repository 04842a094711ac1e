package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/yigit/coursefinder/internal/pkg/logger"
	"github.com/yigit/coursefinder/internal/server"
)

func main() {
	debug := flag.Bool("debug", false, "run in development mode with debug logging")
	configPath := flag.String("config", filepath.Join("configs", "config.yaml"), "path to the YAML config file")
	flag.Parse()

	srv, err := server.NewServer(*configPath, *debug)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
