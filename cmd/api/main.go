package main

import (
	"os"

	"github.com/yigit/enrollment-api/internal/pkg/logger"
	"github.com/yigit/enrollment-api/internal/server"
)

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Setup errors are logged in detail by the bootstrap functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until SIGINT/SIGTERM or a listener failure
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
