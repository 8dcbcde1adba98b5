// Command edgeworth solves two-agent exchange economies from the command line
// or serves the solver over HTTP.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/edgeworth/logger"
)

func main() {
	log := logger.GetLogger()

	// Load environment variables from .env if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Error loading .env file")
	}

	if err := newRootCmd(log).Execute(); err != nil {
		os.Exit(1)
	}
}
