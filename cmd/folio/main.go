package main

import (
	"os"

	"github.com/eringen/folio/logging"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	logger := logging.NewLogger(os.Stderr, logging.ParseLevel(os.Getenv("LOG_LEVEL")))
	if err := newRootCommand(logger).Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
