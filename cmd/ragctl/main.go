package main

import (
	"os"

	"github.com/kragchat/ragctl/internal/cli"
	"github.com/kragchat/ragctl/internal/logging"
)

// main is the entry point for the ragctl CLI binary.
func main() {
	logger := logging.NewLogger(os.Stderr, logging.LevelInfo)
	if err := cli.Execute(os.Args[1:], logger); err != nil {
		logger.Error("setup failed", "error", err)
		os.Exit(1)
	}
}
