// cmd/retrace/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"

	"github.com/bethropolis/retrace/internal/app"
	"github.com/bethropolis/retrace/internal/config"
	"github.com/bethropolis/retrace/internal/logger"
)

var version = "dev"

func main() {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(config.AppName)
	args, err := flags.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		os.Exit(0)
	}

	var filePath string
	if len(args) > 0 {
		filePath = args[0]
	}

	// --- Configuration ---
	cfg, unknownKeys, err := config.Load(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// The terminal belongs to the editor; log to a file unless told otherwise
	if cfg.Logger.LogFilePath == "" {
		cfg.Logger.LogFilePath = config.DefaultLogFileName
	}

	// --- Logger Initialization ---
	logCloser, err := logger.InitWithConfig(cfg.Logger)
	if err != nil {
		stlog.Fatalf("Failed to initialize logger: %v", err)
	}
	if logCloser != nil {
		defer logCloser.Close()
	}

	for _, key := range unknownKeys {
		logger.Warnf("Unknown configuration key: %s", key)
	}
	logger.Infof("Starting %s %s", config.AppName, version)
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	// --- Create and Run App ---
	if err := run(cfg, filePath); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		if logCloser != nil {
			logCloser.Close()
		}
		os.Exit(1)
	}
	logger.Infof("%s finished.", config.AppName)
}

func run(cfg *config.Config, filePath string) error {
	a, err := app.NewApp(app.Options{Config: cfg, FilePath: filePath})
	if err != nil {
		return fmt.Errorf("error initializing application: %w", err)
	}
	return a.Run()
}
