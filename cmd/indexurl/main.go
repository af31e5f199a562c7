package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/indexurl/internal/application"
	"github.com/eugenenazirov/indexurl/internal/config"
	"github.com/eugenenazirov/indexurl/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "indexurl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	kingpinApp := kingpin.New("indexurl", "Print the package index URL pip is configured to use")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	logLevel := kingpinApp.Flag("log-level", "Log level: debug, info, warn, error").String()
	logEncoding := kingpinApp.Flag("log-encoding", "Log encoding: json or console").String()
	logFile := kingpinApp.Flag("log-file", "Also write logs to this file, rotated by size").String()
	format := kingpinApp.Flag("format", "Output format: text, json or yaml").Short('o').String()
	var explainSet bool
	explain := kingpinApp.Flag("explain", "List every candidate pip config file and what it contains").IsSetByUser(&explainSet).Bool()

	if _, err := kingpinApp.Parse(args); err != nil {
		return fmt.Errorf("parse arguments: %w", err)
	}

	overrides := &config.CLIOverrides{
		ConfigFile:  *configFile,
		LogLevel:    logLevel,
		LogEncoding: logEncoding,
		LogFile:     logFile,
		Format:      format,
	}

	if explainSet {
		overrides.Explain = explain
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Level:      cfg.LogLevel,
		Encoding:   cfg.LogEncoding,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := application.New(cfg, logger).Run(stdout); err != nil {
		logger.Error("failed to write index url", zap.Error(err))
		return err
	}
	return nil
}
