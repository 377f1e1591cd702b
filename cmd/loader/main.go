package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"trendlab/internal/batting"
	"trendlab/internal/config"
	"trendlab/internal/exporter"
	"trendlab/internal/infrastructure"
)

func main() {
	dir := flag.String("dir", "", "directory containing monthly MM_YYYY.csv exports (defaults to the configured data dir)")
	out := flag.String("out", "", "optional output CSV path for the computed table")
	xlsx := flag.String("xlsx", "", "optional output xlsx path for the computed table")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	dataDir := *dir
	if dataDir == "" {
		dataDir = cfg.DataDir()
	}

	logger.Info("starting monthly load",
		slog.String("input_dir", dataDir),
		slog.String("output_csv", *out),
		slog.String("output_xlsx", *xlsx))

	loader := batting.NewLoader(logger)
	result, err := loader.Load(context.Background(), dataDir)
	if err != nil {
		logger.Error("load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	table := result.Table
	logger.Info("load summary",
		slog.Int("rows", table.Len()),
		slog.Any("seasons", table.Seasons()),
		slog.Int("files", result.Files),
		slog.Int("skipped", len(result.Skipped)),
		slog.Duration("elapsed", result.Duration))

	if *out != "" {
		if err := exporter.NewCSVWriter(logger).WriteTable(*out, table); err != nil {
			logger.Error("CSV export failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
	if *xlsx != "" {
		if err := exporter.NewExcelWriter(logger).WriteTable(*xlsx, table); err != nil {
			logger.Error("Excel export failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}
