package batting

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"trendlab/internal/files"
	"trendlab/pkg/contracts/domain"
)

// Result is the immutable output of one pipeline run.
type Result struct {
	Table    *Table
	Files    int
	Skipped  []string
	LoadedAt time.Time
	Duration time.Duration
}

// Loader runs the full ingestion-and-derivation pipeline over a directory
// of monthly exports. One Loader may be reused; each Load is an independent
// single pass.
type Loader struct {
	discovery *files.Discovery
	logger    *slog.Logger
}

// NewLoader creates a pipeline loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		discovery: files.NewDiscovery(logger),
		logger:    logger.With(slog.String("component", "loader")),
	}
}

// Load discovers, ingests, normalizes, derives and rescales the monthly
// exports under dir. The input directory is always passed in explicitly.
// Fatal errors (no usable input, unparsable source) abort the run with no
// partial table.
func (l *Loader) Load(ctx context.Context, dir string) (*Result, error) {
	start := time.Now()

	sources, skipped, err := l.discovery.FindMonthlyFiles(dir)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := Ingest(sources, l.logger)
	if err != nil {
		return nil, err
	}

	rows, supplied := Normalize(raw)
	Derive(rows, supplied)
	Rescale(rows, supplied)

	// The season floor holds at the output edge regardless of what
	// earlier stages did to the row set.
	kept := rows[:0]
	for i := range rows {
		if rows[i].Season >= domain.MinSeason {
			kept = append(kept, rows[i])
		}
	}

	table := NewTable(kept, supplied)
	result := &Result{
		Table:    table,
		Files:    len(sources),
		Skipped:  skipped,
		LoadedAt: time.Now(),
		Duration: time.Since(start),
	}

	l.logger.Info("pipeline complete",
		slog.String("dir", dir),
		slog.Int("files", result.Files),
		slog.Int("skipped", len(result.Skipped)),
		slog.Int("rows", table.Len()),
		slog.Duration("elapsed", result.Duration))

	return result, nil
}

// LoadTable is a convenience wrapper returning only the table.
func (l *Loader) LoadTable(ctx context.Context, dir string) (*Table, error) {
	res, err := l.Load(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("loading monthly exports: %w", err)
	}
	return res.Table, nil
}
