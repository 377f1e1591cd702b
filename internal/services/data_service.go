package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"trendlab/internal/batting"
)

// ErrNotLoaded is returned when the table is requested before any pipeline
// run has completed.
var ErrNotLoaded = errors.New("monthly data not loaded yet")

var (
	loadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "trendlab",
		Name:      "pipeline_load_duration_seconds",
		Help:      "Wall time of a full pipeline run.",
		Buckets:   prometheus.DefBuckets,
	})
	loadRows = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "trendlab",
		Name:      "pipeline_rows",
		Help:      "Rows in the current master table.",
	})
	loadFilesSkipped = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "trendlab",
		Name:      "pipeline_files_skipped",
		Help:      "Files skipped for unrecognized names in the last run.",
	})
	loadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "trendlab",
		Name:      "pipeline_load_failures_total",
		Help:      "Pipeline runs that aborted with a fatal error.",
	})
)

// DataService owns the pipeline output for the HTTP layer. The whole result
// is one immutable unit swapped atomically on reload; a failed reload keeps
// the previous snapshot in place.
type DataService struct {
	loader  *batting.Loader
	dataDir string
	logger  *slog.Logger

	snapshot atomic.Pointer[batting.Result]
	loadMu   sync.Mutex
}

// NewDataService creates a data service reading monthly exports from
// dataDir. Nothing is loaded until the first Load call.
func NewDataService(dataDir string, logger *slog.Logger) *DataService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DataService{
		loader:  batting.NewLoader(logger),
		dataDir: dataDir,
		logger:  logger.With(slog.String("component", "data_service")),
	}
}

// Load runs the pipeline and swaps in the new snapshot in one step.
// Concurrent Load calls are serialized; readers are never blocked.
func (s *DataService) Load(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	start := time.Now()
	result, err := s.loader.Load(ctx, s.dataDir)
	if err != nil {
		loadFailures.Inc()
		s.logger.Error("pipeline load failed",
			slog.String("dir", s.dataDir),
			slog.String("error", err.Error()))
		return err
	}

	s.snapshot.Store(result)
	loadDuration.Observe(time.Since(start).Seconds())
	loadRows.Set(float64(result.Table.Len()))
	loadFilesSkipped.Set(float64(len(result.Skipped)))
	return nil
}

// Table returns the current master table, or ErrNotLoaded before the first
// successful Load.
func (s *DataService) Table() (*batting.Table, error) {
	result := s.snapshot.Load()
	if result == nil {
		return nil, ErrNotLoaded
	}
	return result.Table, nil
}

// Status describes the current snapshot for health reporting.
type Status struct {
	Loaded   bool      `json:"loaded"`
	Rows     int       `json:"rows"`
	Files    int       `json:"files"`
	Skipped  int       `json:"skipped"`
	LoadedAt time.Time `json:"loaded_at,omitempty"`
}

// Status reports whether data is loaded and how much.
func (s *DataService) Status() Status {
	result := s.snapshot.Load()
	if result == nil {
		return Status{}
	}
	return Status{
		Loaded:   true,
		Rows:     result.Table.Len(),
		Files:    result.Files,
		Skipped:  len(result.Skipped),
		LoadedAt: result.LoadedAt,
	}
}
