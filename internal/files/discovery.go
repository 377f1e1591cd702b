package files

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// monthlyFileRe matches monthly export filenames like "04_2021.csv".
// Two-digit month, four-digit year, lowercase extension.
var monthlyFileRe = regexp.MustCompile(`^(\d{2})_(\d{4})\.csv$`)

// ErrNoUsableInput is returned when a directory holds no file matching the
// monthly export naming pattern. The pipeline cannot proceed on an empty
// dataset, so callers treat this as fatal.
var ErrNoUsableInput = errors.New("no usable monthly export files")

// SourceFile is one discovered monthly export with the (month, year) pair
// decoded from its filename.
type SourceFile struct {
	Path  string
	Name  string
	Month int
	Year  int
}

// Discovery provides monthly export discovery operations
type Discovery struct {
	logger *slog.Logger
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(logger *slog.Logger) *Discovery {
	if logger == nil {
		logger = slog.Default()
	}
	return &Discovery{logger: logger.With(slog.String("component", "discovery"))}
}

// FindMonthlyFiles enumerates dir and returns every file matching the
// MM_YYYY.csv pattern, ordered lexicographically by filename, together with
// the names that were skipped. It fails with ErrNoUsableInput when nothing
// in the directory conforms; the error message carries the resolved
// directory path.
func (d *Discovery) FindMonthlyFiles(dir string) ([]SourceFile, []string, error) {
	resolved := dir
	if abs, err := filepath.Abs(dir); err == nil {
		resolved = abs
	}

	entries, err := os.ReadDir(resolved)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read directory %s: %w", resolved, err)
	}

	var (
		sources []SourceFile
		skipped []string
	)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		m := monthlyFileRe.FindStringSubmatch(name)
		if m == nil {
			d.logger.Warn("skipping unrecognized filename",
				slog.String("file", name),
				slog.String("dir", resolved))
			skipped = append(skipped, name)
			continue
		}

		month, err := strconv.Atoi(m[1])
		if err != nil {
			skipped = append(skipped, name)
			continue
		}
		year, err := strconv.Atoi(m[2])
		if err != nil {
			skipped = append(skipped, name)
			continue
		}

		sources = append(sources, SourceFile{
			Path:  filepath.Join(resolved, name),
			Name:  name,
			Month: month,
			Year:  year,
		})
	}

	if len(sources) == 0 {
		return nil, skipped, fmt.Errorf("%w in %s: filenames must match MM_YYYY.csv", ErrNoUsableInput, resolved)
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Name < sources[j].Name
	})

	return sources, skipped, nil
}
