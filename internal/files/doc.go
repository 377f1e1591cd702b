// Package files provides source-file discovery for the monthly export
// pipeline.
//
// Monthly batting exports are named MM_YYYY.csv (e.g. 04_2021.csv). The
// Discovery component enumerates a directory, decodes the (month, year) pair
// from each conforming filename, and skips everything else with a diagnostic.
// Results are ordered lexicographically by filename so repeated runs are
// reproducible.
//
// Example usage:
//
//	discovery := files.NewDiscovery(logger)
//
//	sources, skipped, err := discovery.FindMonthlyFiles("data/monthly")
//	if err != nil {
//	    // no usable input in the directory
//	}
package files
