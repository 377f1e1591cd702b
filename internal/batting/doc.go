// Package batting implements the monthly batting ingestion-and-derivation
// pipeline.
//
// The pipeline is a single synchronous pass over a directory of monthly
// FanGraphs-style CSV exports:
//
//  1. Discover source files named MM_YYYY.csv (internal/files)
//  2. Ingest each file into a raw row set, stamping Season and Month from
//     the filename (the filename is the trusted source of truth)
//  3. Normalize the concatenated table: canonical column names, required
//     counting columns defaulted to zero, coerce-or-zero numeric parsing
//  4. Derive OPS, wOBA and the fantasy rate FWOBA_raw with guarded division
//  5. Rescale FWOBA_raw onto a wOBA-like distribution (global z-score)
//  6. Re-assert the season floor and sort by (Season, Month, Name)
//
// The output Table is immutable and supports the filter and grouping access
// patterns the presentation layer needs without re-deriving any metric.
package batting
