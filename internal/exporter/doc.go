// Package exporter writes the computed master table to CSV and Excel
// files. Undefined rate values export as empty cells, never as NaN text.
package exporter
