package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"trendlab/internal/batting"
	"trendlab/pkg/contracts/domain"
)

const sheetName = "Monthly"

// ExcelWriter exports the master table as an xlsx workbook
type ExcelWriter struct {
	logger *slog.Logger
}

// NewExcelWriter creates a new Excel writer instance
func NewExcelWriter(logger *slog.Logger) *ExcelWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelWriter{logger: logger.With(slog.String("component", "excel_exporter"))}
}

// WriteTable writes the table to an xlsx file with one sheet. Counting
// columns are written as integers, rates as floats; undefined rates stay
// blank cells.
func (w *ExcelWriter) WriteTable(filePath string, table *batting.Table) error {
	w.logger.Info("writing Excel file",
		slog.String("path", filePath),
		slog.Int("rows", table.Len()))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	header := Header(table)
	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return err
		}
	}

	for rowIdx, record := range Records(table) {
		for col, text := range record {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, cellValue(text)); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", filePath, err)
	}
	return nil
}

// cellValue types numeric cells as numbers so spreadsheet consumers can
// aggregate them directly. Blank stays blank (undefined rate).
func cellValue(text string) interface{} {
	if text == "" {
		return ""
	}
	if i, err := strconv.Atoi(text); err == nil {
		return i
	}
	if v, err := strconv.ParseFloat(text, 64); err == nil && domain.IsDefined(v) {
		return v
	}
	return text
}
