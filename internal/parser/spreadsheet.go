package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// extractSpreadsheetTable renders every sheet, in workbook order, as a header
// line followed by an aligned table of its rows.
func extractSpreadsheetTable(ctx context.Context, path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	var b strings.Builder
	for _, sheet := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("reading sheet %q: %w", sheet, err)
		}

		writeSheetHeader(&b, sheet)
		if err := writeTable(&b, rows); err != nil {
			return "", fmt.Errorf("rendering sheet %q: %w", sheet, err)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

// extractSpreadsheetCells streams each sheet's raw cell values and joins them
// with tabs. It skips number formatting, which is where rendering a table
// usually fails, and keeps the sheet and row order of extractSpreadsheetTable.
func extractSpreadsheetCells(ctx context.Context, path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	var b strings.Builder
	for _, sheet := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		writeSheetHeader(&b, sheet)
		if err := writeSheetCells(&b, f, sheet); err != nil {
			return "", err
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func writeSheetCells(b *strings.Builder, f *excelize.File, sheet string) error {
	rows, err := f.Rows(sheet)
	if err != nil {
		return fmt.Errorf("iterating sheet %q: %w", sheet, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		cols, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return fmt.Errorf("reading row in sheet %q: %w", sheet, err)
		}
		b.WriteString(strings.Join(cols, "\t"))
		b.WriteString("\n")
	}
	return rows.Error()
}

func writeSheetHeader(b *strings.Builder, sheet string) {
	b.WriteString("Sheet: ")
	b.WriteString(sheet)
	b.WriteString("\n")
}
