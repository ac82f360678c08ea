package parser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/extrame/xls"
)

// extractLegacyWorkbook reads a BIFF (Excel 97-2003) workbook and renders each
// sheet, in workbook order, as a header line followed by tab-joined rows.
func extractLegacyWorkbook(ctx context.Context, path string) (out string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	// The BIFF reader panics on some truncated streams.
	defer func() {
		if r := recover(); r != nil {
			out, err = "", fmt.Errorf("reading legacy workbook: %v", r)
		}
	}()

	wb, err := xls.OpenReader(f, "utf-8")
	if err != nil {
		return "", fmt.Errorf("opening legacy workbook: %w", err)
	}
	if wb == nil {
		return "", errors.New("opening legacy workbook: no Workbook stream")
	}

	var b strings.Builder
	for i := 0; i < wb.NumSheets(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		writeSheetHeader(&b, sheet.Name)
		writeLegacySheetRows(&b, sheet)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// writeLegacySheetRows writes one line per stored row. Rows the file never
// defines are skipped and trailing empty cells are dropped.
func writeLegacySheetRows(b *strings.Builder, sheet *xls.WorkSheet) {
	for r := 0; r <= int(sheet.MaxRow); r++ {
		row := sheet.Row(r)
		if row == nil {
			continue
		}
		var cells []string
		for c := 0; c <= row.LastCol(); c++ {
			cells = append(cells, row.Col(c))
		}
		for len(cells) > 0 && cells[len(cells)-1] == "" {
			cells = cells[:len(cells)-1]
		}
		b.WriteString(strings.Join(cells, "\t"))
		b.WriteString("\n")
	}
}
