package parser

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// extractCSVTable parses the file as CSV and renders it as an aligned table,
// header row first. Malformed input is an error so the caller can fall back.
func extractCSVTable(_ context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(transform.NewReader(f, unicode.UTF8.NewDecoder()))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parsing csv: %w", err)
	}

	var b strings.Builder
	if err := writeTable(&b, records); err != nil {
		return "", fmt.Errorf("rendering csv: %w", err)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
