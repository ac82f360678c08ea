package parser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
)

// extractText reads the whole file as UTF-8, replacing invalid bytes with U+FFFD.
func extractText(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	decoded, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding text: %w", err)
	}
	return string(decoded), nil
}

// imagePlaceholder stands in for image content, which is never extracted.
func imagePlaceholder(_ context.Context, path string) (string, error) {
	return fmt.Sprintf("[Image file: %s]", filepath.Base(path)), nil
}
