package parser

import (
	"context"
	"strings"
)

// Strategy extracts plain text from the file at path.
type Strategy interface {
	Extract(ctx context.Context, path string) (string, error)
}

// StrategyFunc adapts an ordinary function to a Strategy.
type StrategyFunc func(ctx context.Context, path string) (string, error)

// Extract calls f(ctx, path).
func (f StrategyFunc) Extract(ctx context.Context, path string) (string, error) {
	return f(ctx, path)
}

// Registry maps a normalized file extension to the strategy that handles it.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{strategies: map[string]Strategy{}}
}

// NewDefaultRegistry creates a Registry with every built-in format registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	text := StrategyFunc(extractText)

	r.Register("pdf", StrategyFunc(extractPDF))
	r.Register("docx", StrategyFunc(extractDOCX))

	r.Register("xlsx", NewChain("spreadsheet",
		[]Strategy{StrategyFunc(extractSpreadsheetTable), StrategyFunc(extractSpreadsheetCells)},
		[]string{"table", "cells"},
	))
	// .xls uploads are often OOXML workbooks with the old extension.
	r.Register("xls", NewChain("legacy-spreadsheet",
		[]Strategy{StrategyFunc(extractLegacyWorkbook), StrategyFunc(extractSpreadsheetTable), StrategyFunc(extractSpreadsheetCells)},
		[]string{"biff", "table", "cells"},
	))

	r.Register("csv", NewChain("csv",
		[]Strategy{StrategyFunc(extractCSVTable), text},
		[]string{"table", "text"},
	))

	for _, ext := range []string{"txt", "md", "html", "htm"} {
		r.Register(ext, text)
	}
	for _, ext := range []string{"jpg", "jpeg", "png"} {
		r.Register(ext, StrategyFunc(imagePlaceholder))
	}
	return r
}

// Register binds a strategy to an extension, replacing any previous binding.
func (r *Registry) Register(ext string, s Strategy) {
	r.strategies[NormalizeExt(ext)] = s
}

// Lookup returns the strategy for ext, matched exactly after normalization.
func (r *Registry) Lookup(ext string) (Strategy, bool) {
	s, ok := r.strategies[NormalizeExt(ext)]
	return s, ok
}

// NormalizeExt lower-cases an extension and strips a leading dot.
func NormalizeExt(ext string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
}
