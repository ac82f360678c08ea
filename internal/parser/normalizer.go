// Package parser turns uploaded documents of heterogeneous formats into plain
// text suitable for inclusion in a model prompt.
package parser

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
)

// Normalizer dispatches a file to the strategy registered for its extension.
// It implements port.DocumentNormalizer.
type Normalizer struct {
	registry *Registry
	fallback Strategy
}

// NewNormalizer creates a Normalizer over registry. Unregistered extensions
// are read as plain text.
func NewNormalizer(registry *Registry) *Normalizer {
	return &Normalizer{
		registry: registry,
		fallback: StrategyFunc(extractText),
	}
}

// Normalize returns the text content of the file at path. declaredExt selects
// the strategy; when empty, the extension of path is used. Failures never
// escape: they come back as an error note in place of the content.
func (n *Normalizer) Normalize(ctx context.Context, path, declaredExt string) (text string) {
	ext := NormalizeExt(declaredExt)
	if ext == "" {
		ext = NormalizeExt(filepath.Ext(path))
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("parser.Normalizer: panic parsing %s: %v", path, r)
			text = ErrorMessage(fmt.Errorf("%v", r))
		}
	}()

	strategy, ok := n.registry.Lookup(ext)
	if !ok {
		out, err := n.fallback.Extract(ctx, path)
		if err != nil {
			log.Printf("parser.Normalizer: no handler for %q and text fallback failed for %s: %v", ext, path, err)
			return UnsupportedFormatMessage(ext)
		}
		return out
	}

	out, err := strategy.Extract(ctx, path)
	if err != nil {
		log.Printf("parser.Normalizer: error parsing document %s: %v", path, err)
		return ErrorMessage(err)
	}
	return out
}
