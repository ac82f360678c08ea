package parser

import (
	"context"
	"fmt"
	"log"
)

// Chain tries strategies in order. The first success wins; when every
// strategy fails, the last failure is returned.
// It implements Strategy.
type Chain struct {
	name       string
	strategies []Strategy
	names      []string
}

// NewChain creates a Chain from an ordered list of strategies and their names.
func NewChain(name string, strategies []Strategy, names []string) *Chain {
	return &Chain{
		name:       name,
		strategies: strategies,
		names:      names,
	}
}

func (c *Chain) Extract(ctx context.Context, path string) (string, error) {
	var lastErr error
	for i, s := range c.strategies {
		out, err := s.Extract(ctx, path)
		if err == nil {
			return out, nil
		}
		log.Printf("parser.Chain: %s/%s failed for %s: %v", c.name, c.strategyName(i), path, err)
		lastErr = err
	}

	if lastErr == nil {
		return "", fmt.Errorf("%s: no strategies configured", c.name)
	}
	return "", fmt.Errorf("%s: all strategies failed: %w", c.name, lastErr)
}

func (c *Chain) strategyName(i int) string {
	if i < len(c.names) {
		return c.names[i]
	}
	return fmt.Sprintf("#%d", i)
}
