package port

import "context"

// GenerationParams overrides the default generation settings for one call.
// Zero values mean "use the configured default".
type GenerationParams struct {
	MaxTokens   int
	Temperature *float32
}

// Completer sends a single prompt to one chat-completion model.
type Completer interface {
	Complete(ctx context.Context, prompt, modelID string, params GenerationParams) (string, error)
}
