package port

import "context"

// DocumentNormalizer turns a stored document into plain text for a prompt.
// Implementations never fail: parse problems come back as descriptive text.
type DocumentNormalizer interface {
	Normalize(ctx context.Context, path, declaredExt string) string
}
