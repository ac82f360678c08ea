package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"genaizone/internal/completion"
	"genaizone/internal/domain"
	"genaizone/internal/port"
	"genaizone/internal/session"
)

// SubmitInput is the DTO for prompt submissions.
type SubmitInput struct {
	SessionID string
	Prompt    string
	Models    []string
	// Optional per-request overrides. Zero values keep the configured defaults.
	MaxTokens   int
	Temperature *float32
}

// ComparisonService runs a prompt, with the session's documents attached,
// against the selected models.
type ComparisonService interface {
	Submit(ctx context.Context, input SubmitInput) (*domain.Comparison, error)
	Latest(ctx context.Context, sessionID string) (*domain.Comparison, error)
}

type comparisonService struct {
	sessions   *session.Store
	storage    port.ObjectStorage
	normalizer port.DocumentNormalizer
	fanOut     *completion.FanOut
}

// NewComparisonService creates a new ComparisonService implementation.
func NewComparisonService(
	sessions *session.Store,
	storage port.ObjectStorage,
	normalizer port.DocumentNormalizer,
	fanOut *completion.FanOut,
) ComparisonService {
	return &comparisonService{
		sessions:   sessions,
		storage:    storage,
		normalizer: normalizer,
		fanOut:     fanOut,
	}
}

func (s *comparisonService) Submit(ctx context.Context, input SubmitInput) (*domain.Comparison, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return nil, domain.ErrEmptyPrompt
	}
	models, err := selectModels(input.Models)
	if err != nil {
		return nil, err
	}

	log.Printf("comparisonService.Submit: session %s, models %s", input.SessionID, strings.Join(models, ","))

	docs := s.sessions.Uploads(input.SessionID)
	contents := s.parseDocuments(ctx, docs)
	combined := BuildCombinedPrompt(input.Prompt, contents)

	log.Printf("comparisonService.Submit: combined prompt is %d characters (%d documents)", len(combined), len(docs))

	responses := s.fanOut.Run(ctx, combined, models, port.GenerationParams{
		MaxTokens:   input.MaxTokens,
		Temperature: input.Temperature,
	})

	comparison := &domain.Comparison{
		ID:             uuid.New(),
		Prompt:         input.Prompt,
		PromptLength:   len(combined),
		DocumentCount:  len(docs),
		Responses:      responses,
		SingleResponse: len(responses) == 1,
		CreatedAt:      time.Now().UTC(),
	}
	s.sessions.SetComparison(input.SessionID, comparison)

	return comparison, nil
}

func (s *comparisonService) Latest(_ context.Context, sessionID string) (*domain.Comparison, error) {
	c, ok := s.sessions.Comparison(sessionID)
	if !ok {
		return nil, domain.ErrNoResults
	}
	return c, nil
}

// parseDocuments normalizes every document in upload order. A document that
// cannot be fetched is represented by an error note, like a parse failure.
func (s *comparisonService) parseDocuments(ctx context.Context, docs []domain.UploadedDocument) []domain.ParsedContent {
	contents := make([]domain.ParsedContent, 0, len(docs))
	for i := range docs {
		doc := &docs[i]
		contents = append(contents, domain.ParsedContent{
			Filename: doc.Filename,
			Text:     s.parseDocument(ctx, doc),
		})
	}
	return contents
}

func (s *comparisonService) parseDocument(ctx context.Context, doc *domain.UploadedDocument) string {
	// Images only yield a placeholder, so there is nothing to fetch.
	if doc.IsImage() {
		return s.normalizer.Normalize(ctx, doc.Filename, string(doc.Extension))
	}

	path, release, err := s.storage.LocalPath(ctx, doc.StorageKey)
	if err != nil {
		log.Printf("comparisonService.parseDocument: fetching %s failed: %v", doc.StorageKey, err)
		return fmt.Sprintf("Error parsing document: %v", err)
	}
	defer release()
	return s.normalizer.Normalize(ctx, path, string(doc.Extension))
}

// selectModels validates the requested models against the catalog and drops
// duplicates, keeping the first occurrence.
func selectModels(requested []string) ([]string, error) {
	seen := make(map[string]bool, len(requested))
	models := make([]string, 0, len(requested))
	for _, m := range requested {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			continue
		}
		if !domain.IsSupportedModel(m) {
			return nil, fmt.Errorf("%w: got %q", domain.ErrUnsupportedModel, m)
		}
		seen[m] = true
		models = append(models, m)
	}
	if len(models) == 0 {
		return nil, domain.ErrNoModelsSelected
	}
	return models, nil
}

// BuildCombinedPrompt appends each document's text under a filename header.
// With no documents the prompt is returned unchanged.
func BuildCombinedPrompt(prompt string, contents []domain.ParsedContent) string {
	if len(contents) == 0 {
		return prompt
	}
	var b strings.Builder
	b.WriteString(prompt)
	b.WriteString("\n\nReference Documents:\n")
	for _, c := range contents {
		fmt.Fprintf(&b, "\n--- %s ---\n%s\n", c.Filename, c.Text)
	}
	return b.String()
}
