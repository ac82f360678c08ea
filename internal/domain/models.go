package domain

import (
	"time"

	"github.com/google/uuid"
)

// UploadedDocument is a file stored for one session.
type UploadedDocument struct {
	ID          uuid.UUID    `json:"id"`
	Filename    string       `json:"filename"`
	StorageKey  string       `json:"-"`
	Extension   FileType     `json:"type"`
	ContentType string       `json:"content_type"`
	Size        int64        `json:"size"`
	Status      UploadStatus `json:"status"`
	UploadedAt  time.Time    `json:"uploaded_at"`
}

// IsImage reports whether the document is an image that is never parsed.
func (d *UploadedDocument) IsImage() bool {
	switch d.Extension {
	case FileTypeJPG, FileTypeJPEG, FileTypePNG:
		return true
	}
	return false
}

// ParsedContent is the normalized text of one document for one submission.
type ParsedContent struct {
	Filename string
	Text     string
}

// ModelResponse holds one model's answer, or a displayable error note when Failed.
type ModelResponse struct {
	ModelID   string `json:"model_id"`
	ModelName string `json:"model_name"`
	Response  string `json:"response"`
	Failed    bool   `json:"failed"`
}

// Comparison is the outcome of one prompt submission across the selected models.
type Comparison struct {
	ID             uuid.UUID       `json:"id"`
	Prompt         string          `json:"prompt"`
	PromptLength   int             `json:"combined_prompt_length"`
	DocumentCount  int             `json:"document_count"`
	Responses      []ModelResponse `json:"responses"`
	SingleResponse bool            `json:"single_response"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ResponseMap returns the responses keyed by model id.
func (c *Comparison) ResponseMap() map[string]string {
	out := make(map[string]string, len(c.Responses))
	for _, r := range c.Responses {
		out[r.ModelID] = r.Response
	}
	return out
}
