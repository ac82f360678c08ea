package domain

import "errors"

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrDocumentNotFound    = errors.New("document not found")
	ErrUnsupportedModel    = errors.New("model must be 'gpt-4o' or 'gpt-4o-mini'")
	ErrEmptyPrompt         = errors.New("prompt is required")
	ErrNoModelsSelected    = errors.New("at least one model must be selected")
	ErrNoResults           = errors.New("no results for this session")
	ErrMissingSession      = errors.New("missing session")
)
