package service

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"genaizone/internal/config"
	"genaizone/internal/domain"
	"genaizone/internal/port"
	"genaizone/internal/session"
)

// UploadInput is the DTO for file upload requests.
type UploadInput struct {
	SessionID string
	File      multipart.File
	Header    *multipart.FileHeader
}

// UploadService defines the per-session document management contract.
type UploadService interface {
	Upload(ctx context.Context, input UploadInput) (*domain.UploadedDocument, error)
	List(ctx context.Context, sessionID string) []domain.UploadedDocument
	Remove(ctx context.Context, sessionID string, docID uuid.UUID) error
	// PurgeExpired drops idle sessions and deletes their stored files. It
	// returns the number of files removed from storage.
	PurgeExpired(ctx context.Context) int
}

type uploadService struct {
	sessions *session.Store
	storage  port.ObjectStorage
	cfg      *config.UploadConfig
}

// NewUploadService creates a new UploadService implementation.
func NewUploadService(
	sessions *session.Store,
	storage port.ObjectStorage,
	cfg *config.UploadConfig,
) UploadService {
	return &uploadService{
		sessions: sessions,
		storage:  storage,
		cfg:      cfg,
	}
}

func (s *uploadService) Upload(ctx context.Context, input UploadInput) (*domain.UploadedDocument, error) {
	filename := SecureFilename(input.Header.Filename)

	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	if input.Header.Size > s.cfg.MaxBytes() {
		return nil, domain.ErrFileTooLarge
	}

	docID := uuid.New()
	key := fmt.Sprintf("sessions/%s/%s/%s", input.SessionID, docID, filename)
	contentType := domain.ContentTypes[fileType]

	log.Printf("uploadService.Upload: storing %s (%s, %d bytes) for session %s",
		filename, contentType, input.Header.Size, input.SessionID)

	_, err := s.storage.Upload(ctx, port.UploadInput{
		Key:         key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("uploadService.Upload: storage upload failed for %s: %v", docID, err)
		return nil, domain.ErrUploadFailed
	}

	doc := domain.UploadedDocument{
		ID:          docID,
		Filename:    filename,
		StorageKey:  key,
		Extension:   fileType,
		ContentType: contentType,
		Size:        input.Header.Size,
		Status:      domain.UploadStatusUploaded,
		UploadedAt:  time.Now().UTC(),
	}
	s.sessions.AddUpload(input.SessionID, doc)

	return &doc, nil
}

func (s *uploadService) List(_ context.Context, sessionID string) []domain.UploadedDocument {
	return s.sessions.Uploads(sessionID)
}

func (s *uploadService) Remove(ctx context.Context, sessionID string, docID uuid.UUID) error {
	log.Printf("uploadService.Remove: removing document %s for session %s", docID, sessionID)

	doc, ok := s.sessions.RemoveUpload(sessionID, docID)
	if !ok {
		return domain.ErrDocumentNotFound
	}

	// The document is already gone from the session; a leftover file is only worth a log line.
	if err := s.storage.Delete(ctx, doc.StorageKey); err != nil {
		log.Printf("uploadService.Remove: failed to delete %s from storage: %v", doc.StorageKey, err)
	}
	return nil
}

func (s *uploadService) PurgeExpired(ctx context.Context) int {
	orphaned := s.sessions.Sweep()
	removed := 0
	for i := range orphaned {
		if err := s.storage.Delete(ctx, orphaned[i].StorageKey); err != nil {
			log.Printf("uploadService.PurgeExpired: failed to delete %s: %v", orphaned[i].StorageKey, err)
			continue
		}
		removed++
	}
	return removed
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename reduces an uploaded name to a safe ASCII filename: accents
// are folded, path separators and whitespace become underscores and every
// other character outside [A-Za-z0-9_.-] is dropped. It may return "".
func SecureFilename(name string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(name) {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(b.String())
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}
