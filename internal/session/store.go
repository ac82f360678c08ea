// Package session keeps per-session upload lists and comparison results in
// memory. Nothing here outlives the process.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"genaizone/internal/domain"
)

// state is one session's data. Its mutex serializes add/remove/read so
// concurrent requests from the same browser cannot corrupt the upload list.
type state struct {
	mu           sync.Mutex
	uploads      []domain.UploadedDocument
	comparison   *domain.Comparison
	lastAccessed time.Time
}

// Store maps session ids to their state.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*state
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a Store whose sessions expire after ttl without access.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*state),
		ttl:      ttl,
		now:      time.Now,
	}
}

// SetClock replaces the time source. Tests use it to age sessions.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// acquire returns the locked state for id, creating it when missing.
// The caller must unlock st.mu.
func (s *Store) acquire(id string) *state {
	s.mu.Lock()
	st, ok := s.sessions[id]
	if !ok {
		st = &state{}
		s.sessions[id] = st
	}
	st.lastAccessed = s.now()
	s.mu.Unlock()

	st.mu.Lock()
	return st
}

// AddUpload appends doc to the session's upload list.
func (s *Store) AddUpload(id string, doc domain.UploadedDocument) {
	st := s.acquire(id)
	defer st.mu.Unlock()
	st.uploads = append(st.uploads, doc)
}

// Uploads returns a copy of the session's uploads in upload order.
func (s *Store) Uploads(id string) []domain.UploadedDocument {
	st := s.acquire(id)
	defer st.mu.Unlock()
	out := make([]domain.UploadedDocument, len(st.uploads))
	copy(out, st.uploads)
	return out
}

// RemoveUpload deletes the upload with docID from the session and returns it.
func (s *Store) RemoveUpload(id string, docID uuid.UUID) (domain.UploadedDocument, bool) {
	st := s.acquire(id)
	defer st.mu.Unlock()
	for i, doc := range st.uploads {
		if doc.ID == docID {
			st.uploads = append(st.uploads[:i], st.uploads[i+1:]...)
			return doc, true
		}
	}
	return domain.UploadedDocument{}, false
}

// SetComparison stores the latest comparison for the session.
func (s *Store) SetComparison(id string, c *domain.Comparison) {
	st := s.acquire(id)
	defer st.mu.Unlock()
	st.comparison = c
}

// Comparison returns the latest comparison for the session, if any.
func (s *Store) Comparison(id string) (*domain.Comparison, bool) {
	st := s.acquire(id)
	defer st.mu.Unlock()
	return st.comparison, st.comparison != nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the ttl and returns the uploads
// they still owned so the caller can delete the stored files.
func (s *Store) Sweep() []domain.UploadedDocument {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ttl <= 0 {
		return nil
	}
	cutoff := s.now().Add(-s.ttl)

	var orphaned []domain.UploadedDocument
	for id, st := range s.sessions {
		st.mu.Lock()
		expired := st.lastAccessed.Before(cutoff)
		if expired {
			orphaned = append(orphaned, st.uploads...)
			st.uploads = nil
		}
		st.mu.Unlock()
		if expired {
			delete(s.sessions, id)
		}
	}
	return orphaned
}
