package service

import (
	"context"
	"log"
	"time"
)

// SessionJanitor periodically purges idle sessions and their stored files.
type SessionJanitor struct {
	uploads  UploadService
	interval time.Duration
}

// NewSessionJanitor creates a new SessionJanitor.
func NewSessionJanitor(uploads UploadService, interval time.Duration) *SessionJanitor {
	return &SessionJanitor{uploads: uploads, interval: interval}
}

// Start runs the sweep loop until ctx is canceled. A non-positive interval
// disables sweeping.
func (j *SessionJanitor) Start(ctx context.Context) {
	if j.interval <= 0 {
		log.Printf("sessionJanitor: disabled")
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	log.Printf("sessionJanitor: started (interval=%s)", j.interval)

	for {
		select {
		case <-ctx.Done():
			log.Printf("sessionJanitor: shutdown complete")
			return
		case <-ticker.C:
			// Purge runs to completion even after ctx is canceled.
			sweepCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
			if n := j.uploads.PurgeExpired(sweepCtx); n > 0 {
				log.Printf("sessionJanitor: removed %d expired files", n)
			}
			cancel()
		}
	}
}
