// Package notify is the best-effort notification collaborator for timer
// completion. Absence of a working scheduler must never block a timer:
// callers log scheduling failures and carry on.
package notify

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Request describes one scheduled completion alert.
type Request struct {
	Title string
	Body  string
	Data  map[string]string
	After time.Duration
}

// Scheduler schedules and cancels completion alerts.
type Scheduler interface {
	Schedule(ctx context.Context, req Request) (string, error)
	Cancel(ctx context.Context, id string) error
}

// LogScheduler is the default scheduler: it records pending alerts in memory
// and logs instead of delivering. The mobile client owns real delivery; the
// backend only tracks handles so cancel/reset semantics hold.
type LogScheduler struct {
	mu          sync.Mutex
	initialized bool
	pending     map[string]Request
}

func NewLogScheduler() *LogScheduler {
	return &LogScheduler{
		initialized: true,
		pending:     make(map[string]Request),
	}
}

func (s *LogScheduler) Schedule(ctx context.Context, req Request) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return "", nil
	}

	id := uuid.NewString()
	s.pending[id] = req
	log.Printf("notify: scheduled %q in %s (id=%s)", req.Title, req.After, id)
	return id, nil
}

func (s *LogScheduler) Cancel(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[id]; ok {
		delete(s.pending, id)
		log.Printf("notify: cancelled id=%s", id)
	}
	return nil
}

// Pending returns how many alerts are currently scheduled.
func (s *LogScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
