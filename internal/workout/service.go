// Package workout implements the workout-tracking core: exercises with
// personal-record frontiers, reusable templates, logged sessions, and
// the hand-maintained index documents that stand in for the queries a
// get/put/delete store cannot run.
package workout

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/claude/liftlog/internal/kv"
	"github.com/claude/liftlog/internal/models"
)

// Pagination bounds for session listings.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 500
)

// Service carries out all workout operations against a kv.Store. Every
// operation is a short stateless sequence of reads then writes with no
// lock held across it; concurrent writers to the same index key are
// last-write-wins, accepted for a single-user deployment. A store
// failure after the first write of a sequence is surfaced as
// INTERNAL_ERROR with no compensating writes: the store has no
// multi-key atomicity, and the persisted session stays the source of
// truth for reconciliation.
type Service struct {
	store kv.Store
	log   *slog.Logger

	// Overridable for tests: deterministic clocks and ids.
	now   func() time.Time
	newID func(time.Time) string
}

// NewService wires a Service to its store.
func NewService(store kv.Store, log *slog.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
		now:   time.Now,
		newID: newSessionID,
	}
}

// newSessionID builds a session identifier from the creation time plus
// a short random suffix: ordered by creation time as a plain string,
// unique in practice.
func newSessionID(t time.Time) string {
	return t.UTC().Format("20060102T150405Z") + "-" + uuid.NewString()[:8]
}

// loadJSON reads key and unmarshals it into v, reporting ok=false when
// the key is absent.
func (s *Service) loadJSON(ctx context.Context, key string, v any) (bool, error) {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return false, Errf(CodeInternal, "read %s: %v", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, Errf(CodeInternal, "decode %s: %v", key, err)
	}
	return true, nil
}

// saveJSON marshals v and writes it under key.
func (s *Service) saveJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return Errf(CodeInternal, "encode %s: %v", key, err)
	}
	if err := s.store.Put(ctx, key, string(raw)); err != nil {
		return Errf(CodeInternal, "write %s: %v", key, err)
	}
	return nil
}

// loadNameIndex reads a name-list index document. An absent index reads
// as empty.
func (s *Service) loadNameIndex(ctx context.Context, key string) ([]string, error) {
	var names []string
	if _, err := s.loadJSON(ctx, key, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// loadSessionIndex reads a template's session-pointer index. An absent
// index reads as empty.
func (s *Service) loadSessionIndex(ctx context.Context, templateName string) ([]models.SessionPointer, error) {
	var ptrs []models.SessionPointer
	if _, err := s.loadJSON(ctx, sessionIndexKey(templateName), &ptrs); err != nil {
		return nil, err
	}
	return ptrs, nil
}
