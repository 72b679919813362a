package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jcanovas/vivenda/internal/logger"
	"github.com/jcanovas/vivenda/internal/wizard"
	"github.com/redis/go-redis/v9"
)

// DraftStore persists one wizard snapshot per session. Load returns
// nil, nil when the session has no draft yet (not an error). Saves are
// whole-snapshot writes: the last save wins, there are no partial merges.
type DraftStore interface {
	Load(ctx context.Context, sessionID string) (*wizard.State, error)
	Save(ctx context.Context, sessionID string, state *wizard.State) error
	Clear(ctx context.Context, sessionID string) error
}

const draftKeyPrefix = "draft:"

// RedisDraftStore keeps wizard snapshots in Redis as JSON with a TTL so
// abandoned drafts eventually expire.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDraftStore creates a Redis-backed draft store.
func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, ttl: ttl}
}

func draftKey(sessionID string) string {
	return draftKeyPrefix + sessionID
}

// Load fetches and decodes the snapshot for the session.
func (s *RedisDraftStore) Load(ctx context.Context, sessionID string) (*wizard.State, error) {
	data, err := s.client.Get(ctx, draftKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft for session %s: %w", sessionID, err)
	}

	var state wizard.State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		// A corrupt snapshot is unrecoverable; treat it as absent so the
		// user restarts with an empty draft instead of a dead session.
		return nil, nil
	}
	return &state, nil
}

// Save encodes and writes the whole snapshot, refreshing the TTL.
func (s *RedisDraftStore) Save(ctx context.Context, sessionID string, state *wizard.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save draft for session %s: %w", sessionID, err)
	}
	return nil
}

// Clear removes the snapshot. Clearing a session without one is a no-op.
func (s *RedisDraftStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear draft for session %s: %w", sessionID, err)
	}
	return nil
}

// MemoryDraftStore keeps snapshots in process memory. It backs tests and
// serves as the degraded mode when Redis is unavailable; drafts stored here
// do not survive a restart.
type MemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string][]byte
}

// NewMemoryDraftStore creates an empty in-memory draft store.
func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string][]byte)}
}

// Load returns the snapshot for the session, or nil when absent. Snapshots
// round-trip through JSON so callers never share memory with the store.
func (s *MemoryDraftStore) Load(_ context.Context, sessionID string) (*wizard.State, error) {
	s.mu.RLock()
	data, ok := s.drafts[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var state wizard.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, nil
	}
	return &state, nil
}

// Save stores the whole snapshot for the session.
func (s *MemoryDraftStore) Save(_ context.Context, sessionID string, state *wizard.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	s.mu.Lock()
	s.drafts[sessionID] = data
	s.mu.Unlock()
	return nil
}

// Clear removes the snapshot for the session.
func (s *MemoryDraftStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.drafts, sessionID)
	s.mu.Unlock()
	return nil
}

// ResilientDraftStore degrades to an in-memory store when the primary one
// fails, so a Redis outage costs persistence across reloads but never the
// session itself. Failures are logged and swallowed.
type ResilientDraftStore struct {
	primary  DraftStore
	fallback DraftStore
	log      *logger.Logger
}

// NewResilientDraftStore wraps primary with an in-memory fallback.
func NewResilientDraftStore(primary DraftStore, log *logger.Logger) *ResilientDraftStore {
	return &ResilientDraftStore{
		primary:  primary,
		fallback: NewMemoryDraftStore(),
		log:      log,
	}
}

// Load tries the primary store and falls back to memory on failure. A
// healthy primary with no snapshot still consults the fallback: a draft
// saved to memory during an outage must keep serving the session after the
// primary recovers, so it is promoted back rather than abandoned.
func (s *ResilientDraftStore) Load(ctx context.Context, sessionID string) (*wizard.State, error) {
	state, err := s.primary.Load(ctx, sessionID)
	if err != nil {
		s.log.Warn("Draft store unavailable, loading from memory", map[string]interface{}{
			"session": sessionID,
			"error":   err.Error(),
		})
		return s.fallback.Load(ctx, sessionID)
	}
	if state != nil {
		return state, nil
	}

	state, err = s.fallback.Load(ctx, sessionID)
	if err != nil || state == nil {
		return nil, nil
	}
	if err := s.primary.Save(ctx, sessionID, state); err == nil {
		_ = s.fallback.Clear(ctx, sessionID)
		s.log.Info("Draft promoted back to primary store", map[string]interface{}{
			"session": sessionID,
		})
	}
	return state, nil
}

// Save writes to the primary store, keeping the snapshot in memory when the
// primary is down so the session continues uninterrupted.
func (s *ResilientDraftStore) Save(ctx context.Context, sessionID string, state *wizard.State) error {
	if err := s.primary.Save(ctx, sessionID, state); err != nil {
		s.log.Warn("Draft store unavailable, saving to memory", map[string]interface{}{
			"session": sessionID,
			"error":   err.Error(),
		})
		return s.fallback.Save(ctx, sessionID, state)
	}
	// Drop any stale fallback copy so a recovered primary wins next load.
	_ = s.fallback.Clear(ctx, sessionID)
	return nil
}

// Clear removes the snapshot from both stores.
func (s *ResilientDraftStore) Clear(ctx context.Context, sessionID string) error {
	err := s.primary.Clear(ctx, sessionID)
	if err != nil {
		s.log.Warn("Draft store unavailable, clearing memory copy only", map[string]interface{}{
			"session": sessionID,
			"error":   err.Error(),
		})
	}
	return s.fallback.Clear(ctx, sessionID)
}
