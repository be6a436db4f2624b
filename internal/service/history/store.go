package history

import (
	"context"
	"sync"

	"github.com/hliu742/minichat/internal/model/chat"
)

// Store keeps every user's conversation in memory for the lifetime of the
// process. There is no eviction and no persistence; restart loses all state.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// entry serializes all access to one user's turns. Holding an entry lock
// never requires the store lock, so a slow update for one user cannot block
// lookups for another.
type entry struct {
	mu    sync.Mutex
	turns []chat.Turn
}

// NewStore bootstraps an empty in-memory conversation store.
func NewStore() *Store {
	return &Store{entries: make(map[string]*entry)}
}

// Update runs fn against a copy of the user's conversation while holding that
// user's lock, creating the conversation on first contact. The slice returned
// by fn replaces the stored conversation only when fn returns nil; on error
// the stored turns are left exactly as they were. Concurrent updates for the
// same user are serialized, so no update is ever lost.
func (s *Store) Update(_ context.Context, userID string, fn func(turns []chat.Turn) ([]chat.Turn, error)) error {
	e := s.entry(userID)

	e.mu.Lock()
	defer e.mu.Unlock()

	updated, err := fn(copyTurns(e.turns))
	if err != nil {
		return err
	}

	e.turns = updated
	return nil
}

// Snapshot returns a copy of the user's conversation. Unknown users get an
// empty slice; looking up a user never creates an entry.
func (s *Store) Snapshot(_ context.Context, userID string) []chat.Turn {
	s.mu.Lock()
	e, ok := s.entries[userID]
	s.mu.Unlock()
	if !ok {
		return []chat.Turn{}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return copyTurns(e.turns)
}

// Reset clears the stored conversation for the user. The entry itself is kept
// so an in-flight Update keeps a valid target.
func (s *Store) Reset(_ context.Context, userID string) {
	s.mu.Lock()
	e, ok := s.entries[userID]
	s.mu.Unlock()
	if !ok {
		return
	}

	e.mu.Lock()
	e.turns = nil
	e.mu.Unlock()
}

// Len reports how many turns are stored for the user.
func (s *Store) Len(_ context.Context, userID string) int {
	s.mu.Lock()
	e, ok := s.entries[userID]
	s.mu.Unlock()
	if !ok {
		return 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.turns)
}

// entry returns the per-user entry, creating it on first contact. Only this
// map access takes the store-wide lock.
func (s *Store) entry(userID string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok {
		e = &entry{}
		s.entries[userID] = e
	}
	return e
}

func copyTurns(turns []chat.Turn) []chat.Turn {
	copied := make([]chat.Turn, len(turns))
	copy(copied, turns)
	return copied
}
