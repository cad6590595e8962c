package dictionary

import (
	"context"
	"strings"
	"sync"
)

//go:generate mockgen -source=repository.go -destination=../mocks/dictionary/mock_store.go -package=mock_dictionary

// Store maps normalized words to definitions.
type Store interface {
	// Put stores definition under the normalized form of word, replacing any previous definition.
	Put(ctx context.Context, word, definition string) error
	// Get returns the definition stored under the normalized form of word, or ErrNotFound.
	Get(ctx context.Context, word string) (string, error)
}

// MemoryStore implements Store with a map guarded by a read-write lock.
// Its contents live only as long as the process.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]string),
	}
}

// Put trims word and definition and overwrites the entry for the normalized word.
func (s *MemoryStore) Put(_ context.Context, word, definition string) error {
	key := Normalize(word)
	if key == "" {
		return ErrEmptyWord
	}
	definition = strings.TrimSpace(definition)
	if definition == "" {
		return ErrEmptyDefinition
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = definition
	return nil
}

// Get returns the definition for the normalized word.
func (s *MemoryStore) Get(_ context.Context, word string) (string, error) {
	key := Normalize(word)
	if key == "" {
		return "", ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	definition, ok := s.entries[key]
	if !ok {
		return "", ErrNotFound
	}
	return definition, nil
}

// Len returns the number of stored words.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
