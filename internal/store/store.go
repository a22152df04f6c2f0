// Package store is the sole arbiter of entity state: users, trips,
// bookings and reviews live in one dataset document behind a pluggable
// backend. Every operation loads the full dataset, mutates it in memory
// and commits it back in a single write, under one coarse mutex, so no
// partial state is ever visible inside a process. Cross-process writers
// are last-write-wins; this store targets single-session use.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/aikerim-n/uni-carpool/internal/auth"
	"github.com/aikerim-n/uni-carpool/internal/models"
	"github.com/aikerim-n/uni-carpool/internal/policy"
)

// Store exposes all data operations to callers. Construct one per process
// with New and pass it around; it holds no ambient global state.
type Store struct {
	mu      sync.Mutex
	backend Backend
	tokens  *auth.Tokens
	owner   *policy.OwnershipPolicy
}

// New builds a store over the given backend. A backend with no document
// yet is seeded with the bootstrap dataset and the seed is persisted;
// otherwise whatever is persisted is reused as-is.
func New(backend Backend, tokens *auth.Tokens) (*Store, error) {
	s := &Store{
		backend: backend,
		tokens:  tokens,
		owner:   policy.NewOwnershipPolicy(),
	}
	_, ok, err := backend.Load()
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	if !ok {
		if err := s.commit(seedDataset()); err != nil {
			return nil, fmt.Errorf("seed dataset: %w", err)
		}
	}
	return s, nil
}

// Tokens exposes the token verifier so callers can resolve a bearer
// token back to a user id.
func (s *Store) Tokens() *auth.Tokens { return s.tokens }

func (s *Store) load() (*models.Dataset, error) {
	raw, ok, err := s.backend.Load()
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	if !ok {
		return nil, errors.New("dataset_missing")
	}
	var d models.Dataset
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return &d, nil
}

func (s *Store) commit(d *models.Dataset) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	if err := s.backend.Save(raw); err != nil {
		return fmt.Errorf("save dataset: %w", err)
	}
	return nil
}
