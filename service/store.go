package service

import (
	"encoding/json"
	"fmt"
	"sync"

	arrays "github.com/0xalexb/hjarta-arrays"
)

// Store serialises access to a document shared by concurrent requests.
// Each mutation runs on a fresh arrays.Builder so a rejected path never
// affects later calls.
//
// Paths given as arrays.Path are resolved with arrays.ResolvePath under the
// lock, so numeric segments split from text reach "0"-style fields decoded
// from JSON objects. Other path forms are used as they are.
type Store struct {
	mu   sync.RWMutex
	root *arrays.Container
}

// NewStore returns a Store owning root. A nil root starts an empty document.
func NewStore(root *arrays.Container) *Store {
	if root == nil {
		root = arrays.NewContainer()
	}

	return &Store{root: root}
}

type absent struct{}

func (s *Store) resolve(path any) any {
	if p, ok := path.(arrays.Path); ok {
		return arrays.ResolvePath(s.root, p)
	}

	return path
}

// Lookup returns the JSON encoding of the value at path and whether it exists.
// The value is encoded under the read lock, so the result is a consistent snapshot.
func (s *Store) Lookup(path any) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, err := arrays.New(s.root).Get(s.resolve(path), absent{})
	if err != nil {
		return nil, false, err //nolint:wrapcheck // ErrInvalidPath already carries the details
	}

	if _, missing := value.(absent); missing {
		return nil, false, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, true, fmt.Errorf("encoding value at %v: %w", path, err)
	}

	return data, true, nil
}

// Set stores value at path.
func (s *Store) Set(path any, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return arrays.New(s.root).Set(s.resolve(path), value).Err() //nolint:wrapcheck
}

// Remove deletes the value at path. Missing paths are not an error.
func (s *Store) Remove(path any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return arrays.New(s.root).Remove(s.resolve(path)).Err() //nolint:wrapcheck
}

// Snapshot returns the JSON encoding of the whole document.
func (s *Store) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := json.Marshal(s.root)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}

	return data, nil
}
