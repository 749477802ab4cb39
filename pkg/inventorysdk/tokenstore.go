package inventorysdk

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore persists the raw access token between uses. Implementations
// must be safe for concurrent use and must notify subscribers on every
// Set and Clear.
type TokenStore interface {
	// Get returns the stored token, or "" when none is stored.
	Get() string
	// Set stores the token and notifies subscribers.
	Set(token string) error
	// Clear removes any stored token and notifies subscribers.
	Clear() error
	// Subscribe registers a callback invoked after each change. The
	// returned function cancels the subscription.
	Subscribe(fn func()) (cancel func())
}

type subscribers struct {
	mu   sync.Mutex
	next int
	fns  map[int]func()
}

func (s *subscribers) add(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fns == nil {
		s.fns = make(map[int]func())
	}
	id := s.next
	s.next++
	s.fns[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.fns, id)
	}
}

func (s *subscribers) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.fns))
	for _, fn := range s.fns {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// FileTokenStore persists the token to a file so it survives process
// restarts. The file is written with 0600 permissions.
type FileTokenStore struct {
	path string
	mu   sync.RWMutex
	subs subscribers
}

// NewFileTokenStore creates a store backed by the given path, creating
// parent directories as needed.
func NewFileTokenStore(path string) (*FileTokenStore, error) {
	if path == "" {
		return nil, errors.New("token store path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create token store dir: %w", err)
	}
	return &FileTokenStore{path: path}, nil
}

// Get reads the stored token. A missing or unreadable file yields "".
func (s *FileTokenStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Set writes the token to disk and notifies subscribers.
func (s *FileTokenStore) Set(token string) error {
	s.mu.Lock()
	err := os.WriteFile(s.path, []byte(token), 0o600)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	s.subs.notify()
	return nil
}

// Clear removes the token file and notifies subscribers. Clearing an
// already-empty store is a no-op that still notifies.
func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	err := os.Remove(s.path)
	s.mu.Unlock()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	s.subs.notify()
	return nil
}

// Subscribe registers a change callback.
func (s *FileTokenStore) Subscribe(fn func()) func() {
	return s.subs.add(fn)
}

// MemoryTokenStore keeps the token in memory. Intended for tests and
// short-lived processes.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
	subs  subscribers
}

// NewMemoryTokenStore creates an empty in-memory store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// Get returns the stored token.
func (s *MemoryTokenStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Set stores the token and notifies subscribers.
func (s *MemoryTokenStore) Set(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	s.subs.notify()
	return nil
}

// Clear removes the token and notifies subscribers.
func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	s.subs.notify()
	return nil
}

// Subscribe registers a change callback.
func (s *MemoryTokenStore) Subscribe(fn func()) func() {
	return s.subs.add(fn)
}
