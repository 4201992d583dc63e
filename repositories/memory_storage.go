package repositories

import (
	"sync"

	"github.com/google/uuid"
)

// MemoryBackend is an in-process durable medium shared by any number of
// MemoryStorage handles. It stands in for redis in tests and when no redis
// is reachable; each handle behaves like one client of the shared medium.
type MemoryBackend struct {
	mu      sync.Mutex
	slots   map[string]string
	handles []*MemoryStorage
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{slots: make(map[string]string)}
}

// Open creates a new client handle with its own origin.
func (b *MemoryBackend) Open() *MemoryStorage {
	s := &MemoryStorage{backend: b, origin: uuid.NewString()}
	b.mu.Lock()
	b.handles = append(b.handles, s)
	b.mu.Unlock()
	return s
}

type MemoryStorage struct {
	backend *MemoryBackend
	origin  string

	mu       sync.Mutex
	handlers []func(StorageChangeEvent)
}

func (s *MemoryStorage) Origin() string {
	return s.origin
}

func (s *MemoryStorage) Get(key string) (string, bool, error) {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	raw, ok := s.backend.slots[key]
	return raw, ok, nil
}

func (s *MemoryStorage) Set(key, raw string) error {
	s.backend.mu.Lock()
	s.backend.slots[key] = raw
	handles := make([]*MemoryStorage, len(s.backend.handles))
	copy(handles, s.backend.handles)
	s.backend.mu.Unlock()

	event := StorageChangeEvent{Key: key, NewValue: raw, Origin: s.origin}
	for _, handle := range handles {
		if handle.origin == s.origin {
			continue
		}
		handle.dispatch(event)
	}
	return nil
}

func (s *MemoryStorage) Subscribe(handler func(StorageChangeEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, handler)
}

func (s *MemoryStorage) dispatch(event StorageChangeEvent) {
	s.mu.Lock()
	handlers := make([]func(StorageChangeEvent), len(s.handlers))
	copy(handlers, s.handlers)
	s.mu.Unlock()

	for _, handler := range handlers {
		handler(event)
	}
}
