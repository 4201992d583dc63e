package services

import (
	"encoding/json"
	"log"
	"sync"

	"furniture-shop/repositories"
)

// KeyedStore binds an in-memory value to a single named slot on the durable
// medium. Reads never fail: an absent slot, unreadable contents, or a broken
// medium all yield the default value, and a corrupt slot is left untouched so
// data written by a newer client version is not silently overwritten.
//
// Writes update the in-memory mirror first and then persist; a persistence
// failure is logged and the mirror is kept, the caller stays responsive even
// when the medium is down.
//
// External writes to the same slot (other processes sharing the medium) are
// reconciled through the medium's change notifications as authoritative
// replacements. The reconciliation path never writes back to the medium.
type KeyedStore[T any] struct {
	key    string
	def    T
	medium repositories.StorageMedium

	// writeMu serializes persists so the slot always holds the latest
	// local write; mu guards only the mirror and listener list.
	writeMu sync.Mutex

	mu        sync.Mutex
	value     T
	listeners []func(T)
}

func NewKeyedStore[T any](medium repositories.StorageMedium, key string, defaultValue T) *KeyedStore[T] {
	s := &KeyedStore[T]{
		key:    key,
		def:    defaultValue,
		medium: medium,
	}
	s.value = s.load()
	medium.Subscribe(s.handleStorageChange)
	return s
}

func (s *KeyedStore[T]) Key() string {
	return s.key
}

func (s *KeyedStore[T]) Read() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Write replaces the stored value.
func (s *KeyedStore[T]) Write(value T) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.value = value
	listeners := s.copyListenersLocked()
	s.mu.Unlock()

	s.persist(value)
	notify(listeners, value)
}

// Update applies fn to the current in-memory value, not to a value captured
// earlier by the caller. Rapid sequential mutations compose instead of
// overwriting each other.
func (s *KeyedStore[T]) Update(fn func(T) T) T {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.value = fn(s.value)
	next := s.value
	listeners := s.copyListenersLocked()
	s.mu.Unlock()

	s.persist(next)
	notify(listeners, next)
	return next
}

// Subscribe registers a listener invoked after every mutation, local or
// reconciled from the medium.
func (s *KeyedStore[T]) Subscribe(listener func(T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func (s *KeyedStore[T]) load() T {
	raw, ok, err := s.medium.Get(s.key)
	if err != nil {
		log.Printf("Failed to read slot %q, using default: %v", s.key, err)
		return s.def
	}
	if !ok {
		return s.def
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		log.Printf("Slot %q holds unreadable data, using default: %v", s.key, err)
		return s.def
	}
	return value
}

// persist runs with the mirror lock released: a medium may dispatch change
// notifications synchronously from Set, and those handlers take the
// receiving store's mirror lock. Holding mu across Set would let two
// clients writing the same slot deadlock on each other's mirrors.
func (s *KeyedStore[T]) persist(value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("Failed to serialize slot %q: %v", s.key, err)
		return
	}
	if err := s.medium.Set(s.key, string(raw)); err != nil {
		log.Printf("Failed to persist slot %q: %v", s.key, err)
	}
}

// handleStorageChange reconciles a write made by another client of the
// medium. The new value replaces the mirror wholesale; parse failures fall
// back to the default rather than propagating corrupt state.
func (s *KeyedStore[T]) handleStorageChange(event repositories.StorageChangeEvent) {
	if event.Key != s.key {
		return
	}

	value := s.def
	if err := json.Unmarshal([]byte(event.NewValue), &value); err != nil {
		log.Printf("External write to slot %q is unreadable, using default: %v", s.key, err)
		value = s.def
	}

	s.mu.Lock()
	s.value = value
	listeners := s.copyListenersLocked()
	s.mu.Unlock()

	notify(listeners, value)
}

func (s *KeyedStore[T]) copyListenersLocked() []func(T) {
	listeners := make([]func(T), len(s.listeners))
	copy(listeners, s.listeners)
	return listeners
}

func notify[T any](listeners []func(T), value T) {
	for _, listener := range listeners {
		listener(value)
	}
}
