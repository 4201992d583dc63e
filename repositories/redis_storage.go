package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const changeChannel = "storage:changes"

// RedisStorage backs slots with redis and broadcasts slot writes over a
// pub/sub channel. Events published by this instance are dropped on receipt,
// a client never sees its own writes.
type RedisStorage struct {
	client *redis.Client
	origin string

	mu       sync.Mutex
	handlers []func(StorageChangeEvent)
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	s := &RedisStorage{
		client: client,
		origin: uuid.NewString(),
	}
	go s.listen()
	return s
}

func (s *RedisStorage) Origin() string {
	return s.origin
}

func (s *RedisStorage) Get(key string) (string, bool, error) {
	val, err := s.client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisStorage) Set(key, raw string) error {
	ctx := context.Background()

	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return err
	}

	event := StorageChangeEvent{Key: key, NewValue: raw, Origin: s.origin}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.client.Publish(ctx, changeChannel, payload).Err(); err != nil {
		log.Printf("Failed to publish storage change for %q: %v", key, err)
	}
	return nil
}

func (s *RedisStorage) Subscribe(handler func(StorageChangeEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, handler)
}

func (s *RedisStorage) listen() {
	pubsub := s.client.Subscribe(context.Background(), changeChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var event StorageChangeEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("Dropping malformed storage change notification: %v", err)
			continue
		}
		if event.Origin == s.origin {
			continue
		}

		s.mu.Lock()
		handlers := make([]func(StorageChangeEvent), len(s.handlers))
		copy(handlers, s.handlers)
		s.mu.Unlock()

		for _, handler := range handlers {
			handler(event)
		}
	}
}
