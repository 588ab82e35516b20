package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	rplatform "subhub-backend/internal/platform/redis"
)

type storedObject struct {
	Data        []byte    `json:"data"`
	ContentType string    `json:"content_type"`
	StoredAt    time.Time `json:"stored_at"`
}

// RedisStore keeps artifact objects in Redis. Objects are written without TTL:
// confirmed proofs and orphaned uploads both stay in storage.
type RedisStore struct {
	client *rplatform.Client
}

func NewRedisStore(client *rplatform.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) key(path string) string {
	return fmt.Sprintf("proof:object:%s", path)
}

// Put stores the object at path, replacing any existing object.
func (s *RedisStore) Put(ctx context.Context, path string, obj Object) error {
	b, err := json.Marshal(storedObject{
		Data:        obj.Data,
		ContentType: obj.ContentType,
		StoredAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(path), b, 0).Err()
}

// Get returns the object stored at path, or an error when missing.
func (s *RedisStore) Get(ctx context.Context, path string) (Object, error) {
	v, err := s.client.Get(ctx, s.key(path)).Bytes()
	if err != nil {
		return Object{}, err
	}
	var stored storedObject
	if err := json.Unmarshal(v, &stored); err != nil {
		return Object{}, err
	}
	return Object{Data: stored.Data, ContentType: stored.ContentType}, nil
}
