package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/honeycarbs/job-board/internal/domain"
	"github.com/honeycarbs/job-board/internal/domain/job"
)

const defaultPrefix = "jobboard:attrs:"

var _ job.AttributeStore = (*AttributeStore)(nil)

// AttributeStore keeps synthetic job attributes in Redis as JSON values
type AttributeStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewClient parses redisURL and verifies connectivity.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

// NewAttributeStore wraps a connected client; ttl <= 0 keeps entries forever
func NewAttributeStore(client *redis.Client, ttl time.Duration) *AttributeStore {
	return &AttributeStore{
		client: client,
		prefix: defaultPrefix,
		ttl:    ttl,
	}
}

// Close closes the Redis client.
func (s *AttributeStore) Close() error {
	return s.client.Close()
}

// LoadAttributes fetches all requested IDs in one MGET
func (s *AttributeStore) LoadAttributes(ctx context.Context, ids []string) (map[string]domain.Attributes, error) {
	out := make(map[string]domain.Attributes, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, s.key(id))
	}

	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis: load attributes: %w", err)
	}

	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		attrs, err := decodeAttributes(raw)
		if err != nil {
			continue
		}
		attrs.JobID = ids[i]
		out[ids[i]] = attrs
	}

	return out, nil
}

// SaveAttributes writes with SETNX so the first generated values win
func (s *AttributeStore) SaveAttributes(ctx context.Context, attrs []domain.Attributes) error {
	if len(attrs) == 0 {
		return nil
	}

	_, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, a := range attrs {
			payload, err := json.Marshal(a)
			if err != nil {
				return err
			}
			pipe.SetNX(ctx, s.key(a.JobID), payload, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis: save attributes: %w", err)
	}

	return nil
}

func (s *AttributeStore) key(id string) string {
	return s.prefix + id
}

func decodeAttributes(raw string) (domain.Attributes, error) {
	var a domain.Attributes
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return domain.Attributes{}, err
	}
	if a.Salary == "" {
		return domain.Attributes{}, fmt.Errorf("redis: attributes without salary")
	}
	return a, nil
}
