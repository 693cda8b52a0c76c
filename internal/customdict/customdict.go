package customdict

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const defaultKey = "spellhelm:custom_words"

// Store keeps user-supplied dictionary words in a Redis set so they survive
// between runs and can be shared across machines.
type Store struct {
	client *redis.Client
	key    string
}

// Connect dials Redis at addr and verifies the connection.
func Connect(ctx context.Context, addr string) (*Store, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &Store{client: client, key: defaultKey}, nil
}

// Add inserts a word into the custom dictionary.
func (s *Store) Add(ctx context.Context, word string) error {
	if word == "" {
		return fmt.Errorf("cannot add an empty word")
	}
	return s.client.SAdd(ctx, s.key, word).Err()
}

// Remove deletes a word from the custom dictionary.
func (s *Store) Remove(ctx context.Context, word string) error {
	return s.client.SRem(ctx, s.key, word).Err()
}

// All returns every word in the custom dictionary.
func (s *Store) All(ctx context.Context) ([]string, error) {
	words, err := s.client.SMembers(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list custom words: %w", err)
	}
	return words, nil
}

// Close releases the underlying Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}
