package blockstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisBlocklistKey = "botmod/blocklist"

// Redis-backed blocklist: one hash, field per DID, JSON-encoded record values. Redis hash operations give the per-key atomicity the engine's concurrency model requires.
type RedisBlockStore struct {
	Client *redis.Client
}

func NewRedisBlockStore(redisURL string) (*RedisBlockStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)
	// check redis connection
	_, err = rdb.Ping(context.TODO()).Result()
	if err != nil {
		return nil, err
	}
	return &RedisBlockStore{Client: rdb}, nil
}

func encodeEntry(e Entry) (string, error) {
	raw, err := json.Marshal(snapshotRecord{
		Score:     e.Score,
		FlaggedAt: e.FlaggedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeEntry(did, raw string) (Entry, error) {
	var rec snapshotRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return Entry{}, fmt.Errorf("decoding blocklist entry for %s: %w", did, err)
	}
	when, err := time.Parse(time.RFC3339Nano, rec.FlaggedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("decoding blocklist entry for %s: %w", did, err)
	}
	return Entry{DID: did, Score: rec.Score, FlaggedAt: when}, nil
}

func (s *RedisBlockStore) Get(ctx context.Context, did string) (*Entry, error) {
	raw, err := s.Client.HGet(ctx, redisBlocklistKey, did).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	e, err := decodeEntry(did, raw)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *RedisBlockStore) Put(ctx context.Context, entry Entry) error {
	raw, err := encodeEntry(entry)
	if err != nil {
		return err
	}
	return s.Client.HSet(ctx, redisBlocklistKey, entry.DID, raw).Err()
}

func (s *RedisBlockStore) Remove(ctx context.Context, did string) error {
	return s.Client.HDel(ctx, redisBlocklistKey, did).Err()
}

func (s *RedisBlockStore) List(ctx context.Context) ([]Entry, error) {
	m, err := s.Client.HGetAll(ctx, redisBlocklistKey).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(m))
	for did, raw := range m {
		e, err := decodeEntry(did, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DID < out[j].DID })
	return out, nil
}

func (s *RedisBlockStore) Len(ctx context.Context) (int, error) {
	n, err := s.Client.HLen(ctx, redisBlocklistKey).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// replace the whole blocklist in a single transaction
func (s *RedisBlockStore) ReplaceAll(ctx context.Context, entries []Entry) error {
	multi := s.Client.TxPipeline()
	multi.Del(ctx, redisBlocklistKey)
	for _, e := range entries {
		raw, err := encodeEntry(e)
		if err != nil {
			return err
		}
		multi.HSet(ctx, redisBlocklistKey, e.DID, raw)
	}
	_, err := multi.Exec(ctx)
	return err
}
