package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisRecordPrefix = "labyrinth:maze:"
	redisKeyPrefix    = "labyrinth:seed:"
	redisLockPrefix   = "labyrinth:lock:"
)

// Redis is a Repository storing each record as a JSON string. A positive TTL
// expires records and their seed keys together.
type Redis struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedis returns a Redis repository over client. ttl of zero keeps records
// until they are deleted by hand.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{
		client: client,
		locker: redsync.New(goredis.NewPool(client)),
		ttl:    ttl,
	}
}

// Save writes r as JSON under its ID and, for seeded records, indexes the
// ID under the seed key. Both keys get the repository TTL.
func (s *Redis) Save(ctx context.Context, r *Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("store: encoding record %s: %w", r.ID, err)
	}
	if err = s.client.Set(ctx, redisRecordPrefix+r.ID.String(), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store: saving record %s: %w", r.ID, err)
	}
	if r.Key != "" {
		if err = s.client.Set(ctx, redisKeyPrefix+r.Key, r.ID.String(), s.ttl).Err(); err != nil {
			return fmt.Errorf("store: indexing record %s: %w", r.ID, err)
		}
	}

	return nil
}

// ByID loads the record with id, or returns ErrNotFound when it is missing
// or has expired.
func (s *Redis) ByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	data, err := s.client.Get(ctx, redisRecordPrefix+id.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: loading record %s: %w", id, err)
	}
	var r Record
	if err = json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("store: decoding record %s: %w", id, err)
	}

	return &r, nil
}

// FindOrCreate serializes callers on key with a distributed lock, so API
// replicas sharing one Redis build each seeded maze once.
func (s *Redis) FindOrCreate(ctx context.Context, key string, create func() (*Record, error)) (*Record, bool, error) {
	mutex := s.locker.NewMutex(redisLockPrefix + key)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, false, fmt.Errorf("store: locking %s: %w", key, err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	// 1. Existing record, unless it expired between the two reads.
	idStr, err := s.client.Get(ctx, redisKeyPrefix+key).Result()
	switch {
	case err == nil:
		id, perr := uuid.Parse(idStr)
		if perr != nil {
			return nil, false, fmt.Errorf("store: bad index entry for %s: %w", key, perr)
		}
		r, gerr := s.ByID(ctx, id)
		if gerr == nil {
			return r, false, nil
		}
		if !errors.Is(gerr, ErrNotFound) {
			return nil, false, gerr
		}
	case !errors.Is(err, redis.Nil):
		return nil, false, fmt.Errorf("store: reading index for %s: %w", key, err)
	}

	// 2. Build and store.
	r, err := create()
	if err != nil {
		return nil, false, err
	}
	r.Key = key
	if err = s.Save(ctx, r); err != nil {
		return nil, false, err
	}

	return r, true, nil
}
