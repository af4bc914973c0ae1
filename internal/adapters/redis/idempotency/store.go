package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/idempotency"
)

const keyPrefix = "idem:"

// Store is a Redis implementation of idempotency.Store. Records are written
// with an expiry equal to the TTL, so Redis evicts them on its own.
type Store struct {
	redis *redis.Client
	clk   clock.Clock
	ttl   time.Duration
}

// NewStore returns a store whose records expire after ttl (idempotency.DefaultTTL when <= 0).
func NewStore(client *redis.Client, clk clock.Clock, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = idempotency.DefaultTTL
	}
	return &Store{redis: client, clk: clk, ttl: ttl}
}

type storedRecord struct {
	StatusCode  int       `json:"status"`
	ContentType string    `json:"contentType"`
	Body        []byte    `json:"body"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (s *Store) Get(ctx context.Context, fp idempotency.Fingerprint) (idempotency.Record, bool, error) {
	raw, err := s.redis.Get(ctx, redisKey(fp)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return idempotency.Record{}, false, nil
		}
		return idempotency.Record{}, false, err
	}
	var sr storedRecord
	if err := json.Unmarshal(raw, &sr); err != nil {
		return idempotency.Record{}, false, fmt.Errorf("decode idempotency record: %w", err)
	}
	return idempotency.Record{
		StatusCode:  sr.StatusCode,
		ContentType: sr.ContentType,
		Body:        sr.Body,
		CreatedAt:   sr.CreatedAt.UTC(),
	}, true, nil
}

func (s *Store) Put(ctx context.Context, fp idempotency.Fingerprint, rec idempotency.Record) error {
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.clk.Now()
	}
	raw, err := json.Marshal(storedRecord{
		StatusCode:  rec.StatusCode,
		ContentType: rec.ContentType,
		Body:        rec.Body,
		CreatedAt:   createdAt.UTC(),
	})
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, redisKey(fp), raw, s.ttl).Err()
}

// redisKey hashes every fingerprint component so arbitrary header values stay key-safe.
func redisKey(fp idempotency.Fingerprint) string {
	h := sha256.New()
	for _, part := range []string{string(fp.Key), string(fp.Subject), fp.Method, fp.Route, fp.BodyHash} {
		fmt.Fprintf(h, "%d:%s;", len(part), part)
	}
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}
