// Package session persists the authenticated-session snapshot: the user
// record plus the two opaque tokens issued at login. Deleting the snapshot
// revokes the session even while the JWTs are still within their lifetime.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNoSession is returned when no snapshot exists for the key — the gate
// treats the caller as anonymous.
var ErrNoSession = errors.New("no active session")

// Record is the persisted snapshot. The password hash is never part of it.
type Record struct {
	UserID       int       `json:"user_id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	BranchID     *int      `json:"branch_id,omitempty"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	IssuedAt     time.Time `json:"issued_at"`
}

type Store interface {
	Save(ctx context.Context, key string, rec Record, ttl time.Duration) error
	// Load returns ErrNoSession when the key is absent or the stored value
	// is malformed — both hydrate to the anonymous state.
	Load(ctx context.Context, key string) (*Record, error)
	Clear(ctx context.Context, key string) error
}

// ── Redis-backed store ───────────────────────────────────────────────────────

const keyPrefix = "session:"

type redisStore struct{ rdb *redis.Client }

func NewRedis(rdb *redis.Client) Store { return &redisStore{rdb: rdb} }

func (s *redisStore) Save(ctx context.Context, key string, rec Record, ttl time.Duration) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyPrefix+key, data, ttl).Err()
}

func (s *redisStore) Load(ctx context.Context, key string) (*Record, error) {
	data, err := s.rdb.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, ErrNoSession
	}
	return &rec, nil
}

func (s *redisStore) Clear(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, keyPrefix+key).Err()
}

// ── In-memory store ──────────────────────────────────────────────────────────
// Used in memory mode and in unit tests; TTL is honored lazily on Load.

type memoryStore struct {
	mu   sync.Mutex
	recs map[string]memoryEntry
}

type memoryEntry struct {
	rec       Record
	expiresAt time.Time
}

func NewMemory() Store { return &memoryStore{recs: make(map[string]memoryEntry)} }

func (s *memoryStore) Save(_ context.Context, key string, rec Record, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[key] = memoryEntry{rec: rec, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *memoryStore) Load(_ context.Context, key string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.recs[key]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.recs, key)
		return nil, ErrNoSession
	}
	rec := entry.rec
	return &rec, nil
}

func (s *memoryStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.recs, key)
	return nil
}
