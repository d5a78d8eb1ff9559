package tmpstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Drolfothesgnir/whocolor/util"
	"github.com/Drolfothesgnir/whocolor/whocolor"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Different key prefixes for different use cases
const (
	ResultPrefix  = "result:"
	PendingPrefix = "pending:"
	FailurePrefix = "failure:"
)

var (
	ErrCacheMiss  = errors.New("result is not cached")
	ErrNotPending = errors.New("no pending job owned by the caller")
)

// Failure is remembered for a while after a job failed, so the same request
// doesn't hammer the upstream services.
type Failure struct {
	NotFound bool      `json:"not_found"`
	Message  string    `json:"message"`
	FailedAt time.Time `json:"failed_at"`
}

type Store interface {
	SaveResult(ctx context.Context, key string, res *whocolor.Result, ttl time.Duration) error
	GetResult(ctx context.Context, key string) (*whocolor.Result, error)
	MarkPending(ctx context.Context, key string, ttl time.Duration) (owner string, ok bool, err error)
	IsPending(ctx context.Context, key string) (bool, error)
	ClearPending(ctx context.Context, key, owner string) error
	SaveFailure(ctx context.Context, key string, f Failure, ttl time.Duration) error
	GetFailure(ctx context.Context, key string) (*Failure, error)
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

// NewStoreWithClient wraps an existing client.
func NewStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Ping checks the connection.
func (store *RedisStore) Ping(ctx context.Context) error {
	return store.client.Ping(ctx).Err()
}

func (store *RedisStore) Close() error {
	return store.client.Close()
}

// SaveResult caches the finished annotation.
func (store *RedisStore) SaveResult(ctx context.Context, key string, res *whocolor.Result, ttl time.Duration) error {
	jsonData, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}

	return store.client.Set(ctx, ResultPrefix+key, jsonData, ttl).Err()
}

// GetResult returns the cached annotation or ErrCacheMiss.
func (store *RedisStore) GetResult(ctx context.Context, key string) (*whocolor.Result, error) {
	jsonData, err := store.client.Get(ctx, ResultPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	var res whocolor.Result
	if err := json.Unmarshal(jsonData, &res); err != nil {
		return nil, fmt.Errorf("failed to parse result json: %w", err)
	}

	return &res, nil
}

// MarkPending claims the job for key. ok is false if another worker already owns it.
// The returned owner token must be passed to ClearPending.
// The marker expires after ttl, so a crashed worker doesn't block the key forever.
func (store *RedisStore) MarkPending(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	owner := uuid.NewString()

	ok, err := store.client.SetNX(ctx, PendingPrefix+key, owner, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to mark job as pending: %w", err)
	}

	if !ok {
		return "", false, nil
	}

	return owner, true, nil
}

func (store *RedisStore) IsPending(ctx context.Context, key string) (bool, error) {
	n, err := store.client.Exists(ctx, PendingPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check pending job: %w", err)
	}
	return n > 0, nil
}

// deletes the marker only if it still belongs to the owner
var clearPendingScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ClearPending releases the marker taken by MarkPending.
// Returns ErrNotPending if the marker expired or was taken over by someone else.
func (store *RedisStore) ClearPending(ctx context.Context, key, owner string) error {
	n, err := clearPendingScript.Run(ctx, store.client, []string{PendingPrefix + key}, owner).Int()
	if err != nil {
		return fmt.Errorf("failed to clear pending job: %w", err)
	}

	if n == 0 {
		return ErrNotPending
	}

	return nil
}

func (store *RedisStore) SaveFailure(ctx context.Context, key string, f Failure, ttl time.Duration) error {
	jsonData, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to serialize failure: %w", err)
	}

	return store.client.Set(ctx, FailurePrefix+key, jsonData, ttl).Err()
}

// GetFailure returns the remembered failure or ErrCacheMiss.
func (store *RedisStore) GetFailure(ctx context.Context, key string) (*Failure, error) {
	jsonData, err := store.client.Get(ctx, FailurePrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get failure: %w", err)
	}

	var f Failure
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("failed to parse failure json: %w", err)
	}

	return &f, nil
}
