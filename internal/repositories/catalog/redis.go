package catalog

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	redis "github.com/redis/go-redis/v9"

	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
	"github.com/muutmoku/ao-build-share/internal/errors"
	"github.com/muutmoku/ao-build-share/internal/pkg/clock"
	redisclient "github.com/muutmoku/ao-build-share/internal/redis"
)

const (
	// Key pattern: catalog:slot:{slot}
	documentKeyPrefix = "catalog:slot:"

	// DefaultTTL keeps a document for a day, the snapshot publishes at most daily
	DefaultTTL = 24 * time.Hour

	// Error messages
	errDocumentNil = "document cannot be nil"
	errInvalidSlot = "slot is invalid"
	errEmptyBody   = "document body cannot be empty"
)

// RedisConfig contains configuration for the Redis catalog repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL applied when PutInput.TTL is zero (optional, defaults to DefaultTTL)
	TTL time.Duration
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.Clock == nil {
		vb.RequiredField("Clock")
	}
	if cfg.TTL < 0 {
		vb.Field("TTL", "cannot be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed catalog repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// documentData is what gets serialized to Redis
type documentData struct {
	Slot      string `json:"slot"`
	Body      string `json:"body"`
	FetchedAt int64  `json:"fetched_at"`
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgument(errInvalidSlot).WithMeta("slot", input.Slot.String())
	}

	result, err := r.client.Get(ctx, GetKey(input.Slot)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("catalog document for slot %s not found", input.Slot)
		}
		return nil, errors.Wrapf(err, "failed to get catalog document for slot %s", input.Slot)
	}

	var data documentData
	if err := sonic.UnmarshalString(result, &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal catalog document for slot %s", input.Slot)
	}

	return &GetOutput{
		Document: &Document{
			Slot:      equipment.Slot(data.Slot),
			Body:      []byte(data.Body),
			FetchedAt: time.Unix(data.FetchedAt, 0).UTC(),
		},
	}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Document == nil {
		return nil, errors.InvalidArgument(errDocumentNil)
	}
	if !input.Document.Slot.IsValid() {
		return nil, errors.InvalidArgument(errInvalidSlot).WithMeta("slot", input.Document.Slot.String())
	}
	if len(input.Document.Body) == 0 {
		return nil, errors.InvalidArgument(errEmptyBody)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = r.ttl
	}

	fetchedAt := input.Document.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = r.clock.Now()
	}

	payload, err := sonic.MarshalString(documentData{
		Slot:      input.Document.Slot.String(),
		Body:      string(input.Document.Body),
		FetchedAt: fetchedAt.Unix(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal catalog document")
	}

	if err := r.client.Set(ctx, GetKey(input.Document.Slot), payload, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store catalog document for slot %s", input.Document.Slot)
	}

	return &PutOutput{
		ExpiresAt: r.clock.Now().Add(ttl),
	}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgument(errInvalidSlot).WithMeta("slot", input.Slot.String())
	}

	deleted, err := r.client.Del(ctx, GetKey(input.Slot)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete catalog document for slot %s", input.Slot)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("catalog document for slot %s not found", input.Slot)
	}

	return &DeleteOutput{}, nil
}

// GetKey returns the Redis key for a slot's document
// Exposed for testing purposes
func GetKey(slot equipment.Slot) string {
	return documentKeyPrefix + slot.String()
}

// KeyPattern matches every cached catalog document
const KeyPattern = documentKeyPrefix + "*"
