package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// CachedSweetRepository decorates a SweetRepository with a Redis
// read-through cache on FindByID. Every mutation invalidates the cached
// entry; cache failures degrade silently to the underlying store.
// Key format: sweet:<id>
type CachedSweetRepository struct {
	next   ports.SweetRepository
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewCachedSweetRepository(next ports.SweetRepository, client *redis.Client, ttl time.Duration, log zerolog.Logger) *CachedSweetRepository {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CachedSweetRepository{next: next, client: client, ttl: ttl, log: log}
}

func (r *CachedSweetRepository) key(id string) string { return "sweet:" + id }

func (r *CachedSweetRepository) FindByID(ctx context.Context, id string) (*domain.Sweet, error) {
	b, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err == nil {
		var s domain.Sweet
		if jsonErr := json.Unmarshal(b, &s); jsonErr == nil {
			return &s, nil
		}
		// corrupt entry: drop it and fall through to the store
		_ = r.client.Del(ctx, r.key(id)).Err()
	} else if !errors.Is(err, redis.Nil) {
		r.log.Warn().Err(err).Str("sweet_id", id).Msg("cache read failed")
	}

	s, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.set(ctx, s)
	return s, nil
}

func (r *CachedSweetRepository) Create(ctx context.Context, s *domain.Sweet) error {
	return r.next.Create(ctx, s)
}

func (r *CachedSweetRepository) FindAll(ctx context.Context) ([]*domain.Sweet, error) {
	return r.next.FindAll(ctx)
}

func (r *CachedSweetRepository) Search(ctx context.Context, filter ports.SearchFilter) ([]*domain.Sweet, error) {
	return r.next.Search(ctx, filter)
}

func (r *CachedSweetRepository) Update(ctx context.Context, id string, fields ports.UpdateSweetFields) (*domain.Sweet, error) {
	s, err := r.next.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, id)
	return s, nil
}

func (r *CachedSweetRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedSweetRepository) IncrementQuantity(ctx context.Context, id string, delta int64) (*domain.Sweet, error) {
	s, err := r.next.IncrementQuantity(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, id)
	return s, nil
}

func (r *CachedSweetRepository) DecrementIfAvailable(ctx context.Context, id string) (*domain.Sweet, error) {
	s, err := r.next.DecrementIfAvailable(ctx, id)
	// invalidate even on ErrOutOfStock: the miss re-read may have raced a restock
	r.invalidate(ctx, id)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *CachedSweetRepository) set(ctx context.Context, s *domain.Sweet) {
	b, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, r.key(s.ID), b, r.ttl).Err(); err != nil {
		r.log.Warn().Err(err).Str("sweet_id", s.ID).Msg("cache write failed")
	}
}

func (r *CachedSweetRepository) invalidate(ctx context.Context, id string) {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		r.log.Warn().Err(err).Str("sweet_id", id).Msg("cache invalidation failed")
	}
}
