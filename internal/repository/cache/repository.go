package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you-humble/emergency-supply/internal/model"
	"github.com/you-humble/emergency-supply/platform/logger"
)

const keyPrefix = "supply:"

type SupplyRepository interface {
	FindAll(ctx context.Context) ([]*model.Supply, error)
	FindByName(ctx context.Context, name string) (*model.Supply, error)
	Insert(ctx context.Context, s *model.Supply) (*model.Supply, error)
	UpdateByName(ctx context.Context, name string, patch model.SupplyPatch) (*model.Supply, error)
	DeleteByName(ctx context.Context, name string) (*model.Supply, error)
}

type repository struct {
	next   SupplyRepository
	client redis.UniversalClient
	ttl    time.Duration
}

// NewSupplyRepository caches single-supply lookups of next in Redis.
// Redis failures are logged and fall through to next.
func NewSupplyRepository(next SupplyRepository, client redis.UniversalClient, ttl time.Duration) *repository {
	return &repository{next: next, client: client, ttl: ttl}
}

func (r *repository) FindAll(ctx context.Context) ([]*model.Supply, error) {
	return r.next.FindAll(ctx)
}

func (r *repository) FindByName(ctx context.Context, name string) (*model.Supply, error) {
	if s, ok := r.get(ctx, name); ok {
		return s, nil
	}

	s, err := r.next.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	r.set(ctx, s)
	return s, nil
}

func (r *repository) Insert(ctx context.Context, s *model.Supply) (*model.Supply, error) {
	return r.next.Insert(ctx, s)
}

func (r *repository) UpdateByName(
	ctx context.Context,
	name string,
	patch model.SupplyPatch,
) (*model.Supply, error) {
	s, err := r.next.UpdateByName(ctx, name, patch)
	if err != nil {
		return nil, err
	}

	r.invalidate(ctx, name, s.SupplyName)
	return s, nil
}

func (r *repository) DeleteByName(ctx context.Context, name string) (*model.Supply, error) {
	s, err := r.next.DeleteByName(ctx, name)
	if err != nil {
		return nil, err
	}

	r.invalidate(ctx, name)
	return s, nil
}

func (r *repository) get(ctx context.Context, name string) (*model.Supply, bool) {
	payload, err := r.client.Get(ctx, keyPrefix+name).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn(ctx, "supply cache read failed", logger.String("supply_name", name), logger.ErrorF(err))
		}
		return nil, false
	}

	var entry cachedSupply
	if err := json.Unmarshal(payload, &entry); err != nil {
		logger.Warn(ctx, "supply cache entry is corrupt", logger.String("supply_name", name), logger.ErrorF(err))
		return nil, false
	}

	return entry.toModel(), true
}

func (r *repository) set(ctx context.Context, s *model.Supply) {
	payload, err := json.Marshal(cachedFromModel(s))
	if err != nil {
		logger.Warn(ctx, "supply cache encode failed", logger.String("supply_name", s.SupplyName), logger.ErrorF(err))
		return
	}

	if err := r.client.Set(ctx, keyPrefix+s.SupplyName, payload, r.ttl).Err(); err != nil {
		logger.Warn(ctx, "supply cache write failed", logger.String("supply_name", s.SupplyName), logger.ErrorF(err))
	}
}

func (r *repository) invalidate(ctx context.Context, names ...string) {
	keys := make([]string, 0, len(names))
	for _, name := range names {
		keys = append(keys, keyPrefix+name)
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil && !errors.Is(err, redis.Nil) {
		logger.Warn(ctx, "supply cache invalidation failed", logger.Strings("keys", keys), logger.ErrorF(err))
	}
}

type cachedSupply struct {
	ID             string     `json:"id"`
	SupplyName     string     `json:"supply_name"`
	Category       string     `json:"category"`
	UnitPrice      float64    `json:"unit_price"`
	Quantity       int64      `json:"quantity"`
	ExpirationDate *string    `json:"expiration_date"`
	Supplier       string     `json:"supplier"`
	Location       string     `json:"location"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func cachedFromModel(s *model.Supply) cachedSupply {
	return cachedSupply{
		ID:             s.ID,
		SupplyName:     s.SupplyName,
		Category:       s.Category,
		UnitPrice:      s.UnitPrice,
		Quantity:       s.Quantity,
		ExpirationDate: s.ExpirationDate,
		Supplier:       s.Supplier,
		Location:       s.Location,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func (c cachedSupply) toModel() *model.Supply {
	return &model.Supply{
		ID:             c.ID,
		SupplyName:     c.SupplyName,
		Category:       c.Category,
		UnitPrice:      c.UnitPrice,
		Quantity:       c.Quantity,
		ExpirationDate: c.ExpirationDate,
		Supplier:       c.Supplier,
		Location:       c.Location,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
