// Package redisstore keeps encoded price lists in Redis, one string key per buyer.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/logger"
	"github.com/osse101/BuyerMerchant_Go/internal/repository"
)

const keyPrefix = "pricelist:"

// PriceListStore implements repository.PriceListStore on Redis.
type PriceListStore struct {
	client *redis.Client
}

var _ repository.PriceListStore = (*PriceListStore)(nil)

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient connects to Redis and checks the connection.
func NewClient(ctx context.Context, opts Options) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.FromContext(ctx).Info("Connected to Redis", "addr", opts.Addr)
	return rdb, nil
}

// New wraps an existing client.
func New(client *redis.Client) *PriceListStore {
	return &PriceListStore{client: client}
}

func key(agentID string) string {
	return keyPrefix + agentID
}

// SavePriceList overwrites the key with a single SET. Lists never expire.
func (s *PriceListStore) SavePriceList(ctx context.Context, agentID string, data []byte) error {
	if err := s.client.Set(ctx, key(agentID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save price list for %s: %w", agentID, err)
	}
	return nil
}

// LoadPriceList returns the stored list or domain.ErrNoPriceListOnBuyer
func (s *PriceListStore) LoadPriceList(ctx context.Context, agentID string) ([]byte, error) {
	data, err := s.client.Get(ctx, key(agentID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoPriceListOnBuyer, agentID)
		}
		return nil, fmt.Errorf("failed to load price list for %s: %w", agentID, err)
	}
	return data, nil
}

// DeletePriceList removes the key
func (s *PriceListStore) DeletePriceList(ctx context.Context, agentID string) error {
	if err := s.client.Del(ctx, key(agentID)).Err(); err != nil {
		return fmt.Errorf("failed to delete price list for %s: %w", agentID, err)
	}
	return nil
}

// Ping checks the connection, for readiness probes.
func (s *PriceListStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (s *PriceListStore) Close() {
	if err := s.client.Close(); err != nil {
		logger.FromContext(context.Background()).Error("Failed to close Redis connection", "error", err)
	}
}
