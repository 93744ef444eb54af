package repository

import "context"

// PriceListStore persists encoded price lists keyed by agent id.
// Implementations must replace the whole record atomically on save and
// return domain.ErrNoPriceListOnBuyer from Load when no record exists.
type PriceListStore interface {
	SavePriceList(ctx context.Context, agentID string, data []byte) error
	LoadPriceList(ctx context.Context, agentID string) ([]byte, error)
	DeletePriceList(ctx context.Context, agentID string) error
}
