package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/repository"
)

// PriceListRepository stores encoded price lists in the price_lists table
type PriceListRepository struct {
	db *pgxpool.Pool
}

var _ repository.PriceListStore = (*PriceListRepository)(nil)

// NewPriceListRepository creates a new PriceListRepository
func NewPriceListRepository(db *pgxpool.Pool) *PriceListRepository {
	return &PriceListRepository{db: db}
}

// SavePriceList replaces the stored list with a single upsert
func (r *PriceListRepository) SavePriceList(ctx context.Context, agentID string, data []byte) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO price_lists (agent_id, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (agent_id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`, agentID, data)
	if err != nil {
		return fmt.Errorf(ErrMsgSavePriceList, agentID, err)
	}
	return nil
}

// LoadPriceList returns the stored list or domain.ErrNoPriceListOnBuyer
func (r *PriceListRepository) LoadPriceList(ctx context.Context, agentID string) ([]byte, error) {
	var data []byte
	err := r.db.QueryRow(ctx, `SELECT data FROM price_lists WHERE agent_id = $1`, agentID).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoPriceListOnBuyer, agentID)
		}
		return nil, fmt.Errorf(ErrMsgLoadPriceList, agentID, err)
	}
	return data, nil
}

// DeletePriceList removes the stored list; deleting a missing list is not an error
func (r *PriceListRepository) DeletePriceList(ctx context.Context, agentID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM price_lists WHERE agent_id = $1`, agentID); err != nil {
		return fmt.Errorf(ErrMsgDeletePriceList, agentID, err)
	}
	return nil
}
