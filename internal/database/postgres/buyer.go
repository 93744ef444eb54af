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

// BuyerRepository implements repository.Buyer for PostgreSQL
type BuyerRepository struct {
	db *pgxpool.Pool
}

var _ repository.Buyer = (*BuyerRepository)(nil)

// NewBuyerRepository creates a new BuyerRepository
func NewBuyerRepository(db *pgxpool.Pool) *BuyerRepository {
	return &BuyerRepository{db: db}
}

// CreateBuyer inserts a new buyer row
func (r *BuyerRepository) CreateBuyer(ctx context.Context, buyer *domain.Buyer) error {
	query := `
		INSERT INTO buyers (agent_id, name, owner_id, owner_name, balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		buyer.ID, buyer.Name, buyer.OwnerID, buyer.OwnerName, buyer.Balance, buyer.CreatedAt)
	if err != nil {
		return fmt.Errorf(ErrMsgCreateBuyer, err)
	}
	return nil
}

// GetBuyer fetches a buyer by agent id
func (r *BuyerRepository) GetBuyer(ctx context.Context, agentID string) (*domain.Buyer, error) {
	query := `
		SELECT agent_id, name, owner_id, owner_name, balance, created_at
		FROM buyers
		WHERE agent_id = $1
	`
	var b domain.Buyer
	err := r.db.QueryRow(ctx, query, agentID).
		Scan(&b.ID, &b.Name, &b.OwnerID, &b.OwnerName, &b.Balance, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrBuyerNotFound, agentID)
		}
		return nil, fmt.Errorf(ErrMsgGetBuyer, agentID, err)
	}
	return &b, nil
}

// AdjustBalance applies delta atomically. A debit below zero fails with domain.ErrInsufficientFunds.
func (r *BuyerRepository) AdjustBalance(ctx context.Context, agentID string, delta int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	var balance int64
	err = tx.QueryRow(ctx, `
		UPDATE buyers SET balance = balance + $2
		WHERE agent_id = $1 AND balance + $2 >= 0
		RETURNING balance
	`, agentID, delta).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM buyers WHERE agent_id = $1)`, agentID).Scan(&exists); err != nil {
			return 0, fmt.Errorf(ErrMsgAdjustBalance, agentID, err)
		}
		if !exists {
			return 0, fmt.Errorf("%w: %s", domain.ErrBuyerNotFound, agentID)
		}
		return 0, fmt.Errorf("%w: %s", domain.ErrInsufficientFunds, agentID)
	}
	if err != nil {
		return 0, fmt.Errorf(ErrMsgAdjustBalance, agentID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf(ErrMsgCommitTx, err)
	}
	return balance, nil
}

// DeleteBuyer removes the buyer row
func (r *BuyerRepository) DeleteBuyer(ctx context.Context, agentID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM buyers WHERE agent_id = $1`, agentID)
	if err != nil {
		return fmt.Errorf(ErrMsgDeleteBuyer, agentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrBuyerNotFound, agentID)
	}
	return nil
}
