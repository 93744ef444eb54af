// Package sqlite implements the repositories on SQLite through sqlx, for
// single-node deployments and fast tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/logger"
	"github.com/osse101/BuyerMerchant_Go/internal/repository"
)

// Store implements the buyer, template and price list repositories on one database.
type Store struct {
	db *sqlx.DB
}

var (
	_ repository.Buyer          = (*Store)(nil)
	_ repository.Template       = (*Store)(nil)
	_ repository.PriceListStore = (*Store)(nil)
)

// NewStore wraps an open, migrated database.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func safeRollback(ctx context.Context, tx *sqlx.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
	}
}

// CreateBuyer inserts a new buyer row
func (s *Store) CreateBuyer(ctx context.Context, buyer *domain.Buyer) error {
	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO buyers (agent_id, name, owner_id, owner_name, balance, created_at)
		VALUES (:agent_id, :name, :owner_id, :owner_name, :balance, :created_at)
	`, buyer)
	if err != nil {
		return fmt.Errorf(ErrMsgCreateBuyer, err)
	}
	return nil
}

// GetBuyer fetches a buyer by agent id
func (s *Store) GetBuyer(ctx context.Context, agentID string) (*domain.Buyer, error) {
	var b domain.Buyer
	err := s.db.GetContext(ctx, &b, `
		SELECT agent_id, name, owner_id, owner_name, balance, created_at
		FROM buyers WHERE agent_id = ?
	`, agentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrBuyerNotFound, agentID)
		}
		return nil, fmt.Errorf(ErrMsgGetBuyer, agentID, err)
	}
	return &b, nil
}

// AdjustBalance adds delta to the balance. A debit below zero fails with domain.ErrInsufficientFunds.
func (s *Store) AdjustBalance(ctx context.Context, agentID string, delta int64) (int64, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBeginTx, err)
	}
	defer safeRollback(ctx, tx)

	var balance int64
	err = tx.GetContext(ctx, &balance, `
		UPDATE buyers SET balance = balance + ?
		WHERE agent_id = ? AND balance + ? >= 0
		RETURNING balance
	`, delta, agentID, delta)
	if errors.Is(err, sql.ErrNoRows) {
		var n int
		if err := tx.GetContext(ctx, &n, `SELECT COUNT(*) FROM buyers WHERE agent_id = ?`, agentID); err != nil {
			return 0, fmt.Errorf(ErrMsgAdjustBalance, agentID, err)
		}
		if n == 0 {
			return 0, fmt.Errorf("%w: %s", domain.ErrBuyerNotFound, agentID)
		}
		return 0, fmt.Errorf("%w: %s", domain.ErrInsufficientFunds, agentID)
	}
	if err != nil {
		return 0, fmt.Errorf(ErrMsgAdjustBalance, agentID, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf(ErrMsgCommitTx, err)
	}
	return balance, nil
}

// DeleteBuyer removes the buyer row
func (s *Store) DeleteBuyer(ctx context.Context, agentID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM buyers WHERE agent_id = ?`, agentID)
	if err != nil {
		return fmt.Errorf(ErrMsgDeleteBuyer, agentID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrBuyerNotFound, agentID)
	}
	return nil
}

// GetTemplate fetches a single item template
func (s *Store) GetTemplate(ctx context.Context, templateID int32) (*domain.ItemTemplate, error) {
	var t domain.ItemTemplate
	err := s.db.GetContext(ctx, &t, `
		SELECT template_id, name, weight_grams, rarity, category
		FROM item_templates WHERE template_id = ?
	`, templateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrTemplateNotFound, templateID)
		}
		return nil, fmt.Errorf(ErrMsgGetTemplate, templateID, err)
	}
	return &t, nil
}

// ListTemplates returns every template ordered by id
func (s *Store) ListTemplates(ctx context.Context) ([]domain.ItemTemplate, error) {
	var templates []domain.ItemTemplate
	err := s.db.SelectContext(ctx, &templates, `
		SELECT template_id, name, weight_grams, rarity, category
		FROM item_templates ORDER BY template_id
	`)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListTemplates, err)
	}
	return templates, nil
}

// UpsertTemplates inserts or updates templates in one transaction
func (s *Store) UpsertTemplates(ctx context.Context, templates []domain.ItemTemplate) (int, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBeginTx, err)
	}
	defer safeRollback(ctx, tx)

	for _, t := range templates {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO item_templates (template_id, name, weight_grams, rarity, category, updated_at)
			VALUES (:template_id, :name, :weight_grams, :rarity, :category, CURRENT_TIMESTAMP)
			ON CONFLICT (template_id) DO UPDATE SET
				name = excluded.name,
				weight_grams = excluded.weight_grams,
				rarity = excluded.rarity,
				category = excluded.category,
				updated_at = CURRENT_TIMESTAMP
		`, t)
		if err != nil {
			return 0, fmt.Errorf(ErrMsgUpsertTemplates, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf(ErrMsgCommitTx, err)
	}
	return len(templates), nil
}

// SavePriceList replaces the stored list with a single upsert
func (s *Store) SavePriceList(ctx context.Context, agentID string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO price_lists (agent_id, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (agent_id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, agentID, data)
	if err != nil {
		return fmt.Errorf(ErrMsgSavePriceList, agentID, err)
	}
	return nil
}

// LoadPriceList returns the stored list or domain.ErrNoPriceListOnBuyer
func (s *Store) LoadPriceList(ctx context.Context, agentID string) ([]byte, error) {
	var data []byte
	err := s.db.GetContext(ctx, &data, `SELECT data FROM price_lists WHERE agent_id = ?`, agentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoPriceListOnBuyer, agentID)
		}
		return nil, fmt.Errorf(ErrMsgLoadPriceList, agentID, err)
	}
	return data, nil
}

// DeletePriceList removes the stored list; deleting a missing list is not an error
func (s *Store) DeletePriceList(ctx context.Context, agentID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM price_lists WHERE agent_id = ?`, agentID); err != nil {
		return fmt.Errorf(ErrMsgDeletePriceList, agentID, err)
	}
	return nil
}
