package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/logger"
	"github.com/osse101/BuyerMerchant_Go/internal/repository"
)

// TemplateRepository implements repository.Template for PostgreSQL
type TemplateRepository struct {
	db *pgxpool.Pool
}

var _ repository.Template = (*TemplateRepository)(nil)

// NewTemplateRepository creates a new TemplateRepository
func NewTemplateRepository(db *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// GetTemplate fetches a single item template
func (r *TemplateRepository) GetTemplate(ctx context.Context, templateID int32) (*domain.ItemTemplate, error) {
	query := `
		SELECT template_id, name, weight_grams, rarity, category
		FROM item_templates
		WHERE template_id = $1
	`
	var t domain.ItemTemplate
	err := r.db.QueryRow(ctx, query, templateID).
		Scan(&t.ID, &t.Name, &t.WeightGrams, &t.Rarity, &t.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrTemplateNotFound, templateID)
		}
		return nil, fmt.Errorf(ErrMsgGetTemplate, templateID, err)
	}
	return &t, nil
}

// ListTemplates returns every template ordered by id
func (r *TemplateRepository) ListTemplates(ctx context.Context) ([]domain.ItemTemplate, error) {
	rows, err := r.db.Query(ctx, `
		SELECT template_id, name, weight_grams, rarity, category
		FROM item_templates
		ORDER BY template_id
	`)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListTemplates, err)
	}
	defer rows.Close()

	var templates []domain.ItemTemplate
	for rows.Next() {
		var t domain.ItemTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.WeightGrams, &t.Rarity, &t.Category); err != nil {
			return nil, fmt.Errorf(ErrMsgListTemplates, err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListTemplates, err)
	}
	return templates, nil
}

// UpsertTemplates inserts or updates templates in one transaction and returns how many were written
func (r *TemplateRepository) UpsertTemplates(ctx context.Context, templates []domain.ItemTemplate) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, t := range templates {
		batch.Queue(`
			INSERT INTO item_templates (template_id, name, weight_grams, rarity, category, updated_at)
			VALUES ($1, $2, $3, $4, $5, NOW())
			ON CONFLICT (template_id) DO UPDATE SET
				name = EXCLUDED.name,
				weight_grams = EXCLUDED.weight_grams,
				rarity = EXCLUDED.rarity,
				category = EXCLUDED.category,
				updated_at = NOW()
		`, t.ID, t.Name, t.WeightGrams, t.Rarity, t.Category)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf(ErrMsgUpsertTemplates, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf(ErrMsgCommitTx, err)
	}
	logger.FromContext(ctx).Info(LogMsgTemplatesSaved, "count", len(templates))
	return len(templates), nil
}
