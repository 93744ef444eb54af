package repository

import (
	"context"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
)

// Template defines the interface for item template persistence
type Template interface {
	GetTemplate(ctx context.Context, templateID int32) (*domain.ItemTemplate, error)
	ListTemplates(ctx context.Context) ([]domain.ItemTemplate, error)
	UpsertTemplates(ctx context.Context, templates []domain.ItemTemplate) (int, error)
}
