package repository

import (
	"context"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
)

// Buyer defines the interface for buyer (shop) persistence
type Buyer interface {
	CreateBuyer(ctx context.Context, buyer *domain.Buyer) error
	GetBuyer(ctx context.Context, agentID string) (*domain.Buyer, error)
	// AdjustBalance adds delta to the shop balance and returns the new balance.
	// A debit that would take the balance below zero fails with domain.ErrInsufficientFunds.
	AdjustBalance(ctx context.Context, agentID string, delta int64) (int64, error)
	DeleteBuyer(ctx context.Context, agentID string) error
}
