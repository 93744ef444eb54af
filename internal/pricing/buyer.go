package pricing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/logger"
	"github.com/osse101/BuyerMerchant_Go/internal/metrics"
	"github.com/osse101/BuyerMerchant_Go/internal/pricelist"
)

func newAgentID() string {
	return uuid.NewString()
}

// CreateBuyer hires a new buyer for ownerID with an empty price list.
func (s *service) CreateBuyer(ctx context.Context, ownerID, ownerName, name string) (*domain.Buyer, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, userError(domain.ErrInvalidInput, MsgBuyerNameRequired)
	}

	buyer := &domain.Buyer{
		ID:        s.newID(),
		Name:      name,
		OwnerID:   ownerID,
		OwnerName: ownerName,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.buyers.CreateBuyer(ctx, buyer); err != nil {
		return nil, fmt.Errorf("failed to create buyer: %w", err)
	}

	list := pricelist.New(buyer.ID, s.lists, s.listOpts)
	if err := s.save(ctx, list); err != nil {
		if delErr := s.buyers.DeleteBuyer(ctx, buyer.ID); delErr != nil {
			log.Error(LogMsgCompensationFailed, "agent_id", buyer.ID, "error", delErr)
		}
		return nil, err
	}

	log.Info(LogMsgBuyerCreated, "agent_id", buyer.ID, "name", buyer.Name)
	return buyer, nil
}

// GetBuyer returns the buyer record.
func (s *service) GetBuyer(ctx context.Context, agentID string) (*domain.Buyer, error) {
	return s.buyers.GetBuyer(ctx, agentID)
}

// Examine describes the buyer to anyone looking at it.
func (s *service) Examine(ctx context.Context, agentID string) (string, error) {
	buyer, err := s.buyers.GetBuyer(ctx, agentID)
	if err != nil {
		return "", err
	}
	title := cases.Title(language.Und, cases.NoLower)
	return fmt.Sprintf(MsgExamineFmt, title.String(buyer.Name), buyer.OwnerName), nil
}

// GiveCoins adds amount iron coins to the shop balance and returns the new balance.
func (s *service) GiveCoins(ctx context.Context, agentID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, userError(domain.ErrInvalidInput, MsgCoinsMustBePositive)
	}

	lock := s.locks.GetLock(agentID)
	lock.Lock()
	defer lock.Unlock()

	balance, err := s.buyers.AdjustBalance(ctx, agentID, amount)
	if err != nil {
		return 0, err
	}
	metrics.CoinsReceived.Add(float64(amount))
	logger.FromContext(ctx).Info(LogMsgCoinsGiven, "agent_id", agentID, "amount", amount, "balance", balance)
	return balance, nil
}

// DismissBuyer removes the buyer and its price list. Only the owner may do this.
func (s *service) DismissBuyer(ctx context.Context, agentID, performer string) error {
	lock := s.locks.GetLock(agentID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := s.ownedBuyer(ctx, agentID, performer); err != nil {
		return err
	}
	if err := s.lists.DeletePriceList(ctx, agentID); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistenceFailed, err)
	}
	if err := s.buyers.DeleteBuyer(ctx, agentID); err != nil {
		return err
	}
	s.locks.Forget(agentID)

	logger.FromContext(ctx).Info(LogMsgBuyerDismissed, "agent_id", agentID)
	return nil
}
