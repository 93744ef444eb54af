package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/logger"
	"github.com/osse101/BuyerMerchant_Go/internal/metrics"
	"github.com/osse101/BuyerMerchant_Go/internal/pricelist"
)

// Quote is what a buyer would pay for a lot of offered items.
type Quote struct {
	AgentID   string `json:"agent_id"`
	Slot      int    `json:"slot"`
	Item      string `json:"item"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Total     int64  `json:"total"`
	Display   string `json:"display"`
	Balance   int64  `json:"balance"`
}

// PriceFor returns the entry that prices offer, or domain.ErrNoMatch.
func (s *service) PriceFor(ctx context.Context, agentID string, offer domain.Offer) (pricelist.Entry, error) {
	lock := s.locks.GetLock(agentID)
	lock.RLock()
	defer lock.RUnlock()

	buyer, err := s.buyers.GetBuyer(ctx, agentID)
	if err != nil {
		return pricelist.Entry{}, err
	}
	_, e, err := s.match(ctx, buyer, offer)
	return e, err
}

func (s *service) match(ctx context.Context, buyer *domain.Buyer, offer domain.Offer) (int, pricelist.Entry, error) {
	list, err := s.loadList(ctx, buyer)
	if err != nil {
		return -1, pricelist.Entry{}, err
	}

	slot, e, ok := list.BestMatch(offer.TemplateID, offer.Material, offer.Quality)
	if !ok {
		metrics.TradeLookups.WithLabelValues(metrics.OutcomeNoMatch).Inc()
		return -1, pricelist.Entry{}, userError(
			fmt.Errorf("%w: template %d material %d quality %g", domain.ErrNoMatch, offer.TemplateID, offer.Material, offer.Quality),
			MsgNoMatchFmt, buyer.Name)
	}
	metrics.TradeLookups.WithLabelValues(metrics.OutcomeMatched).Inc()
	return slot, e, nil
}

// QuoteOffer prices quantity items against the matching entry, its minimum
// purchase and the shop balance. Nothing is changed.
func (s *service) QuoteOffer(ctx context.Context, agentID string, offer domain.Offer, quantity int) (*Quote, error) {
	lock := s.locks.GetLock(agentID)
	lock.RLock()
	defer lock.RUnlock()

	q, _, err := s.quote(ctx, agentID, offer, quantity)
	return q, err
}

func (s *service) quote(ctx context.Context, agentID string, offer domain.Offer, quantity int) (*Quote, *domain.Buyer, error) {
	if quantity <= 0 {
		return nil, nil, userError(domain.ErrInvalidInput, MsgQuantityMustBePositive)
	}
	if quantity > MaxTradeQuantity {
		return nil, nil, userError(domain.ErrInvalidInput, MsgQuantityTooLargeFmt, MaxTradeQuantity)
	}

	buyer, err := s.buyers.GetBuyer(ctx, agentID)
	if err != nil {
		return nil, nil, err
	}
	slot, e, err := s.match(ctx, buyer, offer)
	if err != nil {
		return nil, nil, err
	}

	tmpl, _ := s.template(ctx, e.TemplateID)
	if quantity < int(e.MinimumPurchase) {
		metrics.TradeLookups.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, nil, userError(domain.ErrBelowMinimumPurchase, MsgBelowMinimumFmt, buyer.Name, tmpl.Name, e.MinimumPurchase)
	}

	// reject lots whose total would wrap int64
	if e.Price > 0 && int64(quantity) > math.MaxInt64/e.Price {
		metrics.TradeLookups.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, nil, userError(fmt.Errorf("%w: total overflows", domain.ErrInvalidInput), MsgInsufficientFundsFmt, buyer.Name)
	}
	total := e.Price * int64(quantity)
	if total > buyer.Balance {
		metrics.TradeLookups.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, nil, userError(domain.ErrInsufficientFunds, MsgInsufficientFundsFmt, buyer.Name)
	}

	return &Quote{
		AgentID:   agentID,
		Slot:      slot,
		Item:      tmpl.Name,
		UnitPrice: e.Price,
		Quantity:  quantity,
		Total:     total,
		Display:   s.coins.Format(total),
		Balance:   buyer.Balance,
	}, buyer, nil
}

// Purchase quotes the offer and debits the shop balance by the total.
func (s *service) Purchase(ctx context.Context, agentID string, offer domain.Offer, quantity int) (*Quote, error) {
	lock := s.locks.GetLock(agentID)
	lock.Lock()
	defer lock.Unlock()

	q, buyer, err := s.quote(ctx, agentID, offer, quantity)
	if err != nil {
		return nil, err
	}

	balance, err := s.buyers.AdjustBalance(ctx, agentID, -q.Total)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return nil, userError(err, MsgInsufficientFundsFmt, buyer.Name)
		}
		return nil, err
	}
	q.Balance = balance

	metrics.CoinsSpent.Add(float64(q.Total))
	logger.FromContext(ctx).Info(LogMsgPurchaseCompleted,
		"agent_id", agentID, "item", q.Item, "quantity", q.Quantity, "total", q.Total)
	return q, nil
}
