package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/BuyerMerchant_Go/internal/catalog"
	"github.com/osse101/BuyerMerchant_Go/internal/concurrency"
	"github.com/osse101/BuyerMerchant_Go/internal/currency"
	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/logger"
	"github.com/osse101/BuyerMerchant_Go/internal/metrics"
	"github.com/osse101/BuyerMerchant_Go/internal/pricelist"
	"github.com/osse101/BuyerMerchant_Go/internal/repository"
)

// Service defines the buyer merchant operations: managing buyers, the owner's
// price list form, and trade-time pricing.
type Service interface {
	CreateBuyer(ctx context.Context, ownerID, ownerName, name string) (*domain.Buyer, error)
	GetBuyer(ctx context.Context, agentID string) (*domain.Buyer, error)
	Examine(ctx context.Context, agentID string) (string, error)
	GiveCoins(ctx context.Context, agentID string, amount int64) (int64, error)
	DismissBuyer(ctx context.Context, agentID, performer string) error

	Render(ctx context.Context, agentID, performer string, page int) (*Form, error)
	Apply(ctx context.Context, agentID, performer string, fields FieldValues) (*Outcome, error)
	ChooseItem(ctx context.Context, agentID, performer, query string) (*ChoiceForm, error)
	ConfirmItem(ctx context.Context, agentID, performer string, fields FieldValues) (*Outcome, error)

	PriceFor(ctx context.Context, agentID string, offer domain.Offer) (pricelist.Entry, error)
	QuoteOffer(ctx context.Context, agentID string, offer domain.Offer, quantity int) (*Quote, error)
	Purchase(ctx context.Context, agentID string, offer domain.Offer, quantity int) (*Quote, error)
}

type service struct {
	buyers   repository.Buyer
	lists    repository.PriceListStore
	catalog  catalog.Catalog
	coins    *currency.Converter
	locks    *concurrency.LockManager
	listOpts pricelist.Options
	newID    func() string
}

// NewService creates a new pricing service
func NewService(buyers repository.Buyer, lists repository.PriceListStore, cat catalog.Catalog, coins *currency.Converter, listOpts pricelist.Options) Service {
	return &service{
		buyers:   buyers,
		lists:    lists,
		catalog:  cat,
		coins:    coins,
		locks:    concurrency.NewLockManager(),
		listOpts: listOpts,
		newID:    newAgentID,
	}
}

// ownedBuyer loads the buyer and checks that performer owns it.
func (s *service) ownedBuyer(ctx context.Context, agentID, performer string) (*domain.Buyer, error) {
	buyer, err := s.buyers.GetBuyer(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if buyer.OwnerID != performer {
		logger.FromContext(ctx).Warn(LogMsgNotOwner, "agent_id", agentID)
		return nil, userError(domain.ErrNotOwner, MsgNotOwnerFmt, buyer.Name)
	}
	return buyer, nil
}

// loadList reads the buyer's price list, translating a missing list into a player message.
func (s *service) loadList(ctx context.Context, buyer *domain.Buyer) (*pricelist.PriceList, error) {
	list, err := pricelist.Load(ctx, buyer.ID, s.lists, s.listOpts)
	if err != nil {
		if errors.Is(err, domain.ErrNoPriceListOnBuyer) {
			return nil, userError(err, MsgNoPriceListFmt, buyer.Name)
		}
		return nil, err
	}
	return list, nil
}

// save persists list and records how long it took.
func (s *service) save(ctx context.Context, list *pricelist.PriceList) error {
	start := time.Now()
	err := list.Save(ctx)
	metrics.PriceListSaveDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgPersistFailed, "agent_id", list.AgentID(), "error", err)
		return userError(err, MsgPersistenceFailed)
	}
	logger.FromContext(ctx).Debug(LogMsgPriceListPersisted, "agent_id", list.AgentID(), "entries", list.Size())
	return nil
}

// template resolves a template, falling back to a placeholder when the catalog misses.
func (s *service) template(ctx context.Context, templateID int32) (domain.ItemTemplate, bool) {
	t, err := s.catalog.Lookup(ctx, templateID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgTemplateLookupFail, "template_id", templateID, "error", err)
		return domain.ItemTemplate{ID: templateID, Name: fmt.Sprintf(MsgUnknownTemplateFmt, templateID)}, false
	}
	return t, true
}

// names adapts the catalog to the price list's sort key.
func (s *service) names(ctx context.Context) pricelist.NameFunc {
	return func(templateID int32) string {
		t, _ := s.template(ctx, templateID)
		return t.Name
	}
}
