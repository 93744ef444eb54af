package pricing

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BuyerMerchant_Go/internal/catalog"
	"github.com/osse101/BuyerMerchant_Go/internal/concurrency"
	"github.com/osse101/BuyerMerchant_Go/internal/currency"
	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/pricelist"
)

// MockBuyerRepository implements repository.Buyer for testing
type MockBuyerRepository struct {
	mock.Mock
}

func (m *MockBuyerRepository) CreateBuyer(ctx context.Context, buyer *domain.Buyer) error {
	args := m.Called(ctx, buyer)
	return args.Error(0)
}

func (m *MockBuyerRepository) GetBuyer(ctx context.Context, agentID string) (*domain.Buyer, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Buyer), args.Error(1)
}

func (m *MockBuyerRepository) AdjustBalance(ctx context.Context, agentID string, delta int64) (int64, error) {
	args := m.Called(ctx, agentID, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBuyerRepository) DeleteBuyer(ctx context.Context, agentID string) error {
	args := m.Called(ctx, agentID)
	return args.Error(0)
}

// memListStore is an in-memory PriceListStore that counts saves
type memListStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	saves   int
	saveErr error
}

func newMemListStore() *memListStore {
	return &memListStore{data: make(map[string][]byte)}
}

func (m *memListStore) SavePriceList(_ context.Context, agentID string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.data[agentID] = append([]byte(nil), data...)
	return nil
}

func (m *memListStore) LoadPriceList(_ context.Context, agentID string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.data[agentID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoPriceListOnBuyer, agentID)
	}
	return d, nil
}

func (m *memListStore) DeletePriceList(_ context.Context, agentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, agentID)
	return nil
}

func (m *memListStore) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// memBuyers is a goroutine-safe repository.Buyer used by the concurrency tests
type memBuyers struct {
	mu     sync.Mutex
	buyers map[string]domain.Buyer
}

func newMemBuyers(buyers ...*domain.Buyer) *memBuyers {
	m := &memBuyers{buyers: make(map[string]domain.Buyer)}
	for _, b := range buyers {
		m.buyers[b.ID] = *b
	}
	return m
}

func (m *memBuyers) CreateBuyer(_ context.Context, buyer *domain.Buyer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buyers[buyer.ID] = *buyer
	return nil
}

func (m *memBuyers) GetBuyer(_ context.Context, agentID string) (*domain.Buyer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.buyers[agentID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrBuyerNotFound, agentID)
	}
	return &b, nil
}

func (m *memBuyers) AdjustBalance(_ context.Context, agentID string, delta int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.buyers[agentID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrBuyerNotFound, agentID)
	}
	if b.Balance+delta < 0 {
		return b.Balance, domain.ErrInsufficientFunds
	}
	b.Balance += delta
	m.buyers[agentID] = b
	return b.Balance, nil
}

func (m *memBuyers) DeleteBuyer(_ context.Context, agentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.buyers, agentID)
	return nil
}

// Test fixtures

const (
	testAgentID = "agent-1"
	testOwnerID = "owner-1"
	woodID      = uint8(14)

	tmplBackpack   int32 = 1
	tmplCopperCoin int32 = 2
	tmplLog        int32 = 9
	tmplMoonstone  int32 = 50
)

func createTestBuyer() *domain.Buyer {
	return &domain.Buyer{
		ID:        testAgentID,
		Name:      "Grimble",
		OwnerID:   testOwnerID,
		OwnerName: "Ann",
		Balance:   1000,
	}
}

func testCatalog() *catalog.Static {
	return catalog.NewStatic([]domain.ItemTemplate{
		{ID: tmplBackpack, Name: "Backpack", WeightGrams: 1500, Rarity: domain.RarityRare, Category: "container"},
		{ID: tmplCopperCoin, Name: "copper coin", WeightGrams: 10, Category: "coin"},
		{ID: tmplLog, Name: "log", WeightGrams: 24000, Category: "resource"},
		{ID: tmplMoonstone, Name: "moonstone", WeightGrams: 50, Rarity: domain.RarityFantastic, Category: "gem"},
	}, nil)
}

func newTestService(buyers *MockBuyerRepository, lists *memListStore, opts pricelist.Options) *service {
	return &service{
		buyers:   buyers,
		lists:    lists,
		catalog:  testCatalog(),
		coins:    currency.MustConverter(currency.DefaultRatios()),
		locks:    concurrency.NewLockManager(),
		listOpts: opts,
		newID:    func() string { return "agent-new" },
	}
}

// seedList stores a list for agentID holding entries in slot order, then resets the save counter.
func seedList(t *testing.T, lists *memListStore, agentID string, opts pricelist.Options, entries ...pricelist.Entry) {
	t.Helper()
	p := pricelist.New(agentID, lists, opts)
	for _, e := range entries {
		slot, err := p.AddItem(e.TemplateID, e.Material)
		require.NoError(t, err)
		require.NoError(t, p.UpdateItem(slot, e))
	}
	require.NoError(t, p.Save(context.Background()))
	lists.mu.Lock()
	lists.saves = 0
	lists.mu.Unlock()
}

// storedList loads the list currently held by the store.
func storedList(t *testing.T, lists *memListStore, agentID string) *pricelist.PriceList {
	t.Helper()
	p, err := pricelist.Load(context.Background(), agentID, lists, pricelist.DefaultOptions())
	require.NoError(t, err)
	return p
}

func entry(templateID int32, quality float32, price int64) pricelist.Entry {
	e := pricelist.NewEntry(templateID, woodID)
	e.QualityLevel = quality
	e.Price = price
	return e
}

// expectOwner wires the buyer lookup every owner-checked operation performs.
func expectOwner(buyers *MockBuyerRepository) *domain.Buyer {
	b := createTestBuyer()
	buyers.On("GetBuyer", mock.Anything, testAgentID).Return(b, nil)
	return b
}
