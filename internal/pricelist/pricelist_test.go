package pricelist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
)

// memStore is an in-memory PriceListStore
type memStore struct {
	data    map[string][]byte
	saves   int
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) SavePriceList(_ context.Context, agentID string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.data[agentID] = append([]byte(nil), data...)
	return nil
}

func (m *memStore) LoadPriceList(_ context.Context, agentID string) ([]byte, error) {
	d, ok := m.data[agentID]
	if !ok {
		return nil, domain.ErrNoPriceListOnBuyer
	}
	return d, nil
}

func (m *memStore) DeletePriceList(_ context.Context, agentID string) error {
	delete(m.data, agentID)
	return nil
}

const (
	tmplLog        int32 = 9
	tmplBackpack   int32 = 1
	tmplCopperCoin int32 = 2
)

func testNames(id int32) string {
	switch id {
	case tmplLog:
		return "log"
	case tmplBackpack:
		return "Backpack"
	case tmplCopperCoin:
		return "copper coin"
	}
	return "unknown"
}

func TestAddItem_Defaults(t *testing.T) {
	p := New("agent-1", newMemStore(), DefaultOptions())

	slot, err := p.AddItem(tmplLog, 14)

	require.NoError(t, err)
	assert.Equal(t, 0, slot)
	e, err := p.GetBySlot(slot)
	require.NoError(t, err)
	assert.Equal(t, tmplLog, e.TemplateID)
	assert.Equal(t, uint8(14), e.Material)
	assert.Equal(t, float32(1), e.QualityLevel)
	assert.Equal(t, Unauthorised, e.Price)
	assert.Equal(t, int32(1), e.MinimumPurchase)
	assert.False(t, e.Authorised())
	assert.Equal(t, 1, p.Size())
}

func TestAddItem_ReusesLowestFreeSlot(t *testing.T) {
	p := New("agent-1", newMemStore(), DefaultOptions())
	for i := 0; i < 3; i++ {
		_, err := p.AddItem(tmplLog, 1)
		require.NoError(t, err)
	}

	p.RemoveItem(1)
	p.RemoveItem(0)
	slot, err := p.AddItem(tmplBackpack, 0)

	require.NoError(t, err)
	assert.Equal(t, 0, slot)
	assert.Equal(t, 2, p.Size())
}

func TestAddItem_GrowsUntilFull(t *testing.T) {
	p := New("agent-1", newMemStore(), Options{EntriesPerPage: 2, MaxPages: 2})

	for i := 0; i < 4; i++ {
		slot, err := p.AddItem(tmplLog, 1)
		require.NoError(t, err)
		assert.Equal(t, i, slot)
	}
	assert.Equal(t, 2, p.Pages())
	assert.Equal(t, 4, p.Capacity())

	_, err := p.AddItem(tmplLog, 1)

	assert.ErrorIs(t, err, domain.ErrPriceListFull)
	assert.Equal(t, 4, p.Size())
}

func TestAddItem_PageAllocationFails(t *testing.T) {
	allocErr := errors.New("no room in inventory")
	p := New("agent-1", newMemStore(), Options{
		EntriesPerPage: 1,
		MaxPages:       3,
		PageAllocator:  func(int) error { return allocErr },
	})
	_, err := p.AddItem(tmplLog, 1)
	require.NoError(t, err)

	_, err = p.AddItem(tmplLog, 1)

	assert.ErrorIs(t, err, domain.ErrPageNotAdded)
	assert.ErrorIs(t, err, allocErr)
	assert.Equal(t, 1, p.Pages())
}

func TestRemoveItem(t *testing.T) {
	p := New("agent-1", newMemStore(), DefaultOptions())
	slot, _ := p.AddItem(tmplLog, 1)

	p.RemoveItem(slot)
	p.RemoveItem(slot)
	p.RemoveItem(999)

	_, err := p.GetBySlot(slot)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, p.Size())
}

func TestUpdateItem(t *testing.T) {
	p := New("agent-1", newMemStore(), DefaultOptions())
	slot, _ := p.AddItem(tmplLog, 1)

	t.Run("replaces rule", func(t *testing.T) {
		e, _ := p.GetBySlot(slot)
		e.Price = 500
		e.QualityLevel = 40

		require.NoError(t, p.UpdateItem(slot, e))

		got, _ := p.GetBySlot(slot)
		assert.Equal(t, int64(500), got.Price)
		assert.Equal(t, float32(40), got.QualityLevel)
	})

	t.Run("rejects out of range quality", func(t *testing.T) {
		e, _ := p.GetBySlot(slot)
		e.QualityLevel = 101

		err := p.UpdateItem(slot, e)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("empty slot", func(t *testing.T) {
		err := p.UpdateItem(7, NewEntry(tmplLog, 1))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAll_SnapshotAndRestart(t *testing.T) {
	p := New("agent-1", newMemStore(), DefaultOptions())
	_, _ = p.AddItem(tmplLog, 1)
	_, _ = p.AddItem(tmplBackpack, 1)
	_, _ = p.AddItem(tmplCopperCoin, 1)
	p.RemoveItem(1)

	seq := p.All()
	_, _ = p.AddItem(tmplBackpack, 2)

	var first, second []int
	for slot := range seq {
		first = append(first, slot)
	}
	for slot := range seq {
		second = append(second, slot)
	}

	assert.Equal(t, []int{0, 2}, first)
	assert.Equal(t, first, second)
}

func TestSort_NameThenQualityDescending(t *testing.T) {
	p := New("agent-1", newMemStore(), DefaultOptions())
	add := func(id int32, q float32) {
		slot, err := p.AddItem(id, 1)
		require.NoError(t, err)
		e, _ := p.GetBySlot(slot)
		e.QualityLevel = q
		require.NoError(t, p.UpdateItem(slot, e))
	}
	add(tmplLog, 12)
	add(tmplCopperCoin, 1)
	add(tmplLog, 35)
	add(tmplBackpack, 1)

	p.Sort(testNames)

	var got []string
	var qualities []float32
	for _, e := range p.All() {
		got = append(got, testNames(e.TemplateID))
		qualities = append(qualities, e.QualityLevel)
	}
	assert.Equal(t, []string{"Backpack", "copper coin", "log", "log"}, got)
	assert.Equal(t, []float32{1, 1, 35, 12}, qualities)
}

func TestSort_QualityAscending(t *testing.T) {
	opts := DefaultOptions()
	opts.QualityOrder = QualityAscending
	p := New("agent-1", newMemStore(), opts)
	for _, q := range []float32{50, 10, 30} {
		slot, _ := p.AddItem(tmplLog, 1)
		e, _ := p.GetBySlot(slot)
		e.QualityLevel = q
		require.NoError(t, p.UpdateItem(slot, e))
	}

	p.Sort(testNames)

	var qualities []float32
	for _, e := range p.All() {
		qualities = append(qualities, e.QualityLevel)
	}
	assert.Equal(t, []float32{10, 30, 50}, qualities)
}

func TestSort_CompactsAndIsIdempotent(t *testing.T) {
	store := newMemStore()
	p := New("agent-1", store, DefaultOptions())
	for _, id := range []int32{tmplLog, tmplCopperCoin, tmplBackpack, tmplLog} {
		_, _ = p.AddItem(id, 1)
	}
	p.RemoveItem(0)
	p.RemoveItem(2)

	require.NoError(t, p.SortAndSave(context.Background(), testNames))
	once := store.data["agent-1"]
	require.NoError(t, p.SortAndSave(context.Background(), testNames))

	assert.Equal(t, once, store.data["agent-1"])
	var slots []int
	for slot := range p.All() {
		slots = append(slots, slot)
	}
	assert.Equal(t, []int{0, 1}, slots)
	assert.False(t, p.Dirty())
}

func TestParseQualityOrder(t *testing.T) {
	assert.Equal(t, QualityAscending, ParseQualityOrder("asc"))
	assert.Equal(t, QualityDescending, ParseQualityOrder("desc"))
	assert.Equal(t, QualityDescending, ParseQualityOrder(""))
}

func TestClampQuality(t *testing.T) {
	assert.Equal(t, float32(100), ClampQuality(150))
	assert.Equal(t, float32(1), ClampQuality(-5))
	assert.Equal(t, float32(42.5), ClampQuality(42.5))
}

func TestEntry_Accepts(t *testing.T) {
	e := NewEntry(tmplLog, 14)
	assert.False(t, e.Accepts(tmplLog, 14, 50), "unauthorised entries never match")

	e.Price = 10
	e.QualityLevel = 30
	assert.True(t, e.Accepts(tmplLog, 14, 30))
	assert.False(t, e.Accepts(tmplLog, 14, 29.9))
	assert.False(t, e.Accepts(tmplLog, 15, 50))
	assert.False(t, e.Accepts(tmplBackpack, 14, 50))
}
