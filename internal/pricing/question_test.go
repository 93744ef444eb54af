package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/pricelist"
)

func fieldValue(t *testing.T, row Row, key string) string {
	t.Helper()
	for _, f := range row.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	t.Fatalf("field %q not in row %d", key, row.Slot)
	return ""
}

func TestRender_EmptyList(t *testing.T) {
	// ARRANGE
	buyers := &MockBuyerRepository{}
	lists := newMemListStore()
	svc := newTestService(buyers, lists, pricelist.DefaultOptions())
	expectOwner(buyers)
	seedList(t, lists, testAgentID, pricelist.DefaultOptions())

	// ACT
	form, err := svc.Render(context.Background(), testAgentID, testOwnerID, 0)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, MsgEmptyPriceList, form.EmptyMessage)
	assert.Empty(t, form.Rows)
	assert.Equal(t, "Price list for Grimble", form.Title)
	require.Len(t, form.Controls, 2)
	assert.Equal(t, KeySort, form.Controls[0].Key)
	assert.Equal(t, KeyNew, form.Controls[1].Key)
}

func TestRender_RowFields(t *testing.T) {
	// ARRANGE
	buyers := &MockBuyerRepository{}
	lists := newMemListStore()
	svc := newTestService(buyers, lists, pricelist.DefaultOptions())
	expectOwner(buyers)
	seedList(t, lists, testAgentID, pricelist.DefaultOptions(),
		entry(tmplLog, 35, 1122334455),
		entry(tmplCopperCoin, 1, pricelist.Unauthorised),
		entry(tmplBackpack, 12.5, 0),
	)

	// ACT
	form, err := svc.Render(context.Background(), testAgentID, testOwnerID, 0)

	// ASSERT
	require.NoError(t, err)
	require.Len(t, form.Rows, 3)

	logRow := form.Rows[0]
	assert.Equal(t, "log", logRow.Label)
	assert.Equal(t, "wood", logRow.Material)
	assert.Equal(t, "24kg", logRow.Weight)
	assert.Empty(t, logRow.Rarity)
	assert.Equal(t, "35", fieldValue(t, logRow, "0q"))
	assert.Equal(t, "1122", fieldValue(t, logRow, "0g"))
	assert.Equal(t, "33", fieldValue(t, logRow, "0s"))
	assert.Equal(t, "44", fieldValue(t, logRow, "0c"))
	assert.Equal(t, "55", fieldValue(t, logRow, "0i"))
	assert.Equal(t, "1", fieldValue(t, logRow, "0p"))

	coinRow := form.Rows[1]
	assert.Equal(t, "0.01kg", coinRow.Weight)
	assert.Empty(t, fieldValue(t, coinRow, "1g"), "unpriced rows show blank denominations")
	assert.Empty(t, fieldValue(t, coinRow, "1i"))

	packRow := form.Rows[2]
	assert.Equal(t, "1.5kg", packRow.Weight)
	assert.Equal(t, "rare", packRow.Rarity)
	assert.Equal(t, "12.5", fieldValue(t, packRow, "2q"))
	assert.Equal(t, "0", fieldValue(t, packRow, "2g"))
}

func TestRender_UnknownTemplateUsesPlaceholder(t *testing.T) {
	buyers := &MockBuyerRepository{}
	lists := newMemListStore()
	svc := newTestService(buyers, lists, pricelist.DefaultOptions())
	expectOwner(buyers)
	seedList(t, lists, testAgentID, pricelist.DefaultOptions(), entry(777, 1, 10))

	form, err := svc.Render(context.Background(), testAgentID, testOwnerID, 0)

	require.NoError(t, err)
	require.Len(t, form.Rows, 1)
	assert.Equal(t, "unknown item #777", form.Rows[0].Label)
	assert.Equal(t, UnknownWeight, form.Rows[0].Weight)
}

func TestRender_Pagination(t *testing.T) {
	buyers := &MockBuyerRepository{}
	lists := newMemListStore()
	svc := newTestService(buyers, lists, pricelist.DefaultOptions())
	expectOwner(buyers)
	var entries []pricelist.Entry
	for i := 0; i < 12; i++ {
		entries = append(entries, entry(tmplLog, float32(i+1), int64(i)))
	}
	seedList(t, lists, testAgentID, pricelist.DefaultOptions(), entries...)

	tests := []struct {
		name       string
		page       int
		wantPage   int
		wantRows   int
		wantLabels []string
	}{
		{"first page", 0, 0, 10, []string{LabelSort, LabelNew, LabelNext}},
		{"second page", 1, 1, 2, []string{LabelSort, LabelNew, LabelPrevious}},
		{"past the end clamps", 7, 1, 2, []string{LabelSort, LabelNew, LabelPrevious}},
		{"negative clamps", -1, 0, 10, []string{LabelSort, LabelNew, LabelNext}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, err := svc.Render(context.Background(), testAgentID, testOwnerID, tt.page)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, form.Page)
			assert.Equal(t, 2, form.PageCount)
			assert.Len(t, form.Rows, tt.wantRows)
			var labels []string
			for _, c := range form.Controls {
				labels = append(labels, c.Label)
			}
			assert.Equal(t, tt.wantLabels, labels)
		})
	}
}

func TestRender_Deterministic(t *testing.T) {
	buyers := &MockBuyerRepository{}
	lists := newMemListStore()
	svc := newTestService(buyers, lists, pricelist.DefaultOptions())
	expectOwner(buyers)
	seedList(t, lists, testAgentID, pricelist.DefaultOptions(),
		entry(tmplLog, 35, 100), entry(tmplMoonstone, 80, 5000))

	first, err := svc.Render(context.Background(), testAgentID, testOwnerID, 0)
	require.NoError(t, err)
	second, err := svc.Render(context.Background(), testAgentID, testOwnerID, 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 0, lists.saveCount(), "rendering never writes")
}

func TestRender_NotOwner(t *testing.T) {
	buyers := &MockBuyerRepository{}
	svc := newTestService(buyers, newMemListStore(), pricelist.DefaultOptions())
	expectOwner(buyers)

	_, err := svc.Render(context.Background(), testAgentID, "someone-else", 0)

	require.ErrorIs(t, err, domain.ErrNotOwner)
	msg, ok := UserMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "You don't own Grimble.", msg)
}

func TestRender_NoPriceList(t *testing.T) {
	buyers := &MockBuyerRepository{}
	svc := newTestService(buyers, newMemListStore(), pricelist.DefaultOptions())
	expectOwner(buyers)

	_, err := svc.Render(context.Background(), testAgentID, testOwnerID, 0)

	require.ErrorIs(t, err, domain.ErrNoPriceListOnBuyer)
	msg, _ := UserMessage(err)
	assert.Contains(t, msg, "Grimble has no price list")
}

func TestRender_BuyerNotFound(t *testing.T) {
	buyers := &MockBuyerRepository{}
	svc := newTestService(buyers, newMemListStore(), pricelist.DefaultOptions())
	buyers.On("GetBuyer", mock.Anything, "missing").Return(nil, domain.ErrBuyerNotFound)

	_, err := svc.Render(context.Background(), "missing", testOwnerID, 0)

	assert.ErrorIs(t, err, domain.ErrBuyerNotFound)
}

func TestFormatWeight(t *testing.T) {
	tests := []struct {
		grams int32
		want  string
	}{
		{24000, "24kg"},
		{10, "0.01kg"},
		{1500, "1.5kg"},
		{0, "0kg"},
		{1234, "1.23kg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatWeight(tt.grams))
	}
}
