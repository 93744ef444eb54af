package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/pricelist"
)

func applyOne(t *testing.T, start pricelist.Entry, fields FieldValues) (pricelist.Entry, *Outcome) {
	t.Helper()
	buyers := &MockBuyerRepository{}
	lists := newMemListStore()
	svc := newTestService(buyers, lists, pricelist.DefaultOptions())
	expectOwner(buyers)
	seedList(t, lists, testAgentID, pricelist.DefaultOptions(), start)

	out, err := svc.Apply(context.Background(), testAgentID, testOwnerID, fields)
	require.NoError(t, err)
	assert.Equal(t, 1, lists.saveCount(), "apply saves exactly once")

	e, err := storedList(t, lists, testAgentID).GetBySlot(0)
	require.NoError(t, err)
	return e, out
}

func TestApply_Quality(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		want     float32
		wantMsgs []string
	}{
		{"in range", "42.5", 42.5, nil},
		{"above maximum is clamped with a message", "150", 100,
			[]string{"Failed to set the minimum quality level for log above 100, it was set to 100."}},
		{"below minimum is clamped silently", "-5", 1, nil},
		{"zero is clamped silently", "0", 1, nil},
		{"unparsable leaves the value", "abc", 35,
			[]string{"Failed to set the minimum quality level for log."}},
		{"NaN leaves the value", "NaN", 35,
			[]string{"Failed to set the minimum quality level for log."}},
		{"blank means not submitted", "  ", 35, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, out := applyOne(t, entry(tmplLog, 35, 100), FieldValues{"0q": tt.value})

			assert.Equal(t, tt.want, e.QualityLevel)
			assert.Equal(t, tt.wantMsgs, out.Messages)
		})
	}
}

func TestApply_Price(t *testing.T) {
	tests := []struct {
		name     string
		start    int64
		fields   FieldValues
		want     int64
		wantMsgs []string
	}{
		{
			name:   "all denominations",
			start:  0,
			fields: FieldValues{"0g": "1122", "0s": "33", "0c": "44", "0i": "55"},
			want:   1122334455,
		},
		{
			name:   "single denomination keeps the other components",
			start:  10203, // 1s 2c 3i
			fields: FieldValues{"0c": "7"},
			want:   10703,
		},
		{
			name:   "unpriced entry counts as zero components",
			start:  pricelist.Unauthorised,
			fields: FieldValues{"0c": "5"},
			want:   500,
		},
		{
			name:   "unpriced entry submitted blank stays unpriced",
			start:  pricelist.Unauthorised,
			fields: FieldValues{"0g": "", "0s": "", "0c": "", "0i": ""},
			want:   pricelist.Unauthorised,
		},
		{
			name:     "unparsable denomination keeps its component",
			start:    10203,
			fields:   FieldValues{"0s": "x", "0c": "9"},
			want:     10903,
			wantMsgs: []string{"Failed to set silver for log."},
		},
		{
			name:     "every denomination unparsable leaves the price",
			start:    500,
			fields:   FieldValues{"0g": "a", "0i": "b"},
			want:     500,
			wantMsgs: []string{"Failed to set gold for log.", "Failed to set iron for log."},
		},
		{
			name:     "negative total gives one message",
			start:    500,
			fields:   FieldValues{"0g": "-1", "0s": "bad"},
			want:     500,
			wantMsgs: []string{"Failed to set a negative price for log."},
		},
		{
			name:   "negative component with positive total is accepted",
			start:  0,
			fields: FieldValues{"0s": "1", "0c": "-1"},
			want:   9900,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, out := applyOne(t, entry(tmplLog, 1, tt.start), tt.fields)

			assert.Equal(t, tt.want, e.Price)
			assert.Equal(t, tt.wantMsgs, out.Messages)
		})
	}
}

func TestApply_MinimumPurchase(t *testing.T) {
	tests := []struct {
		value string
		want  int32
	}{
		{"3", 3},
		{"0", 1},
		{"-2", 1},
		{"x", 1},
		{"", 1},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			e, out := applyOne(t, entry(tmplLog, 1, 100), FieldValues{"0p": tt.value})

			assert.Equal(t, tt.want, e.MinimumPurchase)
			assert.Empty(t, out.Messages)
		})
	}
}

func TestApply_RemovalSkipsValidation(t *testing.T) {
	// ARRANGE
	buyers := &MockBuyerRepository{}
	lists := newMemListStore()
	svc := newTestService(buyers, lists, pricelist.DefaultOptions())
	expectOwner(buyers)
	seedList(t, lists, testAgentID, pricelist.DefaultOptions(),
		entry(tmplLog, 1, 100), entry(tmplBackpack, 1, 200))

	// ACT
	out, err := svc.Apply(context.Background(), testAgentID, testOwnerID, FieldValues{
		"0remove": "true",
		"0q":      "abc",
		"0g":      "-5",
	})

	// ASSERT
	require.NoError(t, err)
	assert.Empty(t, out.Messages)
	list := storedList(t, lists, testAgentID)
	assert.Equal(t, 1, list.Size())
	_, err = list.GetBySlot(0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	e, err := list.GetBySlot(1)
	require.NoError(t, err)
	assert.Equal(t, int64(200), e.Price)
}

func TestApply_PartialBatchSavesOnce(t *testing.T) {
	buyers := &MockBuyerRepository{}
	lists := newMemListStore()
	svc := newTestService(buyers, lists, pricelist.DefaultOptions())
	expectOwner(buyers)
	seedList(t, lists, testAgentID, pricelist.DefaultOptions(),
		entry(tmplLog, 1, 100), entry(tmplBackpack, 1, 200), entry(tmplCopperCoin, 1, 300))

	out, err := svc.Apply(context.Background(), testAgentID, testOwnerID, FieldValues{
		"0q": "20",
		"1q": "oops",
		"1c": "4",
		"2i": "7",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, lists.saveCount())
	assert.Equal(t, []string{"Failed to set the minimum quality level for Backpack."}, out.Messages)
	require.Len(t, out.Failures, 1)
	assert.Equal(t, 1, out.Failures[0].Slot)
	assert.Equal(t, FieldQuality, out.Failures[0].Field)

	list := storedList(t, lists, testAgentID)
	log, _ := list.GetBySlot(0)
	pack, _ := list.GetBySlot(1)
	coin, _ := list.GetBySlot(2)
	assert.Equal(t, float32(20), log.QualityLevel)
	assert.Equal(t, float32(1), pack.QualityLevel)
	assert.Equal(t, int64(400), pack.Price)
	assert.Equal(t, int64(307), coin.Price)
	require.NotNil(t, out.Form)
	assert.Len(t, out.Form.Rows, 3)
}

func TestApply_SortSkipsEdits(t *testing.T) {
	// ARRANGE
	buyers := &MockBuyerRepository{}
	lists := newMemListStore()
	svc := newTestService(buyers, lists, pricelist.DefaultOptions())
	expectOwner(buyers)
	seedList(t, lists, testAgentID, pricelist.DefaultOptions(),
		entry(tmplLog, 12, 100),
		entry(tmplBackpack, 1, 200),
		entry(tmplCopperCoin, 1, 300),
		entry(tmplLog, 35, 400),
	)

	// ACT
	out, err := svc.Apply(context.Background(), testAgentID, testOwnerID, FieldValues{
		KeySort:   "true",
		"0q":      "abc",
		"1remove": "true",
	})

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, []string{"Sorted 4 entries."}, out.Messages)
	assert.Equal(t, 1, lists.saveCount())

	var got []int64
	for _, e := range storedList(t, lists, testAgentID).All() {
		got = append(got, e.Price)
	}
	// Backpack, copper coin, log QL35, log QL12
	assert.Equal(t, []int64{200, 300, 400, 100}, got)
}

func TestApply_NewOpensChooser(t *testing.T) {
	buyers := &MockBuyerRepository{}
	lists := newMemListStore()
	svc := newTestService(buyers, lists, pricelist.DefaultOptions())
	expectOwner(buyers)
	seedList(t, lists, testAgentID, pricelist.DefaultOptions(), entry(tmplLog, 1, 100))

	out, err := svc.Apply(context.Background(), testAgentID, testOwnerID, FieldValues{KeyNew: "true"})

	require.NoError(t, err)
	require.NotNil(t, out.AddItem)
	assert.Len(t, out.AddItem.Choices, 4)
	assert.False(t, out.AddItem.Full)
}

func TestApply_PersistenceFailureKeepsStoredList(t *testing.T) {
	buyers := &MockBuyerRepository{}
	lists := newMemListStore()
	svc := newTestService(buyers, lists, pricelist.DefaultOptions())
	expectOwner(buyers)
	seedList(t, lists, testAgentID, pricelist.DefaultOptions(), entry(tmplLog, 1, 100))
	lists.saveErr = errors.New("disk on fire")

	_, err := svc.Apply(context.Background(), testAgentID, testOwnerID, FieldValues{"0c": "9"})

	require.ErrorIs(t, err, domain.ErrPersistenceFailed)
	msg, _ := UserMessage(err)
	assert.Equal(t, MsgPersistenceFailed, msg)

	lists.saveErr = nil
	e, err := storedList(t, lists, testAgentID).GetBySlot(0)
	require.NoError(t, err)
	assert.Equal(t, int64(100), e.Price)
}

func TestApply_NotOwner(t *testing.T) {
	buyers := &MockBuyerRepository{}
	lists := newMemListStore()
	svc := newTestService(buyers, lists, pricelist.DefaultOptions())
	expectOwner(buyers)
	seedList(t, lists, testAgentID, pricelist.DefaultOptions(), entry(tmplLog, 1, 100))

	_, err := svc.Apply(context.Background(), testAgentID, "intruder", FieldValues{"0c": "9"})

	assert.ErrorIs(t, err, domain.ErrNotOwner)
	assert.Equal(t, 0, lists.saveCount())
}
