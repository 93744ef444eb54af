package pricing

import (
	"context"
	"fmt"
	"strconv"

	"github.com/osse101/BuyerMerchant_Go/internal/currency"
	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/logger"
	"github.com/osse101/BuyerMerchant_Go/internal/metrics"
	"github.com/osse101/BuyerMerchant_Go/internal/pricelist"
)

var denominationSuffix = map[currency.Denomination]string{
	currency.Gold:   SuffixGold,
	currency.Silver: SuffixSilver,
	currency.Copper: SuffixCopper,
	currency.Iron:   SuffixIron,
}

var rarityNames = map[int]string{
	domain.RarityRare:      "rare",
	domain.RaritySupreme:   "supreme",
	domain.RarityFantastic: "fantastic",
}

// Render builds the price list form for the buyer's owner.
func (s *service) Render(ctx context.Context, agentID, performer string, page int) (*Form, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgRenderCalled, "agent_id", agentID, "page", page)

	lock := s.locks.GetLock(agentID)
	lock.RLock()
	defer lock.RUnlock()

	buyer, err := s.ownedBuyer(ctx, agentID, performer)
	if err != nil {
		return nil, err
	}
	list, err := s.loadList(ctx, buyer)
	if err != nil {
		return nil, err
	}

	metrics.PriceListRenders.Inc()
	return s.buildForm(ctx, buyer, list, page), nil
}

// buildForm turns the list into a form description. The result depends only on
// the list state, the catalog and page.
func (s *service) buildForm(ctx context.Context, buyer *domain.Buyer, list *pricelist.PriceList, page int) *Form {
	perPage := list.EntriesPerPage()
	size := list.Size()
	pageCount := max(1, (size+perPage-1)/perPage)
	page = min(max(page, 0), pageCount-1)

	form := &Form{
		AgentID:   buyer.ID,
		Title:     fmt.Sprintf(MsgPriceListTitleFmt, buyer.Name),
		Page:      page,
		PageCount: pageCount,
		Size:      size,
		Capacity:  list.MaxCapacity(),
		Rows:      make([]Row, 0, perPage),
	}

	if size == 0 {
		form.EmptyMessage = MsgEmptyPriceList
	}

	first, last := page*perPage, (page+1)*perPage
	i := 0
	for slot, e := range list.All() {
		if i >= first && i < last {
			form.Rows = append(form.Rows, s.buildRow(ctx, slot, e))
		}
		i++
	}

	form.Controls = []Control{
		{Key: KeySort, Label: LabelSort, Value: "true"},
		{Key: KeyNew, Label: LabelNew, Value: "true"},
	}
	if pageCount > 1 {
		if page > 0 {
			form.Controls = append(form.Controls, Control{Key: KeyPage, Label: LabelPrevious, Value: strconv.Itoa(page - 1)})
		}
		if page < pageCount-1 {
			form.Controls = append(form.Controls, Control{Key: KeyPage, Label: LabelNext, Value: strconv.Itoa(page + 1)})
		}
	}
	return form
}

func (s *service) buildRow(ctx context.Context, slot int, e pricelist.Entry) Row {
	tmpl, found := s.template(ctx, e.TemplateID)
	weight := UnknownWeight
	if found {
		weight = FormatWeight(tmpl.WeightGrams)
	}

	row := Row{
		Slot:     slot,
		Label:    tmpl.Name,
		Material: s.catalog.MaterialName(e.Material),
		Rarity:   rarityNames[tmpl.Rarity],
		Weight:   weight,
	}

	row.Fields = append(row.Fields, Field{
		Key:       FieldKey(slot, SuffixQuality),
		Label:     "QL",
		Kind:      KindText,
		Value:     formatQuality(e.QualityLevel),
		MaxLength: 6,
	})

	var change currency.Change
	if e.Authorised() {
		change = s.coins.Decompose(e.Price)
	}
	for _, d := range currency.Denominations {
		value := ""
		if e.Authorised() {
			value = strconv.FormatInt(change.Get(d), 10)
		}
		row.Fields = append(row.Fields, Field{
			Key:       FieldKey(slot, denominationSuffix[d]),
			Label:     d.String(),
			Kind:      KindText,
			Value:     value,
			MaxLength: 8,
		})
	}

	row.Fields = append(row.Fields,
		Field{
			Key:       FieldKey(slot, SuffixMinimumPurchase),
			Label:     "min",
			Kind:      KindText,
			Value:     strconv.FormatInt(int64(e.MinimumPurchase), 10),
			MaxLength: 6,
		},
		Field{
			Key:   FieldKey(slot, SuffixRemove),
			Label: LabelRemove,
			Kind:  KindCheckbox,
			Value: "true",
		},
	)
	return row
}
