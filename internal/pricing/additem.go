package pricing

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/logger"
	"github.com/osse101/BuyerMerchant_Go/internal/metrics"
	"github.com/osse101/BuyerMerchant_Go/internal/pricelist"
)

// ChooseItem lists the templates the owner can add, filtered by query.
func (s *service) ChooseItem(ctx context.Context, agentID, performer, query string) (*ChoiceForm, error) {
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
	return s.buildChoice(ctx, buyer, list, query), nil
}

func (s *service) buildChoice(ctx context.Context, buyer *domain.Buyer, list *pricelist.PriceList, query string) *ChoiceForm {
	form := &ChoiceForm{
		AgentID:   buyer.ID,
		Title:     fmt.Sprintf(MsgChooseItemTitleFmt, buyer.Name),
		Query:     strings.TrimSpace(query),
		Materials: s.catalog.Materials(),
		Full:      list.Size() >= list.MaxCapacity(),
	}

	templates, err := s.catalog.Search(ctx, form.Query)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgTemplateLookupFail, "query", form.Query, "error", err)
	}
	form.Choices = make([]Choice, 0, len(templates))
	for _, t := range templates {
		form.Choices = append(form.Choices, Choice{
			TemplateID: t.ID,
			Name:       t.Name,
			Category:   t.Category,
			Weight:     FormatWeight(t.WeightGrams),
		})
	}
	return form
}

// ConfirmItem adds the chosen template and material as a new entry. Optional
// unprefixed q, g, s, c, i and p fields set its details straight away.
func (s *service) ConfirmItem(ctx context.Context, agentID, performer string, fields FieldValues) (*Outcome, error) {
	log := logger.FromContext(ctx)

	if !fields.isTrue(KeyNew) {
		return &Outcome{Messages: []string{MsgAddCancelled}, Cancelled: true}, nil
	}

	lock := s.locks.GetLock(agentID)
	lock.Lock()
	defer lock.Unlock()

	buyer, err := s.ownedBuyer(ctx, agentID, performer)
	if err != nil {
		return nil, err
	}

	templateID, err := strconv.ParseInt(strings.TrimSpace(fields[KeyTemplate]), 10, 32)
	if err != nil || templateID <= 0 {
		return nil, userError(domain.ErrInvalidInput, MsgInvalidTemplate)
	}
	material, err := strconv.ParseUint(strings.TrimSpace(fields[KeyMaterial]), 10, 8)
	if err != nil || !s.knownMaterial(uint8(material)) {
		return nil, userError(domain.ErrInvalidInput, MsgInvalidMaterial)
	}

	tmpl, err := s.catalog.Lookup(ctx, int32(templateID))
	if err != nil {
		return nil, userError(fmt.Errorf("%w: %w", domain.ErrNotFound, err), MsgInvalidTemplate)
	}

	list, err := s.loadList(ctx, buyer)
	if err != nil {
		return nil, err
	}

	slot, err := list.AddItem(tmpl.ID, uint8(material))
	switch {
	case errors.Is(err, domain.ErrPriceListFull):
		metrics.EntriesAdded.WithLabelValues(metrics.OutcomeFull).Inc()
		return nil, userError(err, MsgPriceListFull)
	case errors.Is(err, domain.ErrPageNotAdded):
		metrics.EntriesAdded.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, userError(err, MsgPageNotAdded)
	case err != nil:
		return nil, err
	}

	out := &Outcome{Slot: slot}
	e, _ := list.GetBySlot(slot)
	updated, failures := s.applyFields(e, slot, FieldKey(-1, ""), tmpl.Name, fields)
	for _, f := range failures {
		metrics.FieldValidationFailures.WithLabelValues(f.Field).Inc()
	}
	out.fail(failures...)
	if err := list.UpdateItem(slot, updated); err != nil {
		return nil, err
	}

	if err := s.save(ctx, list); err != nil {
		metrics.EntriesAdded.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, err
	}
	metrics.EntriesAdded.WithLabelValues(metrics.OutcomeSuccess).Inc()
	log.Info(LogMsgItemAdded, "agent_id", agentID, "slot", slot, "template_id", tmpl.ID, "material", material)

	out.Messages = append([]string{fmt.Sprintf(MsgItemAddedFmt, tmpl.Name)}, out.Messages...)
	out.Form = s.buildForm(ctx, buyer, list, pageOfSlot(list, slot))
	return out, nil
}

// pageOfSlot returns the form page that shows slot. Rows are paginated over
// occupied entries, so the page depends on how many occupied slots precede it.
func pageOfSlot(list *pricelist.PriceList, slot int) int {
	i := 0
	for s := range list.All() {
		if s == slot {
			break
		}
		i++
	}
	return i / list.EntriesPerPage()
}

func (s *service) knownMaterial(material uint8) bool {
	return slices.ContainsFunc(s.catalog.Materials(), func(m domain.Material) bool {
		return m.ID == material
	})
}
