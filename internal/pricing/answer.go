package pricing

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/osse101/BuyerMerchant_Go/internal/currency"
	"github.com/osse101/BuyerMerchant_Go/internal/logger"
	"github.com/osse101/BuyerMerchant_Go/internal/metrics"
	"github.com/osse101/BuyerMerchant_Go/internal/pricelist"
)

// Apply processes a submitted price list form. Removals run first, then every
// remaining row is validated field by field; rejected fields leave their value
// untouched and add a message. The list is saved once at the end.
// A sort request replaces all per-row processing.
func (s *service) Apply(ctx context.Context, agentID, performer string, fields FieldValues) (*Outcome, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgApplyCalled, "agent_id", agentID, "fields", len(fields))

	lock := s.locks.GetLock(agentID)
	lock.Lock()
	defer lock.Unlock()

	buyer, err := s.ownedBuyer(ctx, agentID, performer)
	if err != nil {
		return nil, err
	}
	list, err := s.loadList(ctx, buyer)
	if err != nil {
		return nil, err
	}

	page, _ := strconv.Atoi(fields[KeyPage])
	out := &Outcome{}

	if fields.isTrue(KeySort) {
		if err := list.SortAndSave(ctx, s.names(ctx)); err != nil {
			metrics.PriceListApplies.WithLabelValues(metrics.OutcomeFailed).Inc()
			log.Error(LogMsgPersistFailed, "agent_id", agentID, "error", err)
			return nil, userError(err, MsgPersistenceFailed)
		}
		out.Messages = append(out.Messages, fmt.Sprintf(MsgSortedFmt, list.Size()))
		out.Form = s.buildForm(ctx, buyer, list, 0)
		metrics.PriceListApplies.WithLabelValues(metrics.OutcomeSorted).Inc()
		return out, nil
	}

	removed := make(map[int]bool)
	for slot := range list.All() {
		if fields.isTrue(FieldKey(slot, SuffixRemove)) {
			list.RemoveItem(slot)
			removed[slot] = true
		}
	}

	for slot, e := range list.All() {
		if removed[slot] {
			continue
		}
		tmpl, _ := s.template(ctx, e.TemplateID)
		updated, failures := s.applyFields(e, slot, FieldKey(slot, ""), tmpl.Name, fields)
		for _, f := range failures {
			log.Debug(LogMsgFieldRejected, "agent_id", agentID, "slot", slot, "field", f.Field, "reason", f.Reason)
			metrics.FieldValidationFailures.WithLabelValues(f.Field).Inc()
		}
		out.fail(failures...)
		if err := list.UpdateItem(slot, updated); err != nil {
			return nil, err
		}
	}

	if fields.isTrue(KeyNew) {
		out.AddItem = s.buildChoice(ctx, buyer, list, "")
	}

	if err := s.save(ctx, list); err != nil {
		metrics.PriceListApplies.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, err
	}

	if len(out.Failures) > 0 {
		metrics.PriceListApplies.WithLabelValues(metrics.OutcomePartial).Inc()
	} else {
		metrics.PriceListApplies.WithLabelValues(metrics.OutcomeSuccess).Inc()
	}
	out.Form = s.buildForm(ctx, buyer, list, page)
	return out, nil
}

// applyFields validates the quality, price and minimum purchase fields found under
// prefix and returns the updated entry along with any rejected values.
// Blank or absent fields leave the entry unchanged.
func (s *service) applyFields(e pricelist.Entry, slot int, prefix, name string, fields FieldValues) (pricelist.Entry, []ValidationError) {
	var failures []ValidationError

	if raw, ok := submitted(fields, prefix+SuffixQuality); ok {
		q, err := strconv.ParseFloat(raw, 32)
		switch {
		case err != nil || math.IsNaN(q):
			failures = append(failures, ValidationError{
				Slot: slot, Field: FieldQuality, Reason: "not a number",
				Message: fmt.Sprintf(MsgQualityFailedFmt, name),
			})
		case q > float64(pricelist.MaxQuality):
			e.QualityLevel = pricelist.MaxQuality
			failures = append(failures, ValidationError{
				Slot: slot, Field: FieldQuality, Reason: "above maximum",
				Message: fmt.Sprintf(MsgQualityTooHighFmt, name),
			})
		default:
			e.QualityLevel = pricelist.ClampQuality(float32(q))
		}
	}

	var current currency.Change
	if e.Authorised() {
		current = s.coins.Decompose(e.Price)
	}
	next := current
	parsed := 0
	var denomFailures []ValidationError
	for _, d := range currency.Denominations {
		raw, ok := submitted(fields, prefix+denominationSuffix[d])
		if !ok {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			denomFailures = append(denomFailures, ValidationError{
				Slot: slot, Field: FieldPrice, Reason: d.String() + " not a number",
				Message: fmt.Sprintf(MsgDenominationFailedFmt, d, name),
			})
			continue
		}
		next = next.With(d, v)
		parsed++
	}
	if parsed > 0 {
		if total := s.coins.Compose(next); total < 0 {
			failures = append(failures, ValidationError{
				Slot: slot, Field: FieldPrice, Reason: "negative",
				Message: fmt.Sprintf(MsgNegativePriceFmt, name),
			})
		} else {
			e.Price = total
			failures = append(failures, denomFailures...)
		}
	} else {
		failures = append(failures, denomFailures...)
	}

	if raw, ok := submitted(fields, prefix+SuffixMinimumPurchase); ok {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil && v >= int64(pricelist.DefaultMinimumPurchase) {
			e.MinimumPurchase = int32(v)
		}
	}

	return e, failures
}

// submitted returns the trimmed value for key when it is present and not blank.
func submitted(fields FieldValues, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}
