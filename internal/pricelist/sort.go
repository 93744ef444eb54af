package pricelist

import (
	"cmp"
	"context"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/osse101/BuyerMerchant_Go/internal/logger"
)

// QualityOrder decides how entries sharing a display name are ordered.
type QualityOrder int

const (
	// QualityDescending lists the highest quality floor first.
	QualityDescending QualityOrder = iota
	// QualityAscending lists the lowest quality floor first.
	QualityAscending
)

// ParseQualityOrder maps "asc"/"desc" to a QualityOrder, defaulting to descending.
func ParseQualityOrder(s string) QualityOrder {
	if s == "asc" || s == "ascending" {
		return QualityAscending
	}
	return QualityDescending
}

// NameFunc resolves the display name of a template.
type NameFunc func(templateID int32) string

type sortKey struct {
	slot  int
	name  string
	entry *Entry
}

// Sort orders entries by display name (case-insensitive collation), then by quality
// according to the list's QualityOrder, and compacts them into the leading slots.
func (p *PriceList) Sort(names NameFunc) {
	keys := make([]sortKey, 0, len(p.slots))
	for i, e := range p.slots {
		if e != nil {
			keys = append(keys, sortKey{slot: i, name: names(e.TemplateID), entry: e})
		}
	}

	col := collate.New(language.Und, collate.IgnoreCase, collate.IgnoreWidth)
	slices.SortStableFunc(keys, func(a, b sortKey) int {
		if c := col.CompareString(a.name, b.name); c != 0 {
			return c
		}
		c := cmp.Compare(a.entry.QualityLevel, b.entry.QualityLevel)
		if p.opts.QualityOrder == QualityDescending {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.slot, b.slot)
	})

	changed := false
	for i := range p.slots {
		var next *Entry
		if i < len(keys) {
			next = keys[i].entry
		}
		if p.slots[i] != next {
			changed = true
		}
		p.slots[i] = next
	}
	if changed {
		p.dirty = true
	}
}

// SortAndSave sorts the list and persists it.
func (p *PriceList) SortAndSave(ctx context.Context, names NameFunc) error {
	p.Sort(names)
	logger.FromContext(ctx).Debug(LogMsgPriceListSorted, "agent_id", p.agentID, "entries", p.Size())
	return p.Save(ctx)
}
