package pricelist

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/logger"
	"github.com/osse101/BuyerMerchant_Go/internal/repository"
)

// Options controls the shape of a price list.
type Options struct {
	EntriesPerPage int
	MaxPages       int
	QualityOrder   QualityOrder
	// PageAllocator, when set, is asked before the list grows to the given page count.
	PageAllocator func(pages int) error
}

// DefaultOptions returns the stock sizing with descending quality order.
func DefaultOptions() Options {
	return Options{
		EntriesPerPage: DefaultEntriesPerPage,
		MaxPages:       DefaultMaxPages,
		QualityOrder:   QualityDescending,
	}
}

func (o Options) normalized() Options {
	if o.EntriesPerPage <= 0 {
		o.EntriesPerPage = DefaultEntriesPerPage
	}
	if o.MaxPages <= 0 {
		o.MaxPages = DefaultMaxPages
	}
	return o
}

// PriceList is the bounded set of purchasing rules owned by one buyer.
// Slot indices identify entries; freed slots are reused lowest first.
// A PriceList is not safe for concurrent use; callers serialise access per agent.
type PriceList struct {
	agentID string
	store   repository.PriceListStore
	opts    Options
	slots   []*Entry
	pages   int
	dirty   bool
}

// New creates an empty single-page list for agentID.
func New(agentID string, store repository.PriceListStore, opts Options) *PriceList {
	opts = opts.normalized()
	return &PriceList{
		agentID: agentID,
		store:   store,
		opts:    opts,
		slots:   make([]*Entry, opts.EntriesPerPage),
		pages:   1,
		dirty:   true,
	}
}

// Load reads the list for agentID from store.
// It returns domain.ErrNoPriceListOnBuyer when the buyer has never had a list.
func Load(ctx context.Context, agentID string, store repository.PriceListStore, opts Options) (*PriceList, error) {
	data, err := store.LoadPriceList(ctx, agentID)
	if err != nil {
		if errors.Is(err, domain.ErrNoPriceListOnBuyer) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: "+ErrMsgLoadFailed, domain.ErrPersistenceFailed, agentID, err)
	}

	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgLoadFailed, domain.ErrPersistenceFailed, agentID, err)
	}

	p := New(agentID, store, opts)
	p.restore(ctx, doc)
	p.dirty = false
	return p, nil
}

func (p *PriceList) restore(ctx context.Context, doc *document) {
	log := logger.FromContext(ctx)

	pages := min(max(doc.Pages, 1), p.opts.MaxPages)
	p.grow(pages)

	var overflow []Entry
	for _, se := range doc.Entries {
		e := se.entry()
		if err := e.Validate(); err != nil {
			log.Warn(LogMsgEntryDropped, "agent_id", p.agentID, "slot", se.Slot, "error", err)
			continue
		}
		if se.Slot < 0 || se.Slot >= p.opts.MaxPages*p.opts.EntriesPerPage {
			overflow = append(overflow, e)
			continue
		}
		for se.Slot >= len(p.slots) {
			p.grow(p.pages + 1)
		}
		if p.slots[se.Slot] != nil {
			overflow = append(overflow, e)
			continue
		}
		p.slots[se.Slot] = &e
	}

	for _, e := range overflow {
		slot := p.firstFree()
		if slot < 0 && p.pages < p.opts.MaxPages {
			p.grow(p.pages + 1)
			slot = p.firstFree()
		}
		if slot < 0 {
			log.Warn(LogMsgEntryDropped, "agent_id", p.agentID, "template_id", e.TemplateID, "error", domain.ErrPriceListFull)
			continue
		}
		log.Debug(LogMsgEntryRelocated, "agent_id", p.agentID, "slot", slot)
		p.slots[slot] = &e
	}
}

// AgentID returns the id of the buyer owning the list.
func (p *PriceList) AgentID() string { return p.agentID }

// Pages returns the number of allocated pages.
func (p *PriceList) Pages() int { return p.pages }

// EntriesPerPage returns the page size.
func (p *PriceList) EntriesPerPage() int { return p.opts.EntriesPerPage }

// Capacity returns the number of slots currently allocated.
func (p *PriceList) Capacity() int { return len(p.slots) }

// MaxCapacity returns the hard cap on entries.
func (p *PriceList) MaxCapacity() int { return p.opts.MaxPages * p.opts.EntriesPerPage }

// Dirty reports whether there are unsaved mutations.
func (p *PriceList) Dirty() bool { return p.dirty }

// Size returns the number of occupied slots.
func (p *PriceList) Size() int {
	n := 0
	for _, e := range p.slots {
		if e != nil {
			n++
		}
	}
	return n
}

func (p *PriceList) firstFree() int {
	for i, e := range p.slots {
		if e == nil {
			return i
		}
	}
	return -1
}

func (p *PriceList) grow(pages int) {
	for p.pages < pages {
		p.slots = append(p.slots, make([]*Entry, p.opts.EntriesPerPage)...)
		p.pages++
	}
}

// AddItem places a new unpriced rule in the lowest free slot and returns the slot.
// When every slot is taken the list grows by one page, up to the configured maximum.
func (p *PriceList) AddItem(templateID int32, material uint8) (int, error) {
	slot := p.firstFree()
	if slot < 0 {
		if p.pages >= p.opts.MaxPages {
			return -1, domain.ErrPriceListFull
		}
		if p.opts.PageAllocator != nil {
			if err := p.opts.PageAllocator(p.pages + 1); err != nil {
				return -1, fmt.Errorf("%w: %w", domain.ErrPageNotAdded, err)
			}
		}
		p.grow(p.pages + 1)
		slog.Debug(LogMsgPageAdded, "agent_id", p.agentID, "pages", p.pages)

		slot = p.firstFree()
		if slot < 0 {
			return -1, domain.ErrPageNotAdded
		}
	}

	e := NewEntry(templateID, material)
	p.slots[slot] = &e
	p.dirty = true
	return slot, nil
}

// RemoveItem frees slot. Empty or out-of-range slots are ignored.
func (p *PriceList) RemoveItem(slot int) {
	if slot < 0 || slot >= len(p.slots) || p.slots[slot] == nil {
		return
	}
	p.slots[slot] = nil
	p.dirty = true
}

// GetBySlot returns a copy of the entry in slot.
func (p *PriceList) GetBySlot(slot int) (Entry, error) {
	if slot < 0 || slot >= len(p.slots) || p.slots[slot] == nil {
		return Entry{}, fmt.Errorf("%w: slot %d", domain.ErrNotFound, slot)
	}
	return *p.slots[slot], nil
}

// UpdateItem replaces the rule in an occupied slot.
func (p *PriceList) UpdateItem(slot int, e Entry) error {
	if slot < 0 || slot >= len(p.slots) || p.slots[slot] == nil {
		return fmt.Errorf("%w: slot %d", domain.ErrNotFound, slot)
	}
	if err := e.Validate(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if *p.slots[slot] != e {
		*p.slots[slot] = e
		p.dirty = true
	}
	return nil
}

// All yields occupied slots in slot order. Each call ranges over the entries
// present when All was called.
func (p *PriceList) All() iter.Seq2[int, Entry] {
	type pair struct {
		slot  int
		entry Entry
	}
	snapshot := make([]pair, 0, len(p.slots))
	for i, e := range p.slots {
		if e != nil {
			snapshot = append(snapshot, pair{i, *e})
		}
	}
	return func(yield func(int, Entry) bool) {
		for _, s := range snapshot {
			if !yield(s.slot, s.entry) {
				return
			}
		}
	}
}

// Save rewrites the whole list in the store and clears the dirty flag.
// On failure the stored copy is left as it was and the list stays dirty.
func (p *PriceList) Save(ctx context.Context) error {
	data, err := encode(p)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistenceFailed, err)
	}
	if err := p.store.SavePriceList(ctx, p.agentID, data); err != nil {
		return fmt.Errorf("%w: "+ErrMsgSaveFailed, domain.ErrPersistenceFailed, p.agentID, err)
	}
	p.dirty = false
	logger.FromContext(ctx).Debug(LogMsgPriceListSaved, "agent_id", p.agentID, "entries", p.Size())
	return nil
}
