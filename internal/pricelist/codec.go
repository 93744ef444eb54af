package pricelist

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnsupportedVersion is returned when a stored list was written by a newer encoder.
var ErrUnsupportedVersion = errors.New("unsupported price list encoding version")

type document struct {
	Version int           `json:"version"`
	AgentID string        `json:"agent_id"`
	Pages   int           `json:"pages"`
	Entries []storedEntry `json:"entries"`
}

type storedEntry struct {
	Slot            int     `json:"slot"`
	TemplateID      int32   `json:"template_id"`
	Material        uint8   `json:"material"`
	Quality         float32 `json:"quality"`
	Price           int64   `json:"price"`
	MinimumPurchase *int32  `json:"minimum_purchase,omitempty"`
}

func (se storedEntry) entry() Entry {
	e := Entry{
		TemplateID:      se.TemplateID,
		Material:        se.Material,
		QualityLevel:    se.Quality,
		Price:           se.Price,
		MinimumPurchase: DefaultMinimumPurchase,
	}
	if se.MinimumPurchase != nil {
		e.MinimumPurchase = *se.MinimumPurchase
	}
	return e
}

func encode(p *PriceList) ([]byte, error) {
	doc := document{
		Version: EncodingVersionCurrent,
		AgentID: p.agentID,
		Pages:   p.pages,
		Entries: make([]storedEntry, 0, p.Size()),
	}
	for slot, e := range p.All() {
		mp := e.MinimumPurchase
		doc.Entries = append(doc.Entries, storedEntry{
			Slot:            slot,
			TemplateID:      e.TemplateID,
			Material:        e.Material,
			Quality:         e.QualityLevel,
			Price:           e.Price,
			MinimumPurchase: &mp,
		})
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgEncodeFailed, err)
	}
	return data, nil
}

func decode(data []byte) (*document, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeFailed, err)
	}
	if doc.Version == 0 {
		doc.Version = EncodingVersionV1
	}
	if doc.Version > EncodingVersionCurrent {
		return nil, fmt.Errorf(ErrMsgUnsupportedVerFmt, ErrUnsupportedVersion, doc.Version)
	}
	return &doc, nil
}
