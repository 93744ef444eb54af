package pricelist

import (
	"github.com/go-playground/validator/v10"
)

// Unauthorised marks an entry whose price has never been set. Such entries are never tradeable.
const Unauthorised int64 = -1

// Quality bounds for an entry's minimum acceptable quality.
const (
	MinQuality float32 = 1
	MaxQuality float32 = 100
)

// DefaultMinimumPurchase is the smallest quantity a new entry buys per trade.
const DefaultMinimumPurchase int32 = 1

var validate = validator.New()

// Entry is one purchasing rule: buy items of this template and material at or above
// QualityLevel for Price each, at least MinimumPurchase at a time.
type Entry struct {
	TemplateID      int32   `json:"template_id" validate:"gt=0"`
	Material        uint8   `json:"material"`
	QualityLevel    float32 `json:"quality" validate:"gte=1,lte=100"`
	Price           int64   `json:"price" validate:"gte=-1"`
	MinimumPurchase int32   `json:"minimum_purchase" validate:"gte=1"`
}

// NewEntry returns an unpriced rule for the given template and material.
func NewEntry(templateID int32, material uint8) Entry {
	return Entry{
		TemplateID:      templateID,
		Material:        material,
		QualityLevel:    MinQuality,
		Price:           Unauthorised,
		MinimumPurchase: DefaultMinimumPurchase,
	}
}

// Authorised reports whether the owner has set a price.
func (e Entry) Authorised() bool {
	return e.Price != Unauthorised
}

// Accepts reports whether an offered item satisfies this rule.
func (e Entry) Accepts(templateID int32, material uint8, quality float32) bool {
	return e.Authorised() &&
		e.TemplateID == templateID &&
		e.Material == material &&
		quality >= e.QualityLevel
}

// Validate checks the entry's field ranges.
func (e Entry) Validate() error {
	return validate.Struct(e)
}

// ClampQuality pins q into [MinQuality, MaxQuality].
func ClampQuality(q float32) float32 {
	if q < MinQuality {
		return MinQuality
	}
	if q > MaxQuality {
		return MaxQuality
	}
	return q
}
