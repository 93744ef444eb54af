package handler

import (
	"github.com/osse101/BuyerMerchant_Go/internal/pricing"
)

// PricingHandler serves the buyer, price list and trade endpoints.
type PricingHandler struct {
	service pricing.Service
	views   *Views
}

// NewPricingHandler creates a handler. A nil views uses the embedded templates.
func NewPricingHandler(service pricing.Service, views *Views) *PricingHandler {
	if views == nil {
		views = MustLoadViews()
	}
	return &PricingHandler{
		service: service,
		views:   views,
	}
}
