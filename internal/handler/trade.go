package handler

import (
	"net/http"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/logger"
	"github.com/osse101/BuyerMerchant_Go/internal/pricelist"
)

// OfferRequest is an item put in front of a buyer.
type OfferRequest struct {
	domain.Offer
}

// TradeRequest is an offer of several identical items.
type TradeRequest struct {
	domain.Offer
	Quantity int `json:"quantity" validate:"min=1,max=1000000"`
}

// PriceResponse is the rule that prices an offer.
type PriceResponse struct {
	AgentID string          `json:"agent_id"`
	Entry   pricelist.Entry `json:"entry"`
}

// HandlePriceFor finds the entry that prices an offer
// @Summary Price an offer
// @Description Best matching authorised entry: highest quality floor the offer meets, lowest slot on ties
// @Tags trade
// @Accept json
// @Produce json
// @Param agentID path string true "Buyer id"
// @Param request body OfferRequest true "Offered item"
// @Success 200 {object} PriceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/buyers/{agentID}/trade/price [post]
func (h *PricingHandler) HandlePriceFor(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agentIDParam(r, w)
	if !ok {
		return
	}

	var req OfferRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpPriceFor); err != nil {
		return
	}

	entry, err := h.service.PriceFor(r.Context(), agentID, req.Offer)
	if err != nil {
		respondServiceError(w, r, OpPriceFor, err)
		return
	}

	respondJSON(w, http.StatusOK, PriceResponse{AgentID: agentID, Entry: entry})
}

// HandleQuote prices a lot without paying for it
// @Summary Quote an offer
// @Tags trade
// @Accept json
// @Produce json
// @Param agentID path string true "Buyer id"
// @Param request body TradeRequest true "Offered lot"
// @Success 200 {object} pricing.Quote
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/buyers/{agentID}/trade/quote [post]
func (h *PricingHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agentIDParam(r, w)
	if !ok {
		return
	}

	var req TradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpQuote); err != nil {
		return
	}

	quote, err := h.service.QuoteOffer(r.Context(), agentID, req.Offer, req.Quantity)
	if err != nil {
		respondServiceError(w, r, OpQuote, err)
		return
	}

	respondJSON(w, http.StatusOK, quote)
}

// HandlePurchase buys a lot and debits the buyer's purse
// @Summary Sell to the buyer
// @Tags trade
// @Accept json
// @Produce json
// @Param agentID path string true "Buyer id"
// @Param request body TradeRequest true "Offered lot"
// @Success 200 {object} pricing.Quote
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/buyers/{agentID}/trade/purchase [post]
func (h *PricingHandler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agentIDParam(r, w)
	if !ok {
		return
	}

	var req TradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpPurchase); err != nil {
		return
	}

	quote, err := h.service.Purchase(r.Context(), agentID, req.Offer, req.Quantity)
	if err != nil {
		respondServiceError(w, r, OpPurchase, err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgPurchaseCompleted,
		"agent_id", agentID,
		"slot", quote.Slot,
		"quantity", quote.Quantity,
		"total", quote.Total)
	respondJSON(w, http.StatusOK, quote)
}
