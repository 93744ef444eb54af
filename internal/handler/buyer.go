package handler

import (
	"net/http"

	"github.com/osse101/BuyerMerchant_Go/internal/logger"
)

// CreateBuyerRequest hires a new buyer for the caller.
type CreateBuyerRequest struct {
	Name string `json:"name" validate:"required,notblank,max=64"`
}

// ExamineResponse is what anyone sees when looking at a buyer.
type ExamineResponse struct {
	AgentID     string `json:"agent_id"`
	Description string `json:"description"`
}

// GiveCoinsRequest transfers coins into a buyer's purse.
type GiveCoinsRequest struct {
	Amount int64 `json:"amount" validate:"min=1"`
}

// BalanceResponse reports a buyer's purse after a change.
type BalanceResponse struct {
	Message string `json:"message"`
	Balance int64  `json:"balance"`
}

// HandleCreateBuyer hires a buyer owned by the caller
// @Summary Create buyer
// @Description Creates a buyer with an empty price list; the caller becomes its owner
// @Tags buyers
// @Accept json
// @Produce json
// @Param request body CreateBuyerRequest true "Buyer details"
// @Success 201 {object} domain.Buyer
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/buyers [post]
func (h *PricingHandler) HandleCreateBuyer(w http.ResponseWriter, r *http.Request) {
	claims, ok := performer(r, w)
	if !ok {
		return
	}

	var req CreateBuyerRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpCreateBuyer); err != nil {
		return
	}

	buyer, err := h.service.CreateBuyer(r.Context(), claims.PerformerID(), claims.Name, req.Name)
	if err != nil {
		respondServiceError(w, r, OpCreateBuyer, err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgBuyerCreated, "agent_id", buyer.ID)
	respondJSON(w, http.StatusCreated, buyer)
}

// HandleExamine describes a buyer
// @Summary Examine buyer
// @Tags buyers
// @Produce json
// @Param agentID path string true "Buyer id"
// @Success 200 {object} ExamineResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/buyers/{agentID} [get]
func (h *PricingHandler) HandleExamine(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agentIDParam(r, w)
	if !ok {
		return
	}

	text, err := h.service.Examine(r.Context(), agentID)
	if err != nil {
		respondServiceError(w, r, OpExamine, err)
		return
	}

	respondJSON(w, http.StatusOK, ExamineResponse{AgentID: agentID, Description: text})
}

// HandleDismissBuyer removes a buyer and its price list
// @Summary Dismiss buyer
// @Description Owner only
// @Tags buyers
// @Produce json
// @Param agentID path string true "Buyer id"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/buyers/{agentID} [delete]
func (h *PricingHandler) HandleDismissBuyer(w http.ResponseWriter, r *http.Request) {
	claims, ok := performer(r, w)
	if !ok {
		return
	}
	agentID, ok := agentIDParam(r, w)
	if !ok {
		return
	}

	if err := h.service.DismissBuyer(r.Context(), agentID, claims.PerformerID()); err != nil {
		respondServiceError(w, r, OpDismissBuyer, err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgBuyerDismissed, "agent_id", agentID)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgBuyerDismissed})
}

// HandleGiveCoins adds coins to a buyer's purse
// @Summary Give coins
// @Tags buyers
// @Accept json
// @Produce json
// @Param agentID path string true "Buyer id"
// @Param request body GiveCoinsRequest true "Amount in iron coins"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/buyers/{agentID}/coins [post]
func (h *PricingHandler) HandleGiveCoins(w http.ResponseWriter, r *http.Request) {
	agentID, ok := agentIDParam(r, w)
	if !ok {
		return
	}

	var req GiveCoinsRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpGiveCoins); err != nil {
		return
	}

	balance, err := h.service.GiveCoins(r.Context(), agentID, req.Amount)
	if err != nil {
		respondServiceError(w, r, OpGiveCoins, err)
		return
	}

	respondJSON(w, http.StatusOK, BalanceResponse{Message: MsgCoinsGiven, Balance: balance})
}
