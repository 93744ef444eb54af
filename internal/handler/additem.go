package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/BuyerMerchant_Go/internal/logger"
)

// HandleChooseItem lists the item templates that can be added
// @Summary Add item chooser
// @Description Owner only. Lists catalog templates filtered by name
// @Tags prices
// @Produce json,html
// @Param agentID path string true "Buyer id"
// @Param q query string false "Name filter"
// @Param format query string false "html for a browser form"
// @Success 200 {object} pricing.ChoiceForm
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/buyers/{agentID}/prices/new [get]
func (h *PricingHandler) HandleChooseItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := performer(r, w)
	if !ok {
		return
	}
	agentID, ok := agentIDParam(r, w)
	if !ok {
		return
	}
	query := GetOptionalQueryParam(r, ParamQuery, "")

	choice, err := h.service.ChooseItem(r.Context(), agentID, claims.PerformerID(), query)
	if err != nil {
		respondServiceError(w, r, OpChooseItem, err)
		return
	}

	if wantsHTML(r) {
		h.views.renderAddItem(w, r, http.StatusOK, r.URL.Path+querySuffixHTML, choice, nil)
		return
	}
	respondJSON(w, http.StatusOK, choice)
}

// HandleConfirmItem adds the chosen template to the price list
// @Summary Confirm add item
// @Description Owner only. Without new=true the flow is cancelled and nothing changes
// @Tags prices
// @Accept json,x-www-form-urlencoded
// @Produce json,html
// @Param agentID path string true "Buyer id"
// @Success 201 {object} pricing.Outcome
// @Success 200 {object} pricing.Outcome "cancelled"
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/buyers/{agentID}/prices/new [post]
func (h *PricingHandler) HandleConfirmItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := performer(r, w)
	if !ok {
		return
	}
	agentID, ok := agentIDParam(r, w)
	if !ok {
		return
	}

	fields, err := decodeFields(r)
	if err != nil {
		logger.FromContext(r.Context()).Warn(ErrMsgInvalidRequest, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}

	out, err := h.service.ConfirmItem(r.Context(), agentID, claims.PerformerID(), fields)
	if err != nil {
		respondServiceError(w, r, OpConfirmItem, err)
		return
	}

	status := http.StatusCreated
	if out.Cancelled {
		status = http.StatusOK
	} else {
		logger.FromContext(r.Context()).Info(LogMsgItemConfirmed, "agent_id", agentID, "slot", out.Slot)
	}

	if wantsHTML(r) {
		listPath := pricesPath(strings.TrimSuffix(r.URL.Path, "/"))
		if out.Cancelled || out.Form == nil {
			http.Redirect(w, r, listPath+querySuffixHTML, http.StatusSeeOther)
			return
		}
		h.views.renderPriceList(w, r, status, listPath+querySuffixHTML, out.Form, out.Messages)
		return
	}
	respondJSON(w, status, out)
}
