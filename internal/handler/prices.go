package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/BuyerMerchant_Go/internal/logger"
)

const (
	pathNew         = "/new"
	querySuffixHTML = "?" + ParamFormat + "=" + FormatHTML
)

// HandleRenderPrices renders one page of a buyer's price list
// @Summary Price list form
// @Description Owner only. Returns the form description as JSON, or an HTML page with format=html
// @Tags prices
// @Produce json,html
// @Param agentID path string true "Buyer id"
// @Param page query int false "Zero-based page"
// @Param format query string false "html for a browser form"
// @Success 200 {object} pricing.Form
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/buyers/{agentID}/prices [get]
func (h *PricingHandler) HandleRenderPrices(w http.ResponseWriter, r *http.Request) {
	claims, ok := performer(r, w)
	if !ok {
		return
	}
	agentID, ok := agentIDParam(r, w)
	if !ok {
		return
	}
	page, ok := getIntQueryParam(r, w, ParamPage, 0)
	if !ok {
		return
	}

	form, err := h.service.Render(r.Context(), agentID, claims.PerformerID(), page)
	if err != nil {
		respondServiceError(w, r, OpRender, err)
		return
	}

	if wantsHTML(r) {
		h.views.renderPriceList(w, r, http.StatusOK, r.URL.Path+querySuffixHTML, form, nil)
		return
	}
	respondJSON(w, http.StatusOK, form)
}

// HandleApplyPrices applies a submitted price list form
// @Summary Submit price list form
// @Description Owner only. Accepts form-encoded fields or a flat JSON object keyed like the rendered form
// @Tags prices
// @Accept json,x-www-form-urlencoded
// @Produce json,html
// @Param agentID path string true "Buyer id"
// @Success 200 {object} pricing.Outcome
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/buyers/{agentID}/prices [post]
func (h *PricingHandler) HandleApplyPrices(w http.ResponseWriter, r *http.Request) {
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

	out, err := h.service.Apply(r.Context(), agentID, claims.PerformerID(), fields)
	if err != nil {
		respondServiceError(w, r, OpApply, err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgPriceListApplied,
		"agent_id", agentID,
		"messages", len(out.Messages),
		"failures", len(out.Failures))

	if wantsHTML(r) {
		if out.AddItem != nil {
			h.views.renderAddItem(w, r, http.StatusOK, r.URL.Path+pathNew+querySuffixHTML, out.AddItem, out.Messages)
			return
		}
		h.views.renderPriceList(w, r, http.StatusOK, r.URL.Path+querySuffixHTML, out.Form, out.Messages)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

// pricesPath is the price list path for an add-item path.
func pricesPath(addItemPath string) string {
	return strings.TrimSuffix(addItemPath, pathNew)
}
