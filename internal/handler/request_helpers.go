package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/BuyerMerchant_Go/internal/auth"
	"github.com/osse101/BuyerMerchant_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// When it returns an error the response has already been written and the handler
// should return.
//
//	var req CreateBuyerRequest
//	if err := DecodeAndValidateRequest(r, w, &req, OpCreateBuyer); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgDecodeFailedFmt, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	log.Debug(fmt.Sprintf(LogMsgDecodedFmt, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetOptionalQueryParam returns the query parameter or defaultValue when absent.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// getIntQueryParam parses an optional integer query parameter. On a malformed value it
// writes a 400 and returns false.
func getIntQueryParam(r *http.Request, w http.ResponseWriter, paramName string, defaultValue int) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(paramName))
	if raw == "" {
		return defaultValue, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf(ErrMsgInvalidQueryParam, paramName), "value", raw)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
		return 0, false
	}
	return v, true
}

// agentIDParam reads the buyer id from the route.
func agentIDParam(r *http.Request, w http.ResponseWriter) (string, bool) {
	id := strings.TrimSpace(chi.URLParam(r, ParamAgentID))
	if id == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, ParamAgentID))
		return "", false
	}
	return id, true
}

// performer returns the authenticated caller's claims.
func performer(r *http.Request, w http.ResponseWriter) (*auth.Claims, bool) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgUnauthenticated)
		return nil, false
	}
	return claims, true
}

// wantsHTML reports whether the caller asked for the HTML rendering of a form.
func wantsHTML(r *http.Request) bool {
	if r.URL.Query().Get(ParamFormat) == FormatHTML {
		return true
	}
	return strings.HasPrefix(r.Header.Get("Accept"), MediaTypeHTML)
}
