package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/logger"
	"github.com/osse101/BuyerMerchant_Go/internal/pricing"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	// encode before writing the header so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped status and message.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf(LogMsgServiceFailedFmt, opName), "error", err)
	} else {
		log.Info(fmt.Sprintf(LogMsgServiceFailedFmt, opName), "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing fallbacks for errors that carry no message of their own
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgBuyerNotFoundError  = "Buyer not found"
	ErrMsgNotOwnerError       = "You don't own that buyer"
	ErrMsgNoPriceListError    = "That buyer has no price list"
	ErrMsgPriceListFullError  = "The price list is full"
	ErrMsgEntryNotFoundError  = "Entry not found"
	ErrMsgNoMatchError        = "The buyer is not buying that"
	ErrMsgBelowMinimumError   = "Quantity is below the minimum purchase"
	ErrMsgNotEnoughMoneyError = "The buyer cannot afford that"
	ErrMsgTemplateNotFoundErr = "Item not found"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgPersistenceError    = "The change could not be saved. Please try again."
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and the message shown
// to the player. A message carried by pricing.UserError wins over the generic text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	status, msg := http.StatusInternalServerError, ErrMsgGenericServerError
	switch {
	case errors.Is(err, domain.ErrBuyerNotFound):
		status, msg = http.StatusNotFound, ErrMsgBuyerNotFoundError
	case errors.Is(err, domain.ErrNotOwner):
		status, msg = http.StatusForbidden, ErrMsgNotOwnerError
	case errors.Is(err, domain.ErrNoPriceListOnBuyer):
		status, msg = http.StatusConflict, ErrMsgNoPriceListError
	case errors.Is(err, domain.ErrPriceListFull), errors.Is(err, domain.ErrPageNotAdded):
		status, msg = http.StatusConflict, ErrMsgPriceListFullError
	case errors.Is(err, domain.ErrNoMatch):
		status, msg = http.StatusNotFound, ErrMsgNoMatchError
	case errors.Is(err, domain.ErrTemplateNotFound):
		status, msg = http.StatusNotFound, ErrMsgTemplateNotFoundErr
	case errors.Is(err, domain.ErrNotFound):
		status, msg = http.StatusNotFound, ErrMsgEntryNotFoundError
	case errors.Is(err, domain.ErrBelowMinimumPurchase):
		status, msg = http.StatusBadRequest, ErrMsgBelowMinimumError
	case errors.Is(err, domain.ErrInsufficientFunds):
		status, msg = http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInvalidInput):
		status, msg = http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrPersistenceFailed):
		status, msg = http.StatusServiceUnavailable, ErrMsgPersistenceError
	}

	if userMsg, ok := pricing.UserMessage(err); ok {
		msg = userMsg
	}
	return status, msg
}
