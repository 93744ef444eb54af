package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Buyer errors
	ErrMsgBuyerNotFound = "buyer not found"
	ErrMsgNotOwner      = "performer does not own this buyer"

	// Price list errors
	ErrMsgNoPriceListOnBuyer = "no price list on buyer"
	ErrMsgPriceListFull      = "price list is full"
	ErrMsgPageNotAdded       = "price list page could not be added"
	ErrMsgNotFound           = "price list entry not found"
	ErrMsgNoMatch            = "no price list entry matches the offered item"

	// Trade errors
	ErrMsgBelowMinimumPurchase = "quantity is below the minimum purchase"
	ErrMsgInsufficientFunds    = "insufficient funds"

	// Catalog errors
	ErrMsgTemplateNotFound = "item template not found"

	// Database/System errors
	ErrMsgPersistenceFailed = "persistence failed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Buyer errors
	ErrBuyerNotFound = errors.New(ErrMsgBuyerNotFound)
	ErrNotOwner      = errors.New(ErrMsgNotOwner)

	// Price list errors
	ErrNoPriceListOnBuyer = errors.New(ErrMsgNoPriceListOnBuyer)
	ErrPriceListFull      = errors.New(ErrMsgPriceListFull)
	ErrPageNotAdded       = errors.New(ErrMsgPageNotAdded)
	ErrNotFound           = errors.New(ErrMsgNotFound)
	ErrNoMatch            = errors.New(ErrMsgNoMatch)

	// Trade errors
	ErrBelowMinimumPurchase = errors.New(ErrMsgBelowMinimumPurchase)
	ErrInsufficientFunds    = errors.New(ErrMsgInsufficientFunds)

	// Catalog errors
	ErrTemplateNotFound = errors.New(ErrMsgTemplateNotFound)

	// Database/System errors
	ErrPersistenceFailed = errors.New(ErrMsgPersistenceFailed)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
