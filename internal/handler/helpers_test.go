package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/osse101/BuyerMerchant_Go/internal/auth"
	"github.com/osse101/BuyerMerchant_Go/mocks"
)

// mockSvc shortens table signatures.
type mockSvc = mocks.MockPricingService

const (
	testAgentID = "agent-1"
	testOwnerID = "owner-1"
)

// newHandler returns a handler backed by a strict service mock.
func newHandler(t *testing.T) (*PricingHandler, *mocks.MockPricingService) {
	t.Helper()
	svc := mocks.NewMockPricingService(t)
	return NewPricingHandler(svc, nil), svc
}

// newRequest builds a request routed to testAgentID and signed in as testOwnerID.
func newRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(ParamAgentID, testAgentID)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = auth.WithClaims(ctx, &auth.Claims{
		Name:             "Ann",
		RegisteredClaims: jwt.RegisteredClaims{Subject: testOwnerID},
	})
	return req.WithContext(ctx)
}

// anonymous strips the caller's claims from a request built by newRequest.
func anonymous(req *http.Request) *http.Request {
	rctx := chi.RouteContext(req.Context())
	return req.WithContext(context.WithValue(context.Background(), chi.RouteCtxKey, rctx))
}
