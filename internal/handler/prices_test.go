package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/pricing"
)

func sampleForm() *pricing.Form {
	return &pricing.Form{
		AgentID:   testAgentID,
		Title:     "Price list of Grimble",
		Page:      0,
		PageCount: 1,
		Size:      1,
		Capacity:  20,
		Rows: []pricing.Row{{
			Slot:     0,
			Label:    "log",
			Material: "wood",
			Weight:   "24kg",
			Fields: []pricing.Field{
				{Key: "0q", Label: "QL", Kind: pricing.KindText, Value: "35", MaxLength: 6},
				{Key: "0c", Label: "Copper", Kind: pricing.KindText, Value: "1", MaxLength: 2},
				{Key: "0remove", Label: "Remove", Kind: pricing.KindCheckbox},
			},
		}},
		Controls: []pricing.Control{{Key: pricing.KeySort, Label: "Sort", Value: "true"}},
	}
}

func TestHandleRenderPrices(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setupMock      func(*mockSvc)
		expectedStatus int
		verifyBody     func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "JSON",
			target: "/api/v1/buyers/agent-1/prices",
			setupMock: func(m *mockSvc) {
				m.On("Render", mock.Anything, testAgentID, testOwnerID, 0).Return(sampleForm(), nil)
			},
			expectedStatus: http.StatusOK,
			verifyBody: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var form pricing.Form
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &form))
				require.Len(t, form.Rows, 1)
				assert.Equal(t, "0q", form.Rows[0].Fields[0].Key)
			},
		},
		{
			name:   "HTML page",
			target: "/api/v1/buyers/agent-1/prices?page=2&format=html",
			setupMock: func(m *mockSvc) {
				m.On("Render", mock.Anything, testAgentID, testOwnerID, 2).Return(sampleForm(), nil)
			},
			expectedStatus: http.StatusOK,
			verifyBody: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := rec.Body.String()
				assert.Equal(t, ContentTypeHTML, rec.Header().Get("Content-Type"))
				assert.Contains(t, body, `action="/api/v1/buyers/agent-1/prices?format=html"`)
				assert.Contains(t, body, `name="0q" value="35" maxlength="6"`)
				assert.Contains(t, body, `type="checkbox" name="0remove"`)
				assert.Contains(t, body, `name="sort" value="true"`)
			},
		},
		{
			name:           "Malformed page",
			target:         "/api/v1/buyers/agent-1/prices?page=two",
			setupMock:      func(m *mockSvc) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody:     func(t *testing.T, rec *httptest.ResponseRecorder) {},
		},
		{
			name:   "Not owner",
			target: "/api/v1/buyers/agent-1/prices",
			setupMock: func(m *mockSvc) {
				m.On("Render", mock.Anything, testAgentID, testOwnerID, 0).Return(nil, domain.ErrNotOwner)
			},
			expectedStatus: http.StatusForbidden,
			verifyBody:     func(t *testing.T, rec *httptest.ResponseRecorder) {},
		},
		{
			name:   "No price list",
			target: "/api/v1/buyers/agent-1/prices",
			setupMock: func(m *mockSvc) {
				m.On("Render", mock.Anything, testAgentID, testOwnerID, 0).Return(nil, domain.ErrNoPriceListOnBuyer)
			},
			expectedStatus: http.StatusConflict,
			verifyBody:     func(t *testing.T, rec *httptest.ResponseRecorder) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			h, svc := newHandler(t)
			tt.setupMock(svc)
			rec := httptest.NewRecorder()

			// ACT
			h.HandleRenderPrices(rec, newRequest(http.MethodGet, tt.target, nil))

			// ASSERT
			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.verifyBody(t, rec)
		})
	}
}

func TestHandleRenderPrices_AcceptHeaderSelectsHTML(t *testing.T) {
	h, svc := newHandler(t)
	svc.On("Render", mock.Anything, testAgentID, testOwnerID, 0).Return(sampleForm(), nil)
	req := newRequest(http.MethodGet, "/api/v1/buyers/agent-1/prices", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	rec := httptest.NewRecorder()

	h.HandleRenderPrices(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>Price list of Grimble</h1>")
}

func TestHandleApplyPrices_JSON(t *testing.T) {
	// ARRANGE
	h, svc := newHandler(t)
	out := &pricing.Outcome{
		Messages: []string{"Failed to set silver for log."},
		Failures: []pricing.ValidationError{{Slot: 0, Field: pricing.FieldPrice, Message: "Failed to set silver for log."}},
		Form:     sampleForm(),
	}
	svc.On("Apply", mock.Anything, testAgentID, testOwnerID, pricing.FieldValues{
		"0q": "20", "0s": "x", "0p": "3", "0remove": "false",
	}).Return(out, nil)

	req := newRequest(http.MethodPost, "/api/v1/buyers/agent-1/prices",
		strings.NewReader(`{"0q":20,"0s":"x","0p":"3","0remove":false,"0g":null}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rec := httptest.NewRecorder()

	// ACT
	h.HandleApplyPrices(rec, req)

	// ASSERT
	require.Equal(t, http.StatusOK, rec.Code)
	var got pricing.Outcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, out.Messages, got.Messages)
	require.Len(t, got.Failures, 1)
	assert.Equal(t, pricing.FieldPrice, got.Failures[0].Field)
}

func TestHandleApplyPrices_FormPostRendersMessages(t *testing.T) {
	h, svc := newHandler(t)
	svc.On("Apply", mock.Anything, testAgentID, testOwnerID, pricing.FieldValues{
		"page": "1", "0c": "5",
	}).Return(&pricing.Outcome{Messages: []string{"Sorted 4 entries."}, Form: sampleForm()}, nil)

	// the clicked page button comes after the hidden input
	req := newRequest(http.MethodPost, "/api/v1/buyers/agent-1/prices?format=html",
		strings.NewReader("page=0&0c=5&page=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.HandleApplyPrices(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sorted 4 entries.")
}

func TestHandleApplyPrices_NewShowsChooser(t *testing.T) {
	h, svc := newHandler(t)
	svc.On("Apply", mock.Anything, testAgentID, testOwnerID, pricing.FieldValues{pricing.KeyNew: "true"}).
		Return(&pricing.Outcome{AddItem: sampleChoice()}, nil)

	req := newRequest(http.MethodPost, "/api/v1/buyers/agent-1/prices?format=html", strings.NewReader("new=true"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.HandleApplyPrices(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `action="/api/v1/buyers/agent-1/prices/new?format=html"`)
	assert.Contains(t, body, "copper coin")
}

func TestHandleApplyPrices_Errors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		contentType    string
		setupMock      func(*mockSvc)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Nested JSON value",
			body:           `{"0q":{"v":1}}`,
			contentType:    "application/json",
			setupMock:      func(m *mockSvc) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:        "Persistence failure keeps the player message",
			body:        `{"0c":"9"}`,
			contentType: "application/json",
			setupMock: func(m *mockSvc) {
				m.On("Apply", mock.Anything, testAgentID, testOwnerID, pricing.FieldValues{"0c": "9"}).
					Return(nil, &pricing.UserError{Err: domain.ErrPersistenceFailed, Message: pricing.MsgPersistenceFailed})
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   pricing.MsgPersistenceFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newHandler(t)
			tt.setupMock(svc)
			req := newRequest(http.MethodPost, "/api/v1/buyers/agent-1/prices", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			rec := httptest.NewRecorder()

			h.HandleApplyPrices(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
