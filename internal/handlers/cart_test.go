package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"club-management-platform/internal/middleware"
	"club-management-platform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func authedRequest(method, target, body string, user *models.User) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if user != nil {
		req = req.WithContext(middleware.SetUserContext(req.Context(), user))
	}
	return req
}

var testFan = &models.User{ID: 7, Email: "fan@club.example", Role: models.RoleFan}

func TestCartHandler_GetCart(t *testing.T) {
	cartService := &MockCartService{}
	cartService.On("GetCart", 7).Return(&models.Cart{
		UserID: 7,
		Lines: []models.CartLine{
			{ItemID: "P1", ItemType: models.ItemTypeProduct, Quantity: 3, UnitPrice: 1000},
			{ItemID: "T1", ItemType: models.ItemTypeTicket, SeatCategory: "VIP", MatchID: "M1", Quantity: 2, UnitPrice: 5000},
		},
	}, nil)

	h := NewCartHandler(cartService)
	rec := httptest.NewRecorder()
	h.GetCart(rec, authedRequest(http.MethodGet, "/cart", "", testFan))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_price":13000`)
	cartService.AssertExpectations(t)
}

func TestCartHandler_AddItem(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"item_id":"P1","item_type":"product","quantity":2}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed body",
			body:       `{"item_id":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"item_id":"P1","item_type":"product","quantity":2,"price":1}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "cap exceeded",
			body:       `{"item_id":"T1","item_type":"ticket","quantity":6}`,
			serviceErr: &models.LimitExceededError{ItemID: "M1", Limit: 5, Scope: "match"},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unknown product",
			body:       `{"item_id":"P999","item_type":"product","quantity":1}`,
			serviceErr: models.ErrProductNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cartService := &MockCartService{}
			if tt.serviceErr != nil {
				cartService.On("AddItem", 7, mock.Anything).Return(nil, tt.serviceErr)
			} else {
				cartService.On("AddItem", 7, mock.Anything).Return(&models.Cart{UserID: 7}, nil).Maybe()
			}

			h := NewCartHandler(cartService)
			rec := httptest.NewRecorder()
			h.AddItem(rec, authedRequest(http.MethodPost, "/cart/items", tt.body, testFan))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCartHandler_Anonymous(t *testing.T) {
	cartService := &MockCartService{}
	cartService.On("GetCart", 0).Return(nil, models.ErrNotAuthenticated)

	h := NewCartHandler(cartService)
	rec := httptest.NewRecorder()
	h.GetCart(rec, authedRequest(http.MethodGet, "/cart", "", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartHandler_RemoveItem(t *testing.T) {
	cartService := &MockCartService{}
	key := models.CartLineKey{ItemID: "T1", ItemType: models.ItemTypeTicket, SeatCategory: "VIP"}
	cartService.On("RemoveItem", 7, key).Return(&models.Cart{UserID: 7}, nil)

	h := NewCartHandler(cartService)
	rec := httptest.NewRecorder()
	body := `{"item_id":"T1","item_type":"ticket","seat_category":"VIP"}`
	h.RemoveItem(rec, authedRequest(http.MethodDelete, "/cart/items", body, testFan))

	assert.Equal(t, http.StatusOK, rec.Code)
	cartService.AssertExpectations(t)
}

func TestCartHandler_Clear(t *testing.T) {
	cartService := &MockCartService{}
	cartService.On("Clear", 7).Return(nil)

	h := NewCartHandler(cartService)
	rec := httptest.NewRecorder()
	h.Clear(rec, authedRequest(http.MethodDelete, "/cart", "", testFan))

	assert.Equal(t, http.StatusOK, rec.Code)
	cartService.AssertExpectations(t)
}
