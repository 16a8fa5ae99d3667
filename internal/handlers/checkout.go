package handlers

import (
	"net/http"

	"club-management-platform/internal/models"
	"club-management-platform/internal/services"
)

// CheckoutHandler handles order placement
type CheckoutHandler struct {
	checkoutService services.CheckoutServiceInterface
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService services.CheckoutServiceInterface) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	order, err := h.checkoutService.Checkout(currentUserID(r), &req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, order)
}
