package handlers

import (
	"net/http"

	"club-management-platform/internal/middleware"
	"club-management-platform/internal/models"
	"club-management-platform/internal/services"
)

// CartHandler handles cart requests. Every endpoint requires an
// authenticated user; the cart is keyed by the session's user.
type CartHandler struct {
	cartService services.CartServiceInterface
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService services.CartServiceInterface) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func currentUserID(r *http.Request) int {
	if user := middleware.GetUserFromContext(r.Context()); user != nil {
		return user.ID
	}
	return 0
}

// cartResponse adds the computed total to the cart payload
type cartResponse struct {
	*models.Cart
	TotalPrice int `json:"total_price"`
}

func newCartResponse(cart *models.Cart) cartResponse {
	return cartResponse{Cart: cart, TotalPrice: cart.Total()}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartService.GetCart(currentUserID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newCartResponse(cart))
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	cart, err := h.cartService.AddItem(currentUserID(r), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newCartResponse(cart))
}

// UpdateQuantity handles PUT /cart/items
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	cart, err := h.cartService.UpdateQuantity(currentUserID(r), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newCartResponse(cart))
}

type removeItemRequest struct {
	ItemID       string          `json:"item_id"`
	ItemType     models.ItemType `json:"item_type"`
	SeatCategory string          `json:"seat_category,omitempty"`
}

// RemoveItem handles DELETE /cart/items
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req removeItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	key := models.CartLineKey{ItemID: req.ItemID, ItemType: req.ItemType, SeatCategory: req.SeatCategory}
	cart, err := h.cartService.RemoveItem(currentUserID(r), key)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newCartResponse(cart))
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cartService.Clear(currentUserID(r)); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "cart cleared"})
}
