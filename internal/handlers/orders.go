package handlers

import (
	"net/http"

	"club-management-platform/internal/middleware"
	"club-management-platform/internal/models"
	"club-management-platform/internal/services"
)

// OrderHandler handles order retrieval and admin status updates
type OrderHandler struct {
	orderService services.OrderServiceInterface
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService services.OrderServiceInterface) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// ListMyOrders handles GET /orders
func (h *OrderHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.GetUserOrders(currentUserID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// GetOrder handles GET /orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := atoiParam(r, "id")
	if err != nil {
		respondError(w, &models.ValidationError{Field: "id", Message: "invalid order id"})
		return
	}

	order, err := h.orderService.GetOrderByID(orderID, middleware.GetUserFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// UpdateStatus handles PATCH /admin/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := atoiParam(r, "id")
	if err != nil {
		respondError(w, &models.ValidationError{Field: "id", Message: "invalid order id"})
		return
	}

	var req models.OrderStatusUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	order, err := h.orderService.UpdateStatus(orderID, req.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}
