package handlers

import (
	"net/http"

	"club-management-platform/internal/models"
	"club-management-platform/internal/services"

	"github.com/go-chi/chi/v5"
)

// AdminHandler exposes inventory management endpoints. All routes are
// mounted behind RequireAdmin.
type AdminHandler struct {
	catalogService services.CatalogServiceInterface
	orderService   services.OrderServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(catalogService services.CatalogServiceInterface, orderService services.OrderServiceInterface) *AdminHandler {
	return &AdminHandler{
		catalogService: catalogService,
		orderService:   orderService,
	}
}

type stockUpdateRequest struct {
	Stock int `json:"stock"`
}

// UpdateProductStock handles PATCH /admin/products/{id}/stock
func (h *AdminHandler) UpdateProductStock(w http.ResponseWriter, r *http.Request) {
	var req stockUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	product, err := h.catalogService.UpdateProductStock(chi.URLParam(r, "id"), req.Stock)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

type availabilityUpdateRequest struct {
	AvailableTickets int `json:"available_tickets"`
}

// UpdateTicketAvailability handles PATCH /admin/tickets/{id}/availability
func (h *AdminHandler) UpdateTicketAvailability(w http.ResponseWriter, r *http.Request) {
	var req availabilityUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	ticket, err := h.catalogService.UpdateTicketAvailability(chi.URLParam(r, "id"), req.AvailableTickets)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ticket)
}

// GetUserOrders handles GET /admin/users/{id}/orders
func (h *AdminHandler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := atoiParam(r, "id")
	if err != nil {
		respondError(w, &models.ValidationError{Field: "id", Message: "invalid user id"})
		return
	}

	orders, err := h.orderService.GetUserOrders(userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}
