package handlers

import (
	"net/http"

	"club-management-platform/internal/services"

	"github.com/go-chi/chi/v5"
)

// CatalogHandler exposes the product and match catalog
type CatalogHandler struct {
	catalogService services.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService services.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts handles GET /products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListProducts()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalogService.GetProduct(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// ListMatches handles GET /matches
func (h *CatalogHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.catalogService.ListMatches()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, matches)
}

// GetMatch handles GET /matches/{id}
func (h *CatalogHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	match, err := h.catalogService.GetMatch(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, match)
}

// ListMatchTickets handles GET /matches/{id}/tickets
func (h *CatalogHandler) ListMatchTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.catalogService.ListMatchTickets(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tickets)
}
