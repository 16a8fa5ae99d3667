package services

import (
	"fmt"

	"club-management-platform/internal/models"
)

// ProductRepository interface for product data operations
type ProductRepository interface {
	GetByID(id string) (*models.Product, error)
	List() ([]*models.Product, error)
	UpdateStock(id string, stock int) error
}

// TicketRepository interface for ticket inventory data operations
type TicketRepository interface {
	GetByID(id string) (*models.MatchTicket, error)
	GetByMatchAndCategory(matchID, seatCategory string) (*models.MatchTicket, error)
	ListByMatch(matchID string) ([]*models.MatchTicket, error)
	UpdateAvailability(id string, available int) error
}

// MatchRepository interface for match fixture data operations
type MatchRepository interface {
	GetByID(id string) (*models.Match, error)
	List() ([]*models.Match, error)
}

// CatalogService exposes the product and ticket catalog
type CatalogService struct {
	productRepo ProductRepository
	ticketRepo  TicketRepository
	matchRepo   MatchRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo ProductRepository, ticketRepo TicketRepository, matchRepo MatchRepository) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		ticketRepo:  ticketRepo,
		matchRepo:   matchRepo,
	}
}

// ListProducts returns all products in the club shop
func (s *CatalogService) ListProducts() ([]*models.Product, error) {
	return s.productRepo.List()
}

// GetProduct returns one product by id
func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// ListMatches returns all fixtures
func (s *CatalogService) ListMatches() ([]*models.Match, error) {
	return s.matchRepo.List()
}

// GetMatch returns one fixture by id
func (s *CatalogService) GetMatch(id string) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("match lookup failed: %w", err)
	}
	return match, nil
}

// ListMatchTickets returns the seat categories on sale for a match
func (s *CatalogService) ListMatchTickets(matchID string) ([]*models.MatchTicket, error) {
	if _, err := s.matchRepo.GetByID(matchID); err != nil {
		return nil, fmt.Errorf("match lookup failed: %w", err)
	}
	return s.ticketRepo.ListByMatch(matchID)
}

// UpdateProductStock replaces a product's stock level. Admin restocking
// only; checkout decrements go through the order writer.
func (s *CatalogService) UpdateProductStock(id string, stock int) (*models.Product, error) {
	if stock < 0 {
		return nil, &models.ValidationError{Field: "stock", Message: "stock cannot be negative"}
	}

	if err := s.productRepo.UpdateStock(id, stock); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(id)
}

// UpdateTicketAvailability replaces a ticket category's availability
func (s *CatalogService) UpdateTicketAvailability(id string, available int) (*models.MatchTicket, error) {
	if available < 0 {
		return nil, &models.ValidationError{Field: "available_tickets", Message: "availability cannot be negative"}
	}

	if err := s.ticketRepo.UpdateAvailability(id, available); err != nil {
		return nil, err
	}
	return s.ticketRepo.GetByID(id)
}
