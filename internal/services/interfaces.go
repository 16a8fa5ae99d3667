package services

import (
	"club-management-platform/internal/models"
)

// CartServiceInterface defines the interface for cart services
type CartServiceInterface interface {
	GetCart(userID int) (*models.Cart, error)
	AddItem(userID int, req *models.AddItemRequest) (*models.Cart, error)
	UpdateQuantity(userID int, req *models.UpdateQuantityRequest) (*models.Cart, error)
	RemoveItem(userID int, key models.CartLineKey) (*models.Cart, error)
	Clear(userID int) error
}

// CheckoutServiceInterface defines the interface for checkout services
type CheckoutServiceInterface interface {
	Checkout(userID int, req *models.CheckoutRequest) (*models.Order, error)
}

// OrderServiceInterface defines the interface for order services
type OrderServiceInterface interface {
	GetUserOrders(userID int) ([]*models.Order, error)
	GetOrderByID(orderID int, requestingUser *models.User) (*models.Order, error)
	UpdateStatus(orderID int, status models.OrderStatus) (*models.Order, error)
}

// CatalogServiceInterface defines the interface for catalog services
type CatalogServiceInterface interface {
	ListProducts() ([]*models.Product, error)
	GetProduct(id string) (*models.Product, error)
	ListMatches() ([]*models.Match, error)
	GetMatch(id string) (*models.Match, error)
	ListMatchTickets(matchID string) ([]*models.MatchTicket, error)
	UpdateProductStock(id string, stock int) (*models.Product, error)
	UpdateTicketAvailability(id string, available int) (*models.MatchTicket, error)
}

// AuthServiceInterface defines the interface for authentication services
type AuthServiceInterface interface {
	Register(req *models.UserCreateRequest) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetUserByID(id int) (*models.User, error)
}
