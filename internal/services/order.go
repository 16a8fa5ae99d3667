package services

import (
	"club-management-platform/internal/models"
)

// OrderRepository interface for order data operations
type OrderRepository interface {
	GetByID(id int) (*models.Order, error)
	GetByUser(userID int) ([]*models.Order, error)
	UpdateStatus(id int, status models.OrderStatus) (*models.Order, error)
}

// OrderService handles order retrieval and status management
type OrderService struct {
	orderRepo OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// GetUserOrders returns the orders placed by a user, newest first
func (s *OrderService) GetUserOrders(userID int) ([]*models.Order, error) {
	if userID <= 0 {
		return nil, models.ErrNotAuthenticated
	}
	return s.orderRepo.GetByUser(userID)
}

// GetOrderByID returns a single order. Fans can only read their own
// orders; admins can read any.
func (s *OrderService) GetOrderByID(orderID int, requestingUser *models.User) (*models.Order, error) {
	if requestingUser == nil {
		return nil, models.ErrNotAuthenticated
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != requestingUser.ID && !requestingUser.IsAdmin() {
		return nil, models.ErrUnauthorized
	}

	return order, nil
}

// UpdateStatus moves an order to a new status. The repository enforces the
// legal transition table.
func (s *OrderService) UpdateStatus(orderID int, status models.OrderStatus) (*models.Order, error) {
	return s.orderRepo.UpdateStatus(orderID, status)
}
