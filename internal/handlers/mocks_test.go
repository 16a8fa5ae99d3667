package handlers

import (
	"club-management-platform/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockCartService is a mock implementation of CartServiceInterface
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(userID int) (*models.Cart, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartService) AddItem(userID int, req *models.AddItemRequest) (*models.Cart, error) {
	args := m.Called(userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartService) UpdateQuantity(userID int, req *models.UpdateQuantityRequest) (*models.Cart, error) {
	args := m.Called(userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartService) RemoveItem(userID int, key models.CartLineKey) (*models.Cart, error) {
	args := m.Called(userID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartService) Clear(userID int) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockCheckoutService is a mock implementation of CheckoutServiceInterface
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(userID int, req *models.CheckoutRequest) (*models.Order, error) {
	args := m.Called(userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

// MockOrderService is a mock implementation of OrderServiceInterface
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) GetUserOrders(userID int) ([]*models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderService) GetOrderByID(orderID int, requestingUser *models.User) (*models.Order, error) {
	args := m.Called(orderID, requestingUser)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(orderID int, status models.OrderStatus) (*models.Order, error) {
	args := m.Called(orderID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

// MockCatalogService is a mock implementation of CatalogServiceInterface
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListProducts() ([]*models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockCatalogService) GetProduct(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogService) ListMatches() ([]*models.Match, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Match), args.Error(1)
}

func (m *MockCatalogService) GetMatch(id string) (*models.Match, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockCatalogService) ListMatchTickets(matchID string) ([]*models.MatchTicket, error) {
	args := m.Called(matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MatchTicket), args.Error(1)
}

func (m *MockCatalogService) UpdateProductStock(id string, stock int) (*models.Product, error) {
	args := m.Called(id, stock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogService) UpdateTicketAvailability(id string, available int) (*models.MatchTicket, error) {
	args := m.Called(id, available)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MatchTicket), args.Error(1)
}

// MockAuthService is a mock implementation of AuthServiceInterface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(req *models.UserCreateRequest) (*models.User, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Authenticate(email, password string) (*models.User, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) GetUserByID(id int) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
