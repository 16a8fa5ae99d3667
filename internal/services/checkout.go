package services

import (
	"fmt"

	"club-management-platform/internal/models"
	"club-management-platform/internal/repositories"
)

// OrderWriter interface for transactional order creation with stock
// decrements
type OrderWriter interface {
	CreateWithStockDecrements(order *models.Order, products, tickets []repositories.StockDecrement) (*models.Order, error)
}

// CheckoutService orchestrates the checkout flow: verify stock for every
// cart line, create the order and decrement stock in one transaction, then
// clear the cart.
type CheckoutService struct {
	cartStore   CartStore
	productRepo ProductRepository
	ticketRepo  TicketRepository
	orderWriter OrderWriter
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(cartStore CartStore, productRepo ProductRepository, ticketRepo TicketRepository, orderWriter OrderWriter) *CheckoutService {
	return &CheckoutService{
		cartStore:   cartStore,
		productRepo: productRepo,
		ticketRepo:  ticketRepo,
		orderWriter: orderWriter,
	}
}

// Checkout places an order from the user's current cart.
//
// The total price and every item price are recomputed from the
// authoritative catalog at this point; the prices stored in the cart are
// display values only. Stock verification runs per line as a fast
// precondition, but the decrement inside order creation is conditional, so
// a concurrent checkout that wins the race simply causes this one to fail
// with InsufficientStockError and no order is created.
func (s *CheckoutService) Checkout(userID int, req *models.CheckoutRequest) (*models.Order, error) {
	if userID <= 0 {
		return nil, models.ErrNotAuthenticated
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	cart, err := s.cartStore.Load(userID)
	if err != nil {
		return nil, err
	}

	if cart.IsEmpty() {
		return nil, models.ErrEmptyCart
	}

	items, productDecs, ticketDecs, err := s.verifyStock(cart)
	if err != nil {
		return nil, err
	}

	var totalPrice int
	for _, item := range items {
		totalPrice += item.Price * item.Quantity
	}

	order := &models.Order{
		UserID:          userID,
		Items:           items,
		TotalPrice:      totalPrice,
		PaymentMethod:   req.PaymentMethod,
		ShippingMethod:  req.ShippingMethod,
		ShippingAddress: req.ShippingAddress,
	}

	created, err := s.orderWriter.CreateWithStockDecrements(order, productDecs, ticketDecs)
	if err != nil {
		return nil, err
	}

	if err := s.cartStore.Clear(userID); err != nil {
		// The order is already committed at this point
		fmt.Printf("Warning: failed to clear cart for user %d after checkout: %v\n", userID, err)
	}

	return created, nil
}

// verifyStock re-reads the authoritative stock for every cart line and
// builds the order items (with catalog prices) and the decrement batches.
// The whole checkout aborts on the first line with insufficient stock.
func (s *CheckoutService) verifyStock(cart *models.Cart) ([]models.OrderItem, []repositories.StockDecrement, []repositories.StockDecrement, error) {
	var (
		items       []models.OrderItem
		productDecs []repositories.StockDecrement
		ticketDecs  []repositories.StockDecrement
	)

	for _, line := range cart.Lines {
		switch line.ItemType {
		case models.ItemTypeProduct:
			product, err := s.productRepo.GetByID(line.ItemID)
			if err != nil {
				return nil, nil, nil, err
			}
			if !product.HasStock(line.Quantity) {
				return nil, nil, nil, &models.InsufficientStockError{
					ItemID:    product.ID,
					Available: product.Stock,
					Requested: line.Quantity,
				}
			}
			items = append(items, models.OrderItem{
				ProductID:   product.ID,
				ProductType: models.ItemTypeProduct,
				Quantity:    line.Quantity,
				Price:       product.Price,
			})
			productDecs = append(productDecs, repositories.StockDecrement{ItemID: product.ID, Quantity: line.Quantity})
		case models.ItemTypeTicket:
			ticket, err := s.ticketRepo.GetByID(line.ItemID)
			if err != nil {
				return nil, nil, nil, err
			}
			if !ticket.HasAvailability(line.Quantity) {
				return nil, nil, nil, &models.InsufficientStockError{
					ItemID:    ticket.ID,
					Available: ticket.AvailableTickets,
					Requested: line.Quantity,
				}
			}
			items = append(items, models.OrderItem{
				ProductID:   ticket.ID,
				ProductType: models.ItemTypeTicket,
				Quantity:    line.Quantity,
				Price:       ticket.Price,
			})
			ticketDecs = append(ticketDecs, repositories.StockDecrement{ItemID: ticket.ID, Quantity: line.Quantity})
		default:
			return nil, nil, nil, &models.ValidationError{Field: "item_type", Message: "item type must be product or ticket"}
		}
	}

	return items, productDecs, ticketDecs, nil
}
