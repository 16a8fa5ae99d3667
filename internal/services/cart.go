package services

import (
	"fmt"

	"club-management-platform/internal/models"
)

// CartStore interface for cart persistence, keyed by user identity
type CartStore interface {
	Load(userID int) (*models.Cart, error)
	Save(cart *models.Cart) error
	Clear(userID int) error
}

// CartService handles cart business logic. Every operation loads the
// user's persisted cart, applies the pure in-memory mutation and saves the
// result, so a rejected mutation never changes persisted state.
type CartService struct {
	cartStore   CartStore
	productRepo ProductRepository
	ticketRepo  TicketRepository
}

// NewCartService creates a new cart service
func NewCartService(cartStore CartStore, productRepo ProductRepository, ticketRepo TicketRepository) *CartService {
	return &CartService{
		cartStore:   cartStore,
		productRepo: productRepo,
		ticketRepo:  ticketRepo,
	}
}

// GetCart returns the user's current cart
func (s *CartService) GetCart(userID int) (*models.Cart, error) {
	if userID <= 0 {
		return nil, models.ErrNotAuthenticated
	}
	return s.cartStore.Load(userID)
}

// AddItem adds a catalog item to the user's cart. The unit price is always
// resolved from the catalog; client-supplied prices are never used.
func (s *CartService) AddItem(userID int, req *models.AddItemRequest) (*models.Cart, error) {
	if userID <= 0 {
		return nil, models.ErrNotAuthenticated
	}

	line, err := s.resolveLine(req.ItemID, req.ItemType, req.SeatCategory, req.Quantity)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartStore.Load(userID)
	if err != nil {
		return nil, err
	}

	if err := cart.AddItem(*line); err != nil {
		return nil, err
	}

	if err := s.cartStore.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}

	return cart, nil
}

// UpdateQuantity replaces the quantity of an existing cart line
func (s *CartService) UpdateQuantity(userID int, req *models.UpdateQuantityRequest) (*models.Cart, error) {
	if userID <= 0 {
		return nil, models.ErrNotAuthenticated
	}

	cart, err := s.cartStore.Load(userID)
	if err != nil {
		return nil, err
	}

	key := models.CartLineKey{ItemID: req.ItemID, ItemType: req.ItemType, SeatCategory: req.SeatCategory}
	if err := cart.UpdateQuantity(key, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.cartStore.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}

	return cart, nil
}

// RemoveItem deletes a cart line. Removing an absent line is a no-op.
func (s *CartService) RemoveItem(userID int, key models.CartLineKey) (*models.Cart, error) {
	if userID <= 0 {
		return nil, models.ErrNotAuthenticated
	}

	cart, err := s.cartStore.Load(userID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(key)

	if err := s.cartStore.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}

	return cart, nil
}

// Clear empties the user's cart. Called on logout and explicit clear.
func (s *CartService) Clear(userID int) error {
	if userID <= 0 {
		return models.ErrNotAuthenticated
	}
	return s.cartStore.Clear(userID)
}

// resolveLine builds a cart line from the authoritative catalog record.
func (s *CartService) resolveLine(itemID string, itemType models.ItemType, seatCategory string, quantity int) (*models.CartLine, error) {
	switch itemType {
	case models.ItemTypeProduct:
		product, err := s.productRepo.GetByID(itemID)
		if err != nil {
			return nil, err
		}
		return &models.CartLine{
			ItemID:    product.ID,
			ItemType:  models.ItemTypeProduct,
			Quantity:  quantity,
			UnitPrice: product.Price,
		}, nil
	case models.ItemTypeTicket:
		ticket, err := s.ticketRepo.GetByID(itemID)
		if err != nil {
			return nil, err
		}
		if seatCategory != "" && seatCategory != ticket.SeatCategory {
			return nil, &models.ValidationError{Field: "seat_category", Message: "seat category does not match the ticket"}
		}
		return &models.CartLine{
			ItemID:       ticket.ID,
			ItemType:     models.ItemTypeTicket,
			SeatCategory: ticket.SeatCategory,
			MatchID:      ticket.MatchID,
			Quantity:     quantity,
			UnitPrice:    ticket.Price,
		}, nil
	default:
		return nil, &models.ValidationError{Field: "item_type", Message: "item type must be product or ticket"}
	}
}
