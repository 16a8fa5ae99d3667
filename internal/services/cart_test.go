package services

import (
	"errors"
	"testing"

	"club-management-platform/internal/models"
)

func testCatalog() (*mockProductRepo, *mockTicketRepo) {
	products := newMockProductRepo(
		&models.Product{ID: "P1", Name: "Home Shirt", Category: "apparel", Price: 1000, Stock: 5},
		&models.Product{ID: "P2", Name: "Scarf", Category: "accessories", Price: 1500, Stock: 3},
	)
	tickets := newMockTicketRepo(
		&models.MatchTicket{ID: "T1", MatchID: "M1", SeatCategory: "VIP", Price: 5000, AvailableTickets: 4},
		&models.MatchTicket{ID: "T2", MatchID: "M1", SeatCategory: "Standard", Price: 2500, AvailableTickets: 10},
	)
	return products, tickets
}

func TestCartService_AddItem(t *testing.T) {
	products, tickets := testCatalog()
	store := newMemCartStore()
	service := NewCartService(store, products, tickets)

	cart, err := service.AddItem(1, &models.AddItemRequest{ItemID: "P1", ItemType: models.ItemTypeProduct, Quantity: 2})
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	if len(cart.Lines) != 1 {
		t.Fatalf("cart has %d lines, want 1", len(cart.Lines))
	}
	// Unit price comes from the catalog, never from the request
	if cart.Lines[0].UnitPrice != 1000 {
		t.Errorf("line unit price = %d, want 1000", cart.Lines[0].UnitPrice)
	}
	if store.saveCalls != 1 {
		t.Errorf("save calls = %d, want 1", store.saveCalls)
	}

	// Adding the same product again merges into the existing line
	cart, err = service.AddItem(1, &models.AddItemRequest{ItemID: "P1", ItemType: models.ItemTypeProduct, Quantity: 3})
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if len(cart.Lines) != 1 || cart.Lines[0].Quantity != 5 {
		t.Errorf("after merge: %d lines, quantity %d, want 1 line of 5", len(cart.Lines), cart.Lines[0].Quantity)
	}
}

func TestCartService_AddItem_Ticket(t *testing.T) {
	products, tickets := testCatalog()
	service := NewCartService(newMemCartStore(), products, tickets)

	cart, err := service.AddItem(1, &models.AddItemRequest{ItemID: "T1", ItemType: models.ItemTypeTicket, Quantity: 2})
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	line := cart.Lines[0]
	if line.SeatCategory != "VIP" || line.MatchID != "M1" || line.UnitPrice != 5000 {
		t.Errorf("ticket line = %+v, want VIP/M1/5000", line)
	}

	// Seat category in the request must match the ticket
	_, err = service.AddItem(1, &models.AddItemRequest{ItemID: "T2", ItemType: models.ItemTypeTicket, SeatCategory: "VIP", Quantity: 1})
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("mismatched seat category error = %v, want ValidationError", err)
	}
}

func TestCartService_AddItem_TicketCapAcrossCategories(t *testing.T) {
	products, tickets := testCatalog()
	store := newMemCartStore()
	service := NewCartService(store, products, tickets)

	if _, err := service.AddItem(1, &models.AddItemRequest{ItemID: "T1", ItemType: models.ItemTypeTicket, Quantity: 3}); err != nil {
		t.Fatalf("AddItem(T1) error = %v", err)
	}
	if _, err := service.AddItem(1, &models.AddItemRequest{ItemID: "T2", ItemType: models.ItemTypeTicket, Quantity: 2}); err != nil {
		t.Fatalf("AddItem(T2) error = %v", err)
	}

	// A sixth ticket for the same match is rejected and nothing is saved
	_, err := service.AddItem(1, &models.AddItemRequest{ItemID: "T2", ItemType: models.ItemTypeTicket, Quantity: 1})
	var limitErr *models.LimitExceededError
	if !errors.As(err, &limitErr) {
		t.Fatalf("sixth ticket error = %v, want LimitExceededError", err)
	}
	if limitErr.Scope != "match" || limitErr.Limit != models.MaxTicketsPerMatch {
		t.Errorf("limit error = %+v, want match scope with limit %d", limitErr, models.MaxTicketsPerMatch)
	}

	cart, err := service.GetCart(1)
	if err != nil {
		t.Fatalf("GetCart() error = %v", err)
	}
	total := 0
	for _, line := range cart.Lines {
		total += line.Quantity
	}
	if total != 5 {
		t.Errorf("persisted ticket count = %d, want 5", total)
	}
}

func TestCartService_AddItem_UnknownItem(t *testing.T) {
	products, tickets := testCatalog()
	service := NewCartService(newMemCartStore(), products, tickets)

	_, err := service.AddItem(1, &models.AddItemRequest{ItemID: "P999", ItemType: models.ItemTypeProduct, Quantity: 1})
	if !errors.Is(err, models.ErrProductNotFound) {
		t.Errorf("unknown product error = %v, want ErrProductNotFound", err)
	}

	_, err = service.AddItem(1, &models.AddItemRequest{ItemID: "T999", ItemType: models.ItemTypeTicket, Quantity: 1})
	if !errors.Is(err, models.ErrTicketNotFound) {
		t.Errorf("unknown ticket error = %v, want ErrTicketNotFound", err)
	}
}

func TestCartService_RequiresAuthentication(t *testing.T) {
	products, tickets := testCatalog()
	service := NewCartService(newMemCartStore(), products, tickets)

	if _, err := service.GetCart(0); !errors.Is(err, models.ErrNotAuthenticated) {
		t.Errorf("GetCart(0) error = %v, want ErrNotAuthenticated", err)
	}
	if _, err := service.AddItem(0, &models.AddItemRequest{ItemID: "P1", ItemType: models.ItemTypeProduct, Quantity: 1}); !errors.Is(err, models.ErrNotAuthenticated) {
		t.Errorf("AddItem(0) error = %v, want ErrNotAuthenticated", err)
	}
	if err := service.Clear(-1); !errors.Is(err, models.ErrNotAuthenticated) {
		t.Errorf("Clear(-1) error = %v, want ErrNotAuthenticated", err)
	}
}

func TestCartService_UpdateQuantity(t *testing.T) {
	products, tickets := testCatalog()
	service := NewCartService(newMemCartStore(), products, tickets)

	if _, err := service.AddItem(1, &models.AddItemRequest{ItemID: "P1", ItemType: models.ItemTypeProduct, Quantity: 2}); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	cart, err := service.UpdateQuantity(1, &models.UpdateQuantityRequest{ItemID: "P1", ItemType: models.ItemTypeProduct, Quantity: 7})
	if err != nil {
		t.Fatalf("UpdateQuantity() error = %v", err)
	}
	if cart.Lines[0].Quantity != 7 {
		t.Errorf("quantity = %d, want 7", cart.Lines[0].Quantity)
	}

	// Over the per-product cap
	_, err = service.UpdateQuantity(1, &models.UpdateQuantityRequest{ItemID: "P1", ItemType: models.ItemTypeProduct, Quantity: 11})
	var limitErr *models.LimitExceededError
	if !errors.As(err, &limitErr) {
		t.Fatalf("over-cap error = %v, want LimitExceededError", err)
	}
}

func TestCartService_RemoveItem(t *testing.T) {
	products, tickets := testCatalog()
	store := newMemCartStore()
	service := NewCartService(store, products, tickets)

	if _, err := service.AddItem(1, &models.AddItemRequest{ItemID: "P1", ItemType: models.ItemTypeProduct, Quantity: 2}); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	key := models.CartLineKey{ItemID: "P1", ItemType: models.ItemTypeProduct}
	cart, err := service.RemoveItem(1, key)
	if err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	if !cart.IsEmpty() {
		t.Errorf("cart not empty after removal: %+v", cart.Lines)
	}

	// Removing an absent line is a no-op, not an error
	if _, err := service.RemoveItem(1, key); err != nil {
		t.Errorf("RemoveItem() on absent line error = %v", err)
	}
}

func TestCartService_CartsAreIsolatedPerUser(t *testing.T) {
	products, tickets := testCatalog()
	service := NewCartService(newMemCartStore(), products, tickets)

	if _, err := service.AddItem(1, &models.AddItemRequest{ItemID: "P1", ItemType: models.ItemTypeProduct, Quantity: 2}); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if _, err := service.AddItem(2, &models.AddItemRequest{ItemID: "P2", ItemType: models.ItemTypeProduct, Quantity: 1}); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	cart1, _ := service.GetCart(1)
	cart2, _ := service.GetCart(2)

	if len(cart1.Lines) != 1 || cart1.Lines[0].ItemID != "P1" {
		t.Errorf("user 1 cart = %+v, want only P1", cart1.Lines)
	}
	if len(cart2.Lines) != 1 || cart2.Lines[0].ItemID != "P2" {
		t.Errorf("user 2 cart = %+v, want only P2", cart2.Lines)
	}
}
