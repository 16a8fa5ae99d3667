package models

import (
	"strings"
	"time"
)

// MatchTicket represents the ticket inventory for one seat category of a
// match. Each (match, seat category) combination is one record.
type MatchTicket struct {
	ID               string    `json:"id" db:"id"`
	MatchID          string    `json:"match_id" db:"match_id"`
	SeatCategory     string    `json:"seat_category" db:"seat_category"`
	Price            int       `json:"price" db:"price"` // Price in cents
	AvailableTickets int       `json:"available_tickets" db:"available_tickets"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// Validate validates the ticket data.
func (t *MatchTicket) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return &ValidationError{Field: "id", Message: "ticket id is required"}
	}
	if strings.TrimSpace(t.MatchID) == "" {
		return &ValidationError{Field: "match_id", Message: "match id is required"}
	}
	if strings.TrimSpace(t.SeatCategory) == "" {
		return &ValidationError{Field: "seat_category", Message: "seat category is required"}
	}
	if t.Price < 0 {
		return &ValidationError{Field: "price", Message: "price cannot be negative"}
	}
	if t.AvailableTickets < 0 {
		return &ValidationError{Field: "available_tickets", Message: "available tickets cannot be negative"}
	}
	return nil
}

// HasAvailability reports whether the ticket can cover the requested quantity.
func (t *MatchTicket) HasAvailability(quantity int) bool {
	return quantity <= t.AvailableTickets
}

// IsSoldOut reports whether no tickets remain for this seat category.
func (t *MatchTicket) IsSoldOut() bool {
	return t.AvailableTickets == 0
}

// PriceInCurrency returns the price in the main currency as a float.
func (t *MatchTicket) PriceInCurrency() float64 {
	return float64(t.Price) / 100.0
}
