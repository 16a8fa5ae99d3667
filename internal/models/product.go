package models

import (
	"strings"
	"time"
)

// Product represents an item in the club shop catalog.
type Product struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Category  string    `json:"category" db:"category"`
	Price     int       `json:"price" db:"price"` // Price in cents
	Stock     int       `json:"stock" db:"stock"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Validate validates the product data.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return &ValidationError{Field: "id", Message: "product id is required"}
	}
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Message: "product name is required"}
	}
	if p.Price < 0 {
		return &ValidationError{Field: "price", Message: "price cannot be negative"}
	}
	if p.Stock < 0 {
		return &ValidationError{Field: "stock", Message: "stock cannot be negative"}
	}
	return nil
}

// HasStock reports whether the product can cover the requested quantity.
func (p *Product) HasStock(quantity int) bool {
	return quantity <= p.Stock
}

// PriceInCurrency returns the price in the main currency as a float.
func (p *Product) PriceInCurrency() float64 {
	return float64(p.Price) / 100.0
}
