package models

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// PaymentMethod represents how an order is paid for
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "creditCard"
	PaymentCash       PaymentMethod = "cash"
)

// ShippingMethod represents how an order is delivered
type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
)

// ShippingAddress holds the delivery address of an order. All fields are
// required.
type ShippingAddress struct {
	Street     string `json:"street" db:"street"`
	City       string `json:"city" db:"city"`
	PostalCode string `json:"postal_code" db:"postal_code"`
	Phone      string `json:"phone" db:"phone"`
	Country    string `json:"country" db:"country"`
}

// Validate validates the shipping address.
func (a *ShippingAddress) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"street", a.Street},
		{"city", a.City},
		{"postal_code", a.PostalCode},
		{"phone", a.Phone},
		{"country", a.Country},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name, Message: f.name + " is required"}
		}
	}
	return nil
}

// OrderItem represents one purchased line of an order. Price is the
// authoritative unit price at order time, in cents.
type OrderItem struct {
	ProductID   string   `json:"product_id" db:"product_id"`
	ProductType ItemType `json:"product_type" db:"product_type"`
	Quantity    int      `json:"quantity" db:"quantity"`
	Price       int      `json:"price" db:"price"`
}

// Order represents an order in the system. Orders are immutable once
// created except for the status, which is admin-mutable.
type Order struct {
	ID              int             `json:"id" db:"id"`
	UserID          int             `json:"user_id" db:"user_id"`
	OrderNumber     string          `json:"order_number" db:"order_number"`
	Items           []OrderItem     `json:"items"`
	TotalPrice      int             `json:"total_price" db:"total_price"` // Amount in cents
	PaymentMethod   PaymentMethod   `json:"payment_method" db:"payment_method"`
	ShippingMethod  ShippingMethod  `json:"shipping_method" db:"shipping_method"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	Status          OrderStatus     `json:"status" db:"status"`
	OrderDate       time.Time       `json:"order_date" db:"order_date"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// ValidatePaymentMethod validates a payment method value.
func ValidatePaymentMethod(method PaymentMethod) error {
	switch method {
	case PaymentCreditCard, PaymentCash:
		return nil
	default:
		return &ValidationError{Field: "payment_method", Message: "payment method must be creditCard or cash"}
	}
}

// ValidateShippingMethod validates a shipping method value.
func ValidateShippingMethod(method ShippingMethod) error {
	switch method {
	case ShippingStandard, ShippingExpress:
		return nil
	default:
		return &ValidationError{Field: "shipping_method", Message: "shipping method must be standard or express"}
	}
}

// ValidateOrderStatus validates an order status value.
func ValidateOrderStatus(status OrderStatus) error {
	switch status {
	case OrderPending, OrderProcessing, OrderCompleted, OrderCancelled:
		return nil
	default:
		return &ValidationError{Field: "status", Message: "invalid order status"}
	}
}

// orderStatusTransitions defines the valid status transitions. Completed
// and cancelled are terminal.
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderCompleted, OrderCancelled},
	OrderCompleted:  {},
	OrderCancelled:  {},
}

// CanTransitionTo reports whether the order status may change to the given
// status.
func (o *Order) CanTransitionTo(status OrderStatus) bool {
	for _, allowed := range orderStatusTransitions[o.Status] {
		if status == allowed {
			return true
		}
	}
	return false
}

// IsPending returns true if the order is pending
func (o *Order) IsPending() bool {
	return o.Status == OrderPending
}

// IsTerminal returns true if the order is in a terminal state
func (o *Order) IsTerminal() bool {
	return o.Status == OrderCompleted || o.Status == OrderCancelled
}

// TotalPriceInCurrency returns the total price in the main currency as a float
func (o *Order) TotalPriceInCurrency() float64 {
	return float64(o.TotalPrice) / 100.0
}

// GenerateOrderNumber generates a unique order number
func GenerateOrderNumber() string {
	now := time.Now()
	dateStr := now.Format("20060102")

	// Generate a 6-digit random number using crypto/rand for better uniqueness
	max := big.NewInt(1000000)
	randomNum, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fallback to timestamp-based generation if crypto/rand fails
		timestamp := now.UnixNano()
		randomPart := timestamp % 1000000
		return fmt.Sprintf("ORD-%s-%06d", dateStr, randomPart)
	}

	return fmt.Sprintf("ORD-%s-%06d", dateStr, randomNum.Int64())
}
