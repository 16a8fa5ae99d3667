package models

// AddItemRequest is the payload for adding an item to the cart. Unit price
// is resolved from the catalog, never taken from the client.
type AddItemRequest struct {
	ItemID       string   `json:"item_id"`
	ItemType     ItemType `json:"item_type"`
	SeatCategory string   `json:"seat_category,omitempty"`
	Quantity     int      `json:"quantity"`
}

// UpdateQuantityRequest is the payload for changing a cart line's quantity.
type UpdateQuantityRequest struct {
	ItemID       string   `json:"item_id"`
	ItemType     ItemType `json:"item_type"`
	SeatCategory string   `json:"seat_category,omitempty"`
	Quantity     int      `json:"quantity"`
}

// CheckoutRequest is the payload for placing an order from the current cart.
type CheckoutRequest struct {
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	ShippingMethod  ShippingMethod  `json:"shipping_method"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
}

// Validate validates the checkout payload.
func (req *CheckoutRequest) Validate() error {
	if err := ValidatePaymentMethod(req.PaymentMethod); err != nil {
		return err
	}

	if err := ValidateShippingMethod(req.ShippingMethod); err != nil {
		return err
	}

	return req.ShippingAddress.Validate()
}

// OrderStatusUpdateRequest is the payload for an admin status transition.
type OrderStatusUpdateRequest struct {
	Status OrderStatus `json:"status"`
}
