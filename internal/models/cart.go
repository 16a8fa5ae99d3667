package models

// ItemType distinguishes the two kinds of catalog items a cart line can
// reference.
type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeTicket  ItemType = "ticket"
)

// Cart quantity caps (business rules)
const (
	// MaxTicketsPerMatch caps the summed ticket quantity for one match
	// across all seat categories.
	MaxTicketsPerMatch = 5
	// MaxQuantityPerProduct caps the quantity of a single product line.
	MaxQuantityPerProduct = 10
)

// CartLineKey uniquely identifies a line within a cart. SeatCategory is
// empty for product lines.
type CartLineKey struct {
	ItemID       string   `json:"item_id"`
	ItemType     ItemType `json:"item_type"`
	SeatCategory string   `json:"seat_category,omitempty"`
}

// CartLine represents one (item, type, seat-category) entry with a quantity.
// MatchID is carried for ticket lines so the per-match cap can be computed;
// it is not part of the line key.
type CartLine struct {
	ItemID       string   `json:"item_id" db:"item_id"`
	ItemType     ItemType `json:"item_type" db:"item_type"`
	SeatCategory string   `json:"seat_category,omitempty" db:"seat_category"`
	MatchID      string   `json:"match_id,omitempty" db:"match_id"`
	Quantity     int      `json:"quantity" db:"quantity"`
	UnitPrice    int      `json:"unit_price" db:"unit_price"` // Price in cents
}

// Key returns the uniqueness key of the line.
func (l *CartLine) Key() CartLineKey {
	return CartLineKey{ItemID: l.ItemID, ItemType: l.ItemType, SeatCategory: l.SeatCategory}
}

// Validate validates the shape of a cart line.
func (l *CartLine) Validate() error {
	if l.ItemID == "" {
		return &ValidationError{Field: "item_id", Message: "item id is required"}
	}
	switch l.ItemType {
	case ItemTypeProduct:
		if l.SeatCategory != "" {
			return &ValidationError{Field: "seat_category", Message: "seat category is only valid for tickets"}
		}
	case ItemTypeTicket:
		if l.SeatCategory == "" {
			return &ValidationError{Field: "seat_category", Message: "seat category is required for tickets"}
		}
		if l.MatchID == "" {
			return &ValidationError{Field: "match_id", Message: "match id is required for tickets"}
		}
	default:
		return &ValidationError{Field: "item_type", Message: "item type must be product or ticket"}
	}
	if l.Quantity < 1 {
		return &ValidationError{Field: "quantity", Message: "quantity must be at least 1"}
	}
	if l.UnitPrice < 0 {
		return &ValidationError{Field: "unit_price", Message: "unit price cannot be negative"}
	}
	return nil
}

// Subtotal returns unit price times quantity in cents.
func (l *CartLine) Subtotal() int {
	return l.UnitPrice * l.Quantity
}

// Cart holds the selected items of one user. All operations are pure
// in-memory mutations; persistence is handled by the cart repository.
type Cart struct {
	UserID int        `json:"user_id"`
	Lines  []CartLine `json:"lines"`
}

// NewCart returns an empty cart for the given user.
func NewCart(userID int) *Cart {
	return &Cart{UserID: userID}
}

// AddItem merges the given line into the cart. If a line with the same key
// already exists the quantities are summed. The mutation is rejected with a
// LimitExceededError if a quantity cap would be violated.
func (c *Cart) AddItem(line CartLine) error {
	if err := line.Validate(); err != nil {
		return err
	}

	key := line.Key()
	existing := c.findLine(key)

	newQuantity := line.Quantity
	if existing != nil {
		newQuantity += existing.Quantity
	}

	if err := c.checkCaps(line, newQuantity, existing); err != nil {
		return err
	}

	if existing != nil {
		existing.Quantity = newQuantity
		return nil
	}

	c.Lines = append(c.Lines, line)
	return nil
}

// UpdateQuantity replaces the quantity of the line identified by key. The
// caps are recomputed excluding the line's own prior contribution.
func (c *Cart) UpdateQuantity(key CartLineKey, quantity int) error {
	if quantity < 1 {
		return &ValidationError{Field: "quantity", Message: "quantity must be at least 1"}
	}

	existing := c.findLine(key)
	if existing == nil {
		return &ValidationError{Field: "item_id", Message: "item is not in the cart"}
	}

	if err := c.checkCaps(*existing, quantity, existing); err != nil {
		return err
	}

	existing.Quantity = quantity
	return nil
}

// RemoveItem deletes the line identified by key. Removing an absent line is
// a no-op.
func (c *Cart) RemoveItem(key CartLineKey) {
	for i := range c.Lines {
		if c.Lines[i].Key() == key {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Clear empties all lines.
func (c *Cart) Clear() {
	c.Lines = nil
}

// IsEmpty reports whether the cart has zero lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Total returns the exact sum of unit price times quantity across all lines,
// in cents.
func (c *Cart) Total() int {
	var total int
	for i := range c.Lines {
		total += c.Lines[i].Subtotal()
	}
	return total
}

// findLine returns a pointer to the line with the given key, or nil.
func (c *Cart) findLine(key CartLineKey) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].Key() == key {
			return &c.Lines[i]
		}
	}
	return nil
}

// checkCaps validates the quantity caps for a prospective line quantity.
// The excluded line (the line being mutated, may be nil) does not contribute
// its prior quantity to the totals.
func (c *Cart) checkCaps(line CartLine, newQuantity int, excluded *CartLine) error {
	switch line.ItemType {
	case ItemTypeProduct:
		if newQuantity > MaxQuantityPerProduct {
			return &LimitExceededError{ItemID: line.ItemID, Limit: MaxQuantityPerProduct, Scope: "product"}
		}
	case ItemTypeTicket:
		// Tickets for the same match are capped across all seat categories.
		total := newQuantity
		for i := range c.Lines {
			l := &c.Lines[i]
			if l == excluded {
				continue
			}
			if l.ItemType == ItemTypeTicket && l.MatchID == line.MatchID {
				total += l.Quantity
			}
		}
		if total > MaxTicketsPerMatch {
			return &LimitExceededError{ItemID: line.MatchID, Limit: MaxTicketsPerMatch, Scope: "match"}
		}
	}
	return nil
}
