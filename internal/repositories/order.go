package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"club-management-platform/internal/models"
)

// OrderRepository handles order data operations
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// StockDecrement is one entry of a checkout decrement batch.
type StockDecrement struct {
	ItemID   string
	Quantity int
}

// CreateWithStockDecrements creates an order and applies every stock
// decrement in a single transaction. Each decrement is conditional
// (stock must still cover the requested quantity); if any entry fails the
// whole transaction rolls back and no order exists. This closes the window
// between stock verification and decrement that two concurrent checkouts
// could otherwise race through.
func (r *OrderRepository) CreateWithStockDecrements(order *models.Order, products, tickets []StockDecrement) (*models.Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := r.decrementProducts(tx, products); err != nil {
		return nil, err
	}
	if err := r.decrementTickets(tx, tickets); err != nil {
		return nil, err
	}

	// Generate unique order number (retry on collision)
	orderNumber := models.GenerateOrderNumber()
	for i := 0; i < 5; i++ {
		var exists bool
		err = tx.QueryRow("SELECT EXISTS(SELECT 1 FROM orders WHERE order_number = $1)", orderNumber).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("failed to check order number uniqueness: %w", err)
		}
		if !exists {
			break
		}
		orderNumber = models.GenerateOrderNumber()
	}

	query := `
		INSERT INTO orders (user_id, order_number, total_price, payment_method, shipping_method, street, city, postal_code, phone, country, status, order_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, order_date, updated_at`

	now := time.Now()
	created := *order
	created.OrderNumber = orderNumber
	created.Status = models.OrderPending

	err = tx.QueryRow(
		query,
		order.UserID,
		orderNumber,
		order.TotalPrice,
		order.PaymentMethod,
		order.ShippingMethod,
		order.ShippingAddress.Street,
		order.ShippingAddress.City,
		order.ShippingAddress.PostalCode,
		order.ShippingAddress.Phone,
		order.ShippingAddress.Country,
		models.OrderPending,
		now,
		now,
	).Scan(&created.ID, &created.OrderDate, &created.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for _, item := range order.Items {
		_, err = tx.Exec(`
			INSERT INTO order_items (order_id, product_id, product_type, quantity, price)
			VALUES ($1, $2, $3, $4, $5)`,
			created.ID, item.ProductID, item.ProductType, item.Quantity, item.Price)
		if err != nil {
			return nil, fmt.Errorf("failed to create order item: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order creation: %w", err)
	}

	return &created, nil
}

// decrementProducts applies conditional product stock decrements inside the
// checkout transaction.
func (r *OrderRepository) decrementProducts(tx *sql.Tx, decrements []StockDecrement) error {
	for _, dec := range decrements {
		result, err := tx.Exec(`
			UPDATE products
			SET stock = stock - $2, updated_at = $3
			WHERE id = $1 AND stock >= $2`,
			dec.ItemID, dec.Quantity, time.Now())
		if err != nil {
			return fmt.Errorf("failed to decrement stock for product %s: %w", dec.ItemID, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}

		if rowsAffected == 0 {
			available, err := r.currentProductStock(tx, dec.ItemID)
			if err != nil {
				return err
			}
			return &models.InsufficientStockError{
				ItemID:    dec.ItemID,
				Available: available,
				Requested: dec.Quantity,
			}
		}
	}
	return nil
}

// decrementTickets applies conditional ticket availability decrements
// inside the checkout transaction.
func (r *OrderRepository) decrementTickets(tx *sql.Tx, decrements []StockDecrement) error {
	for _, dec := range decrements {
		result, err := tx.Exec(`
			UPDATE match_tickets
			SET available_tickets = available_tickets - $2, updated_at = $3
			WHERE id = $1 AND available_tickets >= $2`,
			dec.ItemID, dec.Quantity, time.Now())
		if err != nil {
			return fmt.Errorf("failed to decrement availability for ticket %s: %w", dec.ItemID, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}

		if rowsAffected == 0 {
			available, err := r.currentTicketAvailability(tx, dec.ItemID)
			if err != nil {
				return err
			}
			return &models.InsufficientStockError{
				ItemID:    dec.ItemID,
				Available: available,
				Requested: dec.Quantity,
			}
		}
	}
	return nil
}

func (r *OrderRepository) currentProductStock(tx *sql.Tx, id string) (int, error) {
	var stock int
	err := tx.QueryRow("SELECT stock FROM products WHERE id = $1", id).Scan(&stock)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, models.ErrProductNotFound
		}
		return 0, fmt.Errorf("failed to read product stock: %w", err)
	}
	return stock, nil
}

func (r *OrderRepository) currentTicketAvailability(tx *sql.Tx, id string) (int, error) {
	var available int
	err := tx.QueryRow("SELECT available_tickets FROM match_tickets WHERE id = $1", id).Scan(&available)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, models.ErrTicketNotFound
		}
		return 0, fmt.Errorf("failed to read ticket availability: %w", err)
	}
	return available, nil
}

// GetByID retrieves an order with its items
func (r *OrderRepository) GetByID(id int) (*models.Order, error) {
	query := `
		SELECT id, user_id, order_number, total_price, payment_method, shipping_method, street, city, postal_code, phone, country, status, order_date, updated_at
		FROM orders
		WHERE id = $1`

	order := &models.Order{}
	err := r.db.QueryRow(query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.OrderNumber,
		&order.TotalPrice,
		&order.PaymentMethod,
		&order.ShippingMethod,
		&order.ShippingAddress.Street,
		&order.ShippingAddress.City,
		&order.ShippingAddress.PostalCode,
		&order.ShippingAddress.Phone,
		&order.ShippingAddress.Country,
		&order.Status,
		&order.OrderDate,
		&order.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.getItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

// GetByUser retrieves all orders of a user, most recent first
func (r *OrderRepository) GetByUser(userID int) ([]*models.Order, error) {
	query := `
		SELECT id, user_id, order_number, total_price, payment_method, shipping_method, street, city, postal_code, phone, country, status, order_date, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY order_date DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.OrderNumber,
			&order.TotalPrice,
			&order.PaymentMethod,
			&order.ShippingMethod,
			&order.ShippingAddress.Street,
			&order.ShippingAddress.City,
			&order.ShippingAddress.PostalCode,
			&order.ShippingAddress.Phone,
			&order.ShippingAddress.Country,
			&order.Status,
			&order.OrderDate,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	for _, order := range orders {
		items, err := r.getItems(order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}

	return orders, nil
}

// UpdateStatus updates only the order status after validating the
// transition
func (r *OrderRepository) UpdateStatus(id int, status models.OrderStatus) (*models.Order, error) {
	if err := models.ValidateOrderStatus(status); err != nil {
		return nil, err
	}

	order, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !order.CanTransitionTo(status) {
		return nil, &models.ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("order cannot transition from %s to %s", order.Status, status),
		}
	}

	query := `UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(query, id, status, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return nil, models.ErrOrderNotFound
	}

	return r.GetByID(id)
}

func (r *OrderRepository) getItems(orderID int) ([]models.OrderItem, error) {
	query := `
		SELECT product_id, product_type, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`

	rows, err := r.db.Query(query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ProductID, &item.ProductType, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return items, nil
}
