package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"club-management-platform/internal/models"
)

// CartRepository persists cart lines per user identity. Carts are keyed by
// user id so switching accounts never leaks another user's cart.
type CartRepository struct {
	db *sql.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db: db}
}

// Load reads the persisted cart of a user. A user with no persisted lines
// gets an empty cart.
func (r *CartRepository) Load(userID int) (*models.Cart, error) {
	query := `
		SELECT item_id, item_type, seat_category, match_id, quantity, unit_price
		FROM cart_items
		WHERE user_id = $1
		ORDER BY id`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	defer rows.Close()

	cart := models.NewCart(userID)
	for rows.Next() {
		var line models.CartLine
		err := rows.Scan(
			&line.ItemID,
			&line.ItemType,
			&line.SeatCategory,
			&line.MatchID,
			&line.Quantity,
			&line.UnitPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}
		cart.Lines = append(cart.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart lines: %w", err)
	}

	return cart, nil
}

// Save replaces the persisted cart of a user with the given state, in one
// transaction.
func (r *CartRepository) Save(cart *models.Cart) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM cart_items WHERE user_id = $1", cart.UserID); err != nil {
		return fmt.Errorf("failed to clear previous cart state: %w", err)
	}

	now := time.Now()
	for _, line := range cart.Lines {
		_, err := tx.Exec(`
			INSERT INTO cart_items (user_id, item_id, item_type, seat_category, match_id, quantity, unit_price, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			cart.UserID, line.ItemID, line.ItemType, line.SeatCategory, line.MatchID, line.Quantity, line.UnitPrice, now, now)
		if err != nil {
			return fmt.Errorf("failed to save cart line: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cart save: %w", err)
	}

	return nil
}

// Clear deletes every cart line of a user. Used on logout and explicit
// clear.
func (r *CartRepository) Clear(userID int) error {
	if _, err := r.db.Exec("DELETE FROM cart_items WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
