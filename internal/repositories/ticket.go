package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"club-management-platform/internal/models"
)

// TicketRepository handles match ticket inventory data operations
type TicketRepository struct {
	db *sql.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Create inserts a new ticket inventory record
func (r *TicketRepository) Create(ticket *models.MatchTicket) error {
	if err := ticket.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO match_tickets (id, match_id, seat_category, price, available_tickets, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	now := time.Now()
	_, err := r.db.Exec(query, ticket.ID, ticket.MatchID, ticket.SeatCategory, ticket.Price, ticket.AvailableTickets, now, now)
	if err != nil {
		return fmt.Errorf("failed to create match ticket: %w", err)
	}

	return nil
}

// GetByID retrieves a ticket inventory record by ID
func (r *TicketRepository) GetByID(id string) (*models.MatchTicket, error) {
	query := `
		SELECT id, match_id, seat_category, price, available_tickets, created_at, updated_at
		FROM match_tickets
		WHERE id = $1`

	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByMatchAndCategory retrieves the ticket record for one seat category
// of a match
func (r *TicketRepository) GetByMatchAndCategory(matchID, seatCategory string) (*models.MatchTicket, error) {
	query := `
		SELECT id, match_id, seat_category, price, available_tickets, created_at, updated_at
		FROM match_tickets
		WHERE match_id = $1 AND seat_category = $2`

	return r.scanOne(r.db.QueryRow(query, matchID, seatCategory))
}

// ListByMatch retrieves all seat categories on sale for a match
func (r *TicketRepository) ListByMatch(matchID string) ([]*models.MatchTicket, error) {
	query := `
		SELECT id, match_id, seat_category, price, available_tickets, created_at, updated_at
		FROM match_tickets
		WHERE match_id = $1
		ORDER BY price DESC`

	rows, err := r.db.Query(query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list match tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*models.MatchTicket
	for rows.Next() {
		ticket := &models.MatchTicket{}
		err := rows.Scan(
			&ticket.ID,
			&ticket.MatchID,
			&ticket.SeatCategory,
			&ticket.Price,
			&ticket.AvailableTickets,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating match tickets: %w", err)
	}

	return tickets, nil
}

// UpdateAvailability sets the available ticket count (administrative edit)
func (r *TicketRepository) UpdateAvailability(id string, available int) error {
	if available < 0 {
		return &models.ValidationError{Field: "available_tickets", Message: "available tickets cannot be negative"}
	}

	query := `UPDATE match_tickets SET available_tickets = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(query, id, available, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update ticket availability: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrTicketNotFound
	}

	return nil
}

func (r *TicketRepository) scanOne(row *sql.Row) (*models.MatchTicket, error) {
	ticket := &models.MatchTicket{}
	err := row.Scan(
		&ticket.ID,
		&ticket.MatchID,
		&ticket.SeatCategory,
		&ticket.Price,
		&ticket.AvailableTickets,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get match ticket: %w", err)
	}

	return ticket, nil
}
