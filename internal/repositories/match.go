package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"club-management-platform/internal/models"
)

// MatchRepository handles match fixture data operations
type MatchRepository struct {
	db *sql.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *sql.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Create inserts a new match
func (r *MatchRepository) Create(match *models.Match) error {
	if err := match.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO matches (id, home_team, away_team, venue, kickoff, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	now := time.Now()
	_, err := r.db.Exec(query, match.ID, match.HomeTeam, match.AwayTeam, match.Venue, match.Kickoff, now, now)
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}

	return nil
}

// GetByID retrieves a match by ID
func (r *MatchRepository) GetByID(id string) (*models.Match, error) {
	query := `
		SELECT id, home_team, away_team, venue, kickoff, created_at, updated_at
		FROM matches
		WHERE id = $1`

	match := &models.Match{}
	err := r.db.QueryRow(query, id).Scan(
		&match.ID,
		&match.HomeTeam,
		&match.AwayTeam,
		&match.Venue,
		&match.Kickoff,
		&match.CreatedAt,
		&match.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

// List retrieves all matches ordered by kickoff time
func (r *MatchRepository) List() ([]*models.Match, error) {
	query := `
		SELECT id, home_team, away_team, venue, kickoff, created_at, updated_at
		FROM matches
		ORDER BY kickoff`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []*models.Match
	for rows.Next() {
		match := &models.Match{}
		err := rows.Scan(
			&match.ID,
			&match.HomeTeam,
			&match.AwayTeam,
			&match.Venue,
			&match.Kickoff,
			&match.CreatedAt,
			&match.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, match)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating matches: %w", err)
	}

	return matches, nil
}
