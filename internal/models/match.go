package models

import (
	"strings"
	"time"
)

// Match represents a fixture tickets are sold for.
type Match struct {
	ID        string    `json:"id" db:"id"`
	HomeTeam  string    `json:"home_team" db:"home_team"`
	AwayTeam  string    `json:"away_team" db:"away_team"`
	Venue     string    `json:"venue" db:"venue"`
	Kickoff   time.Time `json:"kickoff" db:"kickoff"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Validate validates the match data.
func (m *Match) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return &ValidationError{Field: "id", Message: "match id is required"}
	}
	if strings.TrimSpace(m.HomeTeam) == "" {
		return &ValidationError{Field: "home_team", Message: "home team is required"}
	}
	if strings.TrimSpace(m.AwayTeam) == "" {
		return &ValidationError{Field: "away_team", Message: "away team is required"}
	}
	if m.Kickoff.IsZero() {
		return &ValidationError{Field: "kickoff", Message: "kickoff time is required"}
	}
	return nil
}

// IsUpcoming reports whether the match has not kicked off yet.
func (m *Match) IsUpcoming() bool {
	return m.Kickoff.After(time.Now())
}
