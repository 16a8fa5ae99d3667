package models

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// UserRole represents the role of a user in the system
type UserRole string

const (
	RoleFan   UserRole = "fan"
	RoleAdmin UserRole = "admin"
)

// User represents a user in the system
type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Role         UserRole  `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserCreateRequest represents the data needed to create a new user
type UserCreateRequest struct {
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Role      UserRole `json:"role"`
}

var (
	// Email validation regex
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Validate validates the user data
func (u *User) Validate() error {
	if err := validateUserEmail(u.Email); err != nil {
		return err
	}

	if err := validateUserName(u.FirstName, u.LastName); err != nil {
		return err
	}

	return validateUserRole(u.Role)
}

// Validate validates user creation data
func (req *UserCreateRequest) Validate() error {
	if err := validateUserEmail(req.Email); err != nil {
		return err
	}

	if err := validateUserPassword(req.Password); err != nil {
		return err
	}

	if err := validateUserName(req.FirstName, req.LastName); err != nil {
		return err
	}

	return validateUserRole(req.Role)
}

// FullName returns the user's full name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func validateUserEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}

	if len(email) > 255 {
		return errors.New("email must be less than 255 characters")
	}

	if !emailRegex.MatchString(email) {
		return errors.New("email format is invalid")
	}

	return nil
}

func validateUserPassword(password string) error {
	if password == "" {
		return errors.New("password is required")
	}

	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	return nil
}

func validateUserName(firstName, lastName string) error {
	if strings.TrimSpace(firstName) == "" {
		return errors.New("first name is required")
	}

	if strings.TrimSpace(lastName) == "" {
		return errors.New("last name is required")
	}

	if len(firstName) > 100 || len(lastName) > 100 {
		return errors.New("names must be less than 100 characters")
	}

	return nil
}

func validateUserRole(role UserRole) error {
	switch role {
	case RoleFan, RoleAdmin:
		return nil
	default:
		return errors.New("invalid user role")
	}
}
