package services

import (
	"fmt"

	"club-management-platform/internal/models"
	"club-management-platform/internal/utils"
)

// UserRepository interface for user data operations
type UserRepository interface {
	Create(req *models.UserCreateRequest, passwordHash string) (*models.User, error)
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// AuthService handles registration and credential verification
type AuthService struct {
	userRepo UserRepository
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a new user account. Accounts registered through the
// public endpoint always get the fan role; admins are provisioned out of
// band.
func (s *AuthService) Register(req *models.UserCreateRequest) (*models.User, error) {
	if req.Role == "" {
		req.Role = models.RoleFan
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(req, hash)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies an email/password pair and returns the user.
// Unknown emails and wrong passwords both map to ErrInvalidCredentials.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, models.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if err == models.ErrUserNotFound {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, models.ErrInvalidCredentials
	}

	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *AuthService) GetUserByID(id int) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
