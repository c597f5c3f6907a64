package core

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AccountService wraps the user repository with password hashing and token
// issuance for the public register/login endpoints.
type AccountService struct {
	users  UserRepository
	tokens *TokenService
}

func NewAccountService(users UserRepository, tokens *TokenService) *AccountService {
	return &AccountService{users: users, tokens: tokens}
}

// Register creates a new non-admin user with a bcrypt-hashed password.
// The email conflict check runs before field validation, so re-registering
// an existing email reports the conflict even if other fields are bad.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*User, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if registrationInvalid(name, email, password) {
		return nil, ErrInvalidFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, uuid.NewString(), name, email, string(hash), false)
}

// Login verifies credentials and issues a bearer token for the user.
// Unknown email and wrong password are deliberately indistinguishable.
func (s *AccountService) Login(ctx context.Context, email, password string) (*User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}

	return &User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}, token, nil
}
