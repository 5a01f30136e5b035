package service

import (
	"context"
	"strings"

	"github.com/NaniCherry131202/Internship-Task/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// AccountRepository defines the persistence operations required by the
// account service. Lookup methods return (nil, nil) when no row matches.
type AccountRepository interface {
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}

// AccountService handles registration and credential checks. Passwords are
// stored as bcrypt hashes; the raw value never leaves this package.
type AccountService struct {
	repo AccountRepository
}

func NewAccountService(repo AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// Register creates a new user. The email is trimmed and lowercased before
// the uniqueness check so the same address cannot be registered twice with
// different casing.
func (s *AccountService) Register(ctx context.Context, email, password, name, country string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if email == "" {
		return nil, validationErr("Email is required")
	}
	if password == "" {
		return nil, validationErr("Password is required")
	}
	if name == "" {
		return nil, validationErr("Name is required")
	}

	existing, err := s.repo.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Country:      strings.TrimSpace(country),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate looks the user up by email and checks the password against
// the stored hash. An unknown email and a wrong password are reported as
// different errors; callers decide how much of that to expose.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || password == "" {
		return nil, validationErr("Email and password are required")
	}

	user, err := s.repo.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	return user, nil
}

// UserByID returns the user with the given id, or ErrNotFound.
func (s *AccountService) UserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.UserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
