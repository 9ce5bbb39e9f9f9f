package marketplace

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jananikuppan04-sys/Campus-Cart/docstore"
	"github.com/jananikuppan04-sys/Campus-Cart/internal/auth"
	"github.com/jananikuppan04-sys/Campus-Cart/internal/models"
)

// UserService handles account creation and credential checks. It never
// issues tokens; callers pass already-authenticated identity into the other
// services.
type UserService struct {
	users *docstore.Collection
}

// RegisterInput carries the fields a new account needs. Name, email and
// password are required; registration is the one place the advisory schema
// is enforced.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// Register creates an account with a bcrypt-hashed credential. The email is
// normalized to lower case and must be unused.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || email == "" || in.Password == "" {
		return models.User{}, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}

	_, err := s.users.FindOne(ctx, docstore.Filter{"email": email})
	if err == nil {
		return models.User{}, ErrEmailTaken
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	created, err := s.users.Create(ctx, map[string]any{
		"name":     in.Name,
		"email":    email,
		"password": hash,
		"phone":    in.Phone,
	})
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := created.Decode(&user); err != nil {
		return models.User{}, err
	}
	return user.Public(), nil
}

// Authenticate resolves an email/password pair to the account. Both an
// unknown email and a wrong password yield ErrInvalidCredentials so the
// response cannot be used to enumerate accounts.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	entity, err := s.users.FindOne(ctx, docstore.Filter{"email": strings.ToLower(strings.TrimSpace(email))})
	if errors.Is(err, docstore.ErrNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if !entity.MatchPassword(password) {
		return models.User{}, ErrInvalidCredentials
	}

	var user models.User
	if err := entity.Decode(&user); err != nil {
		return models.User{}, err
	}
	return user.Public(), nil
}

// Get returns the account for an identifier.
func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	entity, err := s.users.FindByID(id).One(ctx)
	if err != nil {
		return models.User{}, err
	}
	var user models.User
	if err := entity.Decode(&user); err != nil {
		return models.User{}, err
	}
	return user.Public(), nil
}
