package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"user_backend/internal/feature/auth/domain/entity"
	"user_backend/internal/platform/validation"
)

// AuthUserRepository abstracts the persistence layer for auth accounts.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type AuthUserRepository interface {
	// Create persists a new account. It returns ErrEmailAlreadyExists when the
	// email is taken.
	Create(ctx context.Context, user *entity.AuthUser) error

	// FindByEmail retrieves an account by email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.AuthUser, error)
}

// TokenGenerator mints opaque bearer tokens bound to one account.
type TokenGenerator interface {
	// GenerateToken creates a signed token for the given account.
	GenerateToken(userID uint, email string) (string, error)
}

// AuthUsecase implements registration and credential verification.
type AuthUsecase struct {
	users  AuthUserRepository
	tokens TokenGenerator
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(users AuthUserRepository, tokens TokenGenerator) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

// Register creates an account with a bcrypt-hashed password and issues a
// bearer token for it. A taken email surfaces as a field-level validation
// error so the handler can report it like any other rule violation.
func (u *AuthUsecase) Register(ctx context.Context, name, email, password string) (*entity.AuthUser, string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.AuthUser{Name: name, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, "", validation.Errors{"email": {validation.Taken("email")}}
		}
		return nil, "", fmt.Errorf("failed to create account: %w", err)
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// Login authenticates an account and issues a bearer token on success.
// A bcrypt comparison runs even when the account does not exist so that the
// two failure modes are indistinguishable by timing, and both return
// ErrInvalidCredentials.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*entity.AuthUser, string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the path for unknown
	// emails.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}
