package ports

import (
	"context"

	"github.com/securedocs/docvault/internal/core/domain"
)

// RegisterInput carries the registration fields after boundary
// validation (password confirmation already checked).
type RegisterInput struct {
	Email     string
	Password  string
	PublicKey string
	FirstName string
	LastName  string
}

// AuthService orchestrates registration and login and issues the signed
// session token the Authentication cookie carries.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
