package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/securedocs/docvault/internal/core/domain"
	"github.com/securedocs/docvault/internal/core/ports"
)

// bcryptCost is the work factor applied to every password digest.
const bcryptCost = 10

// AuthService implements registration and login on top of the user
// directory, and signs the session tokens the Authentication cookie
// carries.
type AuthService struct {
	users     ports.UserService
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserService, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register creates a new account and returns it with a signed session
// token. A taken email fails with ErrUserExists before anything is
// hashed or persisted.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error) {
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, "", domain.ErrUserExists
	} else {
		var nf *domain.NotFoundError
		if !errors.As(err, &nf) {
			return nil, "", err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.Create(ctx, ports.CreateUserInput{
		Password:  string(hash),
		Email:     in.Email,
		PublicKey: in.PublicKey,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user registered")
	return user, token, nil
}

// Login verifies the credentials and returns the user with a fresh
// session token. Unknown email and wrong password produce the same
// ErrWrongCredentials so the response does not reveal which failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			return nil, "", domain.ErrWrongCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", domain.ErrWrongCredentials
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user logged in")
	return user, token, nil
}

func (s *AuthService) generateToken(userID int64) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
