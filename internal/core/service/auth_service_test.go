package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/securedocs/docvault/internal/core/domain"
	"github.com/securedocs/docvault/internal/core/ports"
)

type stubUserDirectory struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newStubUserDirectory() *stubUserDirectory {
	return &stubUserDirectory{byEmail: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (d *stubUserDirectory) Create(_ context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if _, exists := d.byEmail[in.Email]; exists {
		return nil, domain.ErrUserExists
	}
	d.nextID++
	u := &domain.User{
		ID:        d.nextID,
		Password:  in.Password,
		Email:     in.Email,
		PublicKey: in.PublicKey,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	d.byEmail[in.Email] = cloneUser(u)
	return cloneUser(u), nil
}

func (d *stubUserDirectory) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range d.byEmail {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.NotFoundf("User #%d not found", id)
}

func (d *stubUserDirectory) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := d.byEmail[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.NotFoundf("User not found")
}

func (d *stubUserDirectory) FindByIDs(_ context.Context, ids []int64) ([]domain.User, error) {
	// Duplicate ids collapse, like a SQL IN list.
	users := []domain.User{}
	seen := map[int64]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		for _, u := range d.byEmail {
			if u.ID == id {
				users = append(users, *cloneUser(u))
			}
		}
	}
	if len(users) != len(ids) {
		return nil, domain.ErrUsersNotFound
	}
	return users, nil
}

func (d *stubUserDirectory) List(_ context.Context) ([]domain.User, error) {
	users := []domain.User{}
	for _, u := range d.byEmail {
		users = append(users, *cloneUser(u))
	}
	return users, nil
}

func registerInput(email string) ports.RegisterInput {
	return ports.RegisterInput{
		Email:     email,
		Password:  "s3cret",
		PublicKey: "pk-material",
		FirstName: "Alice",
		LastName:  "Archer",
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	dir := newStubUserDirectory()
	svc := NewAuthService(dir, "secret", time.Hour, zerolog.Nop())

	user, token, err := svc.Register(context.Background(), registerInput("alice@example.com"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Password == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	dir := newStubUserDirectory()
	svc := NewAuthService(dir, "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Register(context.Background(), registerInput("bob@example.com")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, _, err := svc.Register(context.Background(), registerInput("bob@example.com"))
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if err.Error() != "User already exists" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestAuthService_Login_TokenCarriesSubject(t *testing.T) {
	dir := newStubUserDirectory()
	svc := NewAuthService(dir, "secret", time.Hour, zerolog.Nop())

	registered, _, err := svc.Register(context.Background(), registerInput("carol@example.com"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, token, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("unexpected user id: %d", user.ID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	sub, ok := claims["sub"].(float64)
	if !ok || int64(sub) != registered.ID {
		t.Fatalf("unexpected sub claim: %v", claims["sub"])
	}
	if _, ok := claims["exp"].(float64); !ok {
		t.Fatalf("expected exp claim, got %v", claims["exp"])
	}
}

func TestAuthService_Login_FailureIsIndistinguishable(t *testing.T) {
	dir := newStubUserDirectory()
	svc := NewAuthService(dir, "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Register(context.Background(), registerInput("dave@example.com")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, unknownErr := svc.Login(context.Background(), "nobody@example.com", "s3cret")
	_, _, wrongErr := svc.Login(context.Background(), "dave@example.com", "wrong")

	if unknownErr == nil || wrongErr == nil {
		t.Fatalf("expected both logins to fail: %v %v", unknownErr, wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("messages differ: %q vs %q", unknownErr.Error(), wrongErr.Error())
	}
	if unknownErr.Error() != "Email or password are wrong" {
		t.Fatalf("unexpected message: %q", unknownErr.Error())
	}
}
