package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "id-" + user.Email
	}
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, cloneUser(u))
	}
	return users, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, bcrypt.DefaultCost)

	user, err := svc.Register(context.Background(), "alice@example.com", "pass1234")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.PasswordHash == "pass1234" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass1234")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", user.Role)
	}

	cost, err := bcrypt.Cost([]byte(user.PasswordHash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost < bcrypt.DefaultCost {
		t.Fatalf("expected cost >= %d, got %d", bcrypt.DefaultCost, cost)
	}
}

func TestAuthService_Register_CostFloor(t *testing.T) {
	repo := newStubUserRepo()
	// a cost below the library default must be raised, not honoured
	svc := NewAuthService(repo, "secret", time.Hour, 4)

	user, err := svc.Register(context.Background(), "bob@example.com", "pass1234")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(user.PasswordHash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost < bcrypt.DefaultCost {
		t.Fatalf("expected cost >= %d, got %d", bcrypt.DefaultCost, cost)
	}
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, bcrypt.DefaultCost)

	for _, email := range []string{"", "plainaddr", "no@dot", "two words@example.com", "@example.com"} {
		if _, err := svc.Register(context.Background(), email, "pass1234"); err != domain.ErrInvalidEmail {
			t.Fatalf("email %q: expected ErrInvalidEmail, got %v", email, err)
		}
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, bcrypt.DefaultCost)

	if _, err := svc.Register(context.Background(), "carol@example.com", "short1"); err != domain.ErrWeakPassword {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, bcrypt.DefaultCost)

	if _, err := svc.Register(context.Background(), "dave@example.com", "pass1234"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "dave@example.com", "otherpass"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, bcrypt.DefaultCost)

	if _, err := svc.Register(context.Background(), "erin@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "erin@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "erin@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := VerifyToken(token, "secret")
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected subject %s, got %s", user.ID, claims.UserID)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("expected role %s, got %s", domain.RoleUser, claims.Role)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, bcrypt.DefaultCost)

	_, _ = svc.Register(context.Background(), "frank@example.com", "goodpass1")
	if _, _, err := svc.Login(context.Background(), "frank@example.com", "badpass99"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, bcrypt.DefaultCost)

	// an unknown email must be indistinguishable from a wrong password
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
