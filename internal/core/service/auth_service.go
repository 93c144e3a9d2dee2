package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

const minPasswordLen = 8

// emailPattern accepts local@domain.tld: at least one @, no whitespace,
// and a dot somewhere in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService implements registration and login.
type AuthService struct {
	repo       ports.UserRepository
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, bcryptCost int) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	// bcrypt.DefaultCost (10) is the floor: the work factor stays
	// independently verifiable from the stored hash.
	if bcryptCost < bcrypt.DefaultCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, bcryptCost: bcryptCost}
}

// Register validates the email shape and password length, enforces email
// uniqueness, and persists a new user with the default role.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if !emailPattern.MatchString(email) {
		return nil, domain.ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return nil, domain.ErrWeakPassword
	}

	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.repo.Create(ctx, user)
}

// Login authenticates by email and password and issues a session token.
// A missing user and a failed password comparison both surface as
// domain.ErrInvalidCredentials so the error reveals nothing about which
// part was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := IssueToken(user, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
