package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"

	"github.com/glowdesk/admin-api/internal/model"
	"github.com/glowdesk/admin-api/internal/repository"
	"github.com/glowdesk/admin-api/pkg/auth"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	bcryptCost         = 12
	claimsCacheTTL     = 5 * time.Minute
	claimsCacheCleanup = 15 * time.Minute
)

type Service struct {
	users  repository.UserRepository
	jwtSvc auth.JWTService
	expiry time.Duration
	// validated-token cache so hot listing endpoints skip signature checks
	claims *gocache.Cache
}

func NewService(users repository.UserRepository, jwtSvc auth.JWTService, expiry time.Duration) *Service {
	return &Service{
		users:  users,
		jwtSvc: jwtSvc,
		expiry: expiry,
		claims: gocache.New(claimsCacheTTL, claimsCacheCleanup),
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtSvc.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.TokenResponse{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(s.expiry),
		User:        user,
	}, nil
}

func (s *Service) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	if cached, found := s.claims.Get(token); found {
		return cached.(*auth.Claims), nil
	}

	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	s.claims.Set(token, claims, gocache.DefaultExpiration)
	return claims, nil
}

// HashPassword is used by the seeding path to store the admin credential.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("password hashing failed: %w", err)
	}
	return string(bytes), nil
}
