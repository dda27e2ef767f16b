package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowdesk/admin-api/internal/model"
	"github.com/glowdesk/admin-api/internal/repository/memory"
	"github.com/glowdesk/admin-api/pkg/auth"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := memory.NewStore()
	users := memory.NewUserRepository(store)

	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &model.User{
		ID:           uuid.New(),
		Email:        "admin@glowdesk.test",
		Name:         "Admin",
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}))

	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	return NewService(users, jwtSvc, time.Hour)
}

func TestLoginAndValidate(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Login(context.Background(), "admin@glowdesk.test", "correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "admin@glowdesk.test", resp.User.Email)

	claims, err := svc.ValidateToken(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@glowdesk.test", claims.Email)

	// Second validation comes from the cache and must agree.
	cached, err := svc.ValidateToken(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, cached.UserID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "admin@glowdesk.test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@glowdesk.test", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateRejectsGarbageToken(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ValidateToken(context.Background(), "not.a.token")
	assert.Error(t, err)
}
