package services

import (
	"testing"

	"resto_backend/internal/repositories"
	"resto_backend/internal/services/dto"
	"resto_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	return NewAuthService(newTestDB(t), repositories.NewUserRepository(), newTestTokenManager())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	registered, err := svc.Register(&dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.AccessToken)
	assert.NotEmpty(t, registered.RefreshToken)
	assert.Equal(t, "alice", registered.User.Username)
	assert.Equal(t, "user", registered.User.Role)

	loggedIn, err := svc.Login(&dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.AccessToken)

	profile, err := svc.GetProfile(loggedIn.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", profile.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	req := &dto.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret123"}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)

	// Unknown email fails the same way, revealing nothing.
	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	require.Error(t, err)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
}

func TestRefresh_RotatesToken(t *testing.T) {
	svc := newAuthService(t)

	registered, err := svc.Register(&dto.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(&dto.RefreshTokenRequest{RefreshToken: registered.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, registered.RefreshToken, refreshed.RefreshToken)

	// The consumed token cannot be replayed.
	_, err = svc.Refresh(&dto.RefreshTokenRequest{RefreshToken: registered.RefreshToken})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidToken, appErr.Code)
}

func TestLogout_Idempotent(t *testing.T) {
	svc := newAuthService(t)

	registered, err := svc.Register(&dto.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: registered.RefreshToken}))
	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: registered.RefreshToken}))

	// The revoked token no longer refreshes.
	_, err = svc.Refresh(&dto.RefreshTokenRequest{RefreshToken: registered.RefreshToken})
	require.Error(t, err)
}

func TestRegister_WeakPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "123"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}
