package services

import (
	"net/http"
	"time"

	"resto_backend/internal/auth"
	"resto_backend/internal/models"
	"resto_backend/internal/repositories"
	"resto_backend/internal/services/dto"
	"resto_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(req *dto.RefreshTokenRequest) (*dto.AuthResponse, error)
	Logout(req *dto.LogoutRequest) error
	GetProfile(userID string) (*dto.UserResponse, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(db *gorm.DB, userRepo repositories.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{db: db, userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "auth", "Failed to hash password", http.StatusInternalServerError)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.UserRoleUser,
	}
	if err := s.userRepo.Create(s.db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, s.mapError(err)
	}

	return s.issueTokens(user)
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(s.db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, s.mapError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Refresh rotates the refresh token: the presented token is consumed and a new
// pair is issued, so a replayed token fails cleanly.
func (s *authService) Refresh(req *dto.RefreshTokenRequest) (*dto.AuthResponse, error) {
	var user *models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		stored, err := s.userRepo.FindRefreshToken(tx, req.RefreshToken)
		if err != nil {
			return apperrors.ErrInvalidToken
		}
		if time.Now().After(stored.ExpiresAt) {
			_ = s.userRepo.DeleteRefreshToken(tx, stored.Token)
			return apperrors.ErrTokenExpired
		}

		user, err = s.userRepo.FindByID(tx, stored.UserID)
		if err != nil {
			return apperrors.ErrInvalidToken
		}

		return s.userRepo.DeleteRefreshToken(tx, stored.Token)
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	return s.issueTokens(user)
}

func (s *authService) Logout(req *dto.LogoutRequest) error {
	if err := s.userRepo.DeleteRefreshToken(s.db, req.RefreshToken); err != nil {
		if apperrors.Is(err, repositories.ErrTokenNotFound) {
			// Already gone; logout stays idempotent.
			return nil
		}
		return s.mapError(err)
	}
	return nil
}

func (s *authService) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(s.db, userID)
	if err != nil {
		return nil, s.mapError(err)
	}
	return buildUserResponse(user), nil
}

func (s *authService) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "auth", "Failed to sign token", http.StatusInternalServerError)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.userRepo.CreateRefreshToken(s.db, refresh); err != nil {
		return nil, s.mapError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		User:         buildUserResponse(user),
	}, nil
}

func (s *authService) mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case apperrors.Is(err, repositories.ErrUserNotFound):
		return apperrors.ErrNotFound(err, "user", "User not found")
	default:
		if appErr, ok := apperrors.AsAppError(err); ok {
			return appErr
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Database operation failed", http.StatusInternalServerError)
	}
}

func buildUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	}
}
