package services

import (
	"context"
	"time"

	"github.com/tanvir/campushub/internal/app/models"
	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/pkg/apperrors"
	"github.com/tanvir/campushub/internal/pkg/auth"
)

// AuthUserStore is the account surface the auth service needs
type AuthUserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByCode(ctx context.Context, code string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// TokenStore persists refresh tokens server-side so they can be revoked
type TokenStore interface {
	Save(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	UserIDForToken(ctx context.Context, token string) (int64, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error
	Logout(ctx context.Context, refreshToken string) error
}

type authServiceImpl struct {
	users      AuthUserStore
	tokens     TokenStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(users AuthUserStore, tokens TokenStore, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{users: users, tokens: tokens, jwtService: jwtService}
}

// Login authenticates by generated user code. Deleted and blocked accounts
// are rejected before the password is even checked.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.GetByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFoundError("User not found")
	}
	if err := checkAccountUsable(user); err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return s.issueTokens(ctx, user)
}

// RefreshToken rotates a refresh token: the presented token is revoked and
// a fresh pair is issued, so a stolen token works at most once.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	userID, err := s.tokens.UserIDForToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if userID == 0 {
		return nil, apperrors.ErrTokenInvalid
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrTokenInvalid
	}
	if err := checkAccountUsable(user); err != nil {
		return nil, err
	}

	if err := s.tokens.Revoke(ctx, refreshToken); err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

// ChangePassword verifies the old password, stores the new hash and revokes
// every outstanding refresh token for the account.
func (s *authServiceImpl) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NewNotFoundError("User not found")
	}
	if !auth.CheckPassword(user.Password, req.OldPassword) {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}
	return s.tokens.RevokeAllForUser(ctx, userID)
}

// Logout revokes the presented refresh token
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return s.tokens.Revoke(ctx, refreshToken)
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.LoginResponse, error) {
	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Save(ctx, user.ID, refreshToken, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:         accessToken,
		RefreshToken:        refreshToken,
		ExpiresIn:           expiresIn,
		NeedsPasswordChange: user.NeedsPasswordChange,
	}, nil
}

func checkAccountUsable(user *models.User) error {
	if user.IsDeleted {
		return apperrors.ErrAccountDeleted
	}
	if user.Status == models.UserStatusBlocked {
		return apperrors.ErrAccountBlocked
	}
	return nil
}
