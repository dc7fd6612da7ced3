package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tanvir/campushub/internal/app/models"
	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/pkg/apperrors"
	"github.com/tanvir/campushub/internal/pkg/auth"
)

type mockAuthUserStore struct {
	byID      map[int64]*models.User
	byCode    map[string]*models.User
	passwords map[int64]string
}

func (m *mockAuthUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	return m.byID[id], nil
}

func (m *mockAuthUserStore) GetByCode(_ context.Context, code string) (*models.User, error) {
	return m.byCode[code], nil
}

func (m *mockAuthUserStore) UpdatePassword(_ context.Context, userID int64, hash string) error {
	if m.passwords == nil {
		m.passwords = map[int64]string{}
	}
	m.passwords[userID] = hash
	return nil
}

type mockTokenStore struct {
	tokens  map[string]int64
	revoked []string
}

func (m *mockTokenStore) Save(_ context.Context, userID int64, token string, _ time.Time) error {
	if m.tokens == nil {
		m.tokens = map[string]int64{}
	}
	m.tokens[token] = userID
	return nil
}

func (m *mockTokenStore) UserIDForToken(_ context.Context, token string) (int64, error) {
	return m.tokens[token], nil
}

func (m *mockTokenStore) Revoke(_ context.Context, token string) error {
	m.revoked = append(m.revoked, token)
	delete(m.tokens, token)
	return nil
}

func (m *mockTokenStore) RevokeAllForUser(_ context.Context, userID int64) error {
	for token, id := range m.tokens {
		if id == userID {
			delete(m.tokens, token)
			m.revoked = append(m.revoked, token)
		}
	}
	return nil
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "campushub.test",
	})
}

func newAuthFixture(t *testing.T) (*mockAuthUserStore, *mockTokenStore, AuthService) {
	t.Helper()
	hash, err := auth.HashPassword("secret-pass")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	user := &models.User{
		ID:       1,
		Code:     "2025010001",
		Role:     models.RoleStudent,
		Password: hash,
		Status:   models.UserStatusInProgress,
	}
	users := &mockAuthUserStore{
		byID:   map[int64]*models.User{1: user},
		byCode: map[string]*models.User{"2025010001": user},
	}
	tokens := &mockTokenStore{}
	return users, tokens, NewAuthService(users, tokens, testJWTService())
}

func TestLogin(t *testing.T) {
	_, tokens, service := newAuthFixture(t)

	resp, err := service.Login(context.Background(), &dto.LoginRequest{Code: "2025010001", Password: "secret-pass"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected a token pair")
	}
	if tokens.tokens[resp.RefreshToken] != 1 {
		t.Error("refresh token not persisted for the user")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	_, _, service := newAuthFixture(t)

	_, err := service.Login(context.Background(), &dto.LoginRequest{Code: "2025010001", Password: "wrong"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials error, got %v", err)
	}
}

func TestLoginUnknownCode(t *testing.T) {
	_, _, service := newAuthFixture(t)

	_, err := service.Login(context.Background(), &dto.LoginRequest{Code: "F-0001", Password: "secret-pass"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestLoginRejectsDeletedAndBlocked(t *testing.T) {
	users, _, service := newAuthFixture(t)

	users.byCode["2025010001"].IsDeleted = true
	_, err := service.Login(context.Background(), &dto.LoginRequest{Code: "2025010001", Password: "secret-pass"})
	if !errors.Is(err, apperrors.ErrAccountDeleted) {
		t.Errorf("expected deleted-account error, got %v", err)
	}

	users.byCode["2025010001"].IsDeleted = false
	users.byCode["2025010001"].Status = models.UserStatusBlocked
	_, err = service.Login(context.Background(), &dto.LoginRequest{Code: "2025010001", Password: "secret-pass"})
	if !errors.Is(err, apperrors.ErrAccountBlocked) {
		t.Errorf("expected blocked-account error, got %v", err)
	}
}

func TestRefreshTokenRotates(t *testing.T) {
	_, tokens, service := newAuthFixture(t)

	first, err := service.Login(context.Background(), &dto.LoginRequest{Code: "2025010001", Password: "secret-pass"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}

	second, err := service.RefreshToken(context.Background(), first.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken() error: %v", err)
	}
	if second.RefreshToken == first.RefreshToken {
		t.Error("refresh must issue a new refresh token")
	}
	if _, ok := tokens.tokens[first.RefreshToken]; ok {
		t.Error("presented refresh token must be revoked")
	}

	// The old token no longer resolves
	if _, err := service.RefreshToken(context.Background(), first.RefreshToken); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("expected invalid token error on replay, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	users, tokens, service := newAuthFixture(t)

	login, err := service.Login(context.Background(), &dto.LoginRequest{Code: "2025010001", Password: "secret-pass"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}

	err = service.ChangePassword(context.Background(), 1, &dto.ChangePasswordRequest{
		OldPassword: "secret-pass",
		NewPassword: "brand-new-pass",
	})
	if err != nil {
		t.Fatalf("ChangePassword() error: %v", err)
	}
	if !auth.CheckPassword(users.passwords[1], "brand-new-pass") {
		t.Error("new password hash not stored")
	}
	if _, ok := tokens.tokens[login.RefreshToken]; ok {
		t.Error("all refresh tokens must be revoked after a password change")
	}
}

func TestChangePasswordWrongOld(t *testing.T) {
	_, _, service := newAuthFixture(t)

	err := service.ChangePassword(context.Background(), 1, &dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "brand-new-pass",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials error, got %v", err)
	}
}
