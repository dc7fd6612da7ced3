package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/tanvir/campushub/internal/app/models"
)

func newTestService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "campushub.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestService(time.Hour)
	user := &models.User{ID: 42, Code: "2025010001", Role: models.RoleStudent}

	accessToken, refreshToken, expiresIn, err := service.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error: %v", err)
	}
	if refreshToken == "" {
		t.Error("expected a refresh token")
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := service.ValidateToken(accessToken)
	if err != nil {
		t.Fatalf("ValidateToken() error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Code != "2025010001" {
		t.Errorf("Code = %q, want %q", claims.Code, "2025010001")
	}
	if claims.Role != models.RoleStudent {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleStudent)
	}
	if claims.Issuer != "campushub.test" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "campushub.test")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	service := newTestService(-time.Minute)
	user := &models.User{ID: 1, Code: "A-0001", Role: models.RoleAdmin}

	accessToken, _, _, err := service.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error: %v", err)
	}

	if _, err := service.ValidateToken(accessToken); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected expired token error, got %v", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Code: "A-0001", Role: models.RoleAdmin}

	accessToken, _, _, err := newTestService(time.Hour).GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour})
	if _, err := other.ValidateToken(accessToken); err == nil {
		t.Error("expected validation to fail with the wrong secret")
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("ExtractBearerToken() error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("token = %q, want %q", token, "abc.def.ghi")
	}

	for _, header := range []string{"", "abc.def.ghi", "Basic abc"} {
		if _, err := ExtractBearerToken(header); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("ExtractBearerToken(%q) error = %v, want invalid format", header, err)
		}
	}
}
