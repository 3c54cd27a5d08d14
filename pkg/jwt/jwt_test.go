package jwt

import (
	"testing"
	"time"

	"github.com/Muskan244/CareClock/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:               "test-secret-key-for-unit-testing",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("user-1", "manager")
	if err != nil {
		t.Fatalf("GenerateAccessToken 失败: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("期望 UserID=user-1，实际=%s", claims.UserID)
	}
	if claims.Role != "manager" {
		t.Errorf("期望 Role=manager，实际=%s", claims.Role)
	}
	if claims.TokenType != "access" {
		t.Errorf("期望 TokenType=access，实际=%s", claims.TokenType)
	}
	if claims.Issuer != "careclock" {
		t.Errorf("期望 Issuer=careclock，实际=%s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI 不应为空")
	}
}

func TestGenerateRefreshToken_RememberMe(t *testing.T) {
	m := newTestManager()

	defaultToken, err := m.GenerateRefreshToken("user-1", "worker", false)
	if err != nil {
		t.Fatalf("GenerateRefreshToken 失败: %v", err)
	}
	rememberToken, err := m.GenerateRefreshToken("user-1", "worker", true)
	if err != nil {
		t.Fatalf("GenerateRefreshToken(rememberMe) 失败: %v", err)
	}

	defaultClaims, err := m.ParseToken(defaultToken)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}
	rememberClaims, err := m.ParseToken(rememberToken)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}

	if defaultClaims.TokenType != "refresh" {
		t.Errorf("期望 TokenType=refresh，实际=%s", defaultClaims.TokenType)
	}
	if !rememberClaims.RememberMe {
		t.Error("期望 RememberMe=true")
	}
	if !rememberClaims.ExpiresAt.After(defaultClaims.ExpiresAt.Time) {
		t.Error("rememberMe 的 refresh token 有效期应更长")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewManager(&config.AuthConfig{
		JWTSecret:               "another-secret-key-entirely",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 7 * 24 * time.Hour,
	})

	token, err := m.GenerateAccessToken("user-1", "worker")
	if err != nil {
		t.Fatalf("GenerateAccessToken 失败: %v", err)
	}

	if _, err := other.ParseToken(token); err != ErrTokenInvalid {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	m := NewManager(&config.AuthConfig{
		JWTSecret:               "test-secret-key-for-unit-testing",
		AccessTokenTTL:          -time.Minute, // 生成即过期
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 7 * 24 * time.Hour,
	})

	token, err := m.GenerateAccessToken("user-1", "worker")
	if err != nil {
		t.Fatalf("GenerateAccessToken 失败: %v", err)
	}

	if _, err := m.ParseToken(token); err != ErrTokenExpired {
		t.Errorf("期望 ErrTokenExpired，实际: %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	m := newTestManager()

	if _, err := m.ParseToken("not-a-jwt"); err != ErrTokenInvalid {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}
