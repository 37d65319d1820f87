package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/photographyhub/course-platform/internal/core/domain"
	"github.com/photographyhub/course-platform/internal/core/ports"
)

// TokenService issues and verifies HS256 bearer credentials. Access and
// refresh tokens are signed with separate secrets so one class can never be
// presented where the other is expected.
type TokenService struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL == 0 {
		accessTTL = time.Hour
	}
	if refreshTTL == 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenService{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *TokenService) IssueAccessToken(accountID, role string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  accountID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.accessSecret))
}

func (s *TokenService) IssueRefreshToken(accountID, role string) (string, string, error) {
	sessionID := uuid.NewString()
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  accountID,
		"role": role,
		"sid":  sessionID,
		"iat":  now.Unix(),
		"exp":  now.Add(s.refreshTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.refreshSecret))
	if err != nil {
		return "", "", err
	}
	return signed, sessionID, nil
}

func (s *TokenService) VerifyAccessToken(raw string) (*ports.TokenClaims, error) {
	return verify(raw, s.accessSecret)
}

func (s *TokenService) VerifyRefreshToken(raw string) (*ports.TokenClaims, error) {
	claims, err := verify(raw, s.refreshSecret)
	if err != nil {
		return nil, err
	}
	if claims.SessionID == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// verify parses and validates signature and expiry. Every failure collapses
// to domain.ErrInvalidToken so callers never branch on parser internals.
func verify(raw, secret string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return nil, domain.ErrInvalidToken
	}
	sid, _ := claims["sid"].(string)

	return &ports.TokenClaims{AccountID: sub, Role: role, SessionID: sid}, nil
}
