package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"answering-service/internal/observability"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpiredToken    = errors.New("token expired")
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrParseJWTToken   = errors.New("failed to parse jwt token")
	ErrMissingSecret   = errors.New("dashboard jwt secret is not configured")
)

const issuer = "answering-service"

// DashboardClaims identifies the operator calling the dashboard API.
type DashboardClaims struct {
	jwt.RegisteredClaims
}

type AuthProcessor struct {
	secret []byte
	logger *observability.Logger
	now    func() time.Time
}

func New(secret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{secret: []byte(secret), logger: logger, now: time.Now}
}

// Enabled reports whether a secret is configured. Without one the dashboard API is open.
func (p AuthProcessor) Enabled() bool {
	return len(p.secret) > 0
}

// IssueToken signs an HS256 token for subject valid for ttl.
func (p AuthProcessor) IssueToken(ctx context.Context, subject string, ttl time.Duration) (string, error) {
	if !p.Enabled() {
		return "", ErrMissingSecret
	}
	now := p.now()
	claims := DashboardClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", fmt.Errorf("sign dashboard token: %w", err)
	}
	return token, nil
}

// ValidateJWTToken parses token, requiring an HMAC signature made with the configured secret.
func (p AuthProcessor) ValidateJWTToken(ctx context.Context, token string) (DashboardClaims, error) {
	var claims DashboardClaims
	t, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(p.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.Warn(ctx, "token expired")
			return DashboardClaims{}, ErrExpiredToken
		}
		p.logger.Warn(ctx, "failed to parse token: "+err.Error())
		return DashboardClaims{}, ErrParseJWTToken
	}
	if !t.Valid {
		return DashboardClaims{}, ErrInvalidJWTToken
	}
	return claims, nil
}
