// Package jwtverifier verifies and mints the HS256 bearer tokens accepted by the
// reference backend.
package jwtverifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	platformclock "github.com/nu-student-clubs/clubs-admin/internal/platform/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/platform/config"
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/clock"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
)

type Verifier struct {
	cfg   config.JWTConfig
	clock clock.Clock
}

func New(cfg config.JWTConfig) *Verifier {
	return NewWithOptions(cfg, nil)
}

func NewWithOptions(cfg config.JWTConfig, clk clock.Clock) *Verifier {
	if clk == nil {
		clk = platformclock.NewSystemClock()
	}
	return &Verifier{cfg: cfg, clock: clk}
}

// Verify verifies a JWT and returns the authenticated subject from the `sub` claim.
//
// Verification:
// - HS256 signature with the shared secret (other algorithms are rejected)
// - iss, aud (when configured), exp and nbf with ClockSkew leeway
func (v *Verifier) Verify(ctx context.Context, token string) (string, error) {
	_ = ctx
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.cfg.ClockSkew),
		jwt.WithTimeFunc(v.clock.Now),
	}
	if v.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(v.cfg.Audience))
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(v.cfg.Secret), nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return "", ErrUnauthorized
	}
	if claims.Subject == "" {
		return "", ErrUnauthorized
	}
	return claims.Subject, nil
}

// Sign mints a token for sub valid from now for ttl.
func Sign(cfg config.JWTConfig, sub string, now time.Time, ttl time.Duration) (string, error) {
	if sub == "" {
		return "", errors.New("subject is required")
	}
	claims := jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	if cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{cfg.Audience}
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
