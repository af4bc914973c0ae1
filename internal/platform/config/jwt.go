package config

import (
	"errors"
	"time"
)

// JWTConfig configures HS256 bearer token verification and minting.
type JWTConfig struct {
	Secret   string
	Issuer   string
	Audience string

	ClockSkew time.Duration
	// TTL is the lifetime of tokens minted by cmd/devjwt.
	TTL time.Duration
}

// Validate requires a secret of at least 32 bytes and an issuer.
func (c JWTConfig) Validate() error {
	if len(c.Secret) < 32 {
		return errors.New("jwt.secret must be at least 32 bytes (JWT_SECRET)")
	}
	if c.Issuer == "" {
		return errors.New("jwt.issuer is required (JWT_ISSUER)")
	}
	return nil
}
