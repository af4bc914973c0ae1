package jwtverifier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nu-student-clubs/clubs-admin/internal/adapters/memory/clock"
	"github.com/nu-student-clubs/clubs-admin/internal/platform/auth/jwtverifier"
	"github.com/nu-student-clubs/clubs-admin/internal/platform/config"
)

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:   "0123456789abcdef0123456789abcdef",
		Issuer:   "test-iss",
		Audience: "test-aud",
	}
}

func TestVerifier_Verify_ValidToken(t *testing.T) {
	t.Parallel()

	clk := clock.NewManualClock(time.Unix(1700000000, 0))
	cfg := testConfig()
	v := jwtverifier.NewWithOptions(cfg, clk)

	token, err := jwtverifier.Sign(cfg, "admin-1", clk.Now(), 5*time.Minute)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	sub, err := v.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if sub != "admin-1" {
		t.Fatalf("sub mismatch: got %q", sub)
	}
}

func TestVerifier_Verify_Expired(t *testing.T) {
	t.Parallel()

	clk := clock.NewManualClock(time.Unix(1700000000, 0))
	cfg := testConfig()
	v := jwtverifier.NewWithOptions(cfg, clk)

	token, _ := jwtverifier.Sign(cfg, "admin-1", clk.Now(), time.Minute)
	clk.Advance(2 * time.Minute)
	if _, err := v.Verify(context.Background(), token); !errors.Is(err, jwtverifier.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestVerifier_Verify_ClockSkew(t *testing.T) {
	t.Parallel()

	clk := clock.NewManualClock(time.Unix(1700000000, 0))
	cfg := testConfig()
	cfg.ClockSkew = time.Minute
	v := jwtverifier.NewWithOptions(cfg, clk)

	token, _ := jwtverifier.Sign(cfg, "admin-1", clk.Now(), time.Minute)
	clk.Advance(90 * time.Second)
	if _, err := v.Verify(context.Background(), token); err != nil {
		t.Fatalf("expected token within skew to verify, got %v", err)
	}
}

func TestVerifier_Verify_RejectsWrongIssuerAudienceSecret(t *testing.T) {
	t.Parallel()

	clk := clock.NewManualClock(time.Unix(1700000000, 0))
	cfg := testConfig()
	v := jwtverifier.NewWithOptions(cfg, clk)

	cases := map[string]config.JWTConfig{}
	wrongIss := cfg
	wrongIss.Issuer = "other-iss"
	cases["issuer"] = wrongIss
	wrongAud := cfg
	wrongAud.Audience = "other-aud"
	cases["audience"] = wrongAud
	wrongSecret := cfg
	wrongSecret.Secret = "ffffffffffffffffffffffffffffffff"
	cases["secret"] = wrongSecret

	for name, signCfg := range cases {
		token, err := jwtverifier.Sign(signCfg, "admin-1", clk.Now(), time.Minute)
		if err != nil {
			t.Fatalf("%s: Sign: %v", name, err)
		}
		if _, err := v.Verify(context.Background(), token); !errors.Is(err, jwtverifier.ErrUnauthorized) {
			t.Fatalf("%s: expected ErrUnauthorized, got %v", name, err)
		}
	}
}

func TestVerifier_Verify_RejectsNoneAlgorithm(t *testing.T) {
	t.Parallel()

	clk := clock.NewManualClock(time.Unix(1700000000, 0))
	cfg := testConfig()
	v := jwtverifier.NewWithOptions(cfg, clk)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		Subject:   "admin-1",
		Audience:  jwt.ClaimStrings{cfg.Audience},
		ExpiresAt: jwt.NewNumericDate(clk.Now().Add(time.Minute)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	if _, err := v.Verify(context.Background(), unsigned); !errors.Is(err, jwtverifier.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSign_RequiresSubject(t *testing.T) {
	t.Parallel()

	if _, err := jwtverifier.Sign(testConfig(), "", time.Unix(0, 0), time.Minute); err == nil {
		t.Fatalf("expected error for empty subject")
	}
}
