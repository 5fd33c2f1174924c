package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/petshop/pkg/auth"
)

func newTestGenerator(t *testing.T, secret string, ttl time.Duration) *Generator {
	t.Helper()
	gen, err := NewGenerator(secret, "HS256", "petshop-test", ttl)
	if err != nil {
		t.Fatalf("NewGenerator error: %v", err)
	}
	return gen
}

func TestGenerateAndValidate(t *testing.T) {
	gen := newTestGenerator(t, "test-secret", time.Hour)
	user := auth.User{ID: uuid.New()}

	token, err := gen.Generate(context.Background(), user)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	subject, err := gen.Validate(token)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if subject != user.ID.String() {
		t.Errorf("subject mismatch: got %q want %q", subject, user.ID.String())
	}
}

func TestValidateExpired(t *testing.T) {
	gen := newTestGenerator(t, "test-secret", -time.Minute)

	token, err := gen.Generate(context.Background(), auth.User{ID: uuid.New()})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := gen.Validate(token); err != auth.ErrInvalidToken {
		t.Errorf("expected auth.ErrInvalidToken for expired token, got %v", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	issuing := newTestGenerator(t, "secret-one", time.Hour)
	verifying := newTestGenerator(t, "secret-two", time.Hour)

	token, err := issuing.Generate(context.Background(), auth.User{ID: uuid.New()})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := verifying.Validate(token); err != auth.ErrInvalidToken {
		t.Errorf("expected auth.ErrInvalidToken for forged token, got %v", err)
	}
}

func TestValidateWrongIssuer(t *testing.T) {
	issuing, err := NewGenerator("shared-secret", "HS256", "other-service", time.Hour)
	if err != nil {
		t.Fatalf("NewGenerator error: %v", err)
	}
	verifying := newTestGenerator(t, "shared-secret", time.Hour)

	token, err := issuing.Generate(context.Background(), auth.User{ID: uuid.New()})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := verifying.Validate(token); err != auth.ErrInvalidToken {
		t.Errorf("expected auth.ErrInvalidToken for wrong issuer, got %v", err)
	}
}

func TestValidateMalformed(t *testing.T) {
	gen := newTestGenerator(t, "test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := gen.Validate(token); err != auth.ErrInvalidToken {
			t.Errorf("token %q: expected auth.ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestNewGeneratorRejectsUnknownAlgorithm(t *testing.T) {
	if _, err := NewGenerator("s", "none", "iss", time.Hour); err == nil {
		t.Error("expected error for algorithm \"none\"")
	}
	if _, err := NewGenerator("s", "RS256", "iss", time.Hour); err == nil {
		t.Error("expected error for non-HMAC algorithm")
	}
}

func TestAlternativeHMACAlgorithms(t *testing.T) {
	for _, alg := range []string{"HS384", "HS512"} {
		gen, err := NewGenerator("test-secret", alg, "petshop-test", time.Hour)
		if err != nil {
			t.Fatalf("NewGenerator(%s) error: %v", alg, err)
		}
		user := auth.User{ID: uuid.New()}
		token, err := gen.Generate(context.Background(), user)
		if err != nil {
			t.Fatalf("Generate(%s) error: %v", alg, err)
		}
		if subject, err := gen.Validate(token); err != nil || subject != user.ID.String() {
			t.Errorf("Validate(%s): subject %q err %v", alg, subject, err)
		}
	}
}
