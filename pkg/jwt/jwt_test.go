package jwt

import (
	"testing"
	"time"
)

func TestGenerateAndValidate(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour, "wellness-service")

	token, expiresAt, err := tm.GenerateToken("user-42")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Errorf("expiresAt %v is not in the future", expiresAt)
	}

	userID, err := tm.UserID(token)
	if err != nil {
		t.Fatalf("UserID: %v", err)
	}
	if userID != "user-42" {
		t.Errorf("UserID = %q, want user-42", userID)
	}
}

func TestValidateRejects(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour, "wellness-service")

	token, _, err := tm.GenerateToken("user-42")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("other-secret", time.Hour, "wellness-service")
		if _, err := other.UserID(token); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewTokenManager("test-secret", time.Hour, "someone-else")
		if _, err := other.UserID(token); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewTokenManager("test-secret", -time.Minute, "wellness-service")
		stale, _, err := expired.GenerateToken("user-42")
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}
		if _, err := tm.UserID(stale); err == nil {
			t.Error("expected error for expired token")
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := tm.UserID("not-a-token"); err == nil {
			t.Error("expected error")
		}
	})
}

func TestGenerateTokenRequiresUser(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour, "wellness-service")
	if _, _, err := tm.GenerateToken(""); err != ErrEmptySubject {
		t.Errorf("err = %v, want ErrEmptySubject", err)
	}
}
