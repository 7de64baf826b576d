package auth

import (
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("0xabc123", secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	addr, err := GetAddressFromToken(token, secret)
	if err != nil {
		t.Fatalf("GetAddressFromToken error: %v", err)
	}
	if addr != "0xabc123" {
		t.Fatalf("expected address 0xabc123, got %q", addr)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("0xabc", []byte("secret-a"), time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := GetAddressFromToken(token, []byte("secret-b")); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("0xabc", []byte("secret"), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := GetAddressFromToken(token, []byte("secret")); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := GetAddressFromToken("not-a-token", []byte("secret")); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}
