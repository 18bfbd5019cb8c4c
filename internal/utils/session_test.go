package utils

import "testing"

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := NewSessionToken("secret", "admin@example.com", 1)
	if err != nil {
		t.Fatal(err)
	}
	sub, err := ParseSessionToken("secret", tok.Token)
	if err != nil {
		t.Fatal(err)
	}
	if sub != "admin@example.com" {
		t.Fatalf("sub = %q, want admin@example.com", sub)
	}
}

func TestSessionTokenWrongSecret(t *testing.T) {
	tok, err := NewSessionToken("secret", "admin@example.com", 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseSessionToken("other", tok.Token); err == nil {
		t.Fatal("want error for wrong secret")
	}
}

func TestSessionTokenExpired(t *testing.T) {
	tok, err := NewSessionToken("secret", "admin@example.com", -1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseSessionToken("secret", tok.Token); err == nil {
		t.Fatal("want error for expired token")
	}
}

func TestSessionTokenGarbage(t *testing.T) {
	if _, err := ParseSessionToken("secret", "not-a-jwt"); err == nil {
		t.Fatal("want error for malformed token")
	}
}
