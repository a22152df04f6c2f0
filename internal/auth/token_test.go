package auth

import (
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	tokens := NewTokens("secret", "uni-carpool", time.Hour)

	tok, err := tokens.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	uid, err := tokens.UserID(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if uid != 42 {
		t.Fatalf("expected user 42 got %d", uid)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokens("secret-a", "uni-carpool", time.Hour)
	verifier := NewTokens("secret-b", "uni-carpool", time.Hour)

	tok, err := issuer.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.UserID(tok); err == nil {
		t.Fatalf("expected verification failure across secrets")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	tokens := NewTokens("secret", "uni-carpool", -time.Minute)

	tok, err := tokens.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := tokens.UserID(tok); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tokens := NewTokens("secret", "uni-carpool", time.Hour)
	if _, err := tokens.UserID("not.a.token"); err == nil {
		t.Fatalf("expected parse failure")
	}
}
