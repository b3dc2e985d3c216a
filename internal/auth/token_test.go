package auth

import "testing"

func TestTokenSigner_RoundTrip(t *testing.T) {
	signer := NewTokenSigner("test-secret")

	token := signer.Sign("user-42")

	id, ok := signer.Parse(token)
	if !ok {
		t.Fatalf("valid token was rejected")
	}
	if id != "user-42" {
		t.Fatalf("user id from token = %q, want user-42", id)
	}
}

func TestTokenSigner_RejectsForeignSecret(t *testing.T) {
	signer := NewTokenSigner("test-secret")
	other := NewTokenSigner("other-secret")

	token := other.Sign("user-42")

	if _, ok := signer.Parse(token); ok {
		t.Fatalf("token signed with another secret was accepted")
	}
}

func TestTokenSigner_RejectsMalformed(t *testing.T) {
	signer := NewTokenSigner("test-secret")

	for _, token := range []string{"", "user-42", "user-42.", ".abcdef", "user-42.deadbeef"} {
		if _, ok := signer.Parse(token); ok {
			t.Fatalf("malformed token %q was accepted", token)
		}
	}
}

func TestNewTokenSigner_EmptySecretGetsRandomKey(t *testing.T) {
	a := NewTokenSigner("")
	b := NewTokenSigner("")

	token := a.Sign("user-42")
	if _, ok := a.Parse(token); !ok {
		t.Fatalf("signer rejects its own token")
	}
	if _, ok := b.Parse(token); ok {
		t.Fatalf("independent signers share a key")
	}
}
