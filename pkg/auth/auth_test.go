package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestSharedSecret_Plain(t *testing.T) {
	s := NewSharedSecret("letmein", "")

	if !s.Verify("letmein") {
		t.Errorf("expected matching credential to verify")
	}
	if s.Verify("wrong") {
		t.Errorf("expected mismatched credential to fail")
	}
	if s.Verify("") {
		t.Errorf("expected empty credential to fail")
	}
}

func TestSharedSecret_Hash(t *testing.T) {
	hash, err := HashPasswordWithCost("letmein", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPasswordWithCost returned error: %v", err)
	}

	s := NewSharedSecret("ignored-when-hash-set", hash)
	if !s.Verify("letmein") {
		t.Errorf("expected credential to match bcrypt hash")
	}
	if s.Verify("ignored-when-hash-set") {
		t.Errorf("expected plain value to be ignored when a hash is configured")
	}
}

func TestSharedSecret_Unconfigured(t *testing.T) {
	var s SharedSecret
	if s.Configured() {
		t.Errorf("zero value should not be configured")
	}
	if s.Verify("anything") {
		t.Errorf("unconfigured secret must never verify")
	}
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPasswordWithCost("pw", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !CheckPasswordHash("pw", hash) {
		t.Errorf("expected password to match its hash")
	}
	if CheckPasswordHash("other", hash) {
		t.Errorf("expected other password to fail")
	}
}
