package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash equals the plaintext")
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("unexpected hash format: %q", hash)
	}

	if !CheckPasswordHash("secret1", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("Secret1", hash) {
		t.Error("wrong password accepted")
	}
	if CheckPasswordHash("secret1", "not-a-bcrypt-hash") {
		t.Error("garbage hash accepted")
	}
}

func TestHashPasswordSalts(t *testing.T) {
	first, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password are identical")
	}
}
