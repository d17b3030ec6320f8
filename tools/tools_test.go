package tools

import (
	"encoding/hex"
	"testing"
)

func TestEncryptTextSHA512(t *testing.T) {
	first := EncryptTextSHA512("hello")
	second := EncryptTextSHA512("hello")
	if first != second {
		t.Error("same input hashed to different values")
	}
	if len(first) != 128 {
		t.Errorf("hash length %d, want 128 hex chars", len(first))
	}
	if first == EncryptTextSHA512("hello!") {
		t.Error("different inputs collided")
	}
}

func TestRandomHex(t *testing.T) {
	s, err := RandomHex(32)
	if err != nil {
		t.Fatalf("random hex: %v", err)
	}
	if len(s) != 64 {
		t.Errorf("length %d, want 64", len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		t.Errorf("not valid hex: %v", err)
	}

	other, err := RandomHex(32)
	if err != nil {
		t.Fatalf("random hex: %v", err)
	}
	if s == other {
		t.Error("two random values are identical")
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "parent+kid@example.com", "first.last@sub.example.org"}
	for _, e := range valid {
		if !ValidateEmail(e) {
			t.Errorf("%q should be valid", e)
		}
	}
	invalid := []string{"", "plain", "@example.com", "user@", "user@host", "user @example.com"}
	for _, e := range invalid {
		if ValidateEmail(e) {
			t.Errorf("%q should be invalid", e)
		}
	}
}

func TestCheckPassword(t *testing.T) {
	if got := CheckPassword("12345"); got != "password" {
		t.Errorf("short password: got %q", got)
	}
	if got := CheckPassword("123456"); got != "" {
		t.Errorf("six chars should pass, got %q", got)
	}
}
