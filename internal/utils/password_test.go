package utils

import (
	"testing"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("Hash must not equal the plaintext password")
	}

	if !CheckPasswordHash("secret1", hash) {
		t.Error("Expected correct password to verify")
	}
	if CheckPasswordHash("wrongpass", hash) {
		t.Error("Expected wrong password to fail")
	}
	if CheckPasswordHash("secret1", "not a bcrypt hash") {
		t.Error("Expected malformed hash to fail")
	}
}
