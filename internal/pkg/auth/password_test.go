package auth

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("campus#2025")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "campus#2025" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "campus#2025") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "campus#2026") {
		t.Error("wrong password accepted")
	}
}
