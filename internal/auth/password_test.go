package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "hunter2hunter2" {
		t.Fatalf("hash equals plaintext")
	}

	if !CheckPassword(hash, "hunter2hunter2") {
		t.Fatalf("correct password rejected")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Fatalf("wrong password accepted")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password are identical; salt missing")
	}
}
