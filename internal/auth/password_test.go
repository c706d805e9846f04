package auth

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw1", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "pw1" {
		t.Fatalf("hash equals plaintext")
	}

	if err := ComparePassword(hash, "pw1"); err != nil {
		t.Fatalf("ComparePassword error: %v", err)
	}
	if err := ComparePassword(hash, "pw2"); err == nil {
		t.Fatalf("expected mismatch error, got nil")
	}
}
