package utils

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("pw123456", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "pw123456" {
		t.Fatal("hash must not equal the plain password")
	}

	if err := CheckPassword(hash, "pw123456"); err != nil {
		t.Errorf("expected match, got %v", err)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, _ := HashPassword("same", bcrypt.MinCost)
	h2, _ := HashPassword("same", bcrypt.MinCost)
	if h1 == h2 {
		t.Error("expected different hashes for the same password")
	}
}

func TestHashPassword_CostOutOfRangeFallsBack(t *testing.T) {
	hash, err := HashPassword("pw", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	if _, err := HashPassword(strings.Repeat("x", 80), bcrypt.MinCost); err == nil {
		t.Error("expected error for a password longer than 72 bytes")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, _ := HashPassword("right", bcrypt.MinCost)

	err := CheckPassword(hash, "wrong")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestCheckPassword_CorruptHash(t *testing.T) {
	err := CheckPassword("not-a-bcrypt-hash", "pw")
	if err == nil {
		t.Fatal("expected error for corrupt hash")
	}
	if errors.Is(err, ErrPasswordMismatch) {
		t.Error("corrupt hash must not be reported as a mismatch")
	}
}
