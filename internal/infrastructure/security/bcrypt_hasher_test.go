package security

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("swordfish")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "swordfish" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !hasher.Compare("swordfish", hash) {
		t.Fatal("the original password must compare true")
	}
	if hasher.Compare("guess", hash) {
		t.Fatal("a wrong password must compare false")
	}
	if hasher.Compare("swordfish", "not-a-bcrypt-hash") {
		t.Fatal("a malformed hash must compare false")
	}
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	for _, cost := range []int{-1, 0, bcrypt.MaxCost + 1} {
		h := NewBcryptHasher(cost)
		if h.cost != bcrypt.DefaultCost {
			t.Fatalf("cost %d must fall back to the default, got %d", cost, h.cost)
		}
	}
	if h := NewBcryptHasher(bcrypt.MinCost); h.cost != bcrypt.MinCost {
		t.Fatalf("an in-range cost must be kept, got %d", h.cost)
	}
}
