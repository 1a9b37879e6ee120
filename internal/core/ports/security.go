package ports

import "time"

// PasswordHasher hashes and verifies credentials. Hash failures are
// infrastructure errors and propagate; Compare is a plain boolean check.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, hash string) bool
}

// Token is a signed credential with its computed expiry.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// TokenSigner signs and inspects access tokens. expiresIn uses the Clock
// duration grammar ("<n><unit>", unit in s/m/h/d).
type TokenSigner interface {
	Sign(claims map[string]any, expiresIn string) (Token, error)
	// Verify checks the signature and validity window and returns the claims.
	Verify(token string) (map[string]any, error)
	// Decode returns the claims without verifying the signature.
	Decode(token string) (map[string]any, error)
}
