package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/promobeats/backoffice/internal/core/ports"
)

// stubSigner verifies any token when err is nil and returns the canned claims.
type stubSigner struct {
	claims map[string]any
	err    error
}

func (s *stubSigner) Sign(map[string]any, string) (ports.Token, error) {
	return ports.Token{Value: "stub"}, nil
}

func (s *stubSigner) Verify(string) (map[string]any, error) { return s.claims, s.err }
func (s *stubSigner) Decode(string) (map[string]any, error) { return s.claims, nil }

func runAuth(t *testing.T, signer ports.TokenSigner, header string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/brands", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return c, Auth(signer)(next)(c)
}

func TestAuth_Success(t *testing.T) {
	signer := &stubSigner{claims: map[string]any{
		"sub":   "holder-1",
		"email": "amira@promobeats.io",
		"roles": []any{"admin", "executive"},
	}}
	c, err := runAuth(t, signer, "Bearer sometoken")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Get(KeyAccountID); got != "holder-1" {
		t.Fatalf("account id not injected, got %v", got)
	}
	if got := c.Get(KeyEmail); got != "amira@promobeats.io" {
		t.Fatalf("email not injected, got %v", got)
	}
	roles, _ := c.Get(KeyRoles).([]string)
	if len(roles) != 2 || roles[0] != "admin" || roles[1] != "executive" {
		t.Fatalf("roles claim not normalized, got %v", roles)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := runAuth(t, &stubSigner{}, "")
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"sometoken", "Basic sometoken"} {
		_, err := runAuth(t, &stubSigner{}, header)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %v", header, err)
		}
	}
}

func TestAuth_BearerCaseInsensitive(t *testing.T) {
	signer := &stubSigner{claims: map[string]any{"sub": "holder-1"}}
	if _, err := runAuth(t, signer, "bearer sometoken"); err != nil {
		t.Fatalf("lowercase scheme must pass, got %v", err)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	signer := &stubSigner{err: errors.New("bad signature")}
	_, err := runAuth(t, signer, "Bearer sometoken")
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
