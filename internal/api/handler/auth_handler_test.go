package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func postLogin(t *testing.T, h *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func TestAuthHandler_Login_RejectsMalformedBody(t *testing.T) {
	h := NewAuthHandler(nil)
	rec := postLogin(t, h, "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_RejectsInvalidFields(t *testing.T) {
	h := NewAuthHandler(nil)
	for _, body := range []string{
		`{}`,
		`{"email":"not-an-email","password":"x"}`,
		`{"email":"amira@promobeats.io"}`,
	} {
		rec := postLogin(t, h, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}
