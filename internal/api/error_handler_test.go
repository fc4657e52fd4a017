package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
)

func recordError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrValidation, http.StatusBadRequest},
		{fmt.Errorf("%w: title is required", domain.ErrValidation), http.StatusBadRequest},
		{domain.ErrInvalidMessageStatus, http.StatusBadRequest},
		{domain.ErrInvalidJobStatus, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrTokenExpired, http.StatusUnauthorized},
		{domain.ErrTokenInvalid, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrProjectNotFound, http.StatusNotFound},
		{domain.ErrMessageNotFound, http.StatusNotFound},
		{domain.ErrSkillNotFound, http.StatusNotFound},
		{domain.ErrEmploymentNotFound, http.StatusNotFound},
		{domain.ErrJobNotFound, http.StatusNotFound},
		{domain.ErrSubscriberNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrSkillExists, http.StatusConflict},
		{domain.ErrEmploymentExists, http.StatusConflict},
		{domain.ErrSubscriberExists, http.StatusConflict},
	}

	for _, tc := range cases {
		rec, body := recordError(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if body["error"] == "" || body["message"] == "" {
			t.Fatalf("%v: incomplete envelope %v", tc.err, body)
		}
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec, body := recordError(t, echo.NewHTTPError(http.StatusTooManyRequests, "too many requests"))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if body["error"] != "too many requests" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	rec, body := recordError(t, fmt.Errorf("mongo: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal details must not leak: %v", body)
	}
}
