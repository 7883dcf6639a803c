package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rentapapa/booking-api/internal/core/domain"
)

type stubAuthService struct {
	loginAdminFn func(ctx context.Context, email, password string) (string, *domain.Admin, error)
	loginUserFn  func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) LoginAdmin(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	return s.loginAdminFn(ctx, email, password)
}

func (s *stubAuthService) LoginUser(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginUserFn(ctx, email, password)
}

func newLoginContext(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_LoginAdmin_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginAdminFn: func(ctx context.Context, email, password string) (string, *domain.Admin, error) {
			if email != "root@rentapapa.cl" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.Admin{ID: "admin-1", Username: "root", Email: email}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newLoginContext(e, "/auth/login-admin", `{"email":"root@rentapapa.cl","password":"secret"}`)
	if err := handler.LoginAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Token string `json:"token"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "OK" {
		t.Fatalf("expected OK status, got %q", resp.Status)
	}
	if resp.Data.Token != "token123" || resp.Data.Role != "ADMIN" {
		t.Fatalf("unexpected payload: %+v", resp.Data)
	}
}

func TestAuthHandler_LoginUser_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginUserFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "token456", &domain.User{ID: "user-1", Username: "ana", Email: email}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newLoginContext(e, "/auth/login-user", `{"email":"ana@example.com","password":"secret"}`)
	if err := handler.LoginUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data struct {
			Token string `json:"token"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Data.Token != "token456" || resp.Data.Role != "USER" {
		t.Fatalf("unexpected payload: %+v", resp.Data)
	}
}

func TestAuthHandler_LoginUser_InvalidCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginUserFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newLoginContext(e, "/auth/login-user", `{"email":"ana@example.com","password":"bad"}`)
	err := handler.LoginUser(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_LoginAdmin_InvalidPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginAdminFn: func(ctx context.Context, email, password string) (string, *domain.Admin, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newLoginContext(e, "/auth/login-admin", "not-json")
	err := handler.LoginAdmin(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_LoginAdmin_MissingEmail(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginAdminFn: func(ctx context.Context, email, password string) (string, *domain.Admin, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newLoginContext(e, "/auth/login-admin", `{"password":"secret"}`)
	err := handler.LoginAdmin(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
