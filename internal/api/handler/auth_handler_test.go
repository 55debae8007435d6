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

	"github.com/hobbyhub/community-platform/internal/core/domain"
)

type stubAuthService struct {
	signUpFn func(ctx context.Context, email, password, name string) (*domain.User, error)
	signInFn func(ctx context.Context, email, password string) (string, error)
}

func (s *stubAuthService) SignUp(ctx context.Context, email, password, name string) (*domain.User, error) {
	return s.signUpFn(ctx, email, password, name)
}

func (s *stubAuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	return s.signInFn(ctx, email, password)
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.User, error) {
	panic("not used")
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_SignUp(t *testing.T) {
	svc := &stubAuthService{
		signUpFn: func(_ context.Context, email, password, name string) (*domain.User, error) {
			if email != "alice@example.com" || password != "pass123" || name != "Alice" {
				t.Fatalf("wrong arguments: %s %s %s", email, password, name)
			}
			return &domain.User{ID: "id-1", Email: email, Name: name, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(svc)

	body := `{"email":"alice@example.com","password":"pass123","name":"Alice"}`
	c, rec := newJSONContext(t, http.MethodPost, "/auth/signup", body)

	if err := h.SignUp(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp["user"]["email"] != "alice@example.com" {
		t.Fatalf("unexpected response: %v", resp)
	}
	if _, leaked := resp["user"]["password_hash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAuthHandler_SignUp_Validation(t *testing.T) {
	svc := &stubAuthService{
		signUpFn: func(context.Context, string, string, string) (*domain.User, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	}
	h := NewAuthHandler(svc)

	cases := []string{
		`{"email":"not-an-email","password":"pass123"}`,
		`{"email":"alice@example.com","password":"short"}`,
		`{"password":"pass123"}`,
		`{not json`,
	}
	for _, body := range cases {
		c, _ := newJSONContext(t, http.MethodPost, "/auth/signup", body)
		err := h.SignUp(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %v", body, err)
		}
	}
}

func TestAuthHandler_SignUp_Duplicate(t *testing.T) {
	svc := &stubAuthService{
		signUpFn: func(context.Context, string, string, string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(svc)

	body := `{"email":"alice@example.com","password":"pass123"}`
	c, _ := newJSONContext(t, http.MethodPost, "/auth/signup", body)

	// Domain errors pass through untouched; the central error handler maps
	// them to status codes.
	if err := h.SignUp(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_SignIn(t *testing.T) {
	svc := &stubAuthService{
		signInFn: func(_ context.Context, email, password string) (string, error) {
			return "issued-token", nil
		},
	}
	h := NewAuthHandler(svc)

	body := `{"email":"alice@example.com","password":"pass123"}`
	c, rec := newJSONContext(t, http.MethodPost, "/auth/signin", body)

	if err := h.SignIn(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.AccessToken != "issued-token" || resp.TokenType != "Bearer" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_SignIn_BadCredentials(t *testing.T) {
	svc := &stubAuthService{
		signInFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc)

	body := `{"email":"alice@example.com","password":"wrong1"}`
	c, _ := newJSONContext(t, http.MethodPost, "/auth/signin", body)

	if err := h.SignIn(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
