package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/talo100uraba/talo-admin/internal/middleware"
	"github.com/talo100uraba/talo-admin/internal/model"
	"github.com/talo100uraba/talo-admin/internal/token"
)

// --- モック定義 ---

type mockAuthService struct {
	loginFn func(ctx context.Context, username, password string) (string, error)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, username, password)
	}
	return "signed-token", nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected JSON body, got %q", w.Body.String())
	}
	return body
}

// --- テスト ---

func TestLogin_ValidCredentials_ReturnsToken(t *testing.T) {
	svc := &mockAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			if username != "admin" || password != "secreta123" {
				t.Errorf("credentials = %q/%q", username, password)
			}
			return "el-token", nil
		},
	}
	h := NewAuthHandler(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"username":"admin","password":"secreta123"}`))
	w := httptest.NewRecorder()

	h.Login(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if body := decodeBody(t, w); body["token"] != "el-token" {
		t.Errorf("token = %v", body["token"])
	}
}

func TestLogin_WrongPassword_401WithSpanishMessage(t *testing.T) {
	svc := &mockAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			return "", model.NewInvalidCredentialsError()
		},
	}
	h := NewAuthHandler(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"username":"admin","password":"wrong"}`))
	w := httptest.NewRecorder()

	h.Login(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if body := decodeBody(t, w); body["error"] != "Usuario o contraseña inválidos." {
		t.Errorf("error = %v", body["error"])
	}
}

func TestLogin_MissingCredentials_400(t *testing.T) {
	svc := &mockAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			return "", model.NewMissingCredentialsError()
		},
	}
	h := NewAuthHandler(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"username":"admin"}`))
	w := httptest.NewRecorder()

	h.Login(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if body := decodeBody(t, w); body["error"] != "Faltan credenciales." {
		t.Errorf("error = %v", body["error"])
	}
}

func TestLogin_InvalidJSONBody_400(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{not json`))
	w := httptest.NewRecorder()

	h.Login(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestLogin_ServiceFailure_500GenericMessage(t *testing.T) {
	svc := &mockAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			return "", context.DeadlineExceeded
		},
	}
	h := NewAuthHandler(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"username":"admin","password":"secreta123"}`))
	w := httptest.NewRecorder()

	h.Login(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	// 内部エラーの詳細は漏らさない
	if body := decodeBody(t, w); body["error"] != "Error interno del servidor." {
		t.Errorf("error = %v", body["error"])
	}
}

func TestTest_WithClaims_ReturnsMessageAndUser(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	req = req.WithContext(middleware.ContextWithClaims(req.Context(),
		&token.Claims{User: "admin", Role: token.RoleAdmin}))
	w := httptest.NewRecorder()

	h.Test(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := decodeBody(t, w)
	if body["message"] != "Acceso concedido a ruta protegida." {
		t.Errorf("message = %v", body["message"])
	}
	user, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("user = %v, want object", body["user"])
	}
	if user["user"] != "admin" || user["role"] != "admin" {
		t.Errorf("user claims = %v", user)
	}
}

func TestTest_WithoutClaims_401(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	w := httptest.NewRecorder()

	h.Test(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
