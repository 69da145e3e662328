package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/talo100uraba/talo-admin/internal/model"
)

// --- モック定義 ---

type mockTokenIssuer struct {
	issueFn func(user string) (string, error)
}

func (m *mockTokenIssuer) Issue(user string) (string, error) {
	if m.issueFn != nil {
		return m.issueFn(user)
	}
	return "signed-token", nil
}

func newTestService(t *testing.T, password string) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return NewService(ServiceConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
	}, &mockTokenIssuer{})
}

// --- テスト ---

func TestLogin_ValidCredentials_ReturnsToken(t *testing.T) {
	svc := newTestService(t, "secreta123")

	tok, err := svc.Login(context.Background(), "admin", "secreta123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if tok != "signed-token" {
		t.Errorf("token = %q, want %q", tok, "signed-token")
	}
}

func TestLogin_MissingUsername_MissingCredentials(t *testing.T) {
	svc := newTestService(t, "secreta123")

	_, err := svc.Login(context.Background(), "", "secreta123")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeMissingCredentials {
		t.Errorf("expected MissingCredentials, got %v", err)
	}
}

func TestLogin_MissingPassword_MissingCredentials(t *testing.T) {
	svc := newTestService(t, "secreta123")

	_, err := svc.Login(context.Background(), "admin", "")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeMissingCredentials {
		t.Errorf("expected MissingCredentials, got %v", err)
	}
}

func TestLogin_WrongUsername_InvalidCredentials(t *testing.T) {
	svc := newTestService(t, "secreta123")

	_, err := svc.Login(context.Background(), "otrousuario", "secreta123")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeInvalidCredentials {
		t.Fatalf("expected InvalidCredentials, got %v", err)
	}
}

func TestLogin_WrongPassword_InvalidCredentials(t *testing.T) {
	svc := newTestService(t, "secreta123")

	_, err := svc.Login(context.Background(), "admin", "wrong")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeInvalidCredentials {
		t.Fatalf("expected InvalidCredentials, got %v", err)
	}
}

// ユーザー名不一致とパスワード不一致でメッセージが同一であること。
// どちらの検証に失敗したかをクライアントに漏らさない。
func TestLogin_MismatchErrors_AreIndistinguishable(t *testing.T) {
	svc := newTestService(t, "secreta123")

	_, errUser := svc.Login(context.Background(), "otrousuario", "secreta123")
	_, errPass := svc.Login(context.Background(), "admin", "wrong")

	var apiErrUser, apiErrPass *model.APIError
	if !errors.As(errUser, &apiErrUser) || !errors.As(errPass, &apiErrPass) {
		t.Fatalf("expected APIErrors, got %v and %v", errUser, errPass)
	}
	if apiErrUser.Message != apiErrPass.Message {
		t.Errorf("mismatch errors differ: %q vs %q", apiErrUser.Message, apiErrPass.Message)
	}
	if apiErrUser.Message != "Usuario o contraseña inválidos." {
		t.Errorf("message = %q, want %q", apiErrUser.Message, "Usuario o contraseña inválidos.")
	}
}

func TestLogin_IssuerFailure_PropagatesError(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	svc := NewService(ServiceConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
	}, &mockTokenIssuer{
		issueFn: func(user string) (string, error) {
			return "", errors.New("signing failure")
		},
	})

	_, err := svc.Login(context.Background(), "admin", "secreta123")
	if err == nil {
		t.Fatal("expected error when token issuing fails")
	}
}
