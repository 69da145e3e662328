// Package handler はHTTPハンドラーを提供する。
package handler

import (
	"context"
	"net/http"

	"github.com/talo100uraba/talo-admin/internal/metrics"
	"github.com/talo100uraba/talo-admin/internal/middleware"
	"github.com/talo100uraba/talo-admin/internal/model"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	// Login は管理者の認証を行い、成功時に署名済みトークンを返す。
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler はログインと保護ルート確認のHTTPハンドラー。
type AuthHandler struct {
	service   AuthServiceInterface
	collector metrics.MetricsCollector
}

// NewAuthHandler はAuthHandlerを生成する。
func NewAuthHandler(service AuthServiceInterface, collector metrics.MetricsCollector) *AuthHandler {
	return &AuthHandler{
		service:   service,
		collector: collector,
	}
}

// loginRequest はログインリクエストのボディ。
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse はログイン成功のレスポンス。
type loginResponse struct {
	Token string `json:"token"`
}

// Login は管理者ログインを処理する。
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, model.NewMissingCredentialsError())
		return
	}

	tok, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if h.collector != nil {
			h.collector.RecordLogin(false)
		}
		handleServiceError(w, err)
		return
	}

	if h.collector != nil {
		h.collector.RecordLogin(true)
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: tok})
}

// Test は保護ルートの疎通を確認し、検証済みクレームを返す。
// GET /api/test
func (h *AuthHandler) Test(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.ClaimsFromContext(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusUnauthorized, model.NewMissingTokenError())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Acceso concedido a ruta protegida.",
		"user":    claims,
	})
}
