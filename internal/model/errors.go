package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// Messageはそのままクライアントに返すメッセージ（スペイン語）。
type APIError struct {
	Code    string // エラーコード
	Message string // クライアント向けメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeMissingCredentials = "MISSING_CREDENTIALS"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeMissingToken       = "MISSING_TOKEN"
	ErrCodeMalformedHeader    = "MALFORMED_HEADER"
	ErrCodeInvalidToken       = "INVALID_TOKEN"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// NewMissingCredentialsError は認証情報欠落エラーを生成する。
func NewMissingCredentialsError() *APIError {
	return &APIError{
		Code:    ErrCodeMissingCredentials,
		Message: "Faltan credenciales.",
	}
}

// NewInvalidCredentialsError は認証失敗エラーを生成する。
// ユーザー名不一致とパスワード不一致で同一メッセージを返し、
// どちらの検証に失敗したかを漏らさない。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:    ErrCodeInvalidCredentials,
		Message: "Usuario o contraseña inválidos.",
	}
}

// NewMissingTokenError はAuthorizationヘッダー欠落エラーを生成する。
func NewMissingTokenError() *APIError {
	return &APIError{
		Code:    ErrCodeMissingToken,
		Message: "Falta token de autorización.",
	}
}

// NewMalformedHeaderError は"Bearer <token>"形式でないヘッダーのエラーを生成する。
func NewMalformedHeaderError() *APIError {
	return &APIError{
		Code:    ErrCodeMalformedHeader,
		Message: "Formato de token inválido.",
	}
}

// NewInvalidTokenError は検証失敗（署名不一致・不正形式・期限切れ）エラーを生成する。
func NewInvalidTokenError() *APIError {
	return &APIError{
		Code:    ErrCodeInvalidToken,
		Message: "Token inválido o expirado.",
	}
}

// NewValidationError は入力検証エラーを生成する。
func NewValidationError(message string) *APIError {
	return &APIError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

// NewProductNotFoundError は商品未検出エラーを生成する。
func NewProductNotFoundError() *APIError {
	return &APIError{
		Code:    ErrCodeProductNotFound,
		Message: "Producto no encontrado.",
	}
}

// NewInternalError は内部エラーを生成する。
// 詳細はログのみに記録し、クライアントには一般的なメッセージを返す。
func NewInternalError() *APIError {
	return &APIError{
		Code:    ErrCodeInternal,
		Message: "Error interno del servidor.",
	}
}
