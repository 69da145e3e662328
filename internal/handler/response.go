package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/talo100uraba/talo-admin/internal/model"
)

// maxBodyBytes はJSONリクエストボディの上限（10MiB）。
// 商品画像をdata URLで送るフロントエンドがあるため大きめに取る。
const maxBodyBytes = 10 << 20

// errorResponse はAPIエラーレスポンスの統一フォーマット。
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON はJSONレスポンスを書き込む。
func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// writeErrorResponse は統一フォーマットでHTTPエラーレスポンスを書き込む。
func writeErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	writeJSON(w, statusCode, errorResponse{Error: apiErr.Message})
}

// decodeJSONBody はリクエストボディをサイズ制限付きでデコードする。
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// mapAPIErrorToHTTPStatus はエラーコードをHTTPステータスに対応付ける。
func mapAPIErrorToHTTPStatus(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeMissingCredentials, model.ErrCodeValidation:
		return http.StatusBadRequest
	case model.ErrCodeInvalidCredentials, model.ErrCodeMissingToken,
		model.ErrCodeMalformedHeader, model.ErrCodeInvalidToken:
		return http.StatusUnauthorized
	case model.ErrCodeProductNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// handleServiceError はサービス層のエラーをHTTPレスポンスに変換する。
// APIError以外のエラー（ストア障害など）は詳細をログにのみ記録し、
// クライアントには一般的な500メッセージを返す。
func handleServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		writeErrorResponse(w, mapAPIErrorToHTTPStatus(apiErr), apiErr)
		return
	}

	slog.Error("internal server error", slog.String("error", err.Error()))
	writeErrorResponse(w, http.StatusInternalServerError, model.NewInternalError())
}
