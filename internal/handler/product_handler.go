package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/talo100uraba/talo-admin/internal/metrics"
	"github.com/talo100uraba/talo-admin/internal/model"
	"github.com/talo100uraba/talo-admin/internal/product"
)

// ProductServiceInterface は商品ハンドラーが必要とするサービスインターフェース。
type ProductServiceInterface interface {
	// List は全商品をfechaCreacion降順で返す。
	List(ctx context.Context) ([]*model.Product, error)
	// ListPromotions はpromoが空でない商品のみを返す。
	ListPromotions(ctx context.Context) ([]*model.Product, error)
	// Get は指定IDの商品を返す。
	Get(ctx context.Context, id string) (*model.Product, error)
	// Create は入力を検証して商品を作成する。
	Create(ctx context.Context, in *product.Input) (*model.Product, error)
	// Update は指定IDの商品を全置換更新する。
	Update(ctx context.Context, id string, in *product.Input) (*model.Product, error)
	// Delete は指定IDの商品を削除する。
	Delete(ctx context.Context, id string) error
	// CreatePromotion はpromo必須の商品を作成する。
	CreatePromotion(ctx context.Context, in *product.Input) (*model.Product, error)
}

// ProductHandler は商品CRUDとプロモーションのHTTPハンドラー。
type ProductHandler struct {
	service   ProductServiceInterface
	collector metrics.MetricsCollector
}

// NewProductHandler はProductHandlerを生成する。
func NewProductHandler(service ProductServiceInterface, collector metrics.MetricsCollector) *ProductHandler {
	return &ProductHandler{
		service:   service,
		collector: collector,
	}
}

// deleteResponse は削除成功のレスポンス。
type deleteResponse struct {
	Message string `json:"message"`
}

// List は全商品の一覧を返す。
// GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// Get は指定IDの商品を返す。
// GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Create は商品を作成する。
// POST /api/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	p, err := h.service.Create(r.Context(), in)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.recordWrite("create")
	writeJSON(w, http.StatusCreated, p)
}

// Update は指定IDの商品を全置換更新する。
// PUT /api/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	p, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.recordWrite("update")
	writeJSON(w, http.StatusOK, p)
}

// Delete は指定IDの商品を削除する。
// DELETE /api/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	h.recordWrite("delete")
	writeJSON(w, http.StatusOK, deleteResponse{Message: "Producto eliminado correctamente."})
}

// ListPromotions はプロモーション中の商品一覧を返す。
// GET /api/promociones
func (h *ProductHandler) ListPromotions(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListPromotions(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// CreatePromotion はpromo必須の商品を作成する。
// POST /api/promociones
func (h *ProductHandler) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	p, err := h.service.CreatePromotion(r.Context(), in)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.recordWrite("create")
	writeJSON(w, http.StatusCreated, p)
}

// decodeInput はリクエストボディを入力スキーマにデコードする。
// デコード失敗は検証エラーとして400を返す。
func (h *ProductHandler) decodeInput(w http.ResponseWriter, r *http.Request) (*product.Input, bool) {
	var in product.Input
	if err := decodeJSONBody(w, r, &in); err != nil {
		writeErrorResponse(w, http.StatusBadRequest,
			model.NewValidationError("Cuerpo de la solicitud inválido."))
		return nil, false
	}
	return &in, true
}

func (h *ProductHandler) recordWrite(op string) {
	if h.collector != nil {
		h.collector.RecordProductWrite(op)
	}
}
