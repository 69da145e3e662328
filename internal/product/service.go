// Package product は商品のCRUDとプロモーションのドメインサービスを提供する。
package product

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talo100uraba/talo-admin/internal/model"
	"github.com/talo100uraba/talo-admin/internal/repository"
)

// CategoriaPromociones はプロモーション作成時のデフォルトカテゴリ。
const CategoriaPromociones = "promociones"

// Input は商品の作成・更新リクエストの入力スキーマ。
// Precioはポインタにして「未指定」と「0」を区別する。
type Input struct {
	Nombre      string   `json:"nombre"`
	Descripcion string   `json:"descripcion"`
	Precio      *float64 `json:"precio"`
	Imagenes    []string `json:"imagenes"`
	Colores     []string `json:"colores"`
	Tallas      []string `json:"tallas"`
	Promo       string   `json:"promo"`
	Categoria   string   `json:"categoria"`
}

// Service は商品CRUDとプロモーションのドメインサービス。
type Service struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewService はServiceを生成する。
func NewService(repo repository.ProductRepository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// List は全商品をfechaCreacion降順で返す。
func (s *Service) List(ctx context.Context) ([]*model.Product, error) {
	return s.repo.ListAll(ctx)
}

// ListPromotions はpromoが空でない商品のみをfechaCreacion降順で返す。
func (s *Service) ListPromotions(ctx context.Context) ([]*model.Product, error) {
	return s.repo.ListPromotions(ctx)
}

// Get は指定IDの商品を返す。見つからない場合はProductNotFound。
func (s *Service) Get(ctx context.Context, id string) (*model.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.NewProductNotFoundError()
	}
	return p, nil
}

// Create は入力を検証し、商品を作成して永続化済みレコードを返す。
// nombre・precio・categoriaは必須。IDとfechaCreacionはここで採番する。
func (s *Service) Create(ctx context.Context, in *Input) (*model.Product, error) {
	p, err := s.buildProduct(in)
	if err != nil {
		return nil, err
	}

	p.ID = uuid.New().String()
	p.FechaCreacion = s.now()

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update は指定IDの商品の可変フィールドを入力で全置換する。
// 必須フィールドの検証はCreateと同一。IDとfechaCreacionは変更しない。
func (s *Service) Update(ctx context.Context, id string, in *Input) (*model.Product, error) {
	p, err := s.buildProduct(in)
	if err != nil {
		return nil, err
	}
	p.ID = id

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, model.NewProductNotFoundError()
	}

	// fechaCreacionを含む永続化後のレコードを返す。
	// 更新と再取得の間に削除されたIDもProductNotFoundにする。
	stored, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, model.NewProductNotFoundError()
	}
	return stored, nil
}

// Delete は指定IDの商品を削除する。
// すでに削除済みのIDは常にProductNotFoundになり、二重成功にはならない。
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return model.NewProductNotFoundError()
	}
	return nil
}

// CreatePromotion はpromo必須の商品を作成する。
// promoは整数としてパースできなければ検証エラー。
// categoria未指定時は"promociones"を割り当てる。
func (s *Service) CreatePromotion(ctx context.Context, in *Input) (*model.Product, error) {
	if strings.TrimSpace(in.Nombre) == "" || in.Precio == nil || strings.TrimSpace(in.Promo) == "" {
		return nil, model.NewValidationError("Falta nombre, precio o promo.")
	}
	if strings.TrimSpace(in.Categoria) == "" {
		in.Categoria = CategoriaPromociones
	}
	return s.Create(ctx, in)
}

// buildProduct は入力を検証し、デフォルト充填済みの商品を構築する。
// 必須フィールドの空判定はトリム後の値に対して行う（空白のみは未指定と同じ扱い）。
func (s *Service) buildProduct(in *Input) (*model.Product, error) {
	nombre := strings.TrimSpace(in.Nombre)
	categoria := strings.TrimSpace(in.Categoria)

	if nombre == "" || in.Precio == nil || categoria == "" {
		return nil, model.NewValidationError("Falta nombre, precio o categoría.")
	}
	if *in.Precio < 0 {
		return nil, model.NewValidationError("El precio no puede ser negativo.")
	}

	promo, err := normalizePromo(in.Promo)
	if err != nil {
		return nil, err
	}

	p := &model.Product{
		Nombre:      nombre,
		Descripcion: in.Descripcion,
		Precio:      *in.Precio,
		Imagenes:    in.Imagenes,
		Colores:     in.Colores,
		Tallas:      in.Tallas,
		Promo:       promo,
		Categoria:   categoria,
	}
	if p.Imagenes == nil {
		p.Imagenes = []string{}
	}
	if p.Colores == nil {
		p.Colores = []string{}
	}
	if p.Tallas == nil {
		p.Tallas = []string{}
	}
	return p, nil
}

// normalizePromo はpromoを正規の10進整数表記に正規化する。
// 空は「プロモーションなし」を意味しそのまま通す。
func normalizePromo(promo string) (string, error) {
	promo = strings.TrimSpace(promo)
	if promo == "" {
		return "", nil
	}
	n, err := strconv.Atoi(promo)
	if err != nil {
		return "", model.NewValidationError("El campo promo debe ser un número válido.")
	}
	return strconv.Itoa(n), nil
}
