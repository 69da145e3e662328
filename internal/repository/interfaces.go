// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/talo100uraba/talo-admin/internal/model"
)

// ProductRepository は商品データの永続化インターフェース。
type ProductRepository interface {
	// ListAll は全商品をfechaCreacion降順で取得する。
	ListAll(ctx context.Context) ([]*model.Product, error)

	// ListPromotions はpromoが空でない商品のみをfechaCreacion降順で取得する。
	ListPromotions(ctx context.Context) ([]*model.Product, error)

	// FindByID は指定IDの商品を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Product, error)

	// Create は商品を作成する。IDとFechaCreacionは呼び出し側で設定済みであること。
	Create(ctx context.Context, p *model.Product) error

	// Update は指定IDの商品の可変フィールドを全置換する。
	// 対象が存在しない場合はfalseを返す。部分更新はサポートしない。
	Update(ctx context.Context, p *model.Product) (bool, error)

	// Delete は指定IDの商品を削除する。対象が存在しない場合はfalseを返す。
	Delete(ctx context.Context, id string) (bool, error)
}
