package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/talo100uraba/talo-admin/internal/model"
)

// PostgresProductRepo はPostgreSQLを使用した商品リポジトリ。
type PostgresProductRepo struct {
	db *sql.DB
}

// NewPostgresProductRepo はPostgresProductRepoを生成する。
func NewPostgresProductRepo(db *sql.DB) *PostgresProductRepo {
	return &PostgresProductRepo{db: db}
}

const productColumns = `id, name, description, price, images, colors, sizes, promo, category, created_at`

// scanProduct は1行を*model.Productに読み取る。
func scanProduct(row interface{ Scan(...any) error }) (*model.Product, error) {
	p := &model.Product{}
	err := row.Scan(
		&p.ID,
		&p.Nombre,
		&p.Descripcion,
		&p.Precio,
		pq.Array(&p.Imagenes),
		pq.Array(&p.Colores),
		pq.Array(&p.Tallas),
		&p.Promo,
		&p.Categoria,
		&p.FechaCreacion,
	)
	if err != nil {
		return nil, err
	}
	// text[]のスキャン結果がnilでもJSONでは常に配列として返す
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

// listQuery は指定のWHERE句で商品一覧をfechaCreacion降順で取得する。
func (r *PostgresProductRepo) listQuery(ctx context.Context, where string) ([]*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products` + where + ` ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []*model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// ListAll は全商品をfechaCreacion降順で取得する。
func (r *PostgresProductRepo) ListAll(ctx context.Context) ([]*model.Product, error) {
	return r.listQuery(ctx, "")
}

// ListPromotions はpromoが空でない商品のみをfechaCreacion降順で取得する。
func (r *PostgresProductRepo) ListPromotions(ctx context.Context) ([]*model.Product, error) {
	return r.listQuery(ctx, ` WHERE promo <> ''`)
}

// FindByID は指定IDの商品を取得する。見つからない場合はnilを返す。
func (r *PostgresProductRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`,
		id,
	)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return p, nil
}

// Create は商品を作成する。IDとFechaCreacionは呼び出し側で設定済みであること。
func (r *PostgresProductRepo) Create(ctx context.Context, p *model.Product) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (id, name, description, price, images, colors, sizes, promo, category, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.Nombre, p.Descripcion, p.Precio,
		pq.Array(p.Imagenes), pq.Array(p.Colores), pq.Array(p.Tallas),
		p.Promo, p.Categoria, p.FechaCreacion,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

// Update は指定IDの商品の可変フィールドを全置換する。
// 対象が存在しない場合はfalseを返す。created_atは変更しない。
func (r *PostgresProductRepo) Update(ctx context.Context, p *model.Product) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE products
		 SET name = $2, description = $3, price = $4, images = $5, colors = $6, sizes = $7, promo = $8, category = $9
		 WHERE id = $1`,
		p.ID, p.Nombre, p.Descripcion, p.Precio,
		pq.Array(p.Imagenes), pq.Array(p.Colores), pq.Array(p.Tallas),
		p.Promo, p.Categoria,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// Delete は指定IDの商品を削除する。対象が存在しない場合はfalseを返す。
func (r *PostgresProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM products WHERE id = $1`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// compile-time interface check
var _ ProductRepository = (*PostgresProductRepo)(nil)
