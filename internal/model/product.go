// Package model はドメインモデルを定義する。
package model

import "time"

// Product は管理対象の商品を表す。
// JSONフィールド名はストアフロントとのワイヤ契約（スペイン語）に合わせる。
type Product struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	Descripcion   string    `json:"descripcion"`
	Precio        float64   `json:"precio"`
	Imagenes      []string  `json:"imagenes"`
	Colores       []string  `json:"colores"`
	Tallas        []string  `json:"tallas"`
	Promo         string    `json:"promo"`
	Categoria     string    `json:"categoria"`
	FechaCreacion time.Time `json:"fechaCreacion"`
}

// IsPromotion は商品がプロモーション中かどうかを返す。
// promoが空でない商品はプロモーション一覧に必ず現れる。
func (p *Product) IsPromotion() bool {
	return p.Promo != ""
}
