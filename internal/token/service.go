// Package token はJWTベアラートークンの発行と検証を提供する。
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/talo100uraba/talo-admin/internal/model"
)

// RoleAdmin は単一ロールシステムにおける唯一のロール。
const RoleAdmin = "admin"

// Claims はトークンに埋め込む識別情報を表す。
type Claims struct {
	User string `json:"user"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service はプロセス全体で共有する署名鍵と有効期限でトークンを発行・検証する。
// 鍵ローテーションはサポートしない。
type Service struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// NewService はServiceを生成する。
func NewService(secret string, expiration time.Duration) *Service {
	return &Service{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

// Issue は{user, role}を含む署名済みトークン文字列を発行する。
// 有効期限は設定されたexpiration後に切れる。
func (s *Service) Issue(user string) (string, error) {
	now := s.now()
	claims := Claims{
		User: user,
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify はトークン文字列を検証し、埋め込まれたクレームを返す。
// 署名不一致・不正形式・期限切れのいずれもInvalidTokenとして失敗する。
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// HS256以外のアルゴリズムを指定したトークンは拒否する
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.NewInvalidTokenError()
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, model.NewInvalidTokenError()
	}
	return claims, nil
}
