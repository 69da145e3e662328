// Package auth は管理者アカウントの認証を提供する。
package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/talo100uraba/talo-admin/internal/model"
	"github.com/talo100uraba/talo-admin/internal/token"
)

// TokenIssuer はログイン成功時のトークン発行に必要なインターフェース。
// token.Serviceの部分集合として定義する。
type TokenIssuer interface {
	Issue(user string) (string, error)
}

// ServiceConfig は認証サービスの設定。
// 管理者アカウントは設定由来の1件のみで、プロセス生存中は不変。
type ServiceConfig struct {
	AdminUsername     string
	AdminPasswordHash string // bcryptハッシュ
}

// Service は管理者ログインを処理する。
type Service struct {
	config ServiceConfig
	tokens TokenIssuer
}

// NewService はServiceを生成する。
func NewService(config ServiceConfig, tokens TokenIssuer) *Service {
	return &Service{
		config: config,
		tokens: tokens,
	}
}

// Login は管理者の認証を行い、成功時に署名済みトークンを返す。
// ユーザー名不一致とパスワード不一致は同一のInvalidCredentialsになる。
// パスワードは平文比較せず、常にbcryptで照合する。
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", model.NewMissingCredentialsError()
	}

	if username != s.config.AdminUsername {
		return "", model.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.config.AdminPasswordHash), []byte(password)); err != nil {
		return "", model.NewInvalidCredentialsError()
	}

	signed, err := s.tokens.Issue(username)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// compile-time interface check
var _ TokenIssuer = (*token.Service)(nil)
