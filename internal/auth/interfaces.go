package auth

import (
	"context"
	"time"

	"github.com/kurochkinivan/project_ingest/internal/domain"
)

type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User) error
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	UserByID(ctx context.Context, id int64) (*domain.User, error)
}

type TokenStore interface {
	CreateToken(ctx context.Context, token *domain.Token) error
	Token(ctx context.Context, value string) (*domain.Token, error)
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}

type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
