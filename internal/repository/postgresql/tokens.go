package postgresql

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/project_ingest/internal/domain"
)

const TableTokens = "tokens"

type TokensRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewTokensRepository(pool *pgxpool.Pool) *TokensRepository {
	return &TokensRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *TokensRepository) CreateToken(ctx context.Context, token *domain.Token) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableTokens).
		Columns("token", "user_id", "created_at", "expires_at").
		Values(token.Value, token.UserID, token.CreatedAt, token.ExpiresAt).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *TokensRepository) Token(ctx context.Context, value string) (*domain.Token, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("token", "user_id", "created_at", "expires_at").
		From(TableTokens).
		Where(sq.Eq{"token": value}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	token, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Token])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrInvalidToken
	}
	if err != nil {
		return nil, collectRowsError(err)
	}

	return token, nil
}

// DeleteExpiredTokens removes tokens that expired before now and returns how many were removed.
func (r *TokensRepository) DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Delete(TableTokens).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}
