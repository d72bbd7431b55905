package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/project_ingest/internal/domain"
)

const TableUsers = "users"

type UsersRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewUsersRepository(pool *pgxpool.Pool) *UsersRepository {
	return &UsersRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateUser inserts user and fills its ID and creation time.
// A taken email is reported as domain.ErrUserExists.
func (r *UsersRepository) CreateUser(ctx context.Context, user *domain.User) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableUsers).
		Columns("email", "password_hash", "role").
		Values(user.Email, user.PasswordHash, user.Role).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	err = db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrUserExists
	}
	if err != nil {
		return scanRowError(err)
	}

	return nil
}

func (r *UsersRepository) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.userBy(ctx, sq.Eq{"email": email})
}

func (r *UsersRepository) UserByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.userBy(ctx, sq.Eq{"id": id})
}

func (r *UsersRepository) userBy(ctx context.Context, pred sq.Eq) (*domain.User, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("id", "email", "password_hash", "role", "created_at").
		From(TableUsers).
		Where(pred).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.User])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, collectRowsError(err)
	}

	return user, nil
}
