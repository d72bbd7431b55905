package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/project_ingest/internal/domain"
)

const TableProjects = "projects"

var projectColumns = []string{
	"id",
	"name",
	"description",
	"user_id",
	"file_name",
	"file_path",
	"file_type",
	"file_content",
	"upload_time",
}

type ProjectsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewProjectsRepository(pool *pgxpool.Pool) *ProjectsRepository {
	return &ProjectsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ProjectsRepository) Projects(ctx context.Context, limit, offset uint64) ([]*domain.Project, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableProjects).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(projectColumns...).
		From(TableProjects).
		OrderBy("id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	projects, err := r.collect(ctx, db, sql, args)
	if err != nil {
		return nil, -1, err
	}

	return projects, total, nil
}

func (r *ProjectsRepository) ProjectByID(ctx context.Context, id int64) (*domain.Project, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(projectColumns...).
		From(TableProjects).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	project, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Project])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, collectRowsError(err)
	}

	return project, nil
}

func (r *ProjectsRepository) ProjectsByUserID(ctx context.Context, userID int64) ([]*domain.Project, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(projectColumns...).
		From(TableProjects).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	return r.collect(ctx, db, sql, args)
}

// CreateProject inserts project and sets its ID.
func (r *ProjectsRepository) CreateProject(ctx context.Context, project *domain.Project) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableProjects).
		Columns(projectColumns[1:]...).
		Values(
			project.Name,
			project.Description,
			project.UserID,
			project.FileName,
			project.FilePath,
			project.FileType,
			project.FileContent,
			project.UploadTime,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if err := db.QueryRow(ctx, sql, args...).Scan(&project.ID); err != nil {
		return scanRowError(err)
	}

	return nil
}

// SaveProject inserts a project without an ID and updates an existing one otherwise.
func (r *ProjectsRepository) SaveProject(ctx context.Context, project *domain.Project) error {
	if project.ID == 0 {
		return r.CreateProject(ctx, project)
	}

	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableProjects).
		SetMap(map[string]any{
			"name":         project.Name,
			"description":  project.Description,
			"user_id":      project.UserID,
			"file_name":    project.FileName,
			"file_path":    project.FilePath,
			"file_type":    project.FileType,
			"file_content": project.FileContent,
			"upload_time":  project.UploadTime,
		}).
		Where(sq.Eq{"id": project.ID}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}

	return nil
}

func (r *ProjectsRepository) DeleteProject(ctx context.Context, id int64) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Delete(TableProjects).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}

	return nil
}

func (r *ProjectsRepository) collect(ctx context.Context, db DBTX, sql string, args []any) ([]*domain.Project, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	projects, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Project])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return projects, nil
}
