package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"artifact-approval-service/internal/core/domain"
	"artifact-approval-service/internal/core/ports/output"
)

type artifactRepo struct {
	pool *pgxpool.Pool
}

func NewArtifactRepository(pool *pgxpool.Pool) ports.ArtifactRepository {
	return &artifactRepo{pool: pool}
}

func (r *artifactRepo) Create(ctx context.Context, artifact *domain.Artifact) error {
	query := `
		INSERT INTO artifact (id, created_at, updated_at, project_id, name, artifact_type)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		artifact.ID, artifact.CreatedAt, artifact.UpdatedAt,
		artifact.ProjectID, artifact.Name, artifact.ArtifactType,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
			return domain.ErrProjectNotFound
		}
		return fmt.Errorf("create artifact: %w", err)
	}
	return nil
}

func (r *artifactRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artifact, error) {
	query := `
		SELECT id, created_at, updated_at, project_id, name, artifact_type
		FROM artifact
		WHERE id = $1
	`
	a := &domain.Artifact{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.ProjectID, &a.Name, &a.ArtifactType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("get artifact by id: %w", err)
	}
	return a, nil
}

func (r *artifactRepo) List(ctx context.Context, filter ports.ArtifactListFilter) ([]*domain.Artifact, int, error) {
	where := "1=1"
	args := []interface{}{}
	argPos := 1

	if filter.ProjectID != uuid.Nil {
		where = fmt.Sprintf("project_id = $%d", argPos)
		args = append(args, filter.ProjectID)
		argPos++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM artifact WHERE %s", where)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count artifacts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, created_at, updated_at, project_id, name, artifact_type
		FROM artifact
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list artifacts: %w", err)
	}
	defer rows.Close()

	var artifacts []*domain.Artifact
	for rows.Next() {
		a := &domain.Artifact{}
		if err := rows.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.ProjectID, &a.Name, &a.ArtifactType); err != nil {
			return nil, 0, fmt.Errorf("scan artifact row: %w", err)
		}
		artifacts = append(artifacts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate artifact rows: %w", err)
	}

	return artifacts, total, nil
}
