package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"artifact-approval-service/internal/core/domain"
	"artifact-approval-service/internal/core/ports/output"
)

type projectRepo struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) ports.ProjectRepository {
	return &projectRepo{pool: pool}
}

func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO project (id, created_at, updated_at, name)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query,
		project.ID, project.CreatedAt, project.UpdatedAt, project.Name,
	)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (r *projectRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	query := `
		SELECT id, created_at, updated_at, name
		FROM project
		WHERE id = $1
	`
	p := &domain.Project{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project by id: %w", err)
	}
	return p, nil
}

func (r *projectRepo) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Project, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM project`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}

	query := `
		SELECT id, created_at, updated_at, name
		FROM project
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p := &domain.Project{}
		if err := rows.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.Name); err != nil {
			return nil, 0, fmt.Errorf("scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate project rows: %w", err)
	}

	return projects, total, nil
}
