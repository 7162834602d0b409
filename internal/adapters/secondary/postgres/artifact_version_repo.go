package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"artifact-approval-service/internal/core/domain"
	"artifact-approval-service/internal/core/ports/output"
)

// Postgres error codes mapped to domain errors.
const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
)

// Under concurrent submissions the computed version number can collide; the
// UNIQUE(artifact_id, version_number) constraint rejects the loser, which
// simply recomputes. Two retries are enough for any realistic contention.
const maxVersionInsertAttempts = 3

type artifactVersionRepo struct {
	pool *pgxpool.Pool
}

func NewArtifactVersionRepository(pool *pgxpool.Pool) ports.ArtifactVersionRepository {
	return &artifactVersionRepo{pool: pool}
}

// Create persists a new version, assigning version_number = max existing + 1
// for the artifact in the same INSERT statement. The unique constraint on
// (artifact_id, version_number) serializes concurrent submissions: a collision
// surfaces as a 23505, and the insert is retried with a fresh computation.
func (r *artifactVersionRepo) Create(ctx context.Context, version *domain.ArtifactVersion) error {
	query := `
		INSERT INTO artifact_version
			(id, created_at, updated_at, artifact_id, version_number, url, submitted_by)
		SELECT $1, $2, $3, $4, COALESCE(MAX(version_number), 0) + 1, $5, $6
		FROM artifact_version
		WHERE artifact_id = $4
		RETURNING version_number
	`

	var lastErr error
	for attempt := 0; attempt < maxVersionInsertAttempts; attempt++ {
		err := r.pool.QueryRow(ctx, query,
			version.ID, version.CreatedAt, version.UpdatedAt,
			version.ArtifactID, version.URL, version.SubmittedBy,
		).Scan(&version.VersionNumber)
		if err == nil {
			return nil
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrUniqueViolation:
				lastErr = domain.ErrVersionNumberConflict
				continue
			case pgErrForeignKeyViolation:
				return domain.ErrArtifactNotFound
			}
		}
		return fmt.Errorf("create artifact version: %w", err)
	}
	return lastErr
}

func (r *artifactVersionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ArtifactVersion, error) {
	query := `
		SELECT av.id, av.created_at, av.updated_at, av.artifact_id,
			   av.version_number, av.url, av.submitted_by,
			   ad.id, ad.decision, ad.reason, ad.note, ad.decided_by, ad.decided_at
		FROM artifact_version av
		LEFT JOIN approval_decision ad ON ad.artifact_version_id = av.id
		WHERE av.id = $1
	`
	v, err := scanVersionWithDecision(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVersionNotFound
		}
		return nil, fmt.Errorf("get artifact version by id: %w", err)
	}
	return v, nil
}

func (r *artifactVersionRepo) ListByArtifact(ctx context.Context, artifactID uuid.UUID, filter ports.VersionListFilter) ([]*domain.ArtifactVersion, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM artifact_version WHERE artifact_id = $1`, artifactID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count artifact versions: %w", err)
	}

	query := `
		SELECT av.id, av.created_at, av.updated_at, av.artifact_id,
			   av.version_number, av.url, av.submitted_by,
			   ad.id, ad.decision, ad.reason, ad.note, ad.decided_by, ad.decided_at
		FROM artifact_version av
		LEFT JOIN approval_decision ad ON ad.artifact_version_id = av.id
		WHERE av.artifact_id = $1
		ORDER BY av.version_number DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, artifactID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list artifact versions: %w", err)
	}
	defer rows.Close()

	var versions []*domain.ArtifactVersion
	for rows.Next() {
		v, err := scanVersionWithDecision(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan artifact version row: %w", err)
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate artifact version rows: %w", err)
	}

	return versions, total, nil
}

// scanVersionWithDecision scans a version row LEFT JOINed with its decision.
// The decision columns are NULL when the version is still awaiting approval.
func scanVersionWithDecision(row pgx.Row) (*domain.ArtifactVersion, error) {
	v := &domain.ArtifactVersion{}
	var (
		decisionID *uuid.UUID
		kind       *string
		reason     *string
		note       *string
		decidedBy  *string
		decidedAt  *time.Time
	)

	err := row.Scan(
		&v.ID, &v.CreatedAt, &v.UpdatedAt, &v.ArtifactID,
		&v.VersionNumber, &v.URL, &v.SubmittedBy,
		&decisionID, &kind, &reason, &note, &decidedBy, &decidedAt,
	)
	if err != nil {
		return nil, err
	}

	if decisionID != nil {
		v.Decision = &domain.ApprovalDecision{
			ID:                *decisionID,
			ArtifactVersionID: v.ID,
			Decision:          domain.DecisionKind(*kind),
			Reason:            *reason,
			Note:              *note,
			DecidedBy:         *decidedBy,
			DecidedAt:         *decidedAt,
		}
	}
	return v, nil
}
