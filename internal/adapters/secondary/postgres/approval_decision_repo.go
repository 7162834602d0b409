package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"artifact-approval-service/internal/core/domain"
	"artifact-approval-service/internal/core/ports/output"
)

type approvalDecisionRepo struct {
	pool *pgxpool.Pool
}

func NewApprovalDecisionRepository(pool *pgxpool.Pool) ports.ApprovalDecisionRepository {
	return &approvalDecisionRepo{pool: pool}
}

func (r *approvalDecisionRepo) HasDecision(ctx context.Context, versionID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM approval_decision WHERE artifact_version_id = $1)`,
		versionID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check decision exists: %w", err)
	}
	return exists, nil
}

// Create appends the decision to the ledger. The existence check and the
// insert run in one transaction, and the unique index on artifact_version_id
// is the backstop for the race the check alone cannot close: whichever
// concurrent caller loses the insert gets a 23505, reinterpreted as
// domain.ErrDecisionExists. Either way nothing is written for the loser.
func (r *approvalDecisionRepo) Create(ctx context.Context, decision *domain.ApprovalDecision) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin decision tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM approval_decision WHERE artifact_version_id = $1)`,
		decision.ArtifactVersionID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check decision exists: %w", err)
	}
	if exists {
		return domain.ErrDecisionExists
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO approval_decision
			(id, artifact_version_id, decision, reason, note, decided_by, decided_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		decision.ID, decision.ArtifactVersionID, string(decision.Decision),
		decision.Reason, decision.Note, decision.DecidedBy, decision.DecidedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrUniqueViolation:
				return domain.ErrDecisionExists
			case pgErrForeignKeyViolation:
				return domain.ErrVersionNotFound
			}
		}
		return fmt.Errorf("create approval decision: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrDecisionExists
		}
		return fmt.Errorf("commit decision tx: %w", err)
	}
	return nil
}
