package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"artifact-approval-service/internal/core/domain"
	"artifact-approval-service/internal/core/ports/output"
)

// ApprovalService is the approval boundary engine: the one entry point that
// attaches a terminal APPROVE/REJECT decision to an artifact version. Approve
// and reject share this single code path, differing only in the stored kind.
type ApprovalService struct {
	versions  ports.ArtifactVersionRepository
	decisions ports.ApprovalDecisionRepository
}

func NewApprovalService(versions ports.ArtifactVersionRepository, decisions ports.ApprovalDecisionRepository) *ApprovalService {
	return &ApprovalService{versions: versions, decisions: decisions}
}

// Decide records the decision for a version and returns the version re-read
// with its new decision and projected status.
//
// For a fixed version at most one call ever succeeds; every other call,
// concurrent or later, fails with domain.ErrDecisionExists and writes
// nothing. The ledger's Create carries that guarantee (check-then-insert in
// one transaction, backed by the unique version-to-decision constraint), so
// the engine itself holds no cross-request state.
func (s *ApprovalService) Decide(ctx context.Context, versionID uuid.UUID, kind domain.DecisionKind, decidedBy, reason, note string) (*domain.ArtifactVersion, error) {
	if strings.TrimSpace(decidedBy) == "" {
		return nil, domain.ErrDeciderRequired
	}
	if !kind.Valid() {
		return nil, domain.ErrInvalidDecisionKind
	}

	version, err := s.versions.GetByID(ctx, versionID)
	if err != nil {
		return nil, err
	}

	// Fast path for the common repeat request. Authoritative conflict
	// detection happens inside Create's transaction; this check alone would
	// leave the classic read-then-write race open.
	exists, err := s.decisions.HasDecision(ctx, version.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDecisionExists
	}

	decision := &domain.ApprovalDecision{
		ID:                uuid.New(),
		ArtifactVersionID: version.ID,
		Decision:          kind,
		Reason:            reason,
		Note:              note,
		DecidedBy:         decidedBy,
		DecidedAt:         time.Now(),
	}

	if err := s.decisions.Create(ctx, decision); err != nil {
		return nil, err
	}

	return s.versions.GetByID(ctx, versionID)
}
