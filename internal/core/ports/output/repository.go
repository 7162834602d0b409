package ports

import (
	"context"

	"github.com/google/uuid"

	"artifact-approval-service/internal/core/domain"
)

type ListFilter struct {
	Limit  int
	Offset int
}

type ArtifactListFilter struct {
	ProjectID uuid.UUID
	Limit     int
	Offset    int
}

type VersionListFilter struct {
	ArtifactID uuid.UUID
	Limit      int
	Offset     int
}

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Project, int, error)
}

type ArtifactRepository interface {
	Create(ctx context.Context, artifact *domain.Artifact) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Artifact, error)
	List(ctx context.Context, filter ArtifactListFilter) ([]*domain.Artifact, int, error)
}

// ArtifactVersionRepository is the version store. Create assigns the next
// version number for the artifact atomically; two concurrent submissions for
// the same artifact never receive the same number. Reads always carry the
// version's decision when one exists.
type ArtifactVersionRepository interface {
	Create(ctx context.Context, version *domain.ArtifactVersion) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ArtifactVersion, error)
	ListByArtifact(ctx context.Context, artifactID uuid.UUID, filter VersionListFilter) ([]*domain.ArtifactVersion, int, error)
}

// ApprovalDecisionRepository is the append-only decision ledger. Create is
// atomic with respect to concurrent calls for the same version: at most one
// ever succeeds, the rest fail with domain.ErrDecisionExists. There is no
// update or delete; decisions leave the ledger only by cascade.
type ApprovalDecisionRepository interface {
	HasDecision(ctx context.Context, versionID uuid.UUID) (bool, error)
	Create(ctx context.Context, decision *domain.ApprovalDecision) error
}
