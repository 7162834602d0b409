package services

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"

	"artifact-approval-service/internal/core/domain"
	"artifact-approval-service/internal/core/ports/output"
)

type ArtifactVersionService struct {
	repo         ports.ArtifactVersionRepository
	artifactRepo ports.ArtifactRepository
}

func NewArtifactVersionService(repo ports.ArtifactVersionRepository, artifactRepo ports.ArtifactRepository) *ArtifactVersionService {
	return &ArtifactVersionService{repo: repo, artifactRepo: artifactRepo}
}

// Create submits a new version of an artifact. The version number is assigned
// by the store, not the caller: max existing + 1, starting at 1 for the first
// submission.
func (s *ArtifactVersionService) Create(ctx context.Context, artifactID uuid.UUID, location, submittedBy string) (*domain.ArtifactVersion, error) {
	if artifactID == uuid.Nil {
		return nil, domain.ErrInvalidArtifactID
	}
	if err := validateURL(location); err != nil {
		return nil, err
	}

	// Verify the parent artifact exists.
	if _, err := s.artifactRepo.GetByID(ctx, artifactID); err != nil {
		return nil, err
	}

	now := time.Now()
	version := &domain.ArtifactVersion{
		ID:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		ArtifactID:  artifactID,
		URL:         location,
		SubmittedBy: submittedBy,
	}

	if err := s.repo.Create(ctx, version); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, version.ID)
}

func (s *ArtifactVersionService) Get(ctx context.Context, id uuid.UUID) (*domain.ArtifactVersion, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ArtifactVersionService) ListByArtifact(ctx context.Context, artifactID uuid.UUID, filter ports.VersionListFilter) ([]*domain.ArtifactVersion, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.ListByArtifact(ctx, artifactID, filter)
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return domain.ErrInvalidURL
	}
	return nil
}
