package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"artifact-approval-service/internal/core/domain"
	"artifact-approval-service/internal/core/ports/output"
)

type ArtifactService struct {
	repo        ports.ArtifactRepository
	projectRepo ports.ProjectRepository
}

func NewArtifactService(repo ports.ArtifactRepository, projectRepo ports.ProjectRepository) *ArtifactService {
	return &ArtifactService{repo: repo, projectRepo: projectRepo}
}

func (s *ArtifactService) Create(ctx context.Context, projectID uuid.UUID, name, artifactType string) (*domain.Artifact, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidArtifactName
	}

	// Verify the parent project exists; there is no implicit default project.
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	now := time.Now()
	artifact := &domain.Artifact{
		ID:           uuid.New(),
		CreatedAt:    now,
		UpdatedAt:    now,
		ProjectID:    projectID,
		Name:         name,
		ArtifactType: artifactType,
	}

	if err := s.repo.Create(ctx, artifact); err != nil {
		return nil, err
	}
	return artifact, nil
}

func (s *ArtifactService) Get(ctx context.Context, id uuid.UUID) (*domain.Artifact, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ArtifactService) List(ctx context.Context, filter ports.ArtifactListFilter) ([]*domain.Artifact, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}
