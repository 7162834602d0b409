package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"artifact-approval-service/internal/core/domain"
	"artifact-approval-service/internal/core/ports/output"
)

// MockProjectRepo is a mock of ProjectRepository.
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepo) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Project, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Project), args.Int(1), args.Error(2)
}

// MockArtifactRepo is a mock of ArtifactRepository.
type MockArtifactRepo struct {
	mock.Mock
}

func (m *MockArtifactRepo) Create(ctx context.Context, artifact *domain.Artifact) error {
	args := m.Called(ctx, artifact)
	return args.Error(0)
}

func (m *MockArtifactRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artifact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}

func (m *MockArtifactRepo) List(ctx context.Context, filter ports.ArtifactListFilter) ([]*domain.Artifact, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Artifact), args.Int(1), args.Error(2)
}

// MockArtifactVersionRepo is a mock of ArtifactVersionRepository.
type MockArtifactVersionRepo struct {
	mock.Mock
}

func (m *MockArtifactVersionRepo) Create(ctx context.Context, version *domain.ArtifactVersion) error {
	args := m.Called(ctx, version)
	return args.Error(0)
}

func (m *MockArtifactVersionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ArtifactVersion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArtifactVersion), args.Error(1)
}

func (m *MockArtifactVersionRepo) ListByArtifact(ctx context.Context, artifactID uuid.UUID, filter ports.VersionListFilter) ([]*domain.ArtifactVersion, int, error) {
	args := m.Called(ctx, artifactID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.ArtifactVersion), args.Int(1), args.Error(2)
}

// MockApprovalDecisionRepo is a mock of ApprovalDecisionRepository.
type MockApprovalDecisionRepo struct {
	mock.Mock
}

func (m *MockApprovalDecisionRepo) HasDecision(ctx context.Context, versionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, versionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApprovalDecisionRepo) Create(ctx context.Context, decision *domain.ApprovalDecision) error {
	args := m.Called(ctx, decision)
	return args.Error(0)
}
