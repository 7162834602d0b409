package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"artifact-approval-service/internal/core/domain"
	"artifact-approval-service/internal/testutil"
)

func TestArtifactService_Create(t *testing.T) {
	artifactRepo := new(testutil.MockArtifactRepo)
	projectRepo := new(testutil.MockProjectRepo)
	svc := NewArtifactService(artifactRepo, projectRepo)

	projectID := uuid.New()
	projectRepo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{ID: projectID, Name: "acme"}, nil)
	artifactRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Artifact")).Return(nil)

	artifact, err := svc.Create(context.Background(), projectID, "homepage-banner", "image")
	assert.NoError(t, err)
	assert.Equal(t, projectID, artifact.ProjectID)
	assert.Equal(t, "homepage-banner", artifact.Name)
	assert.NotEqual(t, uuid.Nil, artifact.ID)
}

func TestArtifactService_Create_ProjectNotFound(t *testing.T) {
	artifactRepo := new(testutil.MockArtifactRepo)
	projectRepo := new(testutil.MockProjectRepo)
	svc := NewArtifactService(artifactRepo, projectRepo)

	projectID := uuid.New()
	projectRepo.On("GetByID", mock.Anything, projectID).Return(nil, domain.ErrProjectNotFound)

	_, err := svc.Create(context.Background(), projectID, "homepage-banner", "")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	artifactRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestArtifactService_Create_EmptyName(t *testing.T) {
	artifactRepo := new(testutil.MockArtifactRepo)
	projectRepo := new(testutil.MockProjectRepo)
	svc := NewArtifactService(artifactRepo, projectRepo)

	_, err := svc.Create(context.Background(), uuid.New(), "  ", "")
	assert.ErrorIs(t, err, domain.ErrInvalidArtifactName)
}

func TestProjectService_Create(t *testing.T) {
	projectRepo := new(testutil.MockProjectRepo)
	svc := NewProjectService(projectRepo)

	projectRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Project")).Return(nil)

	project, err := svc.Create(context.Background(), "acme")
	assert.NoError(t, err)
	assert.Equal(t, "acme", project.Name)
}

func TestProjectService_Create_EmptyName(t *testing.T) {
	projectRepo := new(testutil.MockProjectRepo)
	svc := NewProjectService(projectRepo)

	_, err := svc.Create(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidProjectName)
	projectRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
