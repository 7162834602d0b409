package services

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"artifact-approval-service/internal/core/domain"
	"artifact-approval-service/internal/core/ports/output"
	"artifact-approval-service/internal/testutil"
)

func TestArtifactVersionService_Create(t *testing.T) {
	versionRepo := new(testutil.MockArtifactVersionRepo)
	artifactRepo := new(testutil.MockArtifactRepo)
	svc := NewArtifactVersionService(versionRepo, artifactRepo)

	artifactID := uuid.New()
	parent := &domain.Artifact{ID: artifactID, Name: "homepage-banner"}
	returned := &domain.ArtifactVersion{
		ID: uuid.New(), ArtifactID: artifactID, VersionNumber: 1,
		URL: "https://cdn.example.com/banner-v1.png", SubmittedBy: "designer@x.com",
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}

	artifactRepo.On("GetByID", mock.Anything, artifactID).Return(parent, nil)
	versionRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ArtifactVersion")).Return(nil)
	versionRepo.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(returned, nil)

	version, err := svc.Create(context.Background(), artifactID, "https://cdn.example.com/banner-v1.png", "designer@x.com")
	assert.NoError(t, err)
	assert.Equal(t, 1, version.VersionNumber)
	assert.Equal(t, domain.VersionStatusAwaitingApproval, version.Status())
	assert.Nil(t, version.Decision)
}

func TestArtifactVersionService_Create_ArtifactNotFound(t *testing.T) {
	versionRepo := new(testutil.MockArtifactVersionRepo)
	artifactRepo := new(testutil.MockArtifactRepo)
	svc := NewArtifactVersionService(versionRepo, artifactRepo)

	artifactID := uuid.New()
	artifactRepo.On("GetByID", mock.Anything, artifactID).Return(nil, domain.ErrArtifactNotFound)

	_, err := svc.Create(context.Background(), artifactID, "https://cdn.example.com/v1.png", "")
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	versionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestArtifactVersionService_Create_InvalidURL(t *testing.T) {
	versionRepo := new(testutil.MockArtifactVersionRepo)
	artifactRepo := new(testutil.MockArtifactRepo)
	svc := NewArtifactVersionService(versionRepo, artifactRepo)

	for _, raw := range []string{"", "not a url", "/relative/path", "cdn.example.com/no-scheme"} {
		_, err := svc.Create(context.Background(), uuid.New(), raw, "")
		assert.ErrorIs(t, err, domain.ErrInvalidURL, "url %q", raw)
	}
	artifactRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestArtifactVersionService_Create_MissingArtifactID(t *testing.T) {
	versionRepo := new(testutil.MockArtifactVersionRepo)
	artifactRepo := new(testutil.MockArtifactRepo)
	svc := NewArtifactVersionService(versionRepo, artifactRepo)

	_, err := svc.Create(context.Background(), uuid.Nil, "https://cdn.example.com/v1.png", "")
	assert.ErrorIs(t, err, domain.ErrInvalidArtifactID)
}

func TestArtifactVersionService_Get(t *testing.T) {
	versionRepo := new(testutil.MockArtifactVersionRepo)
	artifactRepo := new(testutil.MockArtifactRepo)
	svc := NewArtifactVersionService(versionRepo, artifactRepo)

	id := uuid.New()
	versionRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrVersionNotFound)

	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrVersionNotFound)
}

// Concurrent submissions against the same artifact receive the exact
// sequence 1..N with no gaps or duplicates.
func TestArtifactVersionService_Create_ConcurrentNumbering(t *testing.T) {
	store := testutil.NewFakeVersionStore(nil)
	artifactRepo := new(testutil.MockArtifactRepo)
	svc := NewArtifactVersionService(store, artifactRepo)

	artifactID := uuid.New()
	artifactRepo.On("GetByID", mock.Anything, artifactID).Return(&domain.Artifact{ID: artifactID}, nil)

	const submissions = 10
	var wg sync.WaitGroup
	numbers := make([]int, submissions)

	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := svc.Create(context.Background(), artifactID, "https://cdn.example.com/v.png", "")
			assert.NoError(t, err)
			numbers[i] = v.VersionNumber
		}(i)
	}
	wg.Wait()

	sort.Ints(numbers)
	for i, n := range numbers {
		assert.Equal(t, i+1, n)
	}
}

func TestArtifactVersionService_ListByArtifact_ClampsLimit(t *testing.T) {
	versionRepo := new(testutil.MockArtifactVersionRepo)
	artifactRepo := new(testutil.MockArtifactRepo)
	svc := NewArtifactVersionService(versionRepo, artifactRepo)

	artifactID := uuid.New()
	versionRepo.On("ListByArtifact", mock.Anything, artifactID, mock.MatchedBy(func(f ports.VersionListFilter) bool {
		return f.Limit == 100
	})).Return([]*domain.ArtifactVersion{}, 0, nil)

	_, _, err := svc.ListByArtifact(context.Background(), artifactID, ports.VersionListFilter{Limit: 500})
	assert.NoError(t, err)
	versionRepo.AssertExpectations(t)
}
