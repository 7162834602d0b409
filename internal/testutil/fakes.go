package testutil

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"artifact-approval-service/internal/core/domain"
	"artifact-approval-service/internal/core/ports/output"
)

// FakeVersionStore is an in-memory ArtifactVersionRepository whose Create
// assigns version numbers atomically under a mutex, mirroring the storage
// contract (max existing + 1 per artifact, never duplicated). mock.Mock
// cannot express that atomicity, so concurrency tests use this instead.
type FakeVersionStore struct {
	mu       sync.Mutex
	versions map[uuid.UUID]*domain.ArtifactVersion
	ledger   *FakeDecisionLedger
}

func NewFakeVersionStore(ledger *FakeDecisionLedger) *FakeVersionStore {
	return &FakeVersionStore{
		versions: make(map[uuid.UUID]*domain.ArtifactVersion),
		ledger:   ledger,
	}
}

func (f *FakeVersionStore) Create(_ context.Context, version *domain.ArtifactVersion) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	max := 0
	for _, v := range f.versions {
		if v.ArtifactID == version.ArtifactID && v.VersionNumber > max {
			max = v.VersionNumber
		}
	}
	version.VersionNumber = max + 1

	copied := *version
	f.versions[version.ID] = &copied
	return nil
}

func (f *FakeVersionStore) GetByID(_ context.Context, id uuid.UUID) (*domain.ArtifactVersion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.versions[id]
	if !ok {
		return nil, domain.ErrVersionNotFound
	}

	copied := *v
	if f.ledger != nil {
		copied.Decision = f.ledger.get(id)
	}
	return &copied, nil
}

func (f *FakeVersionStore) ListByArtifact(_ context.Context, artifactID uuid.UUID, _ ports.VersionListFilter) ([]*domain.ArtifactVersion, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*domain.ArtifactVersion
	for _, v := range f.versions {
		if v.ArtifactID == artifactID {
			copied := *v
			if f.ledger != nil {
				copied.Decision = f.ledger.get(v.ID)
			}
			out = append(out, &copied)
		}
	}
	return out, len(out), nil
}

// FakeDecisionLedger is an in-memory ApprovalDecisionRepository with the
// ledger's real concurrency contract: the existence check and insert happen
// under one lock, so at most one Create per version ever succeeds.
type FakeDecisionLedger struct {
	mu        sync.Mutex
	decisions map[uuid.UUID]*domain.ApprovalDecision
}

func NewFakeDecisionLedger() *FakeDecisionLedger {
	return &FakeDecisionLedger{decisions: make(map[uuid.UUID]*domain.ApprovalDecision)}
}

func (f *FakeDecisionLedger) HasDecision(_ context.Context, versionID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.decisions[versionID]
	return ok, nil
}

func (f *FakeDecisionLedger) Create(_ context.Context, decision *domain.ApprovalDecision) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.decisions[decision.ArtifactVersionID]; ok {
		return domain.ErrDecisionExists
	}
	copied := *decision
	f.decisions[decision.ArtifactVersionID] = &copied
	return nil
}

// Count reports how many decisions the ledger holds.
func (f *FakeDecisionLedger) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.decisions)
}

func (f *FakeDecisionLedger) get(versionID uuid.UUID) *domain.ApprovalDecision {
	f.mu.Lock()
	defer f.mu.Unlock()
	if d, ok := f.decisions[versionID]; ok {
		copied := *d
		return &copied
	}
	return nil
}
