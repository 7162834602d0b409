package domain

import (
	"time"

	"github.com/google/uuid"
)

// Artifact is a named deliverable under a project. It owns zero or more
// submitted versions.
type Artifact struct {
	ID           uuid.UUID `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ProjectID    uuid.UUID `json:"project_id"`
	Name         string    `json:"name"`
	ArtifactType string    `json:"artifact_type"`
}
