package dto

import (
	"time"

	"github.com/google/uuid"

	"artifact-approval-service/internal/core/domain"
)

const timeFormat = time.RFC3339

type CreateArtifactRequest struct {
	Project      uuid.UUID `json:"project" binding:"required"`
	Name         string    `json:"name" binding:"required,max=255"`
	ArtifactType string    `json:"artifact_type" binding:"max=100"`
}

type ArtifactResponse struct {
	ID           uuid.UUID `json:"id"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
	Project      uuid.UUID `json:"project"`
	Name         string    `json:"name"`
	ArtifactType string    `json:"artifact_type"`
}

type ListArtifactsResponse struct {
	Items      []ArtifactResponse `json:"items"`
	Total      int                `json:"total"`
	PageSize   int                `json:"page_size"`
	NextOffset int                `json:"next_offset"`
}

func ToArtifactResponse(a *domain.Artifact) ArtifactResponse {
	return ArtifactResponse{
		ID:           a.ID,
		CreatedAt:    a.CreatedAt.Format(timeFormat),
		UpdatedAt:    a.UpdatedAt.Format(timeFormat),
		Project:      a.ProjectID,
		Name:         a.Name,
		ArtifactType: a.ArtifactType,
	}
}
