package dto

import (
	"github.com/google/uuid"

	"artifact-approval-service/internal/core/domain"
)

type CreateArtifactVersionRequest struct {
	Artifact    uuid.UUID `json:"artifact" binding:"required"`
	URL         string    `json:"url" binding:"required"`
	SubmittedBy string    `json:"submitted_by" binding:"max=255"`
}

// DecideRequest is the body of both the approve and reject endpoints.
// decided_by presence is validated by the approval engine, not by binding,
// so the error message stays uniform.
type DecideRequest struct {
	DecidedBy string `json:"decided_by"`
	Reason    string `json:"reason"`
	Note      string `json:"note"`
}

type ApprovalDecisionResponse struct {
	Decision  string `json:"decision"`
	Reason    string `json:"reason"`
	Note      string `json:"note"`
	DecidedBy string `json:"decided_by"`
	DecidedAt string `json:"decided_at"`
}

type ArtifactVersionResponse struct {
	ID            uuid.UUID                 `json:"id"`
	CreatedAt     string                    `json:"created_at"`
	UpdatedAt     string                    `json:"updated_at"`
	Artifact      uuid.UUID                 `json:"artifact"`
	VersionNumber int                       `json:"version_number"`
	URL           string                    `json:"url"`
	SubmittedBy   string                    `json:"submitted_by"`
	Status        string                    `json:"status"`
	Decision      *ApprovalDecisionResponse `json:"decision"`
}

type ListArtifactVersionsResponse struct {
	Items      []ArtifactVersionResponse `json:"items"`
	Total      int                       `json:"total"`
	PageSize   int                       `json:"page_size"`
	NextOffset int                       `json:"next_offset"`
}

func ToArtifactVersionResponse(v *domain.ArtifactVersion) ArtifactVersionResponse {
	resp := ArtifactVersionResponse{
		ID:            v.ID,
		CreatedAt:     v.CreatedAt.Format(timeFormat),
		UpdatedAt:     v.UpdatedAt.Format(timeFormat),
		Artifact:      v.ArtifactID,
		VersionNumber: v.VersionNumber,
		URL:           v.URL,
		SubmittedBy:   v.SubmittedBy,
		Status:        string(v.Status()),
	}
	if v.Decision != nil {
		resp.Decision = &ApprovalDecisionResponse{
			Decision:  string(v.Decision.Decision),
			Reason:    v.Decision.Reason,
			Note:      v.Decision.Note,
			DecidedBy: v.Decision.DecidedBy,
			DecidedAt: v.Decision.DecidedAt.Format(timeFormat),
		}
	}
	return resp
}
