package domain

import (
	"time"

	"github.com/google/uuid"
)

type VersionStatus string

const (
	VersionStatusAwaitingApproval VersionStatus = "AWAITING_APPROVAL"
	VersionStatusApproved         VersionStatus = "APPROVED"
	VersionStatusRejected         VersionStatus = "REJECTED"
)

// ArtifactVersion is one immutable, numbered submission of an artifact.
// VersionNumber is assigned by the store (max existing + 1, starting at 1),
// never by the caller. Decision is nil while the version awaits approval.
type ArtifactVersion struct {
	ID            uuid.UUID `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	ArtifactID    uuid.UUID `json:"artifact_id"`
	VersionNumber int       `json:"version_number"`
	URL           string    `json:"url"`
	SubmittedBy   string    `json:"submitted_by"`

	Decision *ApprovalDecision `json:"decision"`
}

// Status projects the version's current state from the presence and kind of
// its decision. Total: every version maps to exactly one of the three states.
func (v *ArtifactVersion) Status() VersionStatus {
	return ProjectStatus(v.Decision)
}

// ProjectStatus is the status projection as a pure function of the (possibly
// absent) decision.
func ProjectStatus(d *ApprovalDecision) VersionStatus {
	switch {
	case d == nil:
		return VersionStatusAwaitingApproval
	case d.Decision == DecisionApprove:
		return VersionStatusApproved
	default:
		return VersionStatusRejected
	}
}
