package domain

import (
	"time"

	"github.com/google/uuid"
)

type DecisionKind string

const (
	DecisionApprove DecisionKind = "APPROVE"
	DecisionReject  DecisionKind = "REJECT"
)

func (k DecisionKind) Valid() bool {
	return k == DecisionApprove || k == DecisionReject
}

// ApprovalDecision is the terminal judgment on exactly one artifact version.
// At most one exists per version, ever. All fields are immutable after
// creation; the row is removed only by cascade from its version.
type ApprovalDecision struct {
	ID                uuid.UUID    `json:"-"`
	ArtifactVersionID uuid.UUID    `json:"-"`
	Decision          DecisionKind `json:"decision"`
	Reason            string       `json:"reason"`
	Note              string       `json:"note"`
	DecidedBy         string       `json:"decided_by"`
	DecidedAt         time.Time    `json:"decided_at"`
}
