package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProjectStatus(t *testing.T) {
	tests := []struct {
		name     string
		decision *ApprovalDecision
		want     VersionStatus
	}{
		{"no decision", nil, VersionStatusAwaitingApproval},
		{"approved", &ApprovalDecision{Decision: DecisionApprove}, VersionStatusApproved},
		{"rejected", &ApprovalDecision{Decision: DecisionReject}, VersionStatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProjectStatus(tt.decision))

			v := &ArtifactVersion{Decision: tt.decision}
			assert.Equal(t, tt.want, v.Status())
		})
	}
}

func TestProjectStatus_PureOverRepeatedCalls(t *testing.T) {
	d := &ApprovalDecision{Decision: DecisionApprove, DecidedBy: "client@x.com", DecidedAt: time.Now()}
	v := &ArtifactVersion{Decision: d}

	first := v.Status()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, v.Status())
	}
}

func TestDecisionKindValid(t *testing.T) {
	assert.True(t, DecisionApprove.Valid())
	assert.True(t, DecisionReject.Valid())
	assert.False(t, DecisionKind("MAYBE").Valid())
	assert.False(t, DecisionKind("").Valid())
}
