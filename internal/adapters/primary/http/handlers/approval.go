package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"artifact-approval-service/internal/adapters/primary/http/dto"
	"artifact-approval-service/internal/core/domain"
)

func (h *Handler) ApproveArtifactVersion(c *gin.Context) {
	h.decide(c, domain.DecisionApprove)
}

func (h *Handler) RejectArtifactVersion(c *gin.Context) {
	h.decide(c, domain.DecisionReject)
}

// decide is the single HTTP entry into the approval engine; approve and
// reject differ only in the kind passed through.
func (h *Handler) decide(c *gin.Context, kind domain.DecisionKind) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artifact version id"})
		return
	}

	var req dto.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	version, err := h.approvalSvc.Decide(c.Request.Context(), id, kind, req.DecidedBy, req.Reason, req.Note)
	if err != nil {
		h.collector.RecordDecision(string(kind), decisionOutcome(err))
		if !errors.Is(err, domain.ErrDecisionExists) && !errors.Is(err, domain.ErrVersionNotFound) && !errors.Is(err, domain.ErrDeciderRequired) {
			log.WithError(err).WithField("version_id", id).Error("decide failed")
		}
		mapDomainError(c, err)
		return
	}

	h.collector.RecordDecision(string(kind), "recorded")
	c.JSON(http.StatusOK, dto.ToArtifactVersionResponse(version))
}

func decisionOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrDecisionExists):
		return "conflict"
	case errors.Is(err, domain.ErrVersionNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrDeciderRequired), errors.Is(err, domain.ErrInvalidDecisionKind):
		return "invalid"
	default:
		return "error"
	}
}
