package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"artifact-approval-service/internal/adapters/primary/http/dto"
	"artifact-approval-service/internal/core/ports/output"
)

func (h *Handler) CreateArtifactVersion(c *gin.Context) {
	var req dto.CreateArtifactVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	version, err := h.versionSvc.Create(c.Request.Context(), req.Artifact, req.URL, req.SubmittedBy)
	if err != nil {
		log.WithError(err).Error("create artifact version failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToArtifactVersionResponse(version))
}

func (h *Handler) GetArtifactVersion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artifact version id"})
		return
	}

	version, err := h.versionSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArtifactVersionResponse(version))
}

func (h *Handler) ListArtifactVersions(c *gin.Context) {
	artifactID, err := uuid.Parse(c.Query("artifact"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "artifact query parameter is required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	versions, total, err := h.versionSvc.ListByArtifact(c.Request.Context(), artifactID, ports.VersionListFilter{
		ArtifactID: artifactID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		log.WithError(err).Error("list artifact versions failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ArtifactVersionResponse, 0, len(versions))
	for _, v := range versions {
		items = append(items, dto.ToArtifactVersionResponse(v))
	}

	c.JSON(http.StatusOK, dto.ListArtifactVersionsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}
