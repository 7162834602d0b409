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

func (h *Handler) CreateArtifact(c *gin.Context) {
	var req dto.CreateArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artifact, err := h.artifactSvc.Create(c.Request.Context(), req.Project, req.Name, req.ArtifactType)
	if err != nil {
		log.WithError(err).Error("create artifact failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToArtifactResponse(artifact))
}

func (h *Handler) GetArtifact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artifact id"})
		return
	}

	artifact, err := h.artifactSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArtifactResponse(artifact))
}

func (h *Handler) ListArtifacts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.ArtifactListFilter{
		Limit:  limit,
		Offset: offset,
	}
	if raw := c.Query("project"); raw != "" {
		projectID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
			return
		}
		filter.ProjectID = projectID
	}

	artifacts, total, err := h.artifactSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list artifacts failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ArtifactResponse, 0, len(artifacts))
	for _, a := range artifacts {
		items = append(items, dto.ToArtifactResponse(a))
	}

	c.JSON(http.StatusOK, dto.ListArtifactsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}
