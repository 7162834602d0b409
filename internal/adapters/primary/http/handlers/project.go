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

func (h *Handler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectSvc.Create(c.Request.Context(), req.Name)
	if err != nil {
		log.WithError(err).Error("create project failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

func (h *Handler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	project, err := h.projectSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

func (h *Handler) ListProjects(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	projects, total, err := h.projectSvc.List(c.Request.Context(), ports.ListFilter{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		log.WithError(err).Error("list projects failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		items = append(items, dto.ToProjectResponse(p))
	}

	c.JSON(http.StatusOK, dto.ListProjectsResponse{
		Items:      items,
		Total:      total,
		PageSize:   limit,
		NextOffset: offset + len(items),
	})
}
