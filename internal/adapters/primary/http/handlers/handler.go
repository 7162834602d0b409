package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artifact-approval-service/internal/core/services"
	"artifact-approval-service/internal/metrics"
)

type Handler struct {
	projectSvc  *services.ProjectService
	artifactSvc *services.ArtifactService
	versionSvc  *services.ArtifactVersionService
	approvalSvc *services.ApprovalService
	collector   *metrics.Collector
}

func New(
	projectSvc *services.ProjectService,
	artifactSvc *services.ArtifactService,
	versionSvc *services.ArtifactVersionService,
	approvalSvc *services.ApprovalService,
	collector *metrics.Collector,
) *Handler {
	return &Handler{
		projectSvc:  projectSvc,
		artifactSvc: artifactSvc,
		versionSvc:  versionSvc,
		approvalSvc: approvalSvc,
		collector:   collector,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", h.APIRoot)

	// Projects
	r.POST("/projects", h.CreateProject)
	r.GET("/projects", h.ListProjects)
	r.GET("/projects/:id", h.GetProject)

	// Artifacts
	r.POST("/artifacts", h.CreateArtifact)
	r.GET("/artifacts", h.ListArtifacts)
	r.GET("/artifacts/:id", h.GetArtifact)

	// Artifact versions
	r.POST("/artifact-versions", h.CreateArtifactVersion)
	r.GET("/artifact-versions", h.ListArtifactVersions)
	r.GET("/artifact-versions/:id", h.GetArtifactVersion)

	// Decisions
	r.POST("/artifact-versions/:id/approve", h.ApproveArtifactVersion)
	r.POST("/artifact-versions/:id/reject", h.RejectArtifactVersion)
}

// APIRoot lists the primary endpoints for developer convenience.
func (h *Handler) APIRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"projects":          "/api/projects",
		"artifacts":         "/api/artifacts",
		"artifact_versions": "/api/artifact-versions",
	})
}
