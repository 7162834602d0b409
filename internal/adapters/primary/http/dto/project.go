package dto

import (
	"github.com/google/uuid"

	"artifact-approval-service/internal/core/domain"
)

type CreateProjectRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type ProjectResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
	Name      string    `json:"name"`
}

type ListProjectsResponse struct {
	Items      []ProjectResponse `json:"items"`
	Total      int               `json:"total"`
	PageSize   int               `json:"page_size"`
	NextOffset int               `json:"next_offset"`
}

func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:        p.ID,
		CreatedAt: p.CreatedAt.Format(timeFormat),
		UpdatedAt: p.UpdatedAt.Format(timeFormat),
		Name:      p.Name,
	}
}
