package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"artifact-approval-service/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrArtifactNotFound),
		errors.Is(err, domain.ErrVersionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrDecisionExists),
		errors.Is(err, domain.ErrVersionNumberConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidProjectName),
		errors.Is(err, domain.ErrInvalidArtifactName),
		errors.Is(err, domain.ErrInvalidArtifactID),
		errors.Is(err, domain.ErrInvalidURL),
		errors.Is(err, domain.ErrDeciderRequired),
		errors.Is(err, domain.ErrInvalidDecisionKind):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Storage failures never leak to the caller.
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
