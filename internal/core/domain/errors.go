package domain

import "errors"

// Not found errors
var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrArtifactNotFound = errors.New("artifact not found")
	ErrVersionNotFound  = errors.New("artifact version not found")
)

// Conflict errors
var (
	ErrDecisionExists        = errors.New("a decision already exists for this version")
	ErrVersionNumberConflict = errors.New("version number already assigned for this artifact")
)

// Validation errors
var (
	ErrInvalidProjectName  = errors.New("project name is required")
	ErrInvalidArtifactName = errors.New("artifact name is required")
	ErrInvalidArtifactID   = errors.New("artifact ID is required")
	ErrInvalidURL          = errors.New("a valid url is required")
	ErrDeciderRequired     = errors.New("decided_by is required")
	ErrInvalidDecisionKind = errors.New("decision must be APPROVE or REJECT")
)
