package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is the organizational grouping that owns artifacts.
type Project struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
}
