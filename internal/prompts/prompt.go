// Package prompts manages named instruction overrides for the classifier
// and the five category handlers. At most one override per stage is active;
// without one the built-in instructions apply.
package prompts

import "github.com/google/uuid"

// Prompt is a named instruction override for a stage.
type Prompt struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Stage        Stage     `json:"stage"`
	Instructions string    `json:"instructions"`
	Description  *string   `json:"description"`
	Active       bool      `json:"active"`
}

// CreateCommand carries the data needed to create a prompt override.
type CreateCommand struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Stage        Stage   `json:"stage" validate:"required"`
	Instructions string  `json:"instructions" validate:"required"`
	Description  *string `json:"description"`
}

// UpdateCommand replaces the editable fields of a prompt override.
type UpdateCommand struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Stage        Stage   `json:"stage" validate:"required"`
	Instructions string  `json:"instructions" validate:"required"`
	Description  *string `json:"description"`
}
