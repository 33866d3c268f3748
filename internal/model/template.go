package model

import (
	"time"

	"github.com/google/uuid"
)

// Template is a reusable subject/body pair with {{variable}} placeholders.
// Templates are read-only from the delivery pipeline's point of view.
type Template struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"` // unique
	Description string    `json:"description,omitempty"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	Variables   []string  `json:"variables,omitempty"` // declared placeholder names, informational
	Channel     Channel   `json:"channel"`
	IsActive    bool      `json:"is_active"`
	Version     int       `json:"version"` // incremented on every update
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Usable reports whether the template may be used to create notifications.
func (t Template) Usable() bool {
	return t.IsActive
}
