package dto

// CreateNotificationRequest is the payload for submitting a notification.
// Content is either provided directly (with a subject) or produced from a
// template referenced by template_id plus variables.
type CreateNotificationRequest struct {
	Recipient   string         `json:"recipient" validate:"required,email"`
	Subject     string         `json:"subject" validate:"max=500"`
	Content     string         `json:"content" validate:"max=5000"`
	TemplateID  string         `json:"template_id,omitempty" validate:"omitempty,uuid"`
	Variables   map[string]any `json:"variables,omitempty"`
	Channel     string         `json:"channel,omitempty"`
	Priority    string         `json:"priority,omitempty"`
	ScheduledAt string         `json:"scheduled_at,omitempty"` // RFC 3339
}

// TemplateRequest is the payload for creating or updating a template.
type TemplateRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description string   `json:"description,omitempty"`
	Subject     string   `json:"subject" validate:"required,max=500"`
	Body        string   `json:"body" validate:"required"`
	Variables   []string `json:"variables,omitempty"`
	Channel     string   `json:"channel,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"` // defaults to true
}
