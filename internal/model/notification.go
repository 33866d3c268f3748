package model

import (
	"time"

	"github.com/google/uuid"
)

// Status is the delivery lifecycle state of a notification.
type Status string

const (
	StatusPending  Status = "pending"  // created, waiting to be picked up
	StatusSending  Status = "sending"  // a send attempt is in flight
	StatusSent     Status = "sent"     // delivered, terminal
	StatusFailed   Status = "failed"   // last attempt failed
	StatusRetrying Status = "retrying" // a delayed re-attempt is scheduled
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusSending, StatusSent, StatusFailed, StatusRetrying:
		return true
	}
	return false
}

// Channel is the delivery method for a notification.
// Only email has a real transport; the rest are tagged but inert.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelSlack Channel = "slack"
	ChannelPush  Channel = "push"
)

// Valid reports whether c is a known channel value.
func (c Channel) Valid() bool {
	switch c {
	case ChannelEmail, ChannelSMS, ChannelSlack, ChannelPush:
		return true
	}
	return false
}

// Priority is advisory and does not affect dispatch ordering yet.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority value.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Notification represents a single message to be delivered.
type Notification struct {
	ID           uuid.UUID  `json:"id"`                      // unique identifier, assigned at creation
	Recipient    string     `json:"recipient"`               // destination address, e.g. an email
	Subject      string     `json:"subject"`                 // resolved subject line
	Content      string     `json:"content"`                 // resolved body to send
	TemplateID   *uuid.UUID `json:"template_id,omitempty"`   // template used to render content, if any
	Channel      Channel    `json:"channel"`                 // delivery method
	Priority     Priority   `json:"priority"`                // advisory priority
	Status       Status     `json:"status"`                  // current lifecycle state
	RetryCount   int        `json:"retry_count"`             // attempts consumed so far
	MaxRetries   int        `json:"max_retries"`             // retry budget, fixed at creation
	ErrorMessage string     `json:"error_message,omitempty"` // last failure reason
	ScheduledAt  *time.Time `json:"scheduled_at,omitempty"`  // do not dispatch before this time
	SentAt       *time.Time `json:"sent_at,omitempty"`
	FailedAt     *time.Time `json:"failed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CanRetry reports whether the notification still has retry budget left.
func (n Notification) CanRetry() bool {
	return n.RetryCount < n.MaxRetries &&
		(n.Status == StatusFailed || n.Status == StatusRetrying)
}

// IsTerminal reports whether no further automatic transition will happen.
func (n Notification) IsTerminal() bool {
	if n.Status == StatusSent {
		return true
	}
	return n.Status == StatusFailed && n.RetryCount >= n.MaxRetries
}

// ReadyAt reports whether the notification may be dispatched at the given
// moment, i.e. it is not scheduled for the future.
func (n Notification) ReadyAt(now time.Time) bool {
	return n.ScheduledAt == nil || !n.ScheduledAt.After(now)
}
