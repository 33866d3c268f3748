package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotification_CanRetry(t *testing.T) {
	tests := []struct {
		name string
		n    Notification
		want bool
	}{
		{"failed with budget", Notification{Status: StatusFailed, RetryCount: 1, MaxRetries: 3}, true},
		{"retrying with budget", Notification{Status: StatusRetrying, RetryCount: 2, MaxRetries: 3}, true},
		{"failed budget exhausted", Notification{Status: StatusFailed, RetryCount: 3, MaxRetries: 3}, false},
		{"pending", Notification{Status: StatusPending, RetryCount: 0, MaxRetries: 3}, false},
		{"sent", Notification{Status: StatusSent, RetryCount: 1, MaxRetries: 3}, false},
		{"sending", Notification{Status: StatusSending, RetryCount: 0, MaxRetries: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.n.CanRetry())
		})
	}
}

func TestNotification_IsTerminal(t *testing.T) {
	assert.True(t, Notification{Status: StatusSent}.IsTerminal())
	assert.True(t, Notification{Status: StatusFailed, RetryCount: 3, MaxRetries: 3}.IsTerminal())
	assert.False(t, Notification{Status: StatusFailed, RetryCount: 2, MaxRetries: 3}.IsTerminal())
	assert.False(t, Notification{Status: StatusPending}.IsTerminal())
	assert.False(t, Notification{Status: StatusRetrying, RetryCount: 1, MaxRetries: 3}.IsTerminal())
}

func TestNotification_ReadyAt(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	assert.True(t, Notification{}.ReadyAt(now))
	assert.True(t, Notification{ScheduledAt: &past}.ReadyAt(now))
	assert.False(t, Notification{ScheduledAt: &future}.ReadyAt(now))
}

func TestEnums_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.False(t, Status("cancelled").Valid())
	assert.True(t, ChannelEmail.Valid())
	assert.False(t, Channel("telegram").Valid())
	assert.True(t, PriorityHigh.Valid())
	assert.False(t, Priority("urgent").Valid())
}
