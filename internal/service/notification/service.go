package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"notifyr/internal/model"
	"notifyr/internal/render"
	"notifyr/internal/repository/notification"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

// ErrInvalidRequest marks synchronous validation failures. No notification
// is created when it is returned.
var ErrInvalidRequest = errors.New("invalid request")

// DefaultMaxRetries is the retry budget assigned to new notifications
// unless configured otherwise.
const DefaultMaxRetries = 3

type notificationRepository interface {
	CreateNotification(ctx context.Context, n model.Notification) (uuid.UUID, error)
	GetNotificationByID(ctx context.Context, id uuid.UUID) (model.Notification, error)
	GetStatusByID(ctx context.Context, id uuid.UUID) (model.Status, error)
	ListByStatus(ctx context.Context, status model.Status, limit, offset int) ([]model.Notification, error)
	ListByRecipient(ctx context.Context, recipient string) ([]model.Notification, error)
	RequeueForRetry(ctx context.Context, id uuid.UUID) error
	CountSentToday(ctx context.Context) (int64, error)
	CountFailedToday(ctx context.Context) (int64, error)
	SuccessRateSince(ctx context.Context, since time.Time) (float64, error)
}

type templateRepository interface {
	GetTemplateByID(ctx context.Context, id uuid.UUID) (model.Template, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// CreateInput is a request to deliver one message. Content is either given
// directly or produced from a template plus variables.
type CreateInput struct {
	Recipient   string
	Subject     string
	Content     string
	TemplateID  *uuid.UUID
	Variables   map[string]any
	Channel     model.Channel
	Priority    model.Priority
	ScheduledAt *time.Time
}

// Stats is today's delivery outcome summary.
type Stats struct {
	SentToday   int64   `json:"sent_today"`
	FailedToday int64   `json:"failed_today"`
	SuccessRate float64 `json:"success_rate"`
}

// Service owns the synchronous side of the pipeline: accepting requests,
// resolving templates and answering queries. Background delivery is driven
// by the scheduler.
type Service struct {
	repo       notificationRepository
	templates  templateRepository
	cache      cache
	maxRetries int
}

// NewService creates a notification service. maxRetries <= 0 falls back to
// DefaultMaxRetries.
func NewService(repo notificationRepository, templates templateRepository, c cache, maxRetries int) *Service {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	return &Service{repo: repo, templates: templates, cache: c, maxRetries: maxRetries}
}

// CreateNotification validates the request, renders the template when one
// is referenced and persists a new pending notification.
func (s *Service) CreateNotification(ctx context.Context, strategy retry.Strategy, in CreateInput) (model.Notification, error) {
	if err := s.validate(in); err != nil {
		return model.Notification{}, err
	}

	n := model.Notification{
		Recipient:   in.Recipient,
		Subject:     in.Subject,
		Content:     in.Content,
		Channel:     in.Channel,
		Priority:    in.Priority,
		Status:      model.StatusPending,
		MaxRetries:  s.maxRetries,
		ScheduledAt: in.ScheduledAt,
	}
	if n.Channel == "" {
		n.Channel = model.ChannelEmail
	}
	if n.Priority == "" {
		n.Priority = model.PriorityMedium
	}

	if in.TemplateID != nil {
		t, err := s.templates.GetTemplateByID(ctx, *in.TemplateID)
		if err != nil {
			return model.Notification{}, fmt.Errorf("resolve template: %w", err)
		}

		if !t.Usable() {
			return model.Notification{}, fmt.Errorf("%w: template is not active: %s", ErrInvalidRequest, t.Name)
		}

		n.TemplateID = &t.ID
		n.Subject = render.Render(t.Subject, in.Variables)
		n.Content = render.Render(t.Body, in.Variables)
	}

	id, err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		return model.Notification{}, fmt.Errorf("create notification: %w", err)
	}

	n.ID = id

	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), string(n.Status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
	}

	zlog.Logger.Info().Str("id", id.String()).Str("recipient", n.Recipient).
		Msg("notification created")

	return n, nil
}

// GetNotificationByID returns the full notification snapshot.
func (s *Service) GetNotificationByID(ctx context.Context, id uuid.UUID) (model.Notification, error) {
	n, err := s.repo.GetNotificationByID(ctx, id)
	if err != nil {
		return model.Notification{}, fmt.Errorf("get notification: %w", err)
	}

	return n, nil
}

// GetStatusByID returns the current status, preferring the cache.
func (s *Service) GetStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Status, error) {
	status, err := s.cache.GetWithRetry(ctx, strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status from cache")
	}

	if err != nil {
		fresh, err := s.repo.GetStatusByID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("get notification status: %w", err)
		}

		if err := s.cache.SetWithRetry(ctx, strategy, id.String(), string(fresh)); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
		}

		return fresh, nil
	}

	return model.Status(status), nil
}

// ListByStatus returns one page of notifications in the given status.
// Pages are zero-based.
func (s *Service) ListByStatus(ctx context.Context, status model.Status, page, limit int) ([]model.Notification, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, status)
	}
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 20
	}

	notifications, err := s.repo.ListByStatus(ctx, status, limit, page*limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications by status: %w", err)
	}

	return notifications, nil
}

// ListByRecipient returns all notifications addressed to a recipient.
func (s *Service) ListByRecipient(ctx context.Context, recipient string) ([]model.Notification, error) {
	if strings.TrimSpace(recipient) == "" {
		return nil, fmt.Errorf("%w: recipient is required", ErrInvalidRequest)
	}

	notifications, err := s.repo.ListByRecipient(ctx, recipient)
	if err != nil {
		return nil, fmt.Errorf("list notifications by recipient: %w", err)
	}

	return notifications, nil
}

// RetryNotification handles an operator-requested retry: the notification
// returns to pending with its error cleared and one unit of budget spent.
func (s *Service) RetryNotification(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Notification, error) {
	n, err := s.repo.GetNotificationByID(ctx, id)
	if err != nil {
		return model.Notification{}, fmt.Errorf("get notification: %w", err)
	}

	if n.Status != model.StatusFailed || !n.CanRetry() {
		return model.Notification{}, notification.ErrNotRetryable
	}

	if err := s.repo.RequeueForRetry(ctx, id); err != nil {
		return model.Notification{}, fmt.Errorf("requeue notification: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), string(model.StatusPending)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
	}

	updated, err := s.repo.GetNotificationByID(ctx, id)
	if err != nil {
		return model.Notification{}, fmt.Errorf("get notification: %w", err)
	}

	zlog.Logger.Info().Str("id", id.String()).Int("attempt", updated.RetryCount).
		Msg("notification requeued for retry")

	return updated, nil
}

// GetTodayStats returns today's sent/failed counts and the success rate of
// notifications created today.
func (s *Service) GetTodayStats(ctx context.Context) (Stats, error) {
	sentToday, err := s.repo.CountSentToday(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count sent today: %w", err)
	}

	failedToday, err := s.repo.CountFailedToday(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count failed today: %w", err)
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	rate, err := s.repo.SuccessRateSince(ctx, startOfDay)
	if err != nil {
		return Stats{}, fmt.Errorf("compute success rate: %w", err)
	}

	return Stats{SentToday: sentToday, FailedToday: failedToday, SuccessRate: rate}, nil
}

func (s *Service) validate(in CreateInput) error {
	if strings.TrimSpace(in.Recipient) == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidRequest)
	}

	if in.TemplateID == nil {
		if strings.TrimSpace(in.Content) == "" {
			return fmt.Errorf("%w: either content or template_id must be provided", ErrInvalidRequest)
		}
		if strings.TrimSpace(in.Subject) == "" {
			return fmt.Errorf("%w: subject is required when not using a template", ErrInvalidRequest)
		}
	}

	if in.Channel != "" && !in.Channel.Valid() {
		return fmt.Errorf("%w: unknown channel %q", ErrInvalidRequest, in.Channel)
	}
	if in.Priority != "" && !in.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidRequest, in.Priority)
	}

	if in.ScheduledAt != nil && in.ScheduledAt.Before(time.Now()) {
		return fmt.Errorf("%w: scheduled time cannot be in the past", ErrInvalidRequest)
	}

	return nil
}
