// Package sender performs single delivery attempts. It owns the
// sending -> sent/failed part of the status lifecycle; retries are decided
// elsewhere.
package sender

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"notifyr/internal/model"
)

//go:generate mockgen -source=sender.go -destination=../mocks/sender/mock.go -package=mocks

// Transport hands a rendered message to a carrier, e.g. an email provider.
type Transport interface {
	Send(to, subject, htmlBody string) error
}

type notificationRepository interface {
	GetNotificationByID(ctx context.Context, id uuid.UUID) (model.Notification, error)
	MarkSending(ctx context.Context, id uuid.UUID) (bool, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}

type statusCache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
}

// Sender executes one send attempt per call. Every attempt leaves the
// notification persisted as either sent or failed, never stuck in sending.
type Sender struct {
	repo       notificationRepository
	transports map[model.Channel]Transport
	cache      statusCache
	strategy   retry.Strategy
}

// NewSender creates a sender delivering through the given per-channel
// transports. Channels without a transport fail their attempts.
func NewSender(
	repo notificationRepository,
	transports map[model.Channel]Transport,
	cache statusCache,
	strategy retry.Strategy,
) *Sender {
	return &Sender{repo: repo, transports: transports, cache: cache, strategy: strategy}
}

// AttemptSend runs a single delivery attempt for the notification.
// The attempt is skipped when the record is no longer dispatchable, e.g. it
// was resolved by another actor between discovery and execution.
func (s *Sender) AttemptSend(ctx context.Context, id uuid.UUID) {
	n, err := s.repo.GetNotificationByID(ctx, id)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to load notification for sending")
		return
	}

	claimed, err := s.repo.MarkSending(ctx, id)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to claim notification")
		return
	}
	if !claimed {
		zlog.Logger.Debug().Str("id", id.String()).Str("status", string(n.Status)).
			Msg("notification no longer dispatchable, skipping attempt")
		return
	}

	s.cacheStatus(ctx, id, model.StatusSending)

	if err := s.deliver(n); err != nil {
		zlog.Logger.Warn().Err(err).Str("id", id.String()).Str("recipient", n.Recipient).
			Msg("send attempt failed")

		if err := s.repo.MarkFailed(ctx, id, err.Error()); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to mark notification as failed")
			return
		}

		s.cacheStatus(ctx, id, model.StatusFailed)
		return
	}

	if err := s.repo.MarkSent(ctx, id); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to mark notification as sent")
		return
	}

	s.cacheStatus(ctx, id, model.StatusSent)
	zlog.Logger.Info().Str("id", id.String()).Str("recipient", n.Recipient).
		Msg("notification sent")
}

func (s *Sender) deliver(n model.Notification) error {
	transport, ok := s.transports[n.Channel]
	if !ok {
		return fmt.Errorf("no transport configured for channel %q", n.Channel)
	}

	if err := transport.Send(n.Recipient, n.Subject, n.Content); err != nil {
		return fmt.Errorf("transport send: %w", err)
	}

	return nil
}

func (s *Sender) cacheStatus(ctx context.Context, id uuid.UUID, status model.Status) {
	if err := s.cache.SetWithRetry(ctx, s.strategy, id.String(), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
	}
}
