package sender

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "notifyr/internal/mocks/sender"
	"notifyr/internal/model"
)

func setupSender(t *testing.T) (*Sender, *mocks.MocknotificationRepository, *mocks.MockTransport, *mocks.MockstatusCache) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMocknotificationRepository(ctrl)
	transport := mocks.NewMockTransport(ctrl)
	cache := mocks.NewMockstatusCache(ctrl)

	s := NewSender(
		repo,
		map[model.Channel]Transport{model.ChannelEmail: transport},
		cache,
		retry.Strategy{},
	)

	return s, repo, transport, cache
}

func TestAttemptSend_Success(t *testing.T) {
	s, repo, transport, cache := setupSender(t)

	n := model.Notification{
		ID:        uuid.New(),
		Recipient: "user@example.com",
		Subject:   "Hello",
		Content:   "<p>Hi</p>",
		Channel:   model.ChannelEmail,
		Status:    model.StatusPending,
	}

	repo.EXPECT().GetNotificationByID(gomock.Any(), n.ID).Return(n, nil)
	repo.EXPECT().MarkSending(gomock.Any(), n.ID).Return(true, nil)
	cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), n.ID.String(), string(model.StatusSending)).Return(nil)
	transport.EXPECT().Send(n.Recipient, n.Subject, n.Content).Return(nil)
	repo.EXPECT().MarkSent(gomock.Any(), n.ID).Return(nil)
	cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), n.ID.String(), string(model.StatusSent)).Return(nil)

	s.AttemptSend(context.Background(), n.ID)
}

func TestAttemptSend_TransportFailure(t *testing.T) {
	s, repo, transport, cache := setupSender(t)

	n := model.Notification{
		ID:        uuid.New(),
		Recipient: "user@example.com",
		Subject:   "Hello",
		Content:   "body",
		Channel:   model.ChannelEmail,
		Status:    model.StatusPending,
	}

	sendErr := errors.New("connection refused")

	repo.EXPECT().GetNotificationByID(gomock.Any(), n.ID).Return(n, nil)
	repo.EXPECT().MarkSending(gomock.Any(), n.ID).Return(true, nil)
	cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), n.ID.String(), string(model.StatusSending)).Return(nil)
	transport.EXPECT().Send(n.Recipient, n.Subject, n.Content).Return(sendErr)
	repo.EXPECT().MarkFailed(gomock.Any(), n.ID, "transport send: connection refused").Return(nil)
	cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), n.ID.String(), string(model.StatusFailed)).Return(nil)

	s.AttemptSend(context.Background(), n.ID)
}

func TestAttemptSend_NotClaimed(t *testing.T) {
	s, repo, _, _ := setupSender(t)

	n := model.Notification{
		ID:      uuid.New(),
		Channel: model.ChannelEmail,
		Status:  model.StatusSent,
	}

	// Another actor resolved the notification between discovery and
	// execution; the attempt is skipped without touching the transport.
	repo.EXPECT().GetNotificationByID(gomock.Any(), n.ID).Return(n, nil)
	repo.EXPECT().MarkSending(gomock.Any(), n.ID).Return(false, nil)

	s.AttemptSend(context.Background(), n.ID)
}

func TestAttemptSend_NoTransportForChannel(t *testing.T) {
	s, repo, _, cache := setupSender(t)

	n := model.Notification{
		ID:        uuid.New(),
		Recipient: "+15551234567",
		Channel:   model.ChannelSMS,
		Status:    model.StatusPending,
	}

	repo.EXPECT().GetNotificationByID(gomock.Any(), n.ID).Return(n, nil)
	repo.EXPECT().MarkSending(gomock.Any(), n.ID).Return(true, nil)
	cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), n.ID.String(), string(model.StatusSending)).Return(nil)
	repo.EXPECT().MarkFailed(gomock.Any(), n.ID, `no transport configured for channel "sms"`).Return(nil)
	cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), n.ID.String(), string(model.StatusFailed)).Return(nil)

	s.AttemptSend(context.Background(), n.ID)
}

func TestAttemptSend_LoadFails(t *testing.T) {
	s, repo, _, _ := setupSender(t)

	id := uuid.New()

	repo.EXPECT().GetNotificationByID(gomock.Any(), id).
		Return(model.Notification{}, errors.New("db down"))

	s.AttemptSend(context.Background(), id)
}
