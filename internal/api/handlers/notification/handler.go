package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"notifyr/internal/api/dto"
	"notifyr/internal/api/respond"
	"notifyr/internal/config"
	"notifyr/internal/model"
	notifrepo "notifyr/internal/repository/notification"
	tmplrepo "notifyr/internal/repository/template"
	notifsvc "notifyr/internal/service/notification"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks

type notificationService interface {
	CreateNotification(ctx context.Context, strategy retry.Strategy, in notifsvc.CreateInput) (model.Notification, error)
	GetNotificationByID(ctx context.Context, id uuid.UUID) (model.Notification, error)
	GetStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Status, error)
	ListByStatus(ctx context.Context, status model.Status, page, limit int) ([]model.Notification, error)
	ListByRecipient(ctx context.Context, recipient string) ([]model.Notification, error)
	RetryNotification(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Notification, error)
	GetTodayStats(ctx context.Context) (notifsvc.Stats, error)
}

// Handler serves the notification endpoints.
type Handler struct {
	service   notificationService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a notification handler.
func NewHandler(s notificationService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Create handles POST /api/notifications.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateNotificationRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	in := notifsvc.CreateInput{
		Recipient: req.Recipient,
		Subject:   req.Subject,
		Content:   req.Content,
		Variables: req.Variables,
		Channel:   model.Channel(req.Channel),
		Priority:  model.Priority(req.Priority),
	}

	if req.TemplateID != "" {
		templateID, err := uuid.Parse(req.TemplateID)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid template_id"))
			return
		}
		in.TemplateID = &templateID
	}

	if req.ScheduledAt != "" {
		scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid scheduled_at, expected RFC 3339"))
			return
		}
		in.ScheduledAt = &scheduledAt
	}

	n, err := h.service.CreateNotification(c.Request.Context(), h.cfg.Retry, in)
	if err != nil {
		switch {
		case errors.Is(err, notifsvc.ErrInvalidRequest):
			respond.Fail(c.Writer, http.StatusBadRequest, err)
		case errors.Is(err, tmplrepo.ErrTemplateNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("template not found"))
		default:
			zlog.Logger.Error().Err(err).Str("recipient", req.Recipient).Msg("failed to create notification")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.Created(c.Writer, n)
}

// Get handles GET /api/notifications/:id.
func (h *Handler) Get(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	n, err := h.service.GetNotificationByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, notifrepo.ErrNotificationNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, n)
}

// GetStatus handles GET /api/notifications/:id/status.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	status, err := h.service.GetStatusByID(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, notifrepo.ErrNotificationNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, status)
}

// List handles GET /api/notifications?status=&page=&limit=.
func (h *Handler) List(c *ginext.Context) {
	status := model.Status(c.Query("status"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	notifications, err := h.service.ListByStatus(c.Request.Context(), status, page, limit)
	if err != nil {
		if errors.Is(err, notifsvc.ErrInvalidRequest) {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to list notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}

// ListByRecipient handles GET /api/notifications/recipient/:recipient.
func (h *Handler) ListByRecipient(c *ginext.Context) {
	recipient := c.Param("recipient")

	notifications, err := h.service.ListByRecipient(c.Request.Context(), recipient)
	if err != nil {
		if errors.Is(err, notifsvc.ErrInvalidRequest) {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("recipient", recipient).Msg("failed to list notifications by recipient")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}

// Retry handles POST /api/notifications/:id/retry.
func (h *Handler) Retry(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	n, err := h.service.RetryNotification(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		switch {
		case errors.Is(err, notifrepo.ErrNotificationNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
		case errors.Is(err, notifrepo.ErrNotRetryable):
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("notification cannot be retried: max retries reached or status not failed"))
		default:
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to retry notification")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, n)
}

// Stats handles GET /api/notifications/stats/today.
func (h *Handler) Stats(c *ginext.Context) {
	stats, err := h.service.GetTodayStats(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get today stats")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, stats)
}

func (h *Handler) parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}
