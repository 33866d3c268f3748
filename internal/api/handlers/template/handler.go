package template

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"notifyr/internal/api/dto"
	"notifyr/internal/api/respond"
	"notifyr/internal/model"
	tmplrepo "notifyr/internal/repository/template"
	tmplsvc "notifyr/internal/service/template"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/template/mock.go -package=mocks

type templateService interface {
	CreateTemplate(ctx context.Context, t model.Template) (model.Template, error)
	UpdateTemplate(ctx context.Context, t model.Template) (model.Template, error)
	GetTemplateByID(ctx context.Context, id uuid.UUID) (model.Template, error)
	GetTemplateByName(ctx context.Context, name string) (model.Template, error)
	ListTemplates(ctx context.Context, activeOnly bool) ([]model.Template, error)
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
}

// Handler serves the template endpoints.
type Handler struct {
	service   templateService
	validator *validator.Validate
}

// NewHandler creates a template handler.
func NewHandler(s templateService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Create handles POST /api/templates.
func (h *Handler) Create(c *ginext.Context) {
	t, ok := h.decodeTemplate(c)
	if !ok {
		return
	}

	created, err := h.service.CreateTemplate(c.Request.Context(), t)
	if err != nil {
		h.failMutation(c, err, "failed to create template")
		return
	}

	respond.Created(c.Writer, created)
}

// Update handles PUT /api/templates/:id.
func (h *Handler) Update(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	t, ok := h.decodeTemplate(c)
	if !ok {
		return
	}
	t.ID = id

	updated, err := h.service.UpdateTemplate(c.Request.Context(), t)
	if err != nil {
		h.failMutation(c, err, "failed to update template")
		return
	}

	respond.OK(c.Writer, updated)
}

// Get handles GET /api/templates/:id.
func (h *Handler) Get(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	t, err := h.service.GetTemplateByID(c.Request.Context(), id)
	if err != nil {
		h.failLookup(c, err, id.String())
		return
	}

	respond.OK(c.Writer, t)
}

// GetByName handles GET /api/templates/name/:name.
func (h *Handler) GetByName(c *ginext.Context) {
	name := c.Param("name")

	t, err := h.service.GetTemplateByName(c.Request.Context(), name)
	if err != nil {
		h.failLookup(c, err, name)
		return
	}

	respond.OK(c.Writer, t)
}

// List handles GET /api/templates?active=true.
func (h *Handler) List(c *ginext.Context) {
	activeOnly := c.Query("active") == "true"

	templates, err := h.service.ListTemplates(c.Request.Context(), activeOnly)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list templates")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, templates)
}

// Delete handles DELETE /api/templates/:id (soft delete).
func (h *Handler) Delete(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTemplate(c.Request.Context(), id); err != nil {
		h.failLookup(c, err, id.String())
		return
	}

	respond.OK(c.Writer, "template deactivated")
}

func (h *Handler) decodeTemplate(c *ginext.Context) (model.Template, bool) {
	var req dto.TemplateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return model.Template{}, false
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return model.Template{}, false
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	channel := model.ChannelEmail
	if req.Channel != "" {
		channel = model.Channel(req.Channel)
	}

	return model.Template{
		Name:        req.Name,
		Description: req.Description,
		Subject:     req.Subject,
		Body:        req.Body,
		Variables:   req.Variables,
		Channel:     channel,
		IsActive:    isActive,
	}, true
}

func (h *Handler) failMutation(c *ginext.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, tmplsvc.ErrInvalidTemplate), errors.Is(err, tmplrepo.ErrBadVariables):
		respond.Fail(c.Writer, http.StatusBadRequest, err)
	case errors.Is(err, tmplrepo.ErrDuplicateName):
		respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("template name already exists"))
	case errors.Is(err, tmplrepo.ErrTemplateNotFound):
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("template not found"))
	default:
		zlog.Logger.Error().Err(err).Msg(logMsg)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}

func (h *Handler) failLookup(c *ginext.Context, err error, key string) {
	if errors.Is(err, tmplrepo.ErrTemplateNotFound) {
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("template not found"))
		return
	}

	zlog.Logger.Error().Err(err).Str("template", key).Msg("failed to access template")
	respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
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
