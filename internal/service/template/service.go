package template

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"notifyr/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/template/mock.go -package=mocks

// ErrInvalidTemplate marks validation failures on template create/update.
var ErrInvalidTemplate = errors.New("invalid template")

type templateRepository interface {
	CreateTemplate(ctx context.Context, t model.Template) (uuid.UUID, error)
	UpdateTemplate(ctx context.Context, t model.Template) error
	GetTemplateByID(ctx context.Context, id uuid.UUID) (model.Template, error)
	GetTemplateByName(ctx context.Context, name string) (model.Template, error)
	ListTemplates(ctx context.Context, activeOnly bool) ([]model.Template, error)
	DeactivateTemplate(ctx context.Context, id uuid.UUID) error
}

// Service manages template definitions. The delivery pipeline only ever
// reads templates; all mutation goes through here.
type Service struct {
	repo templateRepository
}

// NewService creates a template service.
func NewService(repo templateRepository) *Service {
	return &Service{repo: repo}
}

// CreateTemplate persists a new template at version 1.
func (s *Service) CreateTemplate(ctx context.Context, t model.Template) (model.Template, error) {
	if err := validate(t); err != nil {
		return model.Template{}, err
	}

	id, err := s.repo.CreateTemplate(ctx, t)
	if err != nil {
		return model.Template{}, fmt.Errorf("create template: %w", err)
	}

	t.ID = id
	t.Version = 1

	zlog.Logger.Info().Str("id", id.String()).Str("name", t.Name).Msg("template created")

	return t, nil
}

// UpdateTemplate overwrites an existing template and bumps its version.
func (s *Service) UpdateTemplate(ctx context.Context, t model.Template) (model.Template, error) {
	if err := validate(t); err != nil {
		return model.Template{}, err
	}

	if err := s.repo.UpdateTemplate(ctx, t); err != nil {
		return model.Template{}, fmt.Errorf("update template: %w", err)
	}

	updated, err := s.repo.GetTemplateByID(ctx, t.ID)
	if err != nil {
		return model.Template{}, fmt.Errorf("get template: %w", err)
	}

	zlog.Logger.Info().Str("id", t.ID.String()).Str("name", updated.Name).
		Int("version", updated.Version).Msg("template updated")

	return updated, nil
}

// GetTemplateByID returns a template by its ID.
func (s *Service) GetTemplateByID(ctx context.Context, id uuid.UUID) (model.Template, error) {
	t, err := s.repo.GetTemplateByID(ctx, id)
	if err != nil {
		return model.Template{}, fmt.Errorf("get template: %w", err)
	}

	return t, nil
}

// GetTemplateByName returns a template by its unique name.
func (s *Service) GetTemplateByName(ctx context.Context, name string) (model.Template, error) {
	t, err := s.repo.GetTemplateByName(ctx, name)
	if err != nil {
		return model.Template{}, fmt.Errorf("get template: %w", err)
	}

	return t, nil
}

// ListTemplates returns all templates, or only active ones.
func (s *Service) ListTemplates(ctx context.Context, activeOnly bool) ([]model.Template, error) {
	templates, err := s.repo.ListTemplates(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	return templates, nil
}

// DeleteTemplate soft-deletes a template by deactivating it, so existing
// notifications keep a valid reference.
func (s *Service) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeactivateTemplate(ctx, id); err != nil {
		return fmt.Errorf("deactivate template: %w", err)
	}

	zlog.Logger.Info().Str("id", id.String()).Msg("template deactivated")

	return nil
}

func validate(t model.Template) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTemplate)
	}
	if strings.TrimSpace(t.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidTemplate)
	}
	if strings.TrimSpace(t.Body) == "" {
		return fmt.Errorf("%w: body is required", ErrInvalidTemplate)
	}
	if t.Channel != "" && !t.Channel.Valid() {
		return fmt.Errorf("%w: unknown channel %q", ErrInvalidTemplate, t.Channel)
	}

	return nil
}
