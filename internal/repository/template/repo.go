package template

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"notifyr/internal/model"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrDuplicateName    = errors.New("template name already exists")
	// ErrBadVariables is returned when the declared variable list cannot
	// be encoded or decoded. This surfaces at create/update time only.
	ErrBadVariables = errors.New("failed to process template variables")
)

const templateColumns = `
		id, name, description, subject, body, variables, channel, is_active,
		version, created_at, updated_at`

// Repository provides access to the templates table. Declared variable
// names are stored as a JSON-encoded list, opaque to the delivery pipeline.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new template repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateTemplate inserts a new template at version 1 and returns its ID.
func (r *Repository) CreateTemplate(ctx context.Context, t model.Template) (uuid.UUID, error) {
	variables, err := encodeVariables(t.Variables)
	if err != nil {
		return uuid.Nil, err
	}

	exists, err := r.nameExists(ctx, t.Name, uuid.Nil)
	if err != nil {
		return uuid.Nil, err
	}
	if exists {
		return uuid.Nil, ErrDuplicateName
	}

	query := `
		INSERT INTO templates (
		    name, description, subject, body, variables, channel, is_active, version
		) VALUES ($1, $2, $3, $4, $5, $6, $7, 1)
		RETURNING id;
    `

	err = r.db.QueryRowContext(
		ctx, query,
		t.Name, t.Description, t.Subject, t.Body, variables, t.Channel, t.IsActive,
	).Scan(&t.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create template: %w", err)
	}

	return t.ID, nil
}

// UpdateTemplate overwrites a template's fields and bumps its version.
func (r *Repository) UpdateTemplate(ctx context.Context, t model.Template) error {
	variables, err := encodeVariables(t.Variables)
	if err != nil {
		return err
	}

	exists, err := r.nameExists(ctx, t.Name, t.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateName
	}

	query := `
		UPDATE templates
		SET name = $2, description = $3, subject = $4, body = $5, variables = $6,
		    channel = $7, is_active = $8, version = version + 1, updated_at = now()
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(
		ctx, query,
		t.ID, t.Name, t.Description, t.Subject, t.Body, variables, t.Channel, t.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

// GetTemplateByID retrieves a template by its ID.
func (r *Repository) GetTemplateByID(ctx context.Context, id uuid.UUID) (model.Template, error) {
	query := `
		SELECT` + templateColumns + `
		FROM templates
		WHERE id = $1;
    `

	return r.getOne(ctx, query, id)
}

// GetTemplateByName retrieves a template by its unique name.
func (r *Repository) GetTemplateByName(ctx context.Context, name string) (model.Template, error) {
	query := `
		SELECT` + templateColumns + `
		FROM templates
		WHERE name = $1;
    `

	return r.getOne(ctx, query, name)
}

// ListTemplates retrieves all templates, optionally only active ones.
func (r *Repository) ListTemplates(ctx context.Context, activeOnly bool) ([]model.Template, error) {
	query := `
		SELECT` + templateColumns + `
		FROM templates
		WHERE ($1 = false OR is_active = true)
		ORDER BY name;
    `

	rows, err := r.db.QueryContext(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []model.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}

		templates = append(templates, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

// DeactivateTemplate soft-deletes a template so it can no longer be used
// to create notifications. Existing notifications keep their reference.
func (r *Repository) DeactivateTemplate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE templates
		SET is_active = false, updated_at = now()
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate template: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, query string, arg any) (model.Template, error) {
	t, err := scanTemplate(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Template{}, ErrTemplateNotFound
		}

		return model.Template{}, fmt.Errorf("failed to get template: %w", err)
	}

	return t, nil
}

func (r *Repository) nameExists(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
		    SELECT 1 FROM templates WHERE name = $1 AND id <> $2
		);
    `

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check template name: %w", err)
	}

	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (model.Template, error) {
	var (
		t           model.Template
		description sql.NullString
		variables   sql.NullString
	)

	err := row.Scan(
		&t.ID, &t.Name, &description, &t.Subject, &t.Body, &variables,
		&t.Channel, &t.IsActive, &t.Version, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return model.Template{}, err
	}

	t.Description = description.String

	if variables.Valid && variables.String != "" {
		if err := json.Unmarshal([]byte(variables.String), &t.Variables); err != nil {
			return model.Template{}, fmt.Errorf("%w: %v", ErrBadVariables, err)
		}
	}

	return t, nil
}

func encodeVariables(variables []string) (string, error) {
	if variables == nil {
		variables = []string{}
	}

	encoded, err := json.Marshal(variables)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadVariables, err)
	}

	return string(encoded), nil
}
