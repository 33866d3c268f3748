package template

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"notifyr/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

const nameExistsQuery = `
		SELECT EXISTS (
		    SELECT 1 FROM templates WHERE name = $1 AND id <> $2
		);
    `

func TestCreateTemplate(t *testing.T) {
	repo, mock := setupMockDB(t)

	templateID := uuid.New()
	tmpl := model.Template{
		Name:      "welcome",
		Subject:   "Welcome {{user_name}}!",
		Body:      "<p>Hello {{user_name}}</p>",
		Variables: []string{"user_name"},
		Channel:   model.ChannelEmail,
		IsActive:  true,
	}

	mock.ExpectQuery(regexp.QuoteMeta(nameExistsQuery)).
		WithArgs(tmpl.Name, uuid.Nil).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO templates (
		    name, description, subject, body, variables, channel, is_active, version
		) VALUES ($1, $2, $3, $4, $5, $6, $7, 1)
		RETURNING id;
    `)).
		WithArgs(
			tmpl.Name, tmpl.Description, tmpl.Subject, tmpl.Body,
			`["user_name"]`, tmpl.Channel, tmpl.IsActive,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(templateID))

	id, err := repo.CreateTemplate(context.Background(), tmpl)
	assert.NoError(t, err)
	assert.Equal(t, templateID, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTemplate_DuplicateName(t *testing.T) {
	repo, mock := setupMockDB(t)

	tmpl := model.Template{Name: "welcome", Subject: "s", Body: "b", Channel: model.ChannelEmail}

	mock.ExpectQuery(regexp.QuoteMeta(nameExistsQuery)).
		WithArgs(tmpl.Name, uuid.Nil).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := repo.CreateTemplate(context.Background(), tmpl)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTemplate(t *testing.T) {
	repo, mock := setupMockDB(t)

	tmpl := model.Template{
		ID:       uuid.New(),
		Name:     "welcome",
		Subject:  "s",
		Body:     "b",
		Channel:  model.ChannelEmail,
		IsActive: true,
	}

	query := regexp.QuoteMeta(`
		UPDATE templates
		SET name = $2, description = $3, subject = $4, body = $5, variables = $6,
		    channel = $7, is_active = $8, version = version + 1, updated_at = now()
		WHERE id = $1;
    `)

	mock.ExpectQuery(regexp.QuoteMeta(nameExistsQuery)).
		WithArgs(tmpl.Name, tmpl.ID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectExec(query).
		WithArgs(tmpl.ID, tmpl.Name, tmpl.Description, tmpl.Subject, tmpl.Body, `[]`, tmpl.Channel, tmpl.IsActive).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateTemplate(context.Background(), tmpl)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(nameExistsQuery)).
		WithArgs(tmpl.Name, tmpl.ID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectExec(query).
		WithArgs(tmpl.ID, tmpl.Name, tmpl.Description, tmpl.Subject, tmpl.Body, `[]`, tmpl.Channel, tmpl.IsActive).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateTemplate(context.Background(), tmpl)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTemplateByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	query := regexp.QuoteMeta(`
		SELECT` + templateColumns + `
		FROM templates
		WHERE id = $1;
    `)

	rows := sqlmock.NewRows([]string{
		"id", "name", "description", "subject", "body", "variables",
		"channel", "is_active", "version", "created_at", "updated_at",
	}).AddRow(
		id, "welcome", "greets new users", "Welcome {{user_name}}!",
		"<p>Hello {{user_name}}</p>", `["user_name"]`, "email", true, 2,
		time.Now(), time.Now(),
	)

	mock.ExpectQuery(query).
		WithArgs(id).
		WillReturnRows(rows)

	tmpl, err := repo.GetTemplateByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, "welcome", tmpl.Name)
	assert.Equal(t, []string{"user_name"}, tmpl.Variables)
	assert.Equal(t, 2, tmpl.Version)
	assert.True(t, tmpl.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(query).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetTemplateByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTemplates(t *testing.T) {
	repo, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{
		"id", "name", "description", "subject", "body", "variables",
		"channel", "is_active", "version", "created_at", "updated_at",
	}).
		AddRow(uuid.New(), "alert", nil, "s1", "b1", `[]`, "email", true, 1, time.Now(), time.Now()).
		AddRow(uuid.New(), "welcome", nil, "s2", "b2", `[]`, "email", true, 1, time.Now(), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT` + templateColumns + `
		FROM templates
		WHERE ($1 = false OR is_active = true)
		ORDER BY name;
    `)).
		WithArgs(true).
		WillReturnRows(rows)

	templates, err := repo.ListTemplates(context.Background(), true)
	assert.NoError(t, err)
	assert.Len(t, templates, 2)
	assert.Equal(t, "alert", templates[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateTemplate(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	query := regexp.QuoteMeta(`
		UPDATE templates
		SET is_active = false, updated_at = now()
		WHERE id = $1;
    `)

	mock.ExpectExec(query).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeactivateTemplate(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(query).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.DeactivateTemplate(context.Background(), id)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
