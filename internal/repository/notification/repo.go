package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"notifyr/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrStatusConflict is returned when a guarded transition matched no
	// row: the notification is missing or no longer in an eligible status.
	ErrStatusConflict = errors.New("notification is not in an eligible status")
	// ErrNotRetryable is returned when a retry is requested for a
	// notification whose retry budget is exhausted or that is not failed.
	ErrNotRetryable = errors.New("notification cannot be retried")
)

const notificationColumns = `
		id, recipient, subject, content, template_id, channel, priority, status,
		retry_count, max_retries, error_message, scheduled_at, sent_at, failed_at,
		created_at, updated_at`

// Repository provides access to the notifications table. All status
// transitions are guarded UPDATEs, so concurrent writers cannot produce
// lost updates or illegal state changes.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateNotification inserts a new notification and returns its ID.
func (r *Repository) CreateNotification(ctx context.Context, n model.Notification) (uuid.UUID, error) {
	query := `
		INSERT INTO notifications (
		    recipient, subject, content, template_id, channel, priority, status,
		    retry_count, max_retries, scheduled_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query,
		n.Recipient, n.Subject, n.Content, n.TemplateID, n.Channel, n.Priority,
		n.Status, n.RetryCount, n.MaxRetries, n.ScheduledAt,
	).Scan(&n.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return n.ID, nil
}

// GetNotificationByID retrieves a single notification by its ID.
func (r *Repository) GetNotificationByID(ctx context.Context, id uuid.UUID) (model.Notification, error) {
	query := `
		SELECT` + notificationColumns + `
		FROM notifications
		WHERE id = $1;
    `

	n, err := scanNotification(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, ErrNotificationNotFound
		}

		return model.Notification{}, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// GetStatusByID retrieves only the status of a notification.
func (r *Repository) GetStatusByID(ctx context.Context, id uuid.UUID) (model.Status, error) {
	query := `
		SELECT status
		FROM notifications
		WHERE id = $1;
    `

	var status model.Status
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotificationNotFound
		}

		return "", fmt.Errorf("failed to get notification status: %w", err)
	}

	return status, nil
}

// ListByStatus retrieves a page of notifications in the given status,
// oldest first, so the pending sweep processes records in creation order.
func (r *Repository) ListByStatus(ctx context.Context, status model.Status, limit, offset int) ([]model.Notification, error) {
	query := `
		SELECT` + notificationColumns + `
		FROM notifications
		WHERE status = $1
		ORDER BY created_at
		LIMIT $2 OFFSET $3;
    `

	rows, err := r.db.QueryContext(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications by status: %w", err)
	}
	defer rows.Close()

	return collectNotifications(rows)
}

// ListByRecipient retrieves all notifications addressed to a recipient,
// newest first.
func (r *Repository) ListByRecipient(ctx context.Context, recipient string) ([]model.Notification, error) {
	query := `
		SELECT` + notificationColumns + `
		FROM notifications
		WHERE recipient = $1
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, recipient)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications by recipient: %w", err)
	}
	defer rows.Close()

	return collectNotifications(rows)
}

// ListRetryable retrieves failed notifications that still have retry
// budget left.
func (r *Repository) ListRetryable(ctx context.Context) ([]model.Notification, error) {
	query := `
		SELECT` + notificationColumns + `
		FROM notifications
		WHERE status = 'failed' AND retry_count < max_retries
		ORDER BY created_at;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list retryable notifications: %w", err)
	}
	defer rows.Close()

	return collectNotifications(rows)
}

// MarkSending claims a notification for a send attempt. It reports false
// when the notification was not in a dispatchable status, which means
// another actor already resolved it and the attempt must be skipped.
func (r *Repository) MarkSending(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE notifications
		SET status = 'sending', updated_at = now()
		WHERE id = $1 AND status IN ('pending', 'retrying');
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark notification as sending: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows > 0, nil
}

// MarkSent finishes a successful send attempt. Only a notification in
// 'sending' can become 'sent'.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE notifications
		SET status = 'sent', sent_at = now(), updated_at = now()
		WHERE id = $1 AND status = 'sending';
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification as sent: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrStatusConflict
	}

	return nil
}

// MarkFailed finishes a failed send attempt, recording the reason.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	query := `
		UPDATE notifications
		SET status = 'failed', error_message = $2, failed_at = now(), updated_at = now()
		WHERE id = $1 AND status = 'sending';
    `

	res, err := r.db.ExecContext(ctx, query, id, reason)
	if err != nil {
		return fmt.Errorf("failed to mark notification as failed: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrStatusConflict
	}

	return nil
}

// MarkRetrying consumes one unit of retry budget and moves the
// notification to 'retrying'. It returns the new retry count, which is the
// attempt number used for backoff.
func (r *Repository) MarkRetrying(ctx context.Context, id uuid.UUID) (int, error) {
	query := `
		UPDATE notifications
		SET status = 'retrying', retry_count = retry_count + 1, updated_at = now()
		WHERE id = $1 AND status = 'failed' AND retry_count < max_retries
		RETURNING retry_count;
    `

	var retryCount int
	err := r.db.QueryRowContext(ctx, query, id).Scan(&retryCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotRetryable
		}

		return 0, fmt.Errorf("failed to mark notification as retrying: %w", err)
	}

	return retryCount, nil
}

// RequeueForRetry handles an operator-requested retry: the notification
// goes back to 'pending', its error message is cleared and one unit of
// retry budget is consumed.
func (r *Repository) RequeueForRetry(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE notifications
		SET status = 'pending', retry_count = retry_count + 1, error_message = '', updated_at = now()
		WHERE id = $1 AND status = 'failed' AND retry_count < max_retries;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to requeue notification: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotRetryable
	}

	return nil
}

// CountByStatus counts notifications currently in the given status.
func (r *Repository) CountByStatus(ctx context.Context, status model.Status) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE status = $1;
    `

	var count int64
	if err := r.db.QueryRowContext(ctx, query, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count notifications by status: %w", err)
	}

	return count, nil
}

// CountSentToday counts notifications sent since the start of the current day.
func (r *Repository) CountSentToday(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE status = 'sent' AND sent_at::date = CURRENT_DATE;
    `

	var count int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count notifications sent today: %w", err)
	}

	return count, nil
}

// CountFailedToday counts notifications that failed since the start of the
// current day.
func (r *Repository) CountFailedToday(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE status = 'failed' AND failed_at::date = CURRENT_DATE;
    `

	var count int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count notifications failed today: %w", err)
	}

	return count, nil
}

// SuccessRateSince computes the percentage of notifications created since
// the given time that ended up sent.
func (r *Repository) SuccessRateSince(ctx context.Context, since time.Time) (float64, error) {
	query := `
		SELECT COALESCE(COUNT(*) FILTER (WHERE status = 'sent') * 100.0 / NULLIF(COUNT(*), 0), 0)
		FROM notifications
		WHERE created_at >= $1;
    `

	var rate float64
	if err := r.db.QueryRowContext(ctx, query, since).Scan(&rate); err != nil {
		return 0, fmt.Errorf("failed to compute success rate: %w", err)
	}

	return rate, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNotification(row rowScanner) (model.Notification, error) {
	var (
		n            model.Notification
		templateID   uuid.NullUUID
		errorMessage sql.NullString
		scheduledAt  sql.NullTime
		sentAt       sql.NullTime
		failedAt     sql.NullTime
	)

	err := row.Scan(
		&n.ID, &n.Recipient, &n.Subject, &n.Content, &templateID, &n.Channel,
		&n.Priority, &n.Status, &n.RetryCount, &n.MaxRetries, &errorMessage,
		&scheduledAt, &sentAt, &failedAt, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return model.Notification{}, err
	}

	if templateID.Valid {
		n.TemplateID = &templateID.UUID
	}
	n.ErrorMessage = errorMessage.String
	if scheduledAt.Valid {
		n.ScheduledAt = &scheduledAt.Time
	}
	if sentAt.Valid {
		n.SentAt = &sentAt.Time
	}
	if failedAt.Valid {
		n.FailedAt = &failedAt.Time
	}

	return n, nil
}

func collectNotifications(rows *sql.Rows) ([]model.Notification, error) {
	var notifications []model.Notification

	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
