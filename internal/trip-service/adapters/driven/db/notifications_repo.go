package db

import (
	"context"

	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/domain/model"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/ports"
)

type NotificationsRepo struct {
	db *DB
}

func NewNotificationsRepo(db *DB) ports.INotificationsRepo {
	return &NotificationsRepo{
		db: db,
	}
}

func (nr *NotificationsRepo) ListFor(ctx context.Context, userID string) ([]model.Notification, error) {
	q := `
	SELECT
		notification_id,
		recipient_user_id,
		request_id,
		type,
		title,
		message,
		created_at,
		read
	FROM
		notifications
	WHERE
		recipient_user_id = $1
	ORDER BY created_at
	`

	rows, err := nr.db.conn.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []model.Notification{}
	for rows.Next() {
		var m model.Notification
		if err := rows.Scan(
			&m.ID,
			&m.RecipientUserId,
			&m.RequestId,
			&m.Type,
			&m.Title,
			&m.Message,
			&m.CreatedAt,
			&m.Read,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, m)
	}
	return notifications, rows.Err()
}

// MarkRead matches on both id and owner so a foreign or unknown id simply
// updates zero rows.
func (nr *NotificationsRepo) MarkRead(ctx context.Context, userID, notificationID string) error {
	q := `UPDATE notifications SET read = true WHERE notification_id = $1 AND recipient_user_id = $2`
	_, err := nr.db.conn.Exec(ctx, q, notificationID, userID)
	return err
}

func (nr *NotificationsRepo) ClearAll(ctx context.Context, userID string) error {
	q := `DELETE FROM notifications WHERE recipient_user_id = $1`
	_, err := nr.db.conn.Exec(ctx, q, userID)
	return err
}
