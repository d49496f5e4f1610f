package repository

import (
	"context"
	"time"

	"campsite-booking/internal/infra"
	"campsite-booking/internal/infra/db"
)

// NotificationRepository enqueues outbound message jobs (SMS and the like)
// in the same transaction as the booking change. Delivery is a separate
// concern and happens elsewhere.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notification_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
