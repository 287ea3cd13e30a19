package repository

import (
	"context"
	"time"

	"happy-hotel/internal/infra"
	"happy-hotel/internal/infra/db"
	"happy-hotel/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	JobStatusQueued = "queued"

	createNotificationJobSQL = `
INSERT INTO notification_jobs (id, kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5, $6)`
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(db db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) (uuid.UUID, error) {
	jobID := uuid.New()

	_, err := r.db.Exec(ctx, createNotificationJobSQL,
		pgconv.UUIDToPgtype(jobID), kind, topic, payload, pgconv.TimeToPgtype(runAt), JobStatusQueued,
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification job", err)
	}

	return jobID, nil
}
