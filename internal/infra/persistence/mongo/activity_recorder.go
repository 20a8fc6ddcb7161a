package mongo

import (
	"context"
	"log/slog"
	"time"

	"subul/internal/domain/service"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	apiLogCollection         = "api_logs"
	userActivityCollection   = "user_activities"
	orderAnalyticsCollection = "order_analytics"

	recordTimeout = 2 * time.Second
)

type activityRecorder struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewActivityRecorder creates an ActivityRecorder backed by MongoDB. Writes
// are best-effort: a failed insert is logged and dropped, never surfaced to
// the request path.
func NewActivityRecorder(db *mongo.Database, logger *slog.Logger) service.ActivityRecorder {
	return &activityRecorder{db: db, logger: logger}
}

func (r *activityRecorder) RecordAPILog(ctx context.Context, log service.APILog) {
	r.insert(ctx, apiLogCollection, log)
}

func (r *activityRecorder) RecordUserActivity(ctx context.Context, activity service.UserActivity) {
	r.insert(ctx, userActivityCollection, activity)
}

func (r *activityRecorder) RecordOrderAnalytics(ctx context.Context, analytics service.OrderAnalytics) {
	r.insert(ctx, orderAnalyticsCollection, analytics)
}

// insert writes on its own goroutine so a slow or down analytics store never
// stalls the request path. The context is detached from the caller's so an
// already-finished request cannot cancel the write; a short timeout bounds
// the write itself.
func (r *activityRecorder) insert(ctx context.Context, collection string, document any) {
	detachedCtx := context.WithoutCancel(ctx)

	go func() {
		insertCtx, cancel := context.WithTimeout(detachedCtx, recordTimeout)
		defer cancel()

		if _, err := r.db.Collection(collection).InsertOne(insertCtx, document); err != nil {
			r.logger.LogAttrs(insertCtx, slog.LevelWarn, "analytics write dropped",
				slog.String("collection", collection),
				slog.String("error", err.Error()),
			)
		}
	}()
}
