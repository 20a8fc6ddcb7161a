package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// APILog is a single request/response observation for the analytics store.
type APILog struct {
	Method       string     `bson:"method"`
	Path         string     `bson:"path"`
	StatusCode   int        `bson:"status_code"`
	ResponseTime int64      `bson:"response_time_ms"`
	UserID       *uuid.UUID `bson:"user_id,omitempty"`
	IP           string     `bson:"ip"`
	UserAgent    string     `bson:"user_agent"`
	Timestamp    time.Time  `bson:"timestamp"`
}

// UserActivity records a notable account event (registration, login).
type UserActivity struct {
	UserID    uuid.UUID `bson:"user_id"`
	Action    string    `bson:"action"`
	Details   any       `bson:"details,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}

// OrderAnalytics summarizes a created order for reporting.
type OrderAnalytics struct {
	OrderID     uuid.UUID `bson:"order_id"`
	MerchantID  uuid.UUID `bson:"merchant_id"`
	TotalAmount float64   `bson:"total_amount"`
	Status      string    `bson:"status"`
	ItemCount   int       `bson:"item_count"`
	Timestamp   time.Time `bson:"timestamp"`
}

// ActivityRecorder writes analytics events to the document store. Recording is
// best-effort: implementations log failures instead of returning them to the
// request path, and must never participate in relational transactions.
type ActivityRecorder interface {
	RecordAPILog(ctx context.Context, log APILog)
	RecordUserActivity(ctx context.Context, activity UserActivity)
	RecordOrderAnalytics(ctx context.Context, analytics OrderAnalytics)
}
