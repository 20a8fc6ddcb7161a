package mongo

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"subul/internal/domain/service"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The recorder is fire-and-forget: even with the analytics store unreachable,
// a record call must hand off to the background writer and return immediately
// instead of stalling the request goroutine for the write timeout.
func TestActivityRecorder_RecordAPILog_DoesNotBlockCaller(t *testing.T) {
	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(recordTimeout))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	recorder := NewActivityRecorder(client.Database("analytics_test"),
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	start := time.Now()
	recorder.RecordAPILog(context.Background(), service.APILog{
		Method:     http.MethodGet,
		Path:       "/health",
		StatusCode: http.StatusOK,
		Timestamp:  start,
	})

	require.Less(t, time.Since(start), recordTimeout/2)
}
