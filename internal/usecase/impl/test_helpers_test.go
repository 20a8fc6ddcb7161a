package impl

import (
	"io"
	"log/slog"

	"subul/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Pagination: &config.PaginationConfig{
			DefaultLimit: 100,
			MaxLimit:     500,
		},
	}
}
