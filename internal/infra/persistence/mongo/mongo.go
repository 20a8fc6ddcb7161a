// Package mongo contains the document-store side of the persistence layer.
// It holds request logs and analytics events, kept apart from the relational
// data so high-volume writes never touch the transactional store.
package mongo

import (
	"context"
	"log/slog"

	"subul/config"
	"subul/internal/domain/lifecycle"
	"subul/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle and registers its lifecycle hooks.
func New(params Params) (*mongo.Database, error) {
	mongoCfg := params.Config.Mongo
	if mongoCfg == nil {
		return nil, errors.New("mongo configuration is missing")
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(mongoCfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return client.Disconnect(stopCtx)
		},
	})

	return client.Database(mongoCfg.Database), nil
}
