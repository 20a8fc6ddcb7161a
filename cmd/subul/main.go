package main

import (
	"context"
	"log/slog"
	"os"

	"subul/config"
	"subul/internal/delivery"
	"subul/internal/delivery/http"
	"subul/internal/delivery/http/middleware"
	"subul/internal/delivery/http/router/handler"
	"subul/internal/infra/auth"
	logs "subul/internal/infra/log"
	"subul/internal/infra/persistence/mongo"
	"subul/internal/infra/persistence/postgres"
	"subul/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		mongo.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewMerchantRepository,
			postgres.NewProductRepository,
			postgres.NewInventoryRepository,
			postgres.NewOrderRepository,
			postgres.NewDeliveryRepository,
			postgres.NewPaymentRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mongo.NewActivityRecorder,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewMerchantService,
			impl.NewProductService,
			impl.NewInventoryService,
			impl.NewOrderService,
			impl.NewDeliveryService,
			impl.NewPaymentService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewActivityMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewMerchantHandler,
			handler.NewProductHandler,
			handler.NewInventoryHandler,
			handler.NewOrderHandler,
			handler.NewDeliveryHandler,
			handler.NewPaymentHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
