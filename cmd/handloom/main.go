package main

import (
	"context"
	"log/slog"
	"os"

	"handloom/config"
	"handloom/internal/delivery"
	"handloom/internal/delivery/api"
	apimiddleware "handloom/internal/delivery/api/middleware"
	"handloom/internal/delivery/api/router/handler"
	"handloom/internal/delivery/middleware"
	"handloom/internal/infra/auth"
	logs "handloom/internal/infra/log"
	"handloom/internal/infra/metrics"
	"handloom/internal/infra/notification"
	"handloom/internal/infra/persistence/postgres"
	"handloom/internal/infra/pubsub"
	"handloom/internal/infra/qrcode"
	"handloom/internal/infra/realtime"
	"handloom/internal/infra/session"
	"handloom/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
		pubsub.Module,
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
		session.NewRedisClient,
		metrics.New,
		metrics.NewRecorder,
		newHub,
	)
}

// newHub reports stream connections to the metrics registry.
func newHub(logger *slog.Logger, m *metrics.Metrics) *realtime.Hub {
	return realtime.NewHub(logger, m)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewGroupRepository,
			postgres.NewMessageRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			session.NewRedisStore,
			qrcode.NewQRCodeService,
			notification.NewNotificationService,
			realtime.NewBroadcaster,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProductService,
			impl.NewOrderService,
			impl.NewGroupService,
			impl.NewMessageService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewGroupHandler,
			handler.NewMessageHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
