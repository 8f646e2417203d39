package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"pureflow/config"
	"pureflow/internal/delivery"
	"pureflow/internal/delivery/http"
	"pureflow/internal/delivery/http/middleware"
	"pureflow/internal/delivery/http/router/handler"
	"pureflow/internal/domain/service"
	"pureflow/internal/infra/advice"
	"pureflow/internal/infra/auth"
	"pureflow/internal/infra/changefeed"
	"pureflow/internal/infra/localstore"
	logs "pureflow/internal/infra/log"
	"pureflow/internal/infra/metrics"
	"pureflow/internal/infra/mirror"
	"pureflow/internal/infra/push"
	"pureflow/internal/infra/qrcode"
	"pureflow/internal/session"
	"pureflow/internal/usecase"
	"pureflow/internal/usecase/impl"

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
			startSync,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		session.New,
		metrics.NewRegistry,
		localstore.New,
		mirror.NewDB,
		changefeed.NewChangeFeed,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			localstore.NewOrderCollection,
			localstore.NewUserCollection,
			localstore.NewProductCollection,
			localstore.NewNotificationCollection,
			localstore.NewSettingCollection,
			mirror.NewClient,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			advice.NewAdviceService,
			newPushService,
			newQRCodeService,
		),
	)
}

// newPushService creates the toast transport, falling back to log output when
// Firebase is not configured.
func newPushService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushService, error) {
	if cfg.Firebase == nil {
		return push.NewLogService(logger), nil
	}

	svc, err := push.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath, cfg.Firebase.DeviceToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
			impl.NewSyncService,
			impl.NewOrderService,
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewOrderHandler,
			handler.NewNotificationHandler,
			handler.NewCatalogHandler,
			handler.NewAdminHandler,
			handler.NewPaymentHandler,
			handler.NewAdviceHandler,
			handler.NewSystemHandler,
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

// startSync seeds the catalog and brings the local store in line with the
// cloud before requests are served.
func startSync(ctx context.Context, catalog usecase.CatalogUsecase, sync usecase.SyncUsecase) error {
	catalog.SeedDefaults(ctx)

	return sync.Start(ctx)
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
