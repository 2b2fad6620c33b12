package main

import (
	"context"
	"log/slog"
	"os"

	"bizconnect/config"
	"bizconnect/internal/delivery"
	"bizconnect/internal/delivery/http"
	"bizconnect/internal/delivery/http/middleware"
	"bizconnect/internal/delivery/http/router/handler"
	deliverymiddleware "bizconnect/internal/delivery/middleware"
	"bizconnect/internal/domain/service"
	"bizconnect/internal/infra/auth"
	"bizconnect/internal/infra/cache"
	logs "bizconnect/internal/infra/log"
	"bizconnect/internal/infra/mail"
	"bizconnect/internal/infra/persistence/mysql"
	"bizconnect/internal/infra/pubsub"
	"bizconnect/internal/infra/qrcode"
	"bizconnect/internal/infra/report"
	"bizconnect/internal/usecase/impl"

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
		mysql.New,
		cache.NewListingCache,
		mail.NewMailer,
		report.NewReportService,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mysql.NewUserRepository,
			mysql.NewNewsRepository,
			mysql.NewNewsCategoryRepository,
			mysql.NewUMKMRepository,
			mysql.NewCatalogItemRepository,
			mysql.NewTransactionRepository,
			mysql.NewCartRepository,
			mysql.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
		),
	)
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
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewAdminUserService,
			impl.NewNewsService,
			impl.NewUMKMService,
			impl.NewTransactionService,
			impl.NewCartService,
			impl.NewContactService,
			impl.NewAdminStatsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSystemHandler,
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewNewsHandler,
			handler.NewUMKMHandler,
			handler.NewCartHandler,
			handler.NewTransactionHandler,
			handler.NewContactHandler,
			handler.NewAdminUserHandler,
			handler.NewAdminStatsHandler,
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
