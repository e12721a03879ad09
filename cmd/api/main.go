package main

import (
	"context"
	"log/slog"
	"os"

	"kidsactivity/config"
	"kidsactivity/internal/delivery"
	"kidsactivity/internal/delivery/http"
	httpmw "kidsactivity/internal/delivery/http/middleware"
	"kidsactivity/internal/delivery/http/router/handler"
	deliverymw "kidsactivity/internal/delivery/middleware"
	"kidsactivity/internal/domain/service"
	"kidsactivity/internal/infra/auth"
	logs "kidsactivity/internal/infra/log"
	"kidsactivity/internal/infra/mail"
	"kidsactivity/internal/infra/persistence/postgres"
	"kidsactivity/internal/infra/qrcode"
	"kidsactivity/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewActivityRepository,
			postgres.NewCategoryRepository,
			postgres.NewActivityTypeRepository,
			postgres.NewLocationRepository,
			postgres.NewProviderRepository,
			postgres.NewChildRepository,
			postgres.NewFavoriteRepository,
			postgres.NewInvitationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewLogMailer,
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
			impl.NewUserService,
			impl.NewActivityService,
			impl.NewCatalogService,
			impl.NewChildService,
			impl.NewFavoriteService,
			impl.NewSharingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmw.NewAuthMiddleware,
			httpmw.NewErrorMiddleware,
			deliverymw.NewRequestIDMiddleware,
			deliverymw.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewActivityHandler,
			handler.NewCatalogHandler,
			handler.NewChildHandler,
			handler.NewFavoriteHandler,
			handler.NewSharingHandler,
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
