package main

import (
	"context"
	"log/slog"
	"os"

	"avo/config"
	"avo/internal/delivery"
	"avo/internal/delivery/http"
	"avo/internal/delivery/http/middleware"
	"avo/internal/delivery/http/router/handler"
	"avo/internal/domain/service"
	"avo/internal/infra/auth"
	"avo/internal/infra/auth/google"
	logs "avo/internal/infra/log"
	"avo/internal/infra/mail"
	"avo/internal/infra/media"
	"avo/internal/infra/persistence/postgres"
	"avo/internal/infra/pubsub"
	"avo/internal/infra/qrcode"
	"avo/internal/usecase/impl"

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
			postgres.NewBusinessRepository,
			postgres.NewOfferRepository,
			postgres.NewCouponRepository,
			postgres.NewTransactionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewOTPGenerator,
			google.NewOAuthService,
			mail.NewSMTPMailer,
			media.NewBlobStore,
			pubsub.NewEventPublisher,
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
			impl.NewIdentityService,
			impl.NewBusinessService,
			impl.NewOfferService,
			impl.NewCouponService,
			impl.NewTransactionService,
			impl.NewMediaService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewIdentityHandler,
			handler.NewBusinessHandler,
			handler.NewOfferHandler,
			handler.NewCouponHandler,
			handler.NewTransactionHandler,
			handler.NewMediaHandler,
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
