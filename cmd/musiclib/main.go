package main

import (
	"context"
	"log/slog"
	"os"

	"musiclib/config"
	"musiclib/internal/delivery"
	"musiclib/internal/delivery/api"
	"musiclib/internal/delivery/api/middleware"
	"musiclib/internal/delivery/api/router/handler"
	"musiclib/internal/infra/auth"
	yandexauth "musiclib/internal/infra/auth/yandex"
	yandexcatalog "musiclib/internal/infra/catalog/yandex"
	"musiclib/internal/infra/httpclient"
	logs "musiclib/internal/infra/log"
	"musiclib/internal/infra/persistence/postgres"
	"musiclib/internal/infra/persistence/sessioncode"
	"musiclib/internal/usecase/impl"

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
		httpclient.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewExternalAccountRepository,
			postgres.NewTransactionManager,
		),
		sessioncode.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			yandexauth.NewOAuthExchanger,
			yandexcatalog.NewCatalogClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountLinkService,
			impl.NewSessionService,
			impl.NewOAuthService,
			impl.NewCatalogService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewOAuthHandler,
			handler.NewSessionHandler,
			handler.NewCatalogHandler,
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
				os.Exit(1)
			}
		}()
	}
}
