package main

import (
	"context"
	"log/slog"
	"os"

	"insight/config"
	"insight/internal/delivery"
	"insight/internal/delivery/api"
	"insight/internal/delivery/api/router/handler"
	"insight/internal/domain/repository"
	logs "insight/internal/infra/log"
	"insight/internal/infra/persistence/csvstore"
	"insight/internal/infra/persistence/postgres"
	"insight/internal/usecase/impl"

	"github.com/pkg/errors"
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
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newTransactionManager,
		),
	)
}

// newTransactionManager selects the data supply named by dataset.source
func newTransactionManager(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (repository.TransactionManager, error) {
	switch cfg.Dataset.Source {
	case config.DatasetSourceCSV:
		logger.Info("Serving reports from CSV dataset", slog.String("path", cfg.Dataset.Path))

		return csvstore.NewTransactionManager(cfg), nil
	case config.DatasetSourcePostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: lc,
			Config:    cfg,
			Logger:    logger,
		})
		if err != nil {
			return nil, errors.WithStack(err)
		}
		logger.Info("Serving reports from PostgreSQL dataset")

		return postgres.NewTransactionManager(db), nil
	default:
		return nil, errors.Errorf("unknown dataset source %q", cfg.Dataset.Source)
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewReportService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewReportHandler,
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
