// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"insight/config"
	"insight/internal/analytics"
	deliverycontext "insight/internal/delivery/context"
	"insight/internal/domain/entity"
	domainerrors "insight/internal/domain/errors"
	"insight/internal/domain/repository"
	"insight/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxTopN = 100

// reportService implements the ReportUsecase interface.
type reportService struct {
	txManager repository.TransactionManager
	maxTopN   int
	logger    *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewReportService creates a new report service instance
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	maxTopN := defaultMaxTopN
	if params.Config != nil && params.Config.Report != nil && params.Config.Report.MaxTopN > 0 {
		maxTopN = params.Config.Report.MaxTopN
	}

	return &reportService{
		txManager: params.TxManager,
		maxTopN:   maxTopN,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// OrderTotals returns one total per order
func (srv *reportService) OrderTotals(ctx context.Context) ([]entity.OrderTotal, error) {
	prepared, err := srv.prepare(ctx)
	if err != nil {
		return nil, err
	}

	srv.logBuilt(ctx, "order_totals", len(prepared.OrderTotals))

	return prepared.OrderTotals, nil
}

// TopCustomers ranks customers by lifetime spend
func (srv *reportService) TopCustomers(ctx context.Context, n int) ([]entity.CustomerRank, error) {
	if err := srv.checkTopN(n); err != nil {
		return nil, err
	}

	prepared, err := srv.prepare(ctx)
	if err != nil {
		return nil, err
	}

	ranks, err := analytics.TopCustomers(prepared.OrderTotals, n)
	if err != nil {
		return nil, srv.rejected(ctx, err)
	}

	srv.logBuilt(ctx, "top_customers", len(ranks))

	return ranks, nil
}

// ProductPerformance aggregates sales per product
func (srv *reportService) ProductPerformance(ctx context.Context) ([]entity.ProductPerformance, error) {
	prepared, err := srv.prepare(ctx)
	if err != nil {
		return nil, err
	}

	products, err := analytics.ProductPerformance(prepared.LineItems)
	if err != nil {
		return nil, srv.rejected(ctx, err)
	}

	srv.logBuilt(ctx, "product_performance", len(products))

	return products, nil
}

// CitySummary aggregates customers and revenue per city
func (srv *reportService) CitySummary(ctx context.Context) ([]entity.CityReport, error) {
	prepared, err := srv.prepare(ctx)
	if err != nil {
		return nil, err
	}

	cities, err := analytics.CitySummary(prepared.Dataset.Customers, prepared.OrderTotals)
	if err != nil {
		return nil, srv.rejected(ctx, err)
	}

	srv.logBuilt(ctx, "city_summary", len(cities))

	return cities, nil
}

// CustomerReports builds per-customer reports and applies query
func (srv *reportService) CustomerReports(ctx context.Context, query usecase.CustomerReportQuery) ([]entity.CustomerReport, error) {
	prepared, err := srv.prepare(ctx)
	if err != nil {
		return nil, err
	}

	reports, err := analytics.CustomerReports(prepared.Dataset.Customers, prepared.OrderTotals)
	if err != nil {
		return nil, srv.rejected(ctx, err)
	}

	filtered := analytics.FilterReports(reports, analytics.CustomerReportFilter{
		MinRevenue: query.MinRevenue,
		City:       query.City,
	})

	srv.logBuilt(ctx, "customer_reports", len(filtered))

	return filtered, nil
}

// Summary builds every report from a single snapshot
func (srv *reportService) Summary(ctx context.Context, topN int) (*entity.SalesSummary, error) {
	if err := srv.checkTopN(topN); err != nil {
		return nil, err
	}

	ds, err := srv.loadDataset(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := analytics.Summarize(ds, topN)
	if err != nil {
		return nil, srv.rejected(ctx, err)
	}

	srv.logBuilt(ctx, "summary", len(summary.OrderTotals))

	return summary, nil
}

func (srv *reportService) checkTopN(n int) error {
	if n < 0 || n > srv.maxTopN {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("n must be between 0 and %d", srv.maxTopN))
	}

	return nil
}

func (srv *reportService) prepare(ctx context.Context) (*analytics.Prepared, error) {
	ds, err := srv.loadDataset(ctx)
	if err != nil {
		return nil, err
	}

	prepared, err := analytics.Prepare(ds)
	if err != nil {
		return nil, srv.rejected(ctx, err)
	}

	return prepared, nil
}

// loadDataset reads the four base collections inside one snapshot.
func (srv *reportService) loadDataset(ctx context.Context) (*entity.Dataset, error) {
	ds := &entity.Dataset{}

	err := srv.txManager.Snapshot(ctx, func(repoFactory repository.RepositoryFactory) error {
		salesRepo := repoFactory.SalesRepo()

		var err error
		if ds.Products, err = salesRepo.FindProducts(ctx); err != nil {
			return errors.Wrap(err, "failed to read products")
		}
		if ds.Customers, err = salesRepo.FindCustomers(ctx); err != nil {
			return errors.Wrap(err, "failed to read customers")
		}
		if ds.Orders, err = salesRepo.FindOrders(ctx); err != nil {
			return errors.Wrap(err, "failed to read orders")
		}
		if ds.OrderItems, err = salesRepo.FindOrderItems(ctx); err != nil {
			return errors.Wrap(err, "failed to read order items")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to load sales snapshot", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrDatasetUnavailable.WithCause(err))
	}

	return ds, nil
}

// rejected logs an engine failure and returns it with a stack.
func (srv *reportService) rejected(ctx context.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		srv.log(ctx).Warn("Sales dataset rejected",
			slog.String("code", appErr.ErrorCode()),
			slog.String("details", appErr.Details()),
		)
	} else {
		srv.log(ctx).Error("Report computation failed", slog.Any("error", err))
	}

	return errors.WithStack(err)
}

func (srv *reportService) logBuilt(ctx context.Context, report string, rows int) {
	srv.log(ctx).Debug("Report built",
		slog.String("report", report),
		slog.Int("rows", rows),
	)
}
