package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"

	"insight/config"
	"insight/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

func newCommand(name string, cfg *config.Config, output io.Writer) (*command, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)

	cmd := &command{
		flags:    flags,
		dataDir:  flags.String("data", cfg.Dataset.Path, "Directory holding products.csv, customers.csv, orders.csv and order_items.csv"),
		logLevel: flags.String("log-level", "warn", "Log level (debug, info, warn, error)"),
	}

	switch name {
	case "orders":
		cmd.exec = func(ctx context.Context, reportUC usecase.ReportUsecase) (any, error) {
			return reportUC.OrderTotals(ctx)
		}
	case "top-customers":
		n := flags.Int("n", cfg.Report.DefaultTopN, "Number of customers to rank")
		cmd.exec = func(ctx context.Context, reportUC usecase.ReportUsecase) (any, error) {
			return reportUC.TopCustomers(ctx, *n)
		}
	case "products":
		cmd.exec = func(ctx context.Context, reportUC usecase.ReportUsecase) (any, error) {
			return reportUC.ProductPerformance(ctx)
		}
	case "cities":
		cmd.exec = func(ctx context.Context, reportUC usecase.ReportUsecase) (any, error) {
			return reportUC.CitySummary(ctx)
		}
	case "customers":
		minRevenue := flags.String("min-revenue", "0", "Keep customers whose total spend is at least this amount")
		city := flags.String("city", "", "Keep customers of this city (exact match)")
		cmd.exec = func(ctx context.Context, reportUC usecase.ReportUsecase) (any, error) {
			query, err := customerQuery(*minRevenue, *city)
			if err != nil {
				return nil, err
			}

			return reportUC.CustomerReports(ctx, query)
		}
	case "summary":
		n := flags.Int("n", cfg.Report.DefaultTopN, "Number of top customers in the summary")
		cmd.exec = func(ctx context.Context, reportUC usecase.ReportUsecase) (any, error) {
			return reportUC.Summary(ctx, *n)
		}
	default:
		return nil, errors.Errorf("unknown command: %s", name)
	}

	return cmd, nil
}

func customerQuery(minRevenue, city string) (usecase.CustomerReportQuery, error) {
	amount, err := decimal.NewFromString(minRevenue)
	if err != nil {
		return usecase.CustomerReportQuery{}, errors.Wrapf(err, "invalid -min-revenue %q", minRevenue)
	}

	query := usecase.CustomerReportQuery{MinRevenue: amount}
	if city != "" {
		query.City = &city
	}

	return query, nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return errors.WithStack(encoder.Encode(v))
}
