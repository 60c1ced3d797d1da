package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"insight/config"
	logs "insight/internal/infra/log"
	"insight/internal/infra/persistence/csvstore"
	"insight/internal/usecase"
	"insight/internal/usecase/impl"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - orders:        Order totals by date
// - top-customers: Customers ranked by lifetime spend
// - products:      Quantity and revenue per product
// - cities:        Customers and revenue per city
// - customers:     Per-customer report with optional filters
// - summary:       Every report from one snapshot

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		printUsage(stderr)

		return errors.New("missing subcommand")
	}

	cfg := config.Default()
	cmd, err := newCommand(args[0], cfg, stderr)
	if err != nil {
		printUsage(stderr)

		return err
	}

	if err := cmd.flags.Parse(args[1:]); err != nil {
		return errors.WithStack(err)
	}

	cfg.Env.Log.Level = *cmd.logLevel
	cfg.Env.Log.Pretty = true
	logger, err := logs.NewWithWriter(stderr, cfg)
	if err != nil {
		return errors.WithStack(err)
	}

	reportUC := impl.NewReportService(impl.ReportServiceParams{
		TxManager: csvstore.NewTransactionManagerForDir(*cmd.dataDir),
		Config:    cfg,
		Logger:    logger,
	})

	result, err := cmd.exec(ctx, reportUC)
	if err != nil {
		logger.Debug("Report failed", slog.String("command", args[0]), slog.Any("error", err))

		return err
	}

	return writeJSON(stdout, result)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: report <command> [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  orders          Order totals by date")
	fmt.Fprintln(w, "  top-customers   Customers ranked by lifetime spend (-n)")
	fmt.Fprintln(w, "  products        Quantity and revenue per product")
	fmt.Fprintln(w, "  cities          Customers and revenue per city")
	fmt.Fprintln(w, "  customers       Per-customer report (-min-revenue, -city)")
	fmt.Fprintln(w, "  summary         Every report from one snapshot (-n)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Every command accepts -data <dir> and -log-level <level>.")
}

// reportFunc runs one report against the use case.
type reportFunc func(ctx context.Context, reportUC usecase.ReportUsecase) (any, error)

type command struct {
	flags    *flag.FlagSet
	dataDir  *string
	logLevel *string
	exec     reportFunc
}
