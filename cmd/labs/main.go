package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BigChangeApps/labs-sub003/internal/catalog"
	"github.com/BigChangeApps/labs-sub003/internal/cli"
	"github.com/BigChangeApps/labs-sub003/internal/config"
	"github.com/BigChangeApps/labs-sub003/internal/db"
	"github.com/BigChangeApps/labs-sub003/internal/fixtures"
	"github.com/BigChangeApps/labs-sub003/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	console := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	logger, err := newLogger(os.Stderr, cfg.LogLevel, console)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver
	if cfg.LogCalls {
		observer = service.NewLogUseCaseObserver(logger)
	}

	app := &cli.App{
		Catalog:     service.NewCatalogService(uow, seedCatalog(cfg.InheritanceDefault), logger, observer),
		Invoices:    service.NewInvoiceService(uow, cfg.VATRate, cfg.DefaultViewMode, observer),
		Preferences: service.NewPreferencesService(uow, observer),
	}

	logger.Debug().Str("db", cfg.DBPath).Float64("vat_rate", cfg.VATRate).Msg("starting")

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}

// seedCatalog returns the built-in catalog with inheritance set from config.
func seedCatalog(inheritance bool) service.SeedFunc {
	return func() (catalog.Snapshot, error) {
		s, err := fixtures.DefaultCatalog()
		if err != nil {
			return catalog.Snapshot{}, err
		}
		s.InheritanceEnabled = inheritance
		return s, nil
	}
}

// newLogger writes human-readable lines to a terminal and JSON otherwise.
func newLogger(w io.Writer, level string, console bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parsing log level %q: %w", level, err)
	}
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("app", "labs").Logger(), nil
}
