package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/toolforge/tool-spacemedia-sub000/internal/archive"
	"github.com/toolforge/tool-spacemedia-sub000/internal/config"
	"github.com/toolforge/tool-spacemedia-sub000/internal/description"
	"github.com/toolforge/tool-spacemedia-sub000/internal/engine"
	"github.com/toolforge/tool-spacemedia-sub000/internal/fetcher"
	"github.com/toolforge/tool-spacemedia-sub000/internal/fingerprint"
	"github.com/toolforge/tool-spacemedia-sub000/internal/notify"
	"github.com/toolforge/tool-spacemedia-sub000/internal/source/bucket"
	"github.com/toolforge/tool-spacemedia-sub000/internal/source/gallery"
	"github.com/toolforge/tool-spacemedia-sub000/internal/source/restapi"
	"github.com/toolforge/tool-spacemedia-sub000/internal/storage/postgres"
)

var configPath string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "spacemedia: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "spacemedia",
		Short:        "Harvest media from external sources and publish them to the archive",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the config file")
	cmd.AddCommand(
		newServeCmd(),
		newRunCmd(),
		newRefreshCmd(),
		newResetCmd(),
		newStatsCmd(),
	)
	return cmd
}

// app bundles the shared infrastructure every command needs.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	db       *sqlx.DB
	catalog  *postgres.CatalogStore
	cursors  *postgres.RunCursorStore
	problems *postgres.ProblemStore
	tx       *postgres.TransactionManager
}

func openApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		catalog:  postgres.NewCatalogStore(db),
		cursors:  postgres.NewRunCursorStore(db),
		problems: postgres.NewProblemStore(db),
		tx:       postgres.NewTransactionManager(db),
	}, nil
}

func (a *app) close() {
	a.db.Close()
}

// newEngine wires one source's harvest engine. The returned cleanup
// closes the notifier channel when one was opened.
func (a *app) newEngine(sourceKey string, withNotifier bool) (*engine.Engine, func(), error) {
	srcCfg, err := a.cfg.Source(sourceKey)
	if err != nil {
		return nil, nil, err
	}

	src, err := buildSource(*srcCfg, a.logger)
	if err != nil {
		return nil, nil, err
	}

	archiveClient := archive.NewClient(archive.Config{
		BaseURL: a.cfg.Archive.BaseURL,
		Token:   a.cfg.Archive.Token,
		Timeout: a.cfg.Archive.Timeout,
	}, a.logger)

	fingerprints := fingerprint.NewClient(fingerprint.Config{
		BaseURL: a.cfg.Fingerprint.BaseURL,
		Timeout: a.cfg.Fingerprint.Timeout,
	})

	var (
		notifier engine.Notifier
		cleanup  = func() {}
	)
	if withNotifier && a.cfg.RabbitMQ.URL != "" {
		rabbit, err := notify.NewRabbitMQ(notify.Config{
			URL:        a.cfg.RabbitMQ.URL,
			Exchange:   a.cfg.RabbitMQ.Exchange,
			RoutingKey: a.cfg.RabbitMQ.RoutingKey,
			QueueName:  a.cfg.RabbitMQ.QueueName,
		}, a.logger)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		notifier = rabbit
		cleanup = func() { rabbit.Close() }
	}

	eng := engine.New(
		src,
		a.catalog,
		a.cursors,
		a.problems,
		a.tx,
		archiveClient,
		fingerprints,
		fetcher.NewHTTP(a.cfg.Harvest.AssetTimeout),
		description.NewBuilder(srcCfg.Description),
		notifier,
		a.logger,
		*srcCfg,
		a.cfg.Harvest,
	)
	return eng, cleanup, nil
}

func buildSource(cfg config.SourceConfig, logger *slog.Logger) (engine.Source, error) {
	switch cfg.Kind {
	case "restapi":
		return restapi.New(cfg, logger), nil
	case "gallery":
		return gallery.New(cfg, logger), nil
	case "bucket":
		return bucket.New(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
