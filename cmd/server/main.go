package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/corebank/ledger/infra"
	"github.com/corebank/ledger/infra/events/kafka"
	infrarepo "github.com/corebank/ledger/infra/repository"
	"github.com/corebank/ledger/pkg/config"
	"github.com/corebank/ledger/pkg/events"
	"github.com/corebank/ledger/pkg/locks"
	accountsvc "github.com/corebank/ledger/pkg/service/account"
	ledgersvc "github.com/corebank/ledger/pkg/service/ledger"
	"github.com/corebank/ledger/webapi"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(logger)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to the ledger store: %w", err)
	}
	if err := infra.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate the ledger store: %w", err)
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kafkaPublisher.Close() //nolint:errcheck
		publisher = kafkaPublisher
		logger.Info("transaction event publishing enabled",
			"brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	uow := infrarepo.NewUoW(db)
	lockMgr := locks.NewManager(logger)
	accountSvc := accountsvc.NewService(uow, logger, cfg.Engine)
	ledgerSvc := ledgersvc.NewService(uow, lockMgr, publisher, logger, cfg.Engine)

	app := webapi.SetupApp(accountSvc, ledgerSvc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	return app.Listen(addr)
}
