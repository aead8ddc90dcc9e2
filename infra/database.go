// Package infra wires the ledger to its storage engine.
package infra

import (
	"errors"
	"time"

	"github.com/corebank/ledger/infra/repository/account"
	"github.com/corebank/ledger/infra/repository/transaction"
	"github.com/corebank/ledger/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the ledger store. Query logging is enabled only in
// development; the connection pool is sized for many concurrent
// request-handling goroutines sharing one logical store.
func NewDBConnection(cnf config.DBConfig, appEnv string) (*gorm.DB, error) {
	databaseUrl := cnf.Url
	if databaseUrl == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	connection, err := gorm.Open(postgres.Open(databaseUrl), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}

// Migrate creates or updates the accounts and transactions tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&account.Account{}, &transaction.Transaction{})
}
