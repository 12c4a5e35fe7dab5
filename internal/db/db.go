package db

import (
	"database/sql"
	"fmt"

	"catalog-page/internal/config"
	"catalog-page/internal/logger"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultSQLitePath = "catalog.db"
)

// InitDB opens the configured snapshot database and exits the process when
// it cannot be reached.
func InitDB(cfg *config.Config) *sql.DB {
	db, err := NewDatabase(cfg)
	if err != nil {
		logger.L().Fatal("failed to initialise database", zap.Error(err))
	}
	logger.L().Info("database connection established", zap.String("driver", driverName(cfg)))
	return db
}

func NewDatabase(cfg *config.Config) (*sql.DB, error) {
	return newDatabaseWithDriver(cfg, driverName(cfg))
}

func newDatabaseWithDriver(cfg *config.Config, driver string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsnFor(cfg, driver))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	// Every sqlite connection would otherwise see its own :memory: database.
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return db, nil
}

func driverName(cfg *config.Config) string {
	if cfg.DBDriver == "" {
		return DriverPostgres
	}
	return cfg.DBDriver
}

func dsnFor(cfg *config.Config, driver string) string {
	if driver == DriverSQLite {
		return buildSQLiteDSN(cfg)
	}
	return buildDSN(cfg)
}

func buildDSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)
}

func buildSQLiteDSN(cfg *config.Config) string {
	path := cfg.DBName
	if path == "" {
		path = defaultSQLitePath
	}
	return "file:" + path + "?_pragma=foreign_keys(1)"
}
