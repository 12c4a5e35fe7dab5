package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"

	"catalog-page/internal/config"
	"catalog-page/internal/db"
	"catalog-page/internal/logger"
	"catalog-page/migrations"

	"go.uber.org/zap"
)

func main() {
	mode := flag.String("mode", db.MigrateUp, "migration mode: up or down")
	dir := flag.String("dir", "", "read migrations from this directory instead of the embedded set")
	flag.Parse()

	if err := run(context.Background(), *mode, *dir); err != nil {
		logger.L().Fatal("migration failed", zap.Error(err))
	}
}

func run(ctx context.Context, mode, dir string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if !cfg.HasDatabase() {
		return errors.New("DB_DRIVER not set in environment")
	}

	database, err := db.NewDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	var fsys fs.FS = migrations.FS
	if dir != "" {
		fsys = os.DirFS(dir)
	}
	return db.Migrate(ctx, database, fsys, mode)
}
