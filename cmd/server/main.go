package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-page/internal/category"
	"catalog-page/internal/config"
	"catalog-page/internal/db"
	"catalog-page/internal/fetch"
	"catalog-page/internal/logger"
	"catalog-page/internal/middleware"
	"catalog-page/internal/product"
	"catalog-page/internal/server"
	"catalog-page/internal/snapshot"
	"catalog-page/internal/storefront"

	"go.uber.org/zap"
)

var (
	initDBFunc      = db.InitDB
	startServerFunc = startServer
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var database *sql.DB
	if cfg.HasDatabase() {
		database = initDBFunc(cfg)
		defer database.Close()
	}

	handler := newServer(ctx, cfg, database)

	logger.L().Info("catalog page server running", zap.String("addr", "http://localhost:"+cfg.AppPort+"/"))
	return startServerFunc(ctx, ":"+cfg.AppPort, handler)
}

// newServer wires the services behind the HTTP routes. database may be nil.
func newServer(ctx context.Context, cfg *config.Config, database *sql.DB) http.Handler {
	client := fetch.NewClient(nil, cfg.FetchTimeout)

	productSvc := product.NewService(product.NewFetcher(client), product.Options{
		URL:         cfg.ProductsURL,
		Limit:       cfg.ProductLimit,
		TitleMaxLen: cfg.TitleMaxLen,
	})
	categorySvc := category.NewService(category.NewFetcher(client), category.Options{
		URL: cfg.CategoriesURL,
	})

	var (
		snapshots snapshot.Repository
		saver     storefront.Saver
	)
	if database != nil {
		repo := snapshot.NewRepository(database)
		snapshots, saver = repo, repo
	}

	store := storefront.New(productSvc, categorySvc, saver)
	h := server.NewHandler(store, productSvc, categorySvc, snapshots)
	limiter := middleware.NewLimiter(ctx, cfg.RateLimit, cfg.RateBurst)

	return setupRouter(h, limiter.Middleware)
}

func setupRouter(h *server.Handler, limit server.Middleware) http.Handler {
	return server.NewRouter(h, limit)
}

func startServer(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
