package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"catalog-page/internal/category"
	"catalog-page/internal/config"
	"catalog-page/internal/fetch"
	"catalog-page/internal/logger"
	"catalog-page/internal/product"
	"catalog-page/internal/storefront"

	"go.uber.org/zap"
)

// errPartial is returned when the page was written but a component failed.
var errPartial = errors.New("page rendered with errors")

func main() {
	out := flag.String("out", "", "write the page to this file instead of stdout")
	flag.Parse()

	if err := run(context.Background(), *out, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out string, stdout io.Writer) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	client := fetch.NewClient(nil, cfg.FetchTimeout)
	store := storefront.New(
		product.NewService(product.NewFetcher(client), product.Options{
			URL:         cfg.ProductsURL,
			Limit:       cfg.ProductLimit,
			TitleMaxLen: cfg.TitleMaxLen,
		}),
		category.NewService(category.NewFetcher(client), category.Options{URL: cfg.CategoriesURL}),
		nil,
	)

	doc, report, err := store.Load(ctx)
	if err != nil {
		return err
	}

	w := stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}
	if err := doc.Render(w); err != nil {
		return err
	}

	if !report.OK() {
		logger.L().Warn("page rendered with errors",
			zap.NamedError("products", report.ProductsErr),
			zap.NamedError("categories", report.CategoriesErr),
		)
		return fmt.Errorf("%w: %v", errPartial, errors.Join(report.ProductsErr, report.CategoriesErr))
	}
	return nil
}
