// Package storefront assembles the catalog page from its two render services.
package storefront

import (
	"context"
	"sync"
	"time"

	"catalog-page/internal/category"
	"catalog-page/internal/logger"
	"catalog-page/internal/page"
	"catalog-page/internal/product"
	"catalog-page/internal/snapshot"

	"go.uber.org/zap"
)

// Saver stores a record of a successful load.
type Saver interface {
	Save(ctx context.Context, s *snapshot.Snapshot) error
}

// Report describes one Load.
type Report struct {
	ProductsErr   error
	CategoriesErr error
	Products      int
	Categories    int
	SnapshotID    string
	Duration      time.Duration
}

// OK reports whether both components rendered.
func (r Report) OK() bool {
	return r.ProductsErr == nil && r.CategoriesErr == nil
}

type Storefront struct {
	products   product.Service
	categories category.Service
	saver      Saver
	now        func() time.Time
}

// New builds a Storefront. saver may be nil.
func New(products product.Service, categories category.Service, saver Saver) *Storefront {
	return &Storefront{
		products:   products,
		categories: categories,
		saver:      saver,
		now:        time.Now,
	}
}

// Load renders a fresh page. Products and categories load concurrently and
// independently; a failure in one is alerted on the page without affecting
// the other.
func (s *Storefront) Load(ctx context.Context) (*page.Document, Report, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "storefront"))
	start := s.now()

	doc, err := page.New()
	if err != nil {
		return nil, Report{}, err
	}

	var (
		wg         sync.WaitGroup
		report     Report
		products   []product.Product
		categories []category.Category
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		products, report.ProductsErr = s.products.RenderProducts(ctx, doc)
	}()
	go func() {
		defer wg.Done()
		categories, report.CategoriesErr = s.categories.RenderCategories(ctx, doc)
	}()
	wg.Wait()

	report.Products = len(products)
	report.Categories = len(categories)

	if s.saver != nil && report.OK() {
		snap := snapshot.New(products, categories, s.now())
		if err := s.saver.Save(ctx, snap); err != nil {
			log.Warn("failed to save snapshot", zap.Error(err))
		} else {
			report.SnapshotID = snap.ID.String()
		}
	}

	report.Duration = s.now().Sub(start)
	log.Info("page loaded",
		zap.Int("products", report.Products),
		zap.Int("categories", report.Categories),
		zap.Bool("ok", report.OK()),
		zap.Duration("duration", report.Duration),
	)
	return doc, report, nil
}
