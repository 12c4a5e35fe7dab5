package product

import (
	"context"
	"html/template"

	"catalog-page/internal/fetch"
	"catalog-page/internal/logger"
	"catalog-page/internal/page"

	"go.uber.org/zap"
)

// Page is the part of page.Document the render service needs.
type Page interface {
	Replace(id string, fragments ...template.HTML) error
	Alert(ctx context.Context, msg string)
}

const alertPrefix = "Error al cargar los productos: "

type Service interface {
	// Products fetches and validates the configured feed.
	Products(ctx context.Context) fetch.Result[[]Product]
	// RenderProducts fills the products container and returns the products
	// it rendered. Failures are alerted on p and returned.
	RenderProducts(ctx context.Context, p Page) ([]Product, error)
}

type service struct {
	source Source
	opts   Options
}

func NewService(source Source, opts Options) Service {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.TitleMaxLen <= 0 {
		opts.TitleMaxLen = DefaultTitleMaxLen
	}
	return &service{source: source, opts: opts}
}

func (s *service) Products(ctx context.Context) fetch.Result[[]Product] {
	return s.source.FetchProducts(ctx, s.opts.URL)
}

func (s *service) RenderProducts(ctx context.Context, p Page) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "RenderProducts"),
		zap.String("url", s.opts.URL),
	)
	log.Info("RenderProducts started")

	res := s.Products(ctx)
	products, err := res.Unwrap()
	if err != nil {
		log.Error("failed to fetch products", zap.String("kind", string(fetch.KindOf(err))), zap.Error(err))
		p.Alert(ctx, alertPrefix+res.Message)
		return nil, err
	}

	shown := products[:min(len(products), s.opts.Limit)]
	cards, err := RenderCards(shown, s.opts.Limit, s.opts.TitleMaxLen)
	if err != nil {
		log.Error("failed to render product cards", zap.Error(err))
		p.Alert(ctx, alertPrefix+err.Error())
		return nil, err
	}

	if err := p.Replace(page.ProductsID, cards...); err != nil {
		log.Error("failed to update products container", zap.Error(err))
		p.Alert(ctx, alertPrefix+err.Error())
		return nil, err
	}

	log.Info("RenderProducts success",
		zap.Int("fetched", len(products)),
		zap.Int("rendered", len(cards)),
	)
	return shown, nil
}
