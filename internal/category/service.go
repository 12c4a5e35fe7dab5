package category

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

const alertPrefix = "Error al cargar las categorías: "

type Service interface {
	// Categories fetches the configured document and extracts its categories.
	Categories(ctx context.Context) fetch.Result[[]Category]
	// RenderCategories resets the category select and returns the
	// categories it rendered. Failures are alerted on p and returned.
	RenderCategories(ctx context.Context, p Page) ([]Category, error)
}

type service struct {
	source Source
	opts   Options
}

func NewService(source Source, opts Options) Service {
	return &service{source: source, opts: opts}
}

func (s *service) Categories(ctx context.Context) fetch.Result[[]Category] {
	res := s.source.FetchCategories(ctx, s.opts.URL)
	if !res.Success {
		if res.Message == "" {
			return fetch.Fail[[]Category](res.Err)
		}
		return fetch.Result[[]Category]{Message: res.Message, Err: res.Err}
	}
	categories, err := Extract(res.Body)
	if err != nil {
		return fetch.Fail[[]Category](err)
	}
	return fetch.Succeed(categories)
}

func (s *service) RenderCategories(ctx context.Context, p Page) ([]Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "RenderCategories"),
		zap.String("url", s.opts.URL),
	)
	log.Info("RenderCategories started")

	res := s.Categories(ctx)
	categories, err := res.Unwrap()
	if err != nil {
		log.Error("failed to load categories", zap.String("kind", string(fetch.KindOf(err))), zap.Error(err))
		p.Alert(ctx, alertPrefix+res.Message)
		return nil, err
	}

	options, err := RenderOptions(categories)
	if err != nil {
		log.Error("failed to render category options", zap.Error(err))
		p.Alert(ctx, alertPrefix+err.Error())
		return nil, err
	}

	if err := p.Replace(page.CategoriesID, options...); err != nil {
		log.Error("failed to update categories select", zap.Error(err))
		p.Alert(ctx, alertPrefix+err.Error())
		return nil, err
	}

	log.Info("RenderCategories success", zap.Int("rendered", len(categories)))
	return categories, nil
}
