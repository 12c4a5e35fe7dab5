// Package server exposes the catalog page and its data over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"

	"catalog-page/internal/category"
	"catalog-page/internal/fetch"
	"catalog-page/internal/logger"
	"catalog-page/internal/metrics"
	"catalog-page/internal/page"
	"catalog-page/internal/product"
	"catalog-page/internal/snapshot"
	"catalog-page/internal/storefront"

	"go.uber.org/zap"
)

// Loader renders a complete page.
type Loader interface {
	Load(ctx context.Context) (*page.Document, storefront.Report, error)
}

type Handler struct {
	store      Loader
	products   product.Service
	categories category.Service
	snapshots  snapshot.Repository
	stats      *metrics.Catalog
}

// NewHandler wires the handlers. snapshots may be nil when no database is
// configured.
func NewHandler(store Loader, products product.Service, categories category.Service, snapshots snapshot.Repository) *Handler {
	return &Handler{
		store:      store,
		products:   products,
		categories: categories,
		snapshots:  snapshots,
		stats:      &metrics.Catalog{},
	}
}

// Page renders the storefront. Component failures are reported inside the
// page, so the status stays 200 unless the page itself could not be built.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context())
	timer := metrics.StartTimer()

	doc, report, err := h.store.Load(r.Context())
	if err != nil {
		log.Error("failed to build page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.stats.Observe(report.ProductsErr != nil, report.CategoriesErr != nil, report.SnapshotID != "", timer.Duration())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := doc.Render(w); err != nil {
		log.Error("failed to write page", zap.Error(err))
	}
}

func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	res := h.products.Products(r.Context())
	writeJSON(w, r, envelopeStatus(res.Success, res.Err), res)
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	res := h.categories.Categories(r.Context())
	writeJSON(w, r, envelopeStatus(res.Success, res.Err), res)
}

func (h *Handler) LatestSnapshot(w http.ResponseWriter, r *http.Request) {
	if h.snapshots == nil {
		writeJSONError(w, r, "snapshots are disabled", http.StatusNotFound)
		return
	}

	s, err := h.snapshots.Latest(r.Context())
	switch {
	case errors.Is(err, snapshot.ErrNoSnapshot):
		writeJSONError(w, r, err.Error(), http.StatusNotFound)
	case err != nil:
		writeJSONError(w, r, "failed to read snapshots", http.StatusInternalServerError)
	default:
		writeJSON(w, r, http.StatusOK, s)
	}
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.stats.Snapshot())
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// envelopeStatus maps a failed envelope to 502 when the upstream feed is at
// fault.
func envelopeStatus(success bool, err error) int {
	if success {
		return http.StatusOK
	}
	switch fetch.KindOf(err) {
	case fetch.KindTransport, fetch.KindParse, fetch.KindSchema:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
