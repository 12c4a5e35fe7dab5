package snapshot

import (
	"time"

	"catalog-page/internal/category"
	"catalog-page/internal/product"

	"github.com/google/uuid"
)

// Snapshot records what one page load rendered.
type Snapshot struct {
	ID         uuid.UUID
	TakenAt    time.Time
	Products   []product.Product
	Categories []category.Category
}

// Summary is a stored snapshot without its rows.
type Summary struct {
	ID            uuid.UUID `json:"id"`
	TakenAt       time.Time `json:"taken_at"`
	ProductCount  int       `json:"product_count"`
	CategoryCount int       `json:"category_count"`
}

func New(products []product.Product, categories []category.Category, now time.Time) *Snapshot {
	return &Snapshot{
		ID:         uuid.New(),
		TakenAt:    now.UTC(),
		Products:   products,
		Categories: categories,
	}
}
