package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog-page/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Save(ctx context.Context, s *Snapshot) error
	Latest(ctx context.Context) (*Summary, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Save writes the snapshot and all of its rows in one transaction.
func (r *repository) Save(ctx context.Context, s *Snapshot) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Save"),
		zap.String("snapshot_id", s.ID.String()),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedSave, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO catalog_snapshots (id, taken_at, product_count, category_count)
		VALUES ($1, $2, $3, $4)
	`, s.ID.String(), s.TakenAt, len(s.Products), len(s.Categories))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return ErrDuplicateSnapshot
		}
		log.Error("failed to insert snapshot", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedSave, err)
	}

	for i, p := range s.Products {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO snapshot_products (snapshot_id, position, title, img_url, price, product_url, category_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, s.ID.String(), i, p.Title, p.ImgURL, p.Price, p.ProductURL, p.CategoryID)
		if err != nil {
			log.Error("failed to insert snapshot product", zap.Int("position", i), zap.Error(err))
			return fmt.Errorf("%w: %v", ErrFailedSave, err)
		}
	}

	for i, c := range s.Categories {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO snapshot_categories (snapshot_id, position, category_id, name)
			VALUES ($1, $2, $3, $4)
		`, s.ID.String(), i, c.ID, c.Name)
		if err != nil {
			log.Error("failed to insert snapshot category", zap.Int("position", i), zap.Error(err))
			return fmt.Errorf("%w: %v", ErrFailedSave, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit snapshot", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedSave, err)
	}

	log.Info("snapshot saved",
		zap.Int("products", len(s.Products)),
		zap.Int("categories", len(s.Categories)),
	)
	return nil
}

func (r *repository) Latest(ctx context.Context) (*Summary, error) {
	var (
		out Summary
		id  string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, taken_at, product_count, category_count
		FROM catalog_snapshots
		ORDER BY taken_at DESC
		LIMIT 1
	`).Scan(&id, &out.TakenAt, &out.ProductCount, &out.CategoryCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query latest snapshot", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedLatest, err)
	}

	if err := out.ID.UnmarshalText([]byte(id)); err != nil {
		return nil, fmt.Errorf("%w: invalid id %q: %v", ErrFailedLatest, id, err)
	}
	return &out, nil
}
