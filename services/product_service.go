package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/uptrace/bun"

	"dulcetienda_server/database"
	"dulcetienda_server/lib"
	"dulcetienda_server/structs/tables"
)

type ProductService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewProductService(logger *gecho.Logger, db *database.DB) *ProductService {
	return &ProductService{
		logger: logger,
		db:     db,
	}
}

// activeWithCategory is the base query for every product read: active rows
// joined with their category name.
func (ps *ProductService) activeWithCategory(q *bun.SelectQuery) *bun.SelectQuery {
	return q.
		ColumnExpr("p.*").
		ColumnExpr("c.nombre AS categoria").
		Join("INNER JOIN categorias AS c ON c.id = p.categoria_id").
		Where("p.activo = ?", true)
}

// ListActive retrieves every active product with its category name, featured
// products first, newest first within each group. The catalog is small enough
// that the endpoint is deliberately unpaginated.
func (ps *ProductService) ListActive(ctx context.Context) ([]tables.Product, error) {
	startTime := time.Now()
	var products []tables.Product

	err := database.WithRetry(ctx, func() error {
		products = nil // Reset on retry
		return ps.activeWithCategory(ps.db.NewSelect().Model(&products)).
			OrderExpr("p.destacado DESC").
			OrderExpr("p.id DESC").
			Scan(ctx)
	})
	if err != nil {
		ps.logger.Error("Failed to fetch products",
			gecho.Field("error", err),
			gecho.Field("duration", time.Since(startTime)))
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	ps.logger.Debug("Products fetched successfully",
		gecho.Field("count", len(products)),
		gecho.Field("duration", time.Since(startTime)),
	)

	return products, nil
}

// GetByID retrieves a single active product with its category name. Returns
// lib.ErrNotFound when no active row matches.
func (ps *ProductService) GetByID(ctx context.Context, id int64) (*tables.Product, error) {
	startTime := time.Now()
	product := new(tables.Product)

	err := database.WithRetry(ctx, func() error {
		return ps.activeWithCategory(ps.db.NewSelect().Model(product)).
			Where("p.id = ?", id).
			Limit(1).
			Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ps.logger.Warn("Product not found", gecho.Field("id", id))
			return nil, lib.ErrNotFound
		}
		ps.logger.Error("Failed to fetch product by ID",
			gecho.Field("id", id),
			gecho.Field("error", err),
			gecho.Field("duration", time.Since(startTime)),
		)
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	return product, nil
}
