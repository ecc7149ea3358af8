package repository

import (
	"context"

	"laundryhub/internal/domain/category"
	"laundryhub/internal/infra/db"

	"github.com/google/uuid"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

const createCategorySQL = `
INSERT INTO categories (id, provider_id, name, pricing_type, price, min_kilo, max_kilo)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *CategoryRepository) Create(ctx context.Context, q db.DBTX, c *category.Category) error {
	_, err := q.Exec(ctx, createCategorySQL,
		c.ID(), c.ProviderID(), c.Name(), c.PricingType().String(),
		c.UnitPrice().Decimal(), c.MinKilo(), c.MaxKilo(),
	)
	if err != nil {
		return wrapPgErr("failed to create category", err)
	}
	return nil
}

const updateCategorySQL = `
UPDATE categories SET name = $2, pricing_type = $3, price = $4, min_kilo = $5, max_kilo = $6
WHERE id = $1`

func (r *CategoryRepository) Update(ctx context.Context, q db.DBTX, c *category.Category) error {
	_, err := q.Exec(ctx, updateCategorySQL,
		c.ID(), c.Name(), c.PricingType().String(),
		c.UnitPrice().Decimal(), c.MinKilo(), c.MaxKilo(),
	)
	if err != nil {
		return wrapPgErr("failed to update category", err)
	}
	return nil
}

const deleteCategorySQL = `DELETE FROM categories WHERE id = $1`

func (r *CategoryRepository) Delete(ctx context.Context, q db.DBTX, id uuid.UUID) error {
	_, err := q.Exec(ctx, deleteCategorySQL, id)
	if err != nil {
		return wrapPgErr("failed to delete category", err)
	}
	return nil
}
