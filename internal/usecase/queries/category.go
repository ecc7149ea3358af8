package queries

import (
	"context"

	"github.com/google/uuid"
)

type CategoryQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*CategoryView, error)
}

type CategoryViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*CategoryView, error)
}

type categoryQueriesImpl struct {
	repo CategoryViewRepo
}

func NewCategoryQueries(repo CategoryViewRepo) CategoryQueries {
	return &categoryQueriesImpl{repo: repo}
}

func (q *categoryQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CategoryView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *categoryQueriesImpl) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*CategoryView, error) {
	return q.repo.FindByProviderID(ctx, providerID)
}
