package queries

import (
	"context"

	"github.com/google/uuid"
)

type OrderQueries interface {
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*OrderView, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*OrderView, error)
}

type OrderViewRepo interface {
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*OrderView, error)
	FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	repo OrderViewRepo
}

func NewOrderQueries(repo OrderViewRepo) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

func (q *orderQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*OrderView, error) {
	return q.repo.FindByCustomerID(ctx, customerID)
}

func (q *orderQueriesImpl) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*OrderView, error) {
	return q.repo.FindByProviderID(ctx, providerID)
}
