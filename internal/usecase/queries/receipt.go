package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReceiptQueries interface {
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReceiptView, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*ReceiptView, error)
}

type ReceiptViewRepo interface {
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*ReceiptView, error)
	FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*ReceiptView, error)
}

type receiptQueriesImpl struct {
	repo ReceiptViewRepo
}

func NewReceiptQueries(repo ReceiptViewRepo) ReceiptQueries {
	return &receiptQueriesImpl{repo: repo}
}

func (q *receiptQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReceiptView, error) {
	return q.repo.FindByCustomerID(ctx, customerID)
}

func (q *receiptQueriesImpl) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*ReceiptView, error) {
	return q.repo.FindByProviderID(ctx, providerID)
}
