package queries

import (
	"context"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// List methods return newest first. ListAll is the admin view.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error)
	FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*BookingView, error)
	FindAll(ctx context.Context) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error) {
	return q.repo.FindByCustomerID(ctx, customerID)
}

func (q *bookingQueriesImpl) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*BookingView, error) {
	return q.repo.FindByProviderID(ctx, providerID)
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingView, error) {
	return q.repo.FindAll(ctx)
}
