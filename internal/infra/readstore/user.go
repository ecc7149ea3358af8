package readstore

import (
	"context"

	"laundryhub/internal/infra/db"
	"laundryhub/internal/usecase/queries"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(q db.DBTX) *UserReadStore {
	return &UserReadStore{db: q}
}

const userViewSQL = `
SELECT id, role, email, contact_number, full_name, address, shop_name, shop_address,
       provider_status, is_available, banned, created_at
FROM users`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var view queries.UserView
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return pgxscan.Get(ctx, r.db, &view, userViewSQL+" WHERE id = $1", id)
	})
	if err != nil {
		return nil, wrapReadErr("failed to find user", err)
	}
	return &view, nil
}

func (r *UserReadStore) FindApprovedProviders(ctx context.Context, search string) ([]*queries.ProviderView, error) {
	const sql = `
SELECT id, shop_name, shop_address, contact_number, is_available, created_at
FROM users
WHERE role = 'provider'
  AND provider_status = 'approved'
  AND NOT banned
  AND ($1 = '' OR shop_name ILIKE '%' || $1 || '%')
ORDER BY shop_name`

	var views []*queries.ProviderView
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, r.db, &views, sql, search)
	})
	if err != nil {
		return nil, wrapReadErr("failed to list providers", err)
	}
	return views, nil
}

func (r *UserReadStore) FindAll(ctx context.Context) ([]*queries.UserView, error) {
	var views []*queries.UserView
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, r.db, &views, userViewSQL+" ORDER BY created_at DESC")
	})
	if err != nil {
		return nil, wrapReadErr("failed to list users", err)
	}
	return views, nil
}

func (r *UserReadStore) FindPendingProviders(ctx context.Context) ([]*queries.UserView, error) {
	var views []*queries.UserView
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, r.db, &views,
			userViewSQL+" WHERE role = 'provider' AND provider_status = 'pending' ORDER BY created_at")
	})
	if err != nil {
		return nil, wrapReadErr("failed to list pending providers", err)
	}
	return views, nil
}

const statsSQL = `
SELECT
	(SELECT count(*) FROM users WHERE role = 'customer')                              AS total_customers,
	(SELECT count(*) FROM users WHERE role = 'provider')                              AS total_providers,
	(SELECT count(*) FROM users WHERE role = 'provider' AND provider_status = 'pending') AS pending_providers,
	(SELECT count(*) FROM bookings)                                                   AS total_bookings,
	(SELECT count(*) FROM orders WHERE status = 'completed')                          AS completed_orders,
	(SELECT coalesce(sum(total_cost), 0) FROM orders WHERE status = 'completed')      AS total_revenue`

func (r *UserReadStore) CollectStats(ctx context.Context) (*queries.AdminStatsView, error) {
	var view queries.AdminStatsView
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return pgxscan.Get(ctx, r.db, &view, statsSQL)
	})
	if err != nil {
		return nil, wrapReadErr("failed to collect stats", err)
	}
	return &view, nil
}
