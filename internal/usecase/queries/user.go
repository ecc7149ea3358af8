package queries

import (
	"context"

	"laundryhub/internal/infra"
	"laundryhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserBanned   = errs.New("user banned")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	// ListProviders returns approved providers, optionally filtered by a
	// case-insensitive shop name search.
	ListProviders(ctx context.Context, search string) ([]*ProviderView, error)
	ListAll(ctx context.Context) ([]*UserView, error)
	ListPendingProviders(ctx context.Context) ([]*UserView, error)
	Stats(ctx context.Context) (*AdminStatsView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindApprovedProviders(ctx context.Context, search string) ([]*ProviderView, error)
	FindAll(ctx context.Context) ([]*UserView, error)
	FindPendingProviders(ctx context.Context) ([]*UserView, error)
	CollectStats(ctx context.Context) (*AdminStatsView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if u.Banned {
		return nil, ErrUserBanned
	}

	return u, nil
}

func (q *userQueriesImpl) ListProviders(ctx context.Context, search string) ([]*ProviderView, error) {
	return q.readStore.FindApprovedProviders(ctx, search)
}

func (q *userQueriesImpl) ListAll(ctx context.Context) ([]*UserView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *userQueriesImpl) ListPendingProviders(ctx context.Context) ([]*UserView, error) {
	return q.readStore.FindPendingProviders(ctx)
}

func (q *userQueriesImpl) Stats(ctx context.Context) (*AdminStatsView, error) {
	return q.readStore.CollectStats(ctx)
}
