package repository

import (
	"context"

	"laundryhub/internal/domain/user"
	"laundryhub/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const createUserSQL = `
INSERT INTO users (id, role, email, password_hash, contact_number, full_name, address, shop_name, shop_address, provider_status, is_available, banned)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

func (r *UserRepository) Create(ctx context.Context, q db.DBTX, u *user.User) error {
	var providerStatus *string
	if u.Role() == user.RoleProvider {
		s := u.ProviderStatus().String()
		providerStatus = &s
	}

	_, err := q.Exec(ctx, createUserSQL,
		u.ID(), u.Role().String(), u.Email().Value(), u.PasswordHash(), u.ContactNumber().Value(),
		u.FullName(), u.Address(), u.ShopName(), u.ShopAddress(),
		providerStatus, u.IsAvailable(), u.Banned(),
	)
	if err != nil {
		return wrapPgErr("failed to create user", err)
	}
	return nil
}

const updateUserProfileSQL = `
UPDATE users SET contact_number = $2, full_name = $3, address = $4, shop_name = $5, shop_address = $6
WHERE id = $1`

func (r *UserRepository) UpdateProfile(ctx context.Context, q db.DBTX, u *user.User) error {
	_, err := q.Exec(ctx, updateUserProfileSQL,
		u.ID(), u.ContactNumber().Value(), u.FullName(), u.Address(), u.ShopName(), u.ShopAddress(),
	)
	if err != nil {
		return wrapPgErr("failed to update user profile", err)
	}
	return nil
}

const updateUserPasswordSQL = `UPDATE users SET password_hash = $2 WHERE id = $1`

func (r *UserRepository) UpdatePassword(ctx context.Context, q db.DBTX, id uuid.UUID, passwordHash string) error {
	_, err := q.Exec(ctx, updateUserPasswordSQL, id, passwordHash)
	if err != nil {
		return wrapPgErr("failed to update password", err)
	}
	return nil
}

const setProviderStatusSQL = `UPDATE users SET provider_status = $2 WHERE id = $1 AND role = 'provider'`

func (r *UserRepository) SetProviderStatus(ctx context.Context, q db.DBTX, id uuid.UUID, status user.ProviderStatus) error {
	_, err := q.Exec(ctx, setProviderStatusSQL, id, status.String())
	if err != nil {
		return wrapPgErr("failed to set provider status", err)
	}
	return nil
}

const setAvailabilitySQL = `UPDATE users SET is_available = $2 WHERE id = $1 AND role = 'provider'`

func (r *UserRepository) SetAvailability(ctx context.Context, q db.DBTX, id uuid.UUID, available bool) error {
	_, err := q.Exec(ctx, setAvailabilitySQL, id, available)
	if err != nil {
		return wrapPgErr("failed to set availability", err)
	}
	return nil
}

const setBannedSQL = `UPDATE users SET banned = $2 WHERE id = $1`

func (r *UserRepository) SetBanned(ctx context.Context, q db.DBTX, id uuid.UUID, banned bool) error {
	_, err := q.Exec(ctx, setBannedSQL, id, banned)
	if err != nil {
		return wrapPgErr("failed to set banned flag", err)
	}
	return nil
}
