package commands

import (
	"context"

	"laundryhub/internal/domain/category"
	"laundryhub/internal/domain/notification"
	"laundryhub/internal/domain/user"
	"laundryhub/internal/pkg/money"
	"laundryhub/internal/usecase/shared"

	"github.com/google/uuid"
)

// NotificationWriter persists in-app notifications outside the command
// transaction. Callers treat failures as best effort.
type NotificationWriter interface {
	Create(ctx context.Context, n *notification.Notification) error
	MarkRead(ctx context.Context, id uuid.UUID) error
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
}

func userFromSnapshot(s *shared.UserSnapshot) (*user.User, error) {
	email, err := user.NewEmail(s.Email)
	if err != nil {
		return nil, err
	}
	contact, err := user.NewContactNumber(s.ContactNumber)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(s.Role)
	if err != nil {
		return nil, err
	}

	var providerStatus user.ProviderStatus
	if s.ProviderStatus != nil {
		providerStatus = user.ProviderStatus(*s.ProviderStatus)
	}

	return user.Reconstruct(
		s.ID, role, email, s.PasswordHash, contact,
		s.FullName, s.Address, s.ShopName, s.ShopAddress,
		providerStatus, s.IsAvailable, s.Banned, s.CreatedAt,
	), nil
}

func categoryFromSnapshot(s *shared.CategorySnapshot) (*category.Category, error) {
	pricingType, err := category.NewPricingType(s.PricingType)
	if err != nil {
		return nil, err
	}
	price, err := money.FromDecimal(s.Price)
	if err != nil {
		return nil, err
	}
	return category.Reconstruct(s.ID, s.ProviderID, s.Name, pricingType, price, s.MinKilo, s.MaxKilo, s.CreatedAt), nil
}
