package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Minimal snapshots for command-side validation reads.

type BookingSnapshot struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	ProviderID uuid.UUID
	CategoryID uuid.UUID
	Weight     decimal.Decimal
	TotalPrice decimal.Decimal
	ScheduleAt time.Time
	Status     string
	Notes      string
	CreatedAt  time.Time
}

type CategorySnapshot struct {
	ID          uuid.UUID
	ProviderID  uuid.UUID
	Name        string
	PricingType string
	Price       decimal.Decimal
	MinKilo     *decimal.Decimal
	MaxKilo     *decimal.Decimal
	CreatedAt   time.Time
}

type UserSnapshot struct {
	ID             uuid.UUID
	Role           string
	Email          string
	PasswordHash   string
	ContactNumber  string
	FullName       string
	Address        string
	ShopName       string
	ShopAddress    string
	ProviderStatus *string
	IsAvailable    bool
	Banned         bool
	CreatedAt      time.Time
}

type OrderSnapshot struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Status    string
	TotalCost decimal.Decimal
}

type ReceiptSnapshot struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	DeliveryFee decimal.Decimal
}

type NotificationSnapshot struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Read   bool
}
