package shared

import (
	"context"

	"laundryhub/internal/domain/booking"
	"laundryhub/internal/domain/category"
	"laundryhub/internal/domain/order"
	"laundryhub/internal/domain/receipt"
	"laundryhub/internal/domain/user"
	"laundryhub/internal/infra/db"
	"laundryhub/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, q db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, q db.DBTX) error) error
	// CommandReads: validation reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Orders() OrderRepository
	Receipts() ReceiptRepository
	Users() UserRepository
	Categories() CategoryRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (*CategorySnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	OrderByBookingID(ctx context.Context, bookingID uuid.UUID) (*OrderSnapshot, error)
	ReceiptByOrderID(ctx context.Context, orderID uuid.UUID) (*ReceiptSnapshot, error)
	NotificationByID(ctx context.Context, id uuid.UUID) (*NotificationSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, q db.DBTX, b *booking.Booking) error
	// UpdateStatusFrom performs the conditional status write. Zero affected
	// rows means the booking was not in `from` anymore (race lost or gone).
	UpdateStatusFrom(ctx context.Context, q db.DBTX, id uuid.UUID, from, to booking.Status) (int64, error)
	UpdateDetails(ctx context.Context, q db.DBTX, id uuid.UUID, weight decimal.Decimal, notes string, totalPrice money.Money) error
}

type OrderRepository interface {
	Create(ctx context.Context, q db.DBTX, o *order.Order) error
	UpdateStatus(ctx context.Context, q db.DBTX, id uuid.UUID, status order.Status) error
	UpdateTotalCost(ctx context.Context, q db.DBTX, id uuid.UUID, total money.Money) error
}

type ReceiptRepository interface {
	Create(ctx context.Context, q db.DBTX, r *receipt.Receipt) error
	Resync(ctx context.Context, q db.DBTX, id uuid.UUID, subtotal, total money.Money) error
}

type UserRepository interface {
	Create(ctx context.Context, q db.DBTX, u *user.User) error
	UpdateProfile(ctx context.Context, q db.DBTX, u *user.User) error
	UpdatePassword(ctx context.Context, q db.DBTX, id uuid.UUID, passwordHash string) error
	SetProviderStatus(ctx context.Context, q db.DBTX, id uuid.UUID, status user.ProviderStatus) error
	SetAvailability(ctx context.Context, q db.DBTX, id uuid.UUID, available bool) error
	SetBanned(ctx context.Context, q db.DBTX, id uuid.UUID, banned bool) error
}

type CategoryRepository interface {
	Create(ctx context.Context, q db.DBTX, c *category.Category) error
	Update(ctx context.Context, q db.DBTX, c *category.Category) error
	Delete(ctx context.Context, q db.DBTX, id uuid.UUID) error
}
