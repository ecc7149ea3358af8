package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type BookingView struct {
	ID              uuid.UUID       `json:"id"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	ProviderID      uuid.UUID       `json:"provider_id"`
	ShopName        string          `json:"shop_name"`
	ShopAddress     string          `json:"shop_address"`
	ProviderContact string          `json:"provider_contact"`
	CategoryID      uuid.UUID       `json:"category_id"`
	CategoryName    string          `json:"category_name"`
	PricingType     string          `json:"pricing_type"`
	Weight          decimal.Decimal `json:"weight"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	ScheduleAt      time.Time       `json:"schedule_at"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type CategoryView struct {
	ID          uuid.UUID        `json:"id"`
	ProviderID  uuid.UUID        `json:"provider_id"`
	ShopName    string           `json:"shop_name"`
	Name        string           `json:"name"`
	PricingType string           `json:"pricing_type"`
	Price       decimal.Decimal  `json:"price"`
	MinKilo     *decimal.Decimal `json:"min_kilo,omitempty"`
	MaxKilo     *decimal.Decimal `json:"max_kilo,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

type OrderView struct {
	ID             uuid.UUID       `json:"id"`
	BookingID      uuid.UUID       `json:"booking_id"`
	CustomerID     uuid.UUID       `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	ProviderID     uuid.UUID       `json:"provider_id"`
	ShopName       string          `json:"shop_name"`
	Status         string          `json:"status"`
	DeliveryOption string          `json:"delivery_option"`
	Notes          string          `json:"notes,omitempty"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	CreatedAt      time.Time       `json:"created_at"`
}

type ReceiptView struct {
	ID           uuid.UUID       `json:"id"`
	OrderID      uuid.UUID       `json:"order_id"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	ProviderID   uuid.UUID       `json:"provider_id"`
	ShopName     string          `json:"shop_name"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	DeliveryFee  decimal.Decimal `json:"delivery_fee"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    time.Time       `json:"created_at"`
}

type NotificationView struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	Message   string     `json:"message"`
	Read      bool       `json:"read"`
	BookingID *uuid.UUID `json:"booking_id,omitempty"`
	ReceiptID *uuid.UUID `json:"receipt_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type ProviderView struct {
	ID          uuid.UUID `json:"id"`
	ShopName    string    `json:"shop_name"`
	ShopAddress string    `json:"shop_address"`
	Contact     string    `json:"contact_number"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

type UserView struct {
	ID             uuid.UUID `json:"id"`
	Role           string    `json:"role"`
	Email          string    `json:"email"`
	ContactNumber  string    `json:"contact_number"`
	FullName       string    `json:"full_name,omitempty"`
	Address        string    `json:"address,omitempty"`
	ShopName       string    `json:"shop_name,omitempty"`
	ShopAddress    string    `json:"shop_address,omitempty"`
	ProviderStatus *string   `json:"provider_status,omitempty"`
	IsAvailable    bool      `json:"is_available"`
	Banned         bool      `json:"banned"`
	CreatedAt      time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Banned bool      `json:"banned"`
}

type AdminStatsView struct {
	TotalCustomers   int64           `json:"total_customers"`
	TotalProviders   int64           `json:"total_providers"`
	PendingProviders int64           `json:"pending_providers"`
	TotalBookings    int64           `json:"total_bookings"`
	CompletedOrders  int64           `json:"completed_orders"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
}
