package order

import (
	"errors"
	"time"

	"laundryhub/internal/pkg/money"

	"github.com/google/uuid"
)

var ErrOrderClosed = errors.New("order is already closed")

// Status of a booking-derived order. Orders are created confirmed when the
// provider accepts the booking and only ever move to cancelled or completed.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

type DeliveryOption string

const (
	DeliveryDropoff DeliveryOption = "dropoff"
	DeliveryPickup  DeliveryOption = "pickup"
)

// Order is the fulfillment record derived from an accepted booking. Exactly
// one exists per booking.
type Order struct {
	id             uuid.UUID
	bookingID      uuid.UUID
	customerID     uuid.UUID
	providerID     uuid.UUID
	status         Status
	deliveryOption DeliveryOption
	notes          string
	totalCost      money.Money
	createdAt      time.Time
}

// FromBooking derives the order for an accepted booking, copying its notes
// and price snapshot.
func FromBooking(bookingID, customerID, providerID uuid.UUID, notes string, totalCost money.Money) *Order {
	return &Order{
		id:             uuid.New(),
		bookingID:      bookingID,
		customerID:     customerID,
		providerID:     providerID,
		status:         StatusConfirmed,
		deliveryOption: DeliveryDropoff,
		notes:          notes,
		totalCost:      totalCost,
	}
}

func Reconstruct(id, bookingID, customerID, providerID uuid.UUID, status Status, deliveryOption DeliveryOption, notes string, totalCost money.Money, createdAt time.Time) *Order {
	return &Order{
		id:             id,
		bookingID:      bookingID,
		customerID:     customerID,
		providerID:     providerID,
		status:         status,
		deliveryOption: deliveryOption,
		notes:          notes,
		totalCost:      totalCost,
		createdAt:      createdAt,
	}
}

func (o *Order) ID() uuid.UUID                  { return o.id }
func (o *Order) BookingID() uuid.UUID           { return o.bookingID }
func (o *Order) CustomerID() uuid.UUID          { return o.customerID }
func (o *Order) ProviderID() uuid.UUID          { return o.providerID }
func (o *Order) Status() Status                 { return o.status }
func (o *Order) DeliveryOption() DeliveryOption { return o.deliveryOption }
func (o *Order) Notes() string                  { return o.notes }
func (o *Order) TotalCost() money.Money         { return o.totalCost }
func (o *Order) CreatedAt() time.Time           { return o.createdAt }

func (o *Order) Cancel() error {
	if o.status != StatusConfirmed {
		return ErrOrderClosed
	}
	o.status = StatusCancelled
	return nil
}

func (o *Order) Complete() error {
	if o.status != StatusConfirmed {
		return ErrOrderClosed
	}
	o.status = StatusCompleted
	return nil
}

// SetTotalCost resyncs the order with a repriced booking.
func (o *Order) SetTotalCost(total money.Money) {
	o.totalCost = total
}
