package receipt

import (
	"time"

	"laundryhub/internal/pkg/money"

	"github.com/google/uuid"
)

// Receipt is the billing record derived from an order. Exactly one exists per
// order. The delivery fee path exists in the schema but bookings never set it.
type Receipt struct {
	id          uuid.UUID
	orderID     uuid.UUID
	customerID  uuid.UUID
	providerID  uuid.UUID
	subtotal    money.Money
	deliveryFee money.Money
	total       money.Money
	createdAt   time.Time
}

// FromOrder derives the receipt for an order: subtotal and total equal the
// booking price, delivery fee is zero.
func FromOrder(orderID, customerID, providerID uuid.UUID, subtotal money.Money) *Receipt {
	return &Receipt{
		id:          uuid.New(),
		orderID:     orderID,
		customerID:  customerID,
		providerID:  providerID,
		subtotal:    subtotal,
		deliveryFee: money.Zero(),
		total:       subtotal,
	}
}

func Reconstruct(id, orderID, customerID, providerID uuid.UUID, subtotal, deliveryFee, total money.Money, createdAt time.Time) *Receipt {
	return &Receipt{
		id:          id,
		orderID:     orderID,
		customerID:  customerID,
		providerID:  providerID,
		subtotal:    subtotal,
		deliveryFee: deliveryFee,
		total:       total,
		createdAt:   createdAt,
	}
}

func (r *Receipt) ID() uuid.UUID           { return r.id }
func (r *Receipt) OrderID() uuid.UUID      { return r.orderID }
func (r *Receipt) CustomerID() uuid.UUID   { return r.customerID }
func (r *Receipt) ProviderID() uuid.UUID   { return r.providerID }
func (r *Receipt) Subtotal() money.Money   { return r.subtotal }
func (r *Receipt) DeliveryFee() money.Money { return r.deliveryFee }
func (r *Receipt) Total() money.Money      { return r.total }
func (r *Receipt) CreatedAt() time.Time    { return r.createdAt }

// Resync updates the receipt after a booking reprice. The delivery fee is
// preserved and the total recomputed.
func (r *Receipt) Resync(subtotal money.Money) {
	r.subtotal = subtotal
	r.total = subtotal.Add(r.deliveryFee)
}
