package booking

import (
	"errors"
	"time"

	"laundryhub/internal/domain/category"
	"laundryhub/internal/domain/user"
	"laundryhub/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProviderUnavailable = errors.New("provider is not accepting bookings")
	ErrCategoryNotOwned    = errors.New("category does not belong to the provider")
	ErrNotBookingProvider  = errors.New("booking belongs to a different provider")
	ErrNotBookingCustomer  = errors.New("booking belongs to a different customer")
)

// Booking is a customer's request for a provider's category. The price is a
// snapshot computed at creation (and on weight edits); category changes never
// reprice existing bookings.
type Booking struct {
	id         uuid.UUID
	customerID uuid.UUID
	providerID uuid.UUID
	categoryID uuid.UUID
	weight     decimal.Decimal
	totalPrice money.Money
	scheduleAt time.Time
	status     Status
	notes      string
	createdAt  time.Time
}

// NewBooking validates the provider/category pair and snapshots the computed
// price. The caller passes scheduleAt from the server clock.
func NewBooking(customerID uuid.UUID, provider *user.User, cat *category.Category, weight decimal.Decimal, notes string, scheduleAt time.Time) (*Booking, error) {
	if !provider.CanReceiveBookings() {
		return nil, ErrProviderUnavailable
	}
	if cat.ProviderID() != provider.ID() {
		return nil, ErrCategoryNotOwned
	}

	price, err := cat.PriceFor(weight)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:         uuid.New(),
		customerID: customerID,
		providerID: provider.ID(),
		categoryID: cat.ID(),
		weight:     weight,
		totalPrice: price,
		scheduleAt: scheduleAt,
		status:     StatusPending,
		notes:      notes,
	}, nil
}

func Reconstruct(
	id, customerID, providerID, categoryID uuid.UUID,
	weight decimal.Decimal,
	totalPrice money.Money,
	scheduleAt time.Time,
	status Status,
	notes string,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		customerID: customerID,
		providerID: providerID,
		categoryID: categoryID,
		weight:     weight,
		totalPrice: totalPrice,
		scheduleAt: scheduleAt,
		status:     status,
		notes:      notes,
		createdAt:  createdAt,
	}
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) CustomerID() uuid.UUID   { return b.customerID }
func (b *Booking) ProviderID() uuid.UUID   { return b.providerID }
func (b *Booking) CategoryID() uuid.UUID   { return b.categoryID }
func (b *Booking) Weight() decimal.Decimal { return b.weight }
func (b *Booking) TotalPrice() money.Money { return b.totalPrice }
func (b *Booking) ScheduleAt() time.Time   { return b.scheduleAt }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) Notes() string           { return b.notes }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }

// Accept moves a pending booking to confirmed.
func (b *Booking) Accept() error {
	return b.transition(StatusConfirmed)
}

// Reject moves a pending booking to rejected.
func (b *Booking) Reject() error {
	return b.transition(StatusRejected)
}

// ConfirmPayment moves a confirmed booking to in_progress.
func (b *Booking) ConfirmPayment() error {
	if b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	return b.transition(StatusInProgress)
}

// TransitionTo applies a provider-driven status change. Any valid target is
// accepted from a non-terminal source; terminal statuses admit none.
func (b *Booking) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if b.status.IsTerminal() {
		return ErrBookingTerminal
	}
	b.status = next
	return nil
}

func (b *Booking) transition(next Status) error {
	if b.status.IsTerminal() {
		return ErrBookingTerminal
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

// UpdateDetails changes weight and notes on a live booking and reprices it
// against its category. Terminal bookings cannot be edited.
func (b *Booking) UpdateDetails(cat *category.Category, weight decimal.Decimal, notes string) error {
	if b.status.IsTerminal() {
		return ErrBookingTerminal
	}
	if cat.ID() != b.categoryID {
		return ErrCategoryNotOwned
	}

	price, err := cat.PriceFor(weight)
	if err != nil {
		return err
	}

	b.weight = weight
	b.notes = notes
	b.totalPrice = price
	return nil
}

// UpdateNotes edits the notes without repricing.
func (b *Booking) UpdateNotes(notes string) error {
	if b.status.IsTerminal() {
		return ErrBookingTerminal
	}
	b.notes = notes
	return nil
}
