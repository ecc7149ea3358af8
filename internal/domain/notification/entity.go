package notification

import (
	"fmt"
	"time"

	"laundryhub/internal/domain/booking"
	"laundryhub/internal/pkg/money"

	"github.com/google/uuid"
)

type Type string

const (
	TypeBookingCreated Type = "booking_created"
	TypeBookingUpdated Type = "booking_updated"
	TypeReceiptIssued  Type = "receipt_issued"
	TypeAccountUpdated Type = "account_updated"
)

// Notification is an in-app message row. Delivery is best effort; writers
// log failures and never fail the triggering operation.
type Notification struct {
	id        uuid.UUID
	userID    uuid.UUID
	kind      Type
	message   string
	read      bool
	bookingID *uuid.UUID
	receiptID *uuid.UUID
	createdAt time.Time
}

func New(userID uuid.UUID, kind Type, message string) *Notification {
	return &Notification{
		id:      uuid.New(),
		userID:  userID,
		kind:    kind,
		message: message,
	}
}

func (n *Notification) WithBooking(bookingID uuid.UUID) *Notification {
	n.bookingID = &bookingID
	return n
}

func (n *Notification) WithReceipt(receiptID uuid.UUID) *Notification {
	n.receiptID = &receiptID
	return n
}

func Reconstruct(id, userID uuid.UUID, kind Type, message string, read bool, bookingID, receiptID *uuid.UUID, createdAt time.Time) *Notification {
	return &Notification{
		id:        id,
		userID:    userID,
		kind:      kind,
		message:   message,
		read:      read,
		bookingID: bookingID,
		receiptID: receiptID,
		createdAt: createdAt,
	}
}

func (n *Notification) ID() uuid.UUID        { return n.id }
func (n *Notification) UserID() uuid.UUID    { return n.userID }
func (n *Notification) Kind() Type           { return n.kind }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Read() bool           { return n.read }
func (n *Notification) BookingID() *uuid.UUID { return n.bookingID }
func (n *Notification) ReceiptID() *uuid.UUID { return n.receiptID }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

func (n *Notification) MarkRead() {
	n.read = true
}

// BookingCreatedMessage is sent to the provider when a customer books.
func BookingCreatedMessage(customerName, categoryName string, price money.Money) string {
	return fmt.Sprintf("%s booked your %s service for PHP %s", customerName, categoryName, price)
}

// BookingPlacedMessage is sent to the customer confirming their request.
func BookingPlacedMessage(shopName, categoryName string, price money.Money) string {
	return fmt.Sprintf("Your %s booking with %s was placed for PHP %s and is awaiting confirmation", categoryName, shopName, price)
}

// StatusMessage is sent to the customer on every lifecycle transition.
func StatusMessage(categoryName string, status booking.Status, price money.Money) string {
	switch status {
	case booking.StatusConfirmed:
		return fmt.Sprintf("Your %s booking was accepted. Total: PHP %s", categoryName, price)
	case booking.StatusRejected:
		return fmt.Sprintf("Your %s booking was declined by the provider", categoryName)
	case booking.StatusInProgress:
		return fmt.Sprintf("Payment received. Your %s laundry is now being processed", categoryName)
	case booking.StatusReady:
		return fmt.Sprintf("Your %s laundry is ready for pickup", categoryName)
	case booking.StatusCompleted:
		return fmt.Sprintf("Your %s booking is complete. Thank you!", categoryName)
	default:
		return fmt.Sprintf("Your %s booking is now %s", categoryName, status)
	}
}

// DetailsUpdatedMessage is sent to the customer when the provider edits a
// booking's weight or notes.
func DetailsUpdatedMessage(categoryName string, price money.Money) string {
	return fmt.Sprintf("Your %s booking was updated. New total: PHP %s", categoryName, price)
}
