package commands

import (
	"context"
	"errors"
	"log/slog"

	"laundryhub/internal/domain/booking"
	"laundryhub/internal/domain/notification"
	"laundryhub/internal/domain/order"
	"laundryhub/internal/domain/receipt"
	reqdto "laundryhub/internal/handler/dto/request"
	"laundryhub/internal/infra"
	"laundryhub/internal/pkg/clock"
	"laundryhub/internal/pkg/errs"
	"laundryhub/internal/pkg/money"
	"laundryhub/internal/usecase/queries"
	"laundryhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound         = errs.New("booking not found")
	ErrCategoryNotFound        = errs.New("category not found")
	ErrProviderNotFound        = errs.New("provider not found")
	ErrProviderUnavailable     = errs.New("provider is not accepting bookings")
	ErrNotBookingOwner         = errs.New("booking belongs to someone else")
	ErrInvalidWeight           = errs.New("invalid weight for this category")
	ErrInvalidTransition       = errs.New("invalid booking status transition")
	ErrBookingConflict         = errs.New("booking was modified concurrently")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingCommands interface {
	Create(ctx context.Context, customerID uuid.UUID, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	Accept(ctx context.Context, providerID, bookingID uuid.UUID) (*queries.BookingView, error)
	Reject(ctx context.Context, providerID, bookingID uuid.UUID) (*queries.BookingView, error)
	ConfirmPayment(ctx context.Context, providerID, bookingID uuid.UUID) (*queries.BookingView, error)
	UpdateStatus(ctx context.Context, providerID, bookingID uuid.UUID, status string) (*queries.BookingView, error)
	UpdateDetails(ctx context.Context, providerID, bookingID uuid.UUID, req reqdto.UpdateBookingDetailsRequest) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	notifications  NotificationWriter
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	notifications NotificationWriter,
	bookingQueries queries.BookingQueries,
	clock clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		notifications:  notifications,
		bookingQueries: bookingQueries,
		clock:          clock,
	}
}

func (u *bookingUseCaseImpl) Create(ctx context.Context, customerID uuid.UUID, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	reads := u.uow.CommandReads()

	catSnap, err := reads.CategoryByID(ctx, req.CategoryID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	cat, err := categoryFromSnapshot(catSnap)
	if err != nil {
		return nil, errs.Mark(err, ErrCategoryNotFound)
	}

	providerSnap, err := reads.UserByID(ctx, req.ProviderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	provider, err := userFromSnapshot(providerSnap)
	if err != nil {
		return nil, errs.Mark(err, ErrProviderNotFound)
	}

	b, err := booking.NewBooking(customerID, provider, cat, req.Weight, req.Notes, u.clock.Now())
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrProviderUnavailable):
			return nil, ErrProviderUnavailable
		case errors.Is(err, booking.ErrCategoryNotOwned):
			return nil, ErrCategoryNotFound
		default:
			return nil, errs.Mark(err, ErrInvalidWeight)
		}
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, tx.DB(), b)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	customerSnap, custErr := reads.UserByID(ctx, customerID)
	customerName := ""
	if custErr == nil {
		customerName = customerSnap.FullName
	}
	u.notify(ctx, notification.New(provider.ID(), notification.TypeBookingCreated,
		notification.BookingCreatedMessage(customerName, cat.Name(), b.TotalPrice())).WithBooking(b.ID()))
	u.notify(ctx, notification.New(customerID, notification.TypeBookingCreated,
		notification.BookingPlacedMessage(provider.ShopName(), cat.Name(), b.TotalPrice())).WithBooking(b.ID()))

	return u.bookingQueries.GetByID(ctx, b.ID())
}

// Accept confirms a pending booking and derives its order and receipt in the
// same transaction. Generation is idempotent: an existing order short-circuits
// the derived writes.
func (u *bookingUseCaseImpl) Accept(ctx context.Context, providerID, bookingID uuid.UUID) (*queries.BookingView, error) {
	snap, err := u.loadOwnedBooking(ctx, bookingID, providerID)
	if err != nil {
		return nil, err
	}
	if err := guardTransition(booking.Status(snap.Status), booking.StatusConfirmed); err != nil {
		return nil, err
	}

	price, err := money.FromDecimal(snap.TotalPrice)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Bookings().UpdateStatusFrom(ctx, tx.DB(), bookingID, booking.StatusPending, booking.StatusConfirmed)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrBookingConflict
		}
		return u.generateDerivedRecords(ctx, tx, snap, price)
	})
	if err != nil {
		if errors.Is(err, ErrBookingConflict) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.notifyStatus(ctx, snap, booking.StatusConfirmed, price)
	return u.bookingQueries.GetByID(ctx, bookingID)
}

func (u *bookingUseCaseImpl) Reject(ctx context.Context, providerID, bookingID uuid.UUID) (*queries.BookingView, error) {
	snap, err := u.loadOwnedBooking(ctx, bookingID, providerID)
	if err != nil {
		return nil, err
	}
	if err := guardTransition(booking.Status(snap.Status), booking.StatusRejected); err != nil {
		return nil, err
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Bookings().UpdateStatusFrom(ctx, tx.DB(), bookingID, booking.StatusPending, booking.StatusRejected)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrBookingConflict
		}
		return u.cancelDerivedOrder(ctx, tx, bookingID)
	})
	if err != nil {
		if errors.Is(err, ErrBookingConflict) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.notifyStatus(ctx, snap, booking.StatusRejected, money.Zero())
	return u.bookingQueries.GetByID(ctx, bookingID)
}

// ConfirmPayment records that the provider verified the customer's payment
// and moves the booking into processing.
func (u *bookingUseCaseImpl) ConfirmPayment(ctx context.Context, providerID, bookingID uuid.UUID) (*queries.BookingView, error) {
	snap, err := u.loadOwnedBooking(ctx, bookingID, providerID)
	if err != nil {
		return nil, err
	}
	if booking.Status(snap.Status) != booking.StatusConfirmed {
		return nil, ErrInvalidTransition
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Bookings().UpdateStatusFrom(ctx, tx.DB(), bookingID, booking.StatusConfirmed, booking.StatusInProgress)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrBookingConflict
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingConflict) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	price, _ := money.FromDecimal(snap.TotalPrice)
	u.notifyStatus(ctx, snap, booking.StatusInProgress, price)
	return u.bookingQueries.GetByID(ctx, bookingID)
}

func (u *bookingUseCaseImpl) UpdateStatus(ctx context.Context, providerID, bookingID uuid.UUID, status string) (*queries.BookingView, error) {
	next, err := booking.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTransition)
	}

	snap, err := u.loadOwnedBooking(ctx, bookingID, providerID)
	if err != nil {
		return nil, err
	}
	// The generic transition only refuses to leave a terminal state; the
	// target is free so providers can mark ready/completed out of band.
	current := booking.Status(snap.Status)
	if current.IsTerminal() {
		return nil, ErrInvalidTransition
	}

	price, err := money.FromDecimal(snap.TotalPrice)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Bookings().UpdateStatusFrom(ctx, tx.DB(), bookingID, current, next)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrBookingConflict
		}
		switch next {
		case booking.StatusConfirmed:
			return u.generateDerivedRecords(ctx, tx, snap, price)
		case booking.StatusCompleted:
			return u.completeDerivedOrder(ctx, tx, bookingID)
		case booking.StatusRejected:
			return u.cancelDerivedOrder(ctx, tx, bookingID)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingConflict) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.notifyStatus(ctx, snap, next, price)
	return u.bookingQueries.GetByID(ctx, bookingID)
}

// UpdateDetails edits weight and notes on a live booking, repricing it and
// resyncing the derived order and receipt when they exist.
func (u *bookingUseCaseImpl) UpdateDetails(ctx context.Context, providerID, bookingID uuid.UUID, req reqdto.UpdateBookingDetailsRequest) (*queries.BookingView, error) {
	snap, err := u.loadOwnedBooking(ctx, bookingID, providerID)
	if err != nil {
		return nil, err
	}

	catSnap, err := u.uow.CommandReads().CategoryByID(ctx, snap.CategoryID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	cat, err := categoryFromSnapshot(catSnap)
	if err != nil {
		return nil, errs.Mark(err, ErrCategoryNotFound)
	}

	b, err := bookingFromSnapshot(snap)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	// Nil fields keep their stored values; repricing happens only on a
	// weight change.
	notes := b.Notes()
	if req.Notes != nil {
		notes = *req.Notes
	}
	if req.Weight != nil {
		err = b.UpdateDetails(cat, *req.Weight, notes)
	} else {
		err = b.UpdateNotes(notes)
	}
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingTerminal):
			return nil, ErrInvalidTransition
		default:
			return nil, errs.Mark(err, ErrInvalidWeight)
		}
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().UpdateDetails(ctx, tx.DB(), bookingID, b.Weight(), b.Notes(), b.TotalPrice()); err != nil {
			return err
		}
		return u.resyncDerivedRecords(ctx, tx, bookingID, b.TotalPrice())
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.notify(ctx, notification.New(snap.CustomerID, notification.TypeBookingUpdated,
		notification.DetailsUpdatedMessage(cat.Name(), b.TotalPrice())).WithBooking(bookingID))

	return u.bookingQueries.GetByID(ctx, bookingID)
}

func (u *bookingUseCaseImpl) loadOwnedBooking(ctx context.Context, bookingID, providerID uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, err := u.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.ProviderID != providerID {
		return nil, ErrNotBookingOwner
	}
	return snap, nil
}

func guardTransition(current, next booking.Status) error {
	if current.IsTerminal() {
		return ErrInvalidTransition
	}
	if !current.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	return nil
}

func (u *bookingUseCaseImpl) generateDerivedRecords(ctx context.Context, tx shared.Tx, snap *shared.BookingSnapshot, price money.Money) error {
	existing, err := tx.Reads().OrderByBookingID(ctx, snap.ID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return err
	}
	if existing != nil {
		return nil
	}

	o := order.FromBooking(snap.ID, snap.CustomerID, snap.ProviderID, snap.Notes, price)
	if err := tx.Orders().Create(ctx, tx.DB(), o); err != nil {
		return err
	}

	r := receipt.FromOrder(o.ID(), snap.CustomerID, snap.ProviderID, price)
	return tx.Receipts().Create(ctx, tx.DB(), r)
}

func (u *bookingUseCaseImpl) cancelDerivedOrder(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) error {
	existing, err := tx.Reads().OrderByBookingID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	return tx.Orders().UpdateStatus(ctx, tx.DB(), existing.ID, order.StatusCancelled)
}

func (u *bookingUseCaseImpl) completeDerivedOrder(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) error {
	existing, err := tx.Reads().OrderByBookingID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	return tx.Orders().UpdateStatus(ctx, tx.DB(), existing.ID, order.StatusCompleted)
}

func (u *bookingUseCaseImpl) resyncDerivedRecords(ctx context.Context, tx shared.Tx, bookingID uuid.UUID, price money.Money) error {
	existing, err := tx.Reads().OrderByBookingID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Orders().UpdateTotalCost(ctx, tx.DB(), existing.ID, price); err != nil {
		return err
	}

	rcpt, err := tx.Reads().ReceiptByOrderID(ctx, existing.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	fee, err := money.FromDecimal(rcpt.DeliveryFee)
	if err != nil {
		return err
	}
	return tx.Receipts().Resync(ctx, tx.DB(), rcpt.ID, price, price.Add(fee))
}

func (u *bookingUseCaseImpl) notifyStatus(ctx context.Context, snap *shared.BookingSnapshot, status booking.Status, price money.Money) {
	categoryName := ""
	if catSnap, err := u.uow.CommandReads().CategoryByID(ctx, snap.CategoryID); err == nil {
		categoryName = catSnap.Name
	}
	u.notify(ctx, notification.New(snap.CustomerID, notification.TypeBookingUpdated,
		notification.StatusMessage(categoryName, status, price)).WithBooking(snap.ID))
}

func (u *bookingUseCaseImpl) notify(ctx context.Context, n *notification.Notification) {
	if err := u.notifications.Create(ctx, n); err != nil {
		slog.Warn("failed to write notification",
			"user_id", n.UserID(),
			"type", n.Kind(),
			"error", err)
	}
}

func bookingFromSnapshot(s *shared.BookingSnapshot) (*booking.Booking, error) {
	price, err := money.FromDecimal(s.TotalPrice)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(
		s.ID, s.CustomerID, s.ProviderID, s.CategoryID,
		s.Weight, price, s.ScheduleAt, booking.Status(s.Status), s.Notes, s.CreatedAt,
	), nil
}
