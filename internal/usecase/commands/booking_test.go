//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"laundryhub/internal/domain/booking"
	"laundryhub/internal/domain/category"
	"laundryhub/internal/domain/notification"
	"laundryhub/internal/domain/order"
	"laundryhub/internal/domain/receipt"
	"laundryhub/internal/domain/user"
	reqdto "laundryhub/internal/handler/dto/request"
	"laundryhub/internal/infra"
	"laundryhub/internal/infra/db"
	"laundryhub/internal/pkg/clock"
	"laundryhub/internal/pkg/money"
	"laundryhub/internal/usecase/queries"
	"laundryhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }

// ================================================================================
// In-memory fakes
// ================================================================================

type fakeState struct {
	bookings   map[uuid.UUID]*shared.BookingSnapshot
	categories map[uuid.UUID]*shared.CategorySnapshot
	users      map[uuid.UUID]*shared.UserSnapshot
	orders     map[uuid.UUID]*shared.OrderSnapshot
	receipts   map[uuid.UUID]*shared.ReceiptSnapshot

	orderCreates   int
	receiptCreates int
	// forceConflict makes the next conditional status write report zero rows
	forceConflict bool
}

func newFakeState() *fakeState {
	return &fakeState{
		bookings:   map[uuid.UUID]*shared.BookingSnapshot{},
		categories: map[uuid.UUID]*shared.CategorySnapshot{},
		users:      map[uuid.UUID]*shared.UserSnapshot{},
		orders:     map[uuid.UUID]*shared.OrderSnapshot{},
		receipts:   map[uuid.UUID]*shared.ReceiptSnapshot{},
	}
}

func notFoundErr(string) error {
	return infra.RepositoryError{Kind: infra.KindNotFound}
}

type fakeReads struct{ s *fakeState }

func (r *fakeReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	if b, ok := r.s.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, notFoundErr("booking")
}

func (r *fakeReads) CategoryByID(_ context.Context, id uuid.UUID) (*shared.CategorySnapshot, error) {
	if c, ok := r.s.categories[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, notFoundErr("category")
}

func (r *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if u, ok := r.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, notFoundErr("user")
}

func (r *fakeReads) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, notFoundErr("user")
}

func (r *fakeReads) OrderByBookingID(_ context.Context, bookingID uuid.UUID) (*shared.OrderSnapshot, error) {
	for _, o := range r.s.orders {
		if o.BookingID == bookingID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, notFoundErr("order")
}

func (r *fakeReads) ReceiptByOrderID(_ context.Context, orderID uuid.UUID) (*shared.ReceiptSnapshot, error) {
	for _, rc := range r.s.receipts {
		if rc.OrderID == orderID {
			cp := *rc
			return &cp, nil
		}
	}
	return nil, notFoundErr("receipt")
}

func (r *fakeReads) NotificationByID(_ context.Context, _ uuid.UUID) (*shared.NotificationSnapshot, error) {
	return nil, notFoundErr("notification")
}

type fakeBookingRepo struct{ s *fakeState }

func (f *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) error {
	f.s.bookings[b.ID()] = &shared.BookingSnapshot{
		ID:         b.ID(),
		CustomerID: b.CustomerID(),
		ProviderID: b.ProviderID(),
		CategoryID: b.CategoryID(),
		Weight:     b.Weight(),
		TotalPrice: b.TotalPrice().Decimal(),
		ScheduleAt: b.ScheduleAt(),
		Status:     b.Status().String(),
		Notes:      b.Notes(),
	}
	return nil
}

func (f *fakeBookingRepo) UpdateStatusFrom(_ context.Context, _ db.DBTX, id uuid.UUID, from, to booking.Status) (int64, error) {
	if f.s.forceConflict {
		f.s.forceConflict = false
		return 0, nil
	}
	b, ok := f.s.bookings[id]
	if !ok || b.Status != from.String() {
		return 0, nil
	}
	b.Status = to.String()
	return 1, nil
}

func (f *fakeBookingRepo) UpdateDetails(_ context.Context, _ db.DBTX, id uuid.UUID, weight decimal.Decimal, notes string, totalPrice money.Money) error {
	b, ok := f.s.bookings[id]
	if !ok {
		return notFoundErr("booking")
	}
	b.Weight = weight
	b.Notes = notes
	b.TotalPrice = totalPrice.Decimal()
	return nil
}

type fakeOrderRepo struct{ s *fakeState }

func (f *fakeOrderRepo) Create(_ context.Context, _ db.DBTX, o *order.Order) error {
	f.s.orderCreates++
	f.s.orders[o.ID()] = &shared.OrderSnapshot{
		ID:        o.ID(),
		BookingID: o.BookingID(),
		Status:    o.Status().String(),
		TotalCost: o.TotalCost().Decimal(),
	}
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status order.Status) error {
	o, ok := f.s.orders[id]
	if !ok {
		return notFoundErr("order")
	}
	o.Status = status.String()
	return nil
}

func (f *fakeOrderRepo) UpdateTotalCost(_ context.Context, _ db.DBTX, id uuid.UUID, total money.Money) error {
	o, ok := f.s.orders[id]
	if !ok {
		return notFoundErr("order")
	}
	o.TotalCost = total.Decimal()
	return nil
}

type fakeReceiptRepo struct{ s *fakeState }

func (f *fakeReceiptRepo) Create(_ context.Context, _ db.DBTX, r *receipt.Receipt) error {
	f.s.receiptCreates++
	f.s.receipts[r.ID()] = &shared.ReceiptSnapshot{
		ID:          r.ID(),
		OrderID:     r.OrderID(),
		DeliveryFee: r.DeliveryFee().Decimal(),
	}
	return nil
}

func (f *fakeReceiptRepo) Resync(_ context.Context, _ db.DBTX, id uuid.UUID, subtotal, total money.Money) error {
	if _, ok := f.s.receipts[id]; !ok {
		return notFoundErr("receipt")
	}
	f.s.receipts[id].DeliveryFee = total.Decimal().Sub(subtotal.Decimal())
	return nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) Create(context.Context, db.DBTX, *user.User) error        { return nil }
func (fakeUserRepo) UpdateProfile(context.Context, db.DBTX, *user.User) error { return nil }
func (fakeUserRepo) UpdatePassword(context.Context, db.DBTX, uuid.UUID, string) error {
	return nil
}
func (fakeUserRepo) SetProviderStatus(context.Context, db.DBTX, uuid.UUID, user.ProviderStatus) error {
	return nil
}
func (fakeUserRepo) SetAvailability(context.Context, db.DBTX, uuid.UUID, bool) error { return nil }
func (fakeUserRepo) SetBanned(context.Context, db.DBTX, uuid.UUID, bool) error       { return nil }

type fakeCategoryRepo struct{}

func (fakeCategoryRepo) Create(context.Context, db.DBTX, *category.Category) error { return nil }
func (fakeCategoryRepo) Update(context.Context, db.DBTX, *category.Category) error { return nil }
func (fakeCategoryRepo) Delete(context.Context, db.DBTX, uuid.UUID) error          { return nil }

type fakeTx struct{ s *fakeState }

func (t *fakeTx) Bookings() shared.BookingRepository   { return &fakeBookingRepo{s: t.s} }
func (t *fakeTx) Orders() shared.OrderRepository       { return &fakeOrderRepo{s: t.s} }
func (t *fakeTx) Receipts() shared.ReceiptRepository   { return &fakeReceiptRepo{s: t.s} }
func (t *fakeTx) Users() shared.UserRepository         { return fakeUserRepo{} }
func (t *fakeTx) Categories() shared.CategoryRepository { return fakeCategoryRepo{} }
func (t *fakeTx) Reads() shared.CommandReads           { return &fakeReads{s: t.s} }
func (t *fakeTx) DB() db.DBTX                          { return nil }

type fakeUow struct{ s *fakeState }

func (u *fakeUow) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{s: u.s})
}

func (u *fakeUow) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, q db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUow) WithDB(ctx context.Context, fn func(ctx context.Context, q db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUow) CommandReads() shared.CommandReads { return &fakeReads{s: u.s} }

type fakeNotifications struct {
	created []*notification.Notification
}

func (f *fakeNotifications) Create(_ context.Context, n *notification.Notification) error {
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotifications) MarkRead(context.Context, uuid.UUID) error { return nil }

type fakeBookingQueries struct{ s *fakeState }

func (f *fakeBookingQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	b, ok := f.s.bookings[id]
	if !ok {
		return nil, notFoundErr("booking")
	}
	return &queries.BookingView{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		ProviderID: b.ProviderID,
		CategoryID: b.CategoryID,
		Weight:     b.Weight,
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
		Notes:      b.Notes,
	}, nil
}

func (f *fakeBookingQueries) ListByCustomer(context.Context, uuid.UUID) ([]*queries.BookingView, error) {
	return nil, nil
}

func (f *fakeBookingQueries) ListByProvider(context.Context, uuid.UUID) ([]*queries.BookingView, error) {
	return nil, nil
}

func (f *fakeBookingQueries) ListAll(context.Context) ([]*queries.BookingView, error) {
	return nil, nil
}

// ================================================================================
// Fixture
// ================================================================================

type fixture struct {
	state         *fakeState
	notifications *fakeNotifications
	uc            BookingCommands

	customerID uuid.UUID
	providerID uuid.UUID
	categoryID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	state := newFakeState()
	notifications := &fakeNotifications{}

	f := &fixture{
		state:         state,
		notifications: notifications,
		customerID:    uuid.New(),
		providerID:    uuid.New(),
		categoryID:    uuid.New(),
	}

	approved := user.ProviderApproved.String()
	state.users[f.providerID] = &shared.UserSnapshot{
		ID:             f.providerID,
		Role:           "provider",
		Email:          "shop@example.com",
		ContactNumber:  "0917-555-0101",
		ShopName:       "Sparkle Laundry",
		ShopAddress:    "12 Rizal St",
		ProviderStatus: &approved,
		IsAvailable:    true,
	}
	state.users[f.customerID] = &shared.UserSnapshot{
		ID:            f.customerID,
		Role:          "customer",
		Email:         "ana@example.com",
		ContactNumber: "0917-555-0102",
		FullName:      "Ana Cruz",
	}
	state.categories[f.categoryID] = &shared.CategorySnapshot{
		ID:          f.categoryID,
		ProviderID:  f.providerID,
		Name:        "Wash & Fold",
		PricingType: "per_kilo",
		Price:       dec("50"),
	}

	fixedClock := clock.NewFixedClock(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	f.uc = NewBookingUseCase(&fakeUow{s: state}, notifications, &fakeBookingQueries{s: state}, fixedClock)
	return f
}

func (f *fixture) seedBooking(status booking.Status, price string) uuid.UUID {
	id := uuid.New()
	f.state.bookings[id] = &shared.BookingSnapshot{
		ID:         id,
		CustomerID: f.customerID,
		ProviderID: f.providerID,
		CategoryID: f.categoryID,
		Weight:     dec("3"),
		TotalPrice: dec(price),
		Status:     status.String(),
	}
	return id
}

func (f *fixture) orderFor(bookingID uuid.UUID) *shared.OrderSnapshot {
	for _, o := range f.state.orders {
		if o.BookingID == bookingID {
			return o
		}
	}
	return nil
}

// ================================================================================
// Create
// ================================================================================

func TestBookingCreate(t *testing.T) {
	t.Run("snapshots price and notifies both parties", func(t *testing.T) {
		f := newFixture(t)

		view, err := f.uc.Create(context.Background(), f.customerID, reqdto.CreateBookingRequest{
			ProviderID: f.providerID,
			CategoryID: f.categoryID,
			Weight:     dec("3"),
			Notes:      "no bleach",
		})
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending.String(), view.Status)
		assert.True(t, view.TotalPrice.Equal(dec("150")))

		require.Len(t, f.notifications.created, 2)
		recipients := map[uuid.UUID]bool{}
		for _, n := range f.notifications.created {
			recipients[n.UserID()] = true
			assert.Contains(t, n.Message(), "Wash & Fold")
		}
		assert.True(t, recipients[f.providerID])
		assert.True(t, recipients[f.customerID])
	})

	t.Run("unknown category", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Create(context.Background(), f.customerID, reqdto.CreateBookingRequest{
			ProviderID: f.providerID,
			CategoryID: uuid.New(),
			Weight:     dec("3"),
		})
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("unknown provider", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Create(context.Background(), f.customerID, reqdto.CreateBookingRequest{
			ProviderID: uuid.New(),
			CategoryID: f.categoryID,
			Weight:     dec("3"),
		})
		assert.ErrorIs(t, err, ErrProviderNotFound)
	})

	t.Run("category owned by a different provider", func(t *testing.T) {
		f := newFixture(t)
		otherID := uuid.New()
		approved := user.ProviderApproved.String()
		f.state.users[otherID] = &shared.UserSnapshot{
			ID:             otherID,
			Role:           "provider",
			Email:          "other@example.com",
			ContactNumber:  "0917-555-0103",
			ShopName:       "Bubbles",
			ProviderStatus: &approved,
			IsAvailable:    true,
		}

		_, err := f.uc.Create(context.Background(), f.customerID, reqdto.CreateBookingRequest{
			ProviderID: otherID,
			CategoryID: f.categoryID,
			Weight:     dec("3"),
		})
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("unavailable provider", func(t *testing.T) {
		f := newFixture(t)
		f.state.users[f.providerID].IsAvailable = false
		_, err := f.uc.Create(context.Background(), f.customerID, reqdto.CreateBookingRequest{
			ProviderID: f.providerID,
			CategoryID: f.categoryID,
			Weight:     dec("3"),
		})
		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})

	t.Run("zero weight", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Create(context.Background(), f.customerID, reqdto.CreateBookingRequest{
			ProviderID: f.providerID,
			CategoryID: f.categoryID,
			Weight:     dec("0"),
		})
		assert.ErrorIs(t, err, ErrInvalidWeight)
	})
}

// ================================================================================
// Accept
// ================================================================================

func TestBookingAccept(t *testing.T) {
	t.Run("confirms and generates exactly one order and receipt", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedBooking(booking.StatusPending, "150")

		view, err := f.uc.Accept(context.Background(), f.providerID, id)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed.String(), view.Status)

		assert.Equal(t, 1, f.state.orderCreates)
		assert.Equal(t, 1, f.state.receiptCreates)

		o := f.orderFor(id)
		require.NotNil(t, o)
		assert.Equal(t, order.StatusConfirmed.String(), o.Status)
		assert.True(t, o.TotalCost.Equal(dec("150")))
	})

	t.Run("existing order short-circuits generation", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedBooking(booking.StatusPending, "150")
		orderID := uuid.New()
		f.state.orders[orderID] = &shared.OrderSnapshot{
			ID:        orderID,
			BookingID: id,
			Status:    order.StatusConfirmed.String(),
			TotalCost: dec("150"),
		}

		_, err := f.uc.Accept(context.Background(), f.providerID, id)
		require.NoError(t, err)
		assert.Equal(t, 0, f.state.orderCreates)
		assert.Equal(t, 0, f.state.receiptCreates)
	})

	t.Run("race lost on the conditional write", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedBooking(booking.StatusPending, "150")
		f.state.forceConflict = true

		_, err := f.uc.Accept(context.Background(), f.providerID, id)
		assert.ErrorIs(t, err, ErrBookingConflict)
		assert.Equal(t, 0, f.state.orderCreates)
	})

	t.Run("only from pending", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusConfirmed, booking.StatusInProgress, booking.StatusReady, booking.StatusCompleted, booking.StatusRejected} {
			f := newFixture(t)
			id := f.seedBooking(status, "150")
			_, err := f.uc.Accept(context.Background(), f.providerID, id)
			assert.ErrorIs(t, err, ErrInvalidTransition, "accept from %s", status)
		}
	})

	t.Run("only the booked provider", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedBooking(booking.StatusPending, "150")
		_, err := f.uc.Accept(context.Background(), uuid.New(), id)
		assert.ErrorIs(t, err, ErrNotBookingOwner)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Accept(context.Background(), f.providerID, uuid.New())
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

// ================================================================================
// Reject
// ================================================================================

func TestBookingReject(t *testing.T) {
	t.Run("rejects a pending booking", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedBooking(booking.StatusPending, "150")

		view, err := f.uc.Reject(context.Background(), f.providerID, id)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusRejected.String(), view.Status)
	})

	t.Run("cancels an existing derived order", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedBooking(booking.StatusPending, "150")
		orderID := uuid.New()
		f.state.orders[orderID] = &shared.OrderSnapshot{
			ID:        orderID,
			BookingID: id,
			Status:    order.StatusConfirmed.String(),
			TotalCost: dec("150"),
		}

		_, err := f.uc.Reject(context.Background(), f.providerID, id)
		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled.String(), f.state.orders[orderID].Status)
	})

	t.Run("notifies the customer", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedBooking(booking.StatusPending, "150")

		_, err := f.uc.Reject(context.Background(), f.providerID, id)
		require.NoError(t, err)
		require.Len(t, f.notifications.created, 1)
		assert.Equal(t, f.customerID, f.notifications.created[0].UserID())
		assert.Contains(t, f.notifications.created[0].Message(), "declined")
	})
}

// ================================================================================
// ConfirmPayment / UpdateStatus
// ================================================================================

func TestConfirmPayment(t *testing.T) {
	t.Run("moves confirmed to in_progress", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedBooking(booking.StatusConfirmed, "150")

		view, err := f.uc.ConfirmPayment(context.Background(), f.providerID, id)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusInProgress.String(), view.Status)
	})

	t.Run("only the booked provider", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedBooking(booking.StatusConfirmed, "150")
		_, err := f.uc.ConfirmPayment(context.Background(), uuid.New(), id)
		assert.ErrorIs(t, err, ErrNotBookingOwner)
	})

	t.Run("only from confirmed", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedBooking(booking.StatusPending, "150")
		_, err := f.uc.ConfirmPayment(context.Background(), f.providerID, id)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("ready to completed also completes the order", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedBooking(booking.StatusReady, "150")
		orderID := uuid.New()
		f.state.orders[orderID] = &shared.OrderSnapshot{
			ID:        orderID,
			BookingID: id,
			Status:    order.StatusConfirmed.String(),
			TotalCost: dec("150"),
		}

		view, err := f.uc.UpdateStatus(context.Background(), f.providerID, id, "completed")
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCompleted.String(), view.Status)
		assert.Equal(t, order.StatusCompleted.String(), f.state.orders[orderID].Status)
	})

	t.Run("allows skipping intermediate steps", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedBooking(booking.StatusConfirmed, "150")

		view, err := f.uc.UpdateStatus(context.Background(), f.providerID, id, "completed")
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCompleted.String(), view.Status)
	})

	t.Run("generates derived records when confirming out of band", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedBooking(booking.StatusPending, "150")

		_, err := f.uc.UpdateStatus(context.Background(), f.providerID, id, "confirmed")
		require.NoError(t, err)
		assert.Equal(t, 1, f.state.orderCreates)
		assert.Equal(t, 1, f.state.receiptCreates)
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedBooking(booking.StatusConfirmed, "150")
		_, err := f.uc.UpdateStatus(context.Background(), f.providerID, id, "lost")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("rejects moves out of terminal statuses", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusCompleted, booking.StatusRejected} {
			f := newFixture(t)
			id := f.seedBooking(status, "150")
			_, err := f.uc.UpdateStatus(context.Background(), f.providerID, id, "confirmed")
			assert.ErrorIs(t, err, ErrInvalidTransition, "from %s", status)
		}
	})
}

// ================================================================================
// UpdateDetails
// ================================================================================

func TestUpdateDetails(t *testing.T) {
	t.Run("reprices and resyncs order and receipt", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedBooking(booking.StatusInProgress, "150")
		orderID := uuid.New()
		receiptID := uuid.New()
		f.state.orders[orderID] = &shared.OrderSnapshot{
			ID:        orderID,
			BookingID: id,
			Status:    order.StatusConfirmed.String(),
			TotalCost: dec("150"),
		}
		f.state.receipts[receiptID] = &shared.ReceiptSnapshot{
			ID:          receiptID,
			OrderID:     orderID,
			DeliveryFee: dec("0"),
		}

		view, err := f.uc.UpdateDetails(context.Background(), f.providerID, id, reqdto.UpdateBookingDetailsRequest{
			Weight: decPtr("5"),
			Notes:  strPtr("updated"),
		})
		require.NoError(t, err)

		assert.True(t, view.TotalPrice.Equal(dec("250")))
		assert.True(t, f.state.orders[orderID].TotalCost.Equal(dec("250")))
		// Delivery fee stays zero after the resync
		assert.True(t, f.state.receipts[receiptID].DeliveryFee.IsZero())
	})

	t.Run("notes-only edit keeps the price snapshot", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedBooking(booking.StatusConfirmed, "150")
		// Raising the category price must not leak into the snapshot
		f.state.categories[f.categoryID].Price = dec("80")

		view, err := f.uc.UpdateDetails(context.Background(), f.providerID, id, reqdto.UpdateBookingDetailsRequest{
			Notes: strPtr("ring the doorbell"),
		})
		require.NoError(t, err)
		assert.True(t, view.TotalPrice.Equal(dec("150")))
		assert.Equal(t, "ring the doorbell", view.Notes)
	})

	t.Run("weight-only edit keeps the stored notes", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedBooking(booking.StatusConfirmed, "150")
		f.state.bookings[id].Notes = "no bleach"

		view, err := f.uc.UpdateDetails(context.Background(), f.providerID, id, reqdto.UpdateBookingDetailsRequest{
			Weight: decPtr("4"),
		})
		require.NoError(t, err)
		assert.True(t, view.TotalPrice.Equal(dec("200")))
		assert.Equal(t, "no bleach", view.Notes)
	})

	t.Run("forbidden on terminal bookings", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusCompleted, booking.StatusRejected} {
			f := newFixture(t)
			id := f.seedBooking(status, "150")
			_, err := f.uc.UpdateDetails(context.Background(), f.providerID, id, reqdto.UpdateBookingDetailsRequest{Weight: decPtr("5")})
			assert.ErrorIs(t, err, ErrInvalidTransition, "from %s", status)
		}
	})

	t.Run("invalid weight keeps the stored price", func(t *testing.T) {
		f := newFixture(t)
		id := f.seedBooking(booking.StatusPending, "150")

		_, err := f.uc.UpdateDetails(context.Background(), f.providerID, id, reqdto.UpdateBookingDetailsRequest{Weight: decPtr("-1")})
		assert.ErrorIs(t, err, ErrInvalidWeight)
		assert.True(t, f.state.bookings[id].TotalPrice.Equal(dec("150")))
	})
}
