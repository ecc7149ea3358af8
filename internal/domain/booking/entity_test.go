//go:build unit

package booking

import (
	"testing"
	"time"

	"laundryhub/internal/domain/category"
	"laundryhub/internal/domain/user"
	"laundryhub/internal/pkg/money"

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

func approvedProvider(t *testing.T) *user.User {
	t.Helper()
	email, err := user.NewEmail("shop@example.com")
	require.NoError(t, err)
	contact, err := user.NewContactNumber("0917-555-0101")
	require.NoError(t, err)
	p := user.NewProvider(email, "hash", contact, "Sparkle Laundry", "12 Rizal St")
	require.NoError(t, p.SetProviderStatus(user.ProviderApproved))
	return p
}

func perKiloCategory(t *testing.T, providerID uuid.UUID) *category.Category {
	t.Helper()
	c, err := category.NewCategory(providerID, "Wash & Fold", category.PricingPerKilo, money.MustFromFloat(50), nil, nil)
	require.NoError(t, err)
	return c
}

func newBookingAt(t *testing.T, status Status) *Booking {
	t.Helper()
	provider := approvedProvider(t)
	cat := perKiloCategory(t, provider.ID())
	b, err := NewBooking(uuid.New(), provider, cat, dec("3"), "", time.Now())
	require.NoError(t, err)
	b.status = status
	return b
}

func TestNewBooking(t *testing.T) {
	customerID := uuid.New()
	scheduleAt := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	t.Run("snapshots the computed price and starts pending", func(t *testing.T) {
		provider := approvedProvider(t)
		cat := perKiloCategory(t, provider.ID())

		b, err := NewBooking(customerID, provider, cat, dec("3"), "handle with care", scheduleAt)
		require.NoError(t, err)

		assert.Equal(t, StatusPending, b.Status())
		assert.True(t, b.TotalPrice().Decimal().Equal(dec("150")))
		assert.Equal(t, scheduleAt, b.ScheduleAt())
		assert.Equal(t, "handle with care", b.Notes())
	})

	t.Run("rejects unapproved provider", func(t *testing.T) {
		email, err := user.NewEmail("new@example.com")
		require.NoError(t, err)
		contact, err := user.NewContactNumber("0917-555-0102")
		require.NoError(t, err)
		provider := user.NewProvider(email, "hash", contact, "New Shop", "addr")
		cat := perKiloCategory(t, provider.ID())

		_, err = NewBooking(customerID, provider, cat, dec("3"), "", scheduleAt)
		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})

	t.Run("rejects unavailable provider", func(t *testing.T) {
		provider := approvedProvider(t)
		require.NoError(t, provider.SetAvailability(false))
		cat := perKiloCategory(t, provider.ID())

		_, err := NewBooking(customerID, provider, cat, dec("3"), "", scheduleAt)
		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})

	t.Run("rejects category owned by another provider", func(t *testing.T) {
		provider := approvedProvider(t)
		cat := perKiloCategory(t, uuid.New())

		_, err := NewBooking(customerID, provider, cat, dec("3"), "", scheduleAt)
		assert.ErrorIs(t, err, ErrCategoryNotOwned)
	})

	t.Run("propagates pricing errors", func(t *testing.T) {
		provider := approvedProvider(t)
		cat := perKiloCategory(t, provider.ID())

		_, err := NewBooking(customerID, provider, cat, dec("0"), "", scheduleAt)
		assert.ErrorIs(t, err, category.ErrInvalidWeight)
	})
}

func TestBookingTransitions(t *testing.T) {
	t.Run("accept succeeds only from pending", func(t *testing.T) {
		for _, status := range []Status{StatusConfirmed, StatusInProgress, StatusReady, StatusCompleted, StatusRejected} {
			b := newBookingAt(t, status)
			assert.Error(t, b.Accept(), "accept from %s should fail", status)
		}

		b := newBookingAt(t, StatusPending)
		require.NoError(t, b.Accept())
		assert.Equal(t, StatusConfirmed, b.Status())
	})

	t.Run("reject succeeds only from pending", func(t *testing.T) {
		for _, status := range []Status{StatusConfirmed, StatusInProgress, StatusReady, StatusCompleted, StatusRejected} {
			b := newBookingAt(t, status)
			assert.Error(t, b.Reject(), "reject from %s should fail", status)
		}

		b := newBookingAt(t, StatusPending)
		require.NoError(t, b.Reject())
		assert.Equal(t, StatusRejected, b.Status())
	})

	t.Run("confirm payment succeeds only from confirmed", func(t *testing.T) {
		for _, status := range []Status{StatusPending, StatusInProgress, StatusReady, StatusCompleted, StatusRejected} {
			b := newBookingAt(t, status)
			assert.ErrorIs(t, b.ConfirmPayment(), ErrInvalidTransition, "confirm payment from %s should fail", status)
		}

		b := newBookingAt(t, StatusConfirmed)
		require.NoError(t, b.ConfirmPayment())
		assert.Equal(t, StatusInProgress, b.Status())
	})

	t.Run("happy path runs end to end", func(t *testing.T) {
		b := newBookingAt(t, StatusPending)
		require.NoError(t, b.Accept())
		require.NoError(t, b.ConfirmPayment())
		require.NoError(t, b.TransitionTo(StatusReady))
		require.NoError(t, b.TransitionTo(StatusCompleted))
		assert.True(t, b.Status().IsTerminal())
	})

	t.Run("terminal statuses admit no transition", func(t *testing.T) {
		for _, terminal := range []Status{StatusCompleted, StatusRejected} {
			b := newBookingAt(t, terminal)
			for _, next := range []Status{StatusPending, StatusConfirmed, StatusInProgress, StatusReady, StatusCompleted, StatusRejected} {
				assert.ErrorIs(t, b.TransitionTo(next), ErrBookingTerminal, "%s -> %s", terminal, next)
			}
		}
	})

	t.Run("skipping a step is allowed", func(t *testing.T) {
		b := newBookingAt(t, StatusConfirmed)
		require.NoError(t, b.TransitionTo(StatusCompleted))
		assert.Equal(t, StatusCompleted, b.Status())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		b := newBookingAt(t, StatusPending)
		assert.ErrorIs(t, b.TransitionTo(Status("lost")), ErrInvalidStatus)
	})
}

func TestUpdateDetails(t *testing.T) {
	t.Run("reprices on weight change", func(t *testing.T) {
		provider := approvedProvider(t)
		cat := perKiloCategory(t, provider.ID())
		b, err := NewBooking(uuid.New(), provider, cat, dec("3"), "old note", time.Now())
		require.NoError(t, err)

		require.NoError(t, b.UpdateDetails(cat, dec("5"), "new note"))
		assert.True(t, b.TotalPrice().Decimal().Equal(dec("250")))
		assert.Equal(t, "new note", b.Notes())
	})

	t.Run("forbidden on terminal booking", func(t *testing.T) {
		provider := approvedProvider(t)
		cat := perKiloCategory(t, provider.ID())
		b, err := NewBooking(uuid.New(), provider, cat, dec("3"), "", time.Now())
		require.NoError(t, err)
		require.NoError(t, b.Reject())

		assert.ErrorIs(t, b.UpdateDetails(cat, dec("5"), ""), ErrBookingTerminal)
	})

	t.Run("rejects a different category", func(t *testing.T) {
		provider := approvedProvider(t)
		cat := perKiloCategory(t, provider.ID())
		other := perKiloCategory(t, provider.ID())
		b, err := NewBooking(uuid.New(), provider, cat, dec("3"), "", time.Now())
		require.NoError(t, err)

		assert.ErrorIs(t, b.UpdateDetails(other, dec("5"), ""), ErrCategoryNotOwned)
	})

	t.Run("notes edit leaves weight and price alone", func(t *testing.T) {
		provider := approvedProvider(t)
		cat := perKiloCategory(t, provider.ID())
		b, err := NewBooking(uuid.New(), provider, cat, dec("3"), "old note", time.Now())
		require.NoError(t, err)

		require.NoError(t, b.UpdateNotes("new note"))
		assert.Equal(t, "new note", b.Notes())
		assert.True(t, b.TotalPrice().Decimal().Equal(dec("150")))
		assert.True(t, b.Weight().Equal(dec("3")))
	})

	t.Run("keeps old price when repricing fails", func(t *testing.T) {
		provider := approvedProvider(t)
		cat, err := category.NewCategory(provider.ID(), "Comforter", category.PricingFixed, money.MustFromFloat(100), decPtrB("2"), decPtrB("5"))
		require.NoError(t, err)
		b, err := NewBooking(uuid.New(), provider, cat, dec("3"), "", time.Now())
		require.NoError(t, err)

		err = b.UpdateDetails(cat, dec("1"), "")
		assert.ErrorIs(t, err, category.ErrWeightBelowMinimum)
		assert.True(t, b.TotalPrice().Decimal().Equal(dec("100")))
		assert.True(t, b.Weight().Equal(dec("3")))
	})
}

func decPtrB(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
