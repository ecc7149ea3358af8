//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"laundryhub/internal/domain/user"
	"laundryhub/internal/handler/api"
	reqdto "laundryhub/internal/handler/dto/request"
	"laundryhub/internal/usecase/commands"
	"laundryhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type stubBookingCommands struct {
	view *queries.BookingView
	err  error

	lastActor   uuid.UUID
	lastBooking uuid.UUID
	lastStatus  string
}

func (s *stubBookingCommands) Create(_ context.Context, customerID uuid.UUID, _ reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	s.lastActor = customerID
	return s.view, s.err
}

func (s *stubBookingCommands) Accept(_ context.Context, providerID, bookingID uuid.UUID) (*queries.BookingView, error) {
	s.lastActor, s.lastBooking = providerID, bookingID
	return s.view, s.err
}

func (s *stubBookingCommands) Reject(_ context.Context, providerID, bookingID uuid.UUID) (*queries.BookingView, error) {
	s.lastActor, s.lastBooking = providerID, bookingID
	return s.view, s.err
}

func (s *stubBookingCommands) ConfirmPayment(_ context.Context, providerID, bookingID uuid.UUID) (*queries.BookingView, error) {
	s.lastActor, s.lastBooking = providerID, bookingID
	return s.view, s.err
}

func (s *stubBookingCommands) UpdateStatus(_ context.Context, providerID, bookingID uuid.UUID, status string) (*queries.BookingView, error) {
	s.lastActor, s.lastBooking, s.lastStatus = providerID, bookingID, status
	return s.view, s.err
}

func (s *stubBookingCommands) UpdateDetails(_ context.Context, providerID, bookingID uuid.UUID, _ reqdto.UpdateBookingDetailsRequest) (*queries.BookingView, error) {
	s.lastActor, s.lastBooking = providerID, bookingID
	return s.view, s.err
}

type stubBookingQueries struct {
	view  *queries.BookingView
	views []*queries.BookingView
	err   error

	byProvider bool
	byCustomer bool
	all        bool
}

func (s *stubBookingQueries) GetByID(context.Context, uuid.UUID) (*queries.BookingView, error) {
	return s.view, s.err
}

func (s *stubBookingQueries) ListByCustomer(context.Context, uuid.UUID) ([]*queries.BookingView, error) {
	s.byCustomer = true
	return s.views, s.err
}

func (s *stubBookingQueries) ListByProvider(context.Context, uuid.UUID) ([]*queries.BookingView, error) {
	s.byProvider = true
	return s.views, s.err
}

func (s *stubBookingQueries) ListAll(context.Context) ([]*queries.BookingView, error) {
	s.all = true
	return s.views, s.err
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *stubBookingCommands
	queries  *stubBookingQueries

	actorID   uuid.UUID
	actorRole user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.commands = &stubBookingCommands{}
	s.queries = &stubBookingQueries{}
	s.actorID = uuid.New()
	s.actorRole = user.RoleCustomer

	handler := api.NewBookingHandler(s.commands, s.queries)

	authStub := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", s.actorRole)
		c.Next()
	}

	s.router.POST("/bookings", authStub, handler.Create)
	s.router.GET("/bookings", authStub, handler.ListMine)
	s.router.GET("/bookings/:id", authStub, handler.Get)
	s.router.POST("/bookings/:id/accept", authStub, handler.Accept)
	s.router.PATCH("/bookings/:id/status", authStub, handler.UpdateStatus)
	s.router.PATCH("/bookings/:id/details", authStub, handler.UpdateDetails)
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-token")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func sampleView(customerID, providerID uuid.UUID, status string) *queries.BookingView {
	return &queries.BookingView{
		ID:           uuid.New(),
		CustomerID:   customerID,
		CustomerName: "Ana Cruz",
		ProviderID:   providerID,
		ShopName:     "Sparkle Laundry",
		CategoryID:   uuid.New(),
		CategoryName: "Wash & Fold",
		PricingType:  "per_kilo",
		Weight:       decimal.NewFromInt(3),
		TotalPrice:   decimal.NewFromInt(150),
		ScheduleAt:   time.Now(),
		Status:       status,
		CreatedAt:    time.Now(),
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	s.Run("returns 201 with the created booking", func() {
		s.commands.view = sampleView(s.actorID, uuid.New(), "pending")
		s.commands.err = nil

		rec := s.perform(http.MethodPost, "/bookings", reqdto.CreateBookingRequest{
			ProviderID: uuid.New(),
			CategoryID: uuid.New(),
			Weight:     decimal.NewFromInt(3),
		})

		s.Equal(http.StatusCreated, rec.Code)
		s.Equal(s.actorID, s.commands.lastActor)

		var got queries.BookingView
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
		s.Empty(cmp.Diff(*s.commands.view, got))
	})

	s.Run("rejects malformed body", func() {
		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString("{not json"))
		req.Header.Set("Authorization", "Bearer test-token")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("maps unavailable provider to 409", func() {
		s.commands.view = nil
		s.commands.err = commands.ErrProviderUnavailable

		rec := s.perform(http.MethodPost, "/bookings", reqdto.CreateBookingRequest{
			ProviderID: uuid.New(),
			CategoryID: uuid.New(),
			Weight:     decimal.NewFromInt(3),
		})

		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("maps invalid weight to 422", func() {
		s.commands.err = commands.ErrInvalidWeight

		rec := s.perform(http.MethodPost, "/bookings", reqdto.CreateBookingRequest{
			ProviderID: uuid.New(),
			CategoryID: uuid.New(),
			Weight:     decimal.NewFromInt(1),
		})

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("requires authentication", func() {
		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString("{}"))
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	s.Run("customers list their own bookings", func() {
		s.actorRole = user.RoleCustomer
		s.queries.views = []*queries.BookingView{sampleView(s.actorID, uuid.New(), "pending")}

		rec := s.perform(http.MethodGet, "/bookings", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.True(s.queries.byCustomer)
		s.False(s.queries.byProvider)
	})

	s.Run("providers list incoming bookings", func() {
		s.actorRole = user.RoleProvider
		s.queries.byCustomer = false

		rec := s.perform(http.MethodGet, "/bookings", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.True(s.queries.byProvider)
		s.False(s.queries.byCustomer)
	})

	s.Run("admins list every booking", func() {
		s.actorRole = user.RoleAdmin
		s.queries.byCustomer = false
		s.queries.byProvider = false

		rec := s.perform(http.MethodGet, "/bookings", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.True(s.queries.all)
		s.False(s.queries.byCustomer)
		s.False(s.queries.byProvider)
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("hides bookings the actor is not part of", func() {
		s.queries.view = sampleView(uuid.New(), uuid.New(), "pending")

		rec := s.perform(http.MethodGet, "/bookings/"+uuid.NewString(), nil)

		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("returns a booking the actor owns", func() {
		s.queries.view = sampleView(s.actorID, uuid.New(), "pending")

		rec := s.perform(http.MethodGet, "/bookings/"+uuid.NewString(), nil)

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("rejects malformed IDs", func() {
		rec := s.perform(http.MethodGet, "/bookings/not-a-uuid", nil)

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestAccept() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/accept"

	cases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "success", err: nil, expectCode: http.StatusOK},
		{name: "not found", err: commands.ErrBookingNotFound, expectCode: http.StatusNotFound},
		{name: "someone else's booking", err: commands.ErrNotBookingOwner, expectCode: http.StatusForbidden},
		{name: "already handled", err: commands.ErrInvalidTransition, expectCode: http.StatusUnprocessableEntity},
		{name: "lost the race", err: commands.ErrBookingConflict, expectCode: http.StatusConflict},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.actorRole = user.RoleProvider
			s.commands.view = sampleView(uuid.New(), s.actorID, "confirmed")
			s.commands.err = tc.err

			rec := s.perform(http.MethodPost, url, nil)

			s.Equal(tc.expectCode, rec.Code)
			if tc.err == nil {
				s.Equal(bookingID, s.commands.lastBooking)
			}
		})
	}
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	url := "/bookings/" + uuid.NewString() + "/status"

	s.Run("forwards the target status", func() {
		s.actorRole = user.RoleProvider
		s.commands.view = sampleView(uuid.New(), s.actorID, "ready")
		s.commands.err = nil

		rec := s.perform(http.MethodPatch, url, reqdto.UpdateBookingStatusRequest{Status: "ready"})

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("ready", s.commands.lastStatus)
	})

	s.Run("rejects a missing status", func() {
		rec := s.perform(http.MethodPatch, url, map[string]any{})

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestUpdateDetails() {
	url := "/bookings/" + uuid.NewString() + "/details"

	five := decimal.NewFromInt(5)

	s.Run("returns the repriced booking", func() {
		s.actorRole = user.RoleProvider
		s.commands.view = sampleView(uuid.New(), s.actorID, "confirmed")
		s.commands.err = nil

		rec := s.perform(http.MethodPatch, url, reqdto.UpdateBookingDetailsRequest{
			Weight: &five,
		})

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("maps terminal bookings to 422", func() {
		s.commands.err = commands.ErrInvalidTransition

		rec := s.perform(http.MethodPatch, url, reqdto.UpdateBookingDetailsRequest{
			Weight: &five,
		})

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("rejects an empty payload", func() {
		rec := s.perform(http.MethodPatch, url, map[string]any{})

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
