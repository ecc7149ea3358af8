package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	ProviderID uuid.UUID       `json:"provider_id" binding:"required"`
	CategoryID uuid.UUID       `json:"category_id" binding:"required"`
	Weight     decimal.Decimal `json:"weight" binding:"required"`
	Notes      string          `json:"notes"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Both fields are optional; a nil field leaves the stored value untouched.
type UpdateBookingDetailsRequest struct {
	Weight *decimal.Decimal `json:"weight,omitempty"`
	Notes  *string          `json:"notes,omitempty"`
}
