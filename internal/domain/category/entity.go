package category

import (
	"errors"
	"strings"
	"time"

	"laundryhub/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPricingType = errors.New("invalid pricing type")
	ErrEmptyName          = errors.New("category name cannot be empty")
	ErrInvalidWeight      = errors.New("weight must be greater than zero")
	ErrWeightBelowMinimum = errors.New("weight is below the category minimum")
	ErrInvalidBounds      = errors.New("min kilo cannot exceed max kilo")
)

// Category is a provider-owned laundry service with a pricing policy.
// Bookings copy the computed price at creation time, so later edits to a
// category never change existing bookings.
type Category struct {
	id          uuid.UUID
	providerID  uuid.UUID
	name        string
	pricingType PricingType
	price       money.Money
	minKilo     *decimal.Decimal
	maxKilo     *decimal.Decimal
	createdAt   time.Time
}

func NewCategory(providerID uuid.UUID, name string, pricingType PricingType, price money.Money, minKilo, maxKilo *decimal.Decimal) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !pricingType.IsValid() {
		return nil, ErrInvalidPricingType
	}
	if minKilo != nil && maxKilo != nil && minKilo.GreaterThan(*maxKilo) {
		return nil, ErrInvalidBounds
	}

	return &Category{
		id:          uuid.New(),
		providerID:  providerID,
		name:        name,
		pricingType: pricingType,
		price:       price,
		minKilo:     minKilo,
		maxKilo:     maxKilo,
	}, nil
}

func Reconstruct(id, providerID uuid.UUID, name string, pricingType PricingType, price money.Money, minKilo, maxKilo *decimal.Decimal, createdAt time.Time) *Category {
	return &Category{
		id:          id,
		providerID:  providerID,
		name:        name,
		pricingType: pricingType,
		price:       price,
		minKilo:     minKilo,
		maxKilo:     maxKilo,
		createdAt:   createdAt,
	}
}

func (c *Category) ID() uuid.UUID            { return c.id }
func (c *Category) ProviderID() uuid.UUID    { return c.providerID }
func (c *Category) Name() string             { return c.name }
func (c *Category) PricingType() PricingType { return c.pricingType }
func (c *Category) UnitPrice() money.Money   { return c.price }
func (c *Category) MinKilo() *decimal.Decimal { return c.minKilo }
func (c *Category) MaxKilo() *decimal.Decimal { return c.maxKilo }
func (c *Category) CreatedAt() time.Time     { return c.createdAt }

// PriceFor computes the booking total for a requested weight. It is pure:
// no side effects, no rounding until display.
//
// per_kilo: unit price * weight.
// fixed:    flat price within bounds; weight under min_kilo is rejected;
//           weight over max_kilo is billed in whole batches of max_kilo
//           (ceil(weight / max_kilo) * price).
func (c *Category) PriceFor(weight decimal.Decimal) (money.Money, error) {
	if !weight.IsPositive() {
		return money.Money{}, ErrInvalidWeight
	}

	switch c.pricingType {
	case PricingPerKilo:
		return c.price.Mul(weight), nil
	case PricingFixed:
		if c.minKilo != nil && weight.LessThan(*c.minKilo) {
			return money.Money{}, ErrWeightBelowMinimum
		}
		if c.maxKilo != nil && weight.GreaterThan(*c.maxKilo) {
			batches := weight.Div(*c.maxKilo).Ceil()
			return c.price.Mul(batches), nil
		}
		return c.price, nil
	default:
		return money.Money{}, ErrInvalidPricingType
	}
}
