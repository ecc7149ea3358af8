package request

import "github.com/shopspring/decimal"

type CreateCategoryRequest struct {
	Name        string           `json:"name" binding:"required"`
	PricingType string           `json:"pricing_type" binding:"required,oneof=per_kilo fixed"`
	Price       decimal.Decimal  `json:"price" binding:"required"`
	MinKilo     *decimal.Decimal `json:"min_kilo,omitempty"`
	MaxKilo     *decimal.Decimal `json:"max_kilo,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        string           `json:"name" binding:"required"`
	PricingType string           `json:"pricing_type" binding:"required,oneof=per_kilo fixed"`
	Price       decimal.Decimal  `json:"price" binding:"required"`
	MinKilo     *decimal.Decimal `json:"min_kilo,omitempty"`
	MaxKilo     *decimal.Decimal `json:"max_kilo,omitempty"`
}
