package category

type PricingType string

const (
	PricingPerKilo PricingType = "per_kilo"
	PricingFixed   PricingType = "fixed"
)

func (p PricingType) String() string {
	return string(p)
}

func (p PricingType) IsValid() bool {
	switch p {
	case PricingPerKilo, PricingFixed:
		return true
	default:
		return false
	}
}

func NewPricingType(s string) (PricingType, error) {
	pt := PricingType(s)
	if !pt.IsValid() {
		return "", ErrInvalidPricingType
	}
	return pt, nil
}
