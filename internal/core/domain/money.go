package domain

import "github.com/shopspring/decimal"

// DefaultCurrency is used when a caller does not name one.
const DefaultCurrency = "INR"

// minorUnitsPerMajor assumes a two-decimal currency such as INR (100 paise per rupee).
var minorUnitsPerMajor = decimal.NewFromInt(100)

// ToMinorUnits converts a display amount (e.g. 25.50) to the provider's integer
// minor units (2550). Sub-paise fractions are rounded to the nearest unit.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(minorUnitsPerMajor).Round(0).IntPart()
}

// FromMinorUnits is the inverse of ToMinorUnits.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Div(minorUnitsPerMajor)
}

// ValidateAmount rejects zero and negative display amounts.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return NewInvalidAmountError(amount.String())
	}
	if ToMinorUnits(amount) <= 0 {
		return NewInvalidAmountError(amount.String())
	}
	return nil
}
