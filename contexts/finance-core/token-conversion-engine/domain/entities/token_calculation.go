package entities

import "github.com/shopspring/decimal"

// TokenCalculation is the immutable result of converting one bill price.
type TokenCalculation struct {
	TokenCount     int64
	ChangeDue      decimal.Decimal
	RealAmountPaid decimal.Decimal
}
