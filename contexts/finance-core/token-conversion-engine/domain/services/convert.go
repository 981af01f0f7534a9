package services

import (
	"github.com/shopspring/decimal"

	"tokentab/contexts/finance-core/token-conversion-engine/domain/entities"
	domainerrors "tokentab/contexts/finance-core/token-conversion-engine/domain/errors"
)

// Token pricing constants. One token redeems against a bill at
// TokenRedemptionValue and is bought at TokenAcquisitionCost; the
// redemption value is fixed at exactly twice the acquisition cost.
var (
	TokenRedemptionValue = decimal.RequireFromString("5.4")
	TokenAcquisitionCost = decimal.RequireFromString("2.7")
)

// Convert returns the minimum number of whole tokens whose combined
// redemption value covers price, the change returned to the payer once
// those tokens are redeemed, and the payer's real net cost after buying
// the tokens at acquisition cost and pocketing the change.
//
// Pure and deterministic: no I/O, no logging, no hidden state.
func Convert(price decimal.Decimal) (entities.TokenCalculation, error) {
	if price.IsNegative() {
		return entities.TokenCalculation{}, domainerrors.ErrInvalidPrice
	}

	quotient, remainder := price.QuoRem(TokenRedemptionValue, 0)
	tokenCount := quotient
	if !remainder.IsZero() {
		tokenCount = tokenCount.Add(decimal.NewFromInt(1))
	}

	changeDue := tokenCount.Mul(TokenRedemptionValue).Sub(price)
	realAmountPaid := tokenCount.Mul(TokenAcquisitionCost).Sub(changeDue)

	return entities.TokenCalculation{
		TokenCount:     tokenCount.IntPart(),
		ChangeDue:      changeDue.Round(2),
		RealAmountPaid: realAmountPaid.Round(2),
	}, nil
}
